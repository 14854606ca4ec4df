package collections

import (
	"encoding/json"
	"fmt"

	"github.com/samber/lo"

	"github.com/hasbyte1/go-sanity/seq"
)

// Collection is a generic, immutable wrapper around a slice of T.
//
// Every chaining method returns a *new* Collection and leaves the receiver
// unchanged, so a Collection may be read by several goroutines at once.
//
// # Sticky errors
//
// A step that can fail (Take with a negative count, Nth out of range, ...)
// does not panic. The returned Collection carries the error, every later
// step returns it unchanged and terminals report it:
//
//	items, err := collections.New(1, 2, 3).Take(-1).Reverse().All()
//	// items == nil, errors.Is(err, seq.ErrInvalidArgument)
//
// # Creating a collection
//
//	c := collections.New(1, 2, 3, 4, 5)
//	c := collections.From([]string{"a", "b", "c"})
//	c := collections.Empty[int]()
type Collection[T any] struct {
	items []T
	err   error
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	return From(items)
}

// From creates a Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{items: dst}
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: []T{}}
}

// Failed creates a Collection that carries err; every step on it is a no-op.
func Failed[T any](err error) *Collection[T] {
	return &Collection[T]{err: err}
}

// wrap adopts items without copying; callers pass freshly allocated slices.
func wrap[T any](items []T) *Collection[T] {
	return &Collection[T]{items: items}
}

// then runs step unless c already failed.
func (c *Collection[T]) then(step func([]T) ([]T, error)) *Collection[T] {
	if c.err != nil {
		return c
	}
	out, err := step(c.items)
	if err != nil {
		return Failed[T](err)
	}
	return wrap(out)
}

// apply is then for steps that cannot fail.
func (c *Collection[T]) apply(step func([]T) []T) *Collection[T] {
	if c.err != nil {
		return c
	}
	return wrap(step(c.items))
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Err returns the error recorded by the first failing step, if any.
func (c *Collection[T]) Err() error { return c.err }

// All returns a copy of the underlying slice, or the sticky error.
func (c *Collection[T]) All() ([]T, error) {
	if c.err != nil {
		return nil, c.err
	}
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out, nil
}

// MustAll is like [Collection.All] but panics on a sticky error.
func (c *Collection[T]) MustAll() []T {
	out, err := c.All()
	if err != nil {
		panic(err)
	}
	return out
}

// ToJSON serialises the collection items to a JSON array.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	if c.err != nil {
		return nil, c.err
	}
	return json.Marshal(c.items)
}

// Count returns the number of items; a failed collection counts zero.
func (c *Collection[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// String returns a JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Collection[T]) String() string {
	if c.err != nil {
		return fmt.Sprintf("<error: %v>", c.err)
	}
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every item. Nothing is called on a failed
// collection.
func (c *Collection[T]) Each(fn func(T, int)) {
	for i, item := range c.items {
		fn(item, i)
	}
}

// Tap calls fn(c) for side-effects and returns c unchanged for further
// chaining.
func (c *Collection[T]) Tap(fn func(*Collection[T])) *Collection[T] {
	fn(c)
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Terminals
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first item, [seq.ErrEmptyCollection] or the sticky error.
func (c *Collection[T]) First() (T, error) {
	if c.err != nil {
		var zero T
		return zero, c.err
	}
	return seq.First(c.items)
}

// Last returns the last item, [seq.ErrEmptyCollection] or the sticky error.
func (c *Collection[T]) Last() (T, error) {
	if c.err != nil {
		var zero T
		return zero, c.err
	}
	return seq.Last(c.items)
}

// FirstWhere returns the first item satisfying pred, or [ErrNoMatchingItems].
func (c *Collection[T]) FirstWhere(pred func(T) bool) (T, error) {
	var zero T
	if c.err != nil {
		return zero, c.err
	}
	for _, item := range c.items {
		if pred(item) {
			return item, nil
		}
	}
	return zero, ErrNoMatchingItems
}

// Nth returns the item at index i, [seq.ErrIndexOutOfRange] or the sticky
// error.
func (c *Collection[T]) Nth(i int) (T, error) {
	if c.err != nil {
		var zero T
		return zero, c.err
	}
	return seq.Nth(c.items, i)
}

// Reduce folds the items left-to-right starting from the first one.
// Use the package-level [Reduce] to fold into a different type.
func (c *Collection[T]) Reduce(f func(acc, item T) T) (T, error) {
	if c.err != nil {
		var zero T
		return zero, c.err
	}
	return seq.ReduceFirst(c.items, f)
}

// Every reports whether pred holds for all items. A failed collection
// reports false.
func (c *Collection[T]) Every(pred func(T) bool) bool {
	return c.err == nil && seq.Every(c.items, pred)
}

// Any reports whether pred holds for at least one item.
func (c *Collection[T]) Any(pred func(T) bool) bool {
	return c.err == nil && seq.Any(c.items, pred)
}

// MinBy returns the least item under less (the first one on ties).
func (c *Collection[T]) MinBy(less func(a, b T) bool) (T, error) {
	if c.err != nil {
		var zero T
		return zero, c.err
	}
	return seq.MinBy(c.items, less)
}

// MaxBy returns the greatest item under less (the first one on ties).
func (c *Collection[T]) MaxBy(less func(a, b T) bool) (T, error) {
	if c.err != nil {
		var zero T
		return zero, c.err
	}
	return seq.MaxBy(c.items, less)
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// Filter keeps the items for which pred returns true.
//
//	collections.New(1, 2, 3, 4).Filter(func(n int) bool { return n%2 == 0 })
//	// → [2, 4]
func (c *Collection[T]) Filter(pred func(T) bool) *Collection[T] {
	return c.apply(func(s []T) []T { return seq.Filter(s, pred) })
}

// Remove drops the items for which pred returns true.
func (c *Collection[T]) Remove(pred func(T) bool) *Collection[T] {
	return c.apply(func(s []T) []T { return seq.Remove(s, pred) })
}

// Distinct keeps the first item for each key returned by fn. Keys must be
// comparable at run time.
//
//	users.Distinct(func(u User) any { return u.Email })
func (c *Collection[T]) Distinct(fn func(T) any) *Collection[T] {
	return c.apply(func(s []T) []T { return lo.UniqBy(s, fn) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

// Sort returns the items in stable order under less.
func (c *Collection[T]) Sort(less func(a, b T) bool) *Collection[T] {
	return c.apply(func(s []T) []T { return seq.SortBy(s, less) })
}

// Shuffle returns the items in an order drawn from the process-wide random
// source.
func (c *Collection[T]) Shuffle() *Collection[T] {
	return c.apply(seq.Shuffle[T])
}

// ShuffleWith is [Collection.Shuffle] with an explicit source.
func (c *Collection[T]) ShuffleWith(r seq.Shuffler) *Collection[T] {
	return c.apply(func(s []T) []T { return seq.ShuffleWith(s, r) })
}

// Reverse returns the items in reverse order.
func (c *Collection[T]) Reverse() *Collection[T] {
	return c.apply(seq.Reverse[T])
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Rest drops the first item; an empty collection stays empty.
func (c *Collection[T]) Rest() *Collection[T] {
	return c.apply(seq.Rest[T])
}

// Butlast drops the last item.
func (c *Collection[T]) Butlast() *Collection[T] {
	return c.apply(seq.Butlast[T])
}

// Take keeps the first n items. A negative n fails the chain.
func (c *Collection[T]) Take(n int) *Collection[T] {
	return c.then(func(s []T) ([]T, error) { return seq.Take(s, n) })
}

// Drop skips the first n items. A negative n fails the chain.
func (c *Collection[T]) Drop(n int) *Collection[T] {
	return c.then(func(s []T) ([]T, error) { return seq.Drop(s, n) })
}

// TakeLast keeps the last n items.
func (c *Collection[T]) TakeLast(n int) *Collection[T] {
	return c.then(func(s []T) ([]T, error) { return seq.TakeLast(s, n) })
}

// DropLast skips the last n items.
func (c *Collection[T]) DropLast(n int) *Collection[T] {
	return c.then(func(s []T) ([]T, error) { return seq.DropLast(s, n) })
}

// TakeWhile keeps the longest prefix satisfying pred.
func (c *Collection[T]) TakeWhile(pred func(T) bool) *Collection[T] {
	return c.apply(func(s []T) []T { return seq.TakeWhile(s, pred) })
}

// DropWhile skips the longest prefix satisfying pred.
func (c *Collection[T]) DropWhile(pred func(T) bool) *Collection[T] {
	return c.apply(func(s []T) []T { return seq.DropWhile(s, pred) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Building
// ─────────────────────────────────────────────────────────────────────────────

// Cons prepends item.
func (c *Collection[T]) Cons(item T) *Collection[T] {
	return c.apply(func(s []T) []T { return seq.Cons(s, item) })
}

// Conj appends item.
func (c *Collection[T]) Conj(item T) *Collection[T] {
	return c.apply(func(s []T) []T { return seq.Conj(s, item) })
}

// Concat appends the items of every other collection in order. The first
// failed argument fails the chain.
func (c *Collection[T]) Concat(others ...*Collection[T]) *Collection[T] {
	return c.then(func(s []T) ([]T, error) {
		more := make([][]T, len(others))
		for i, o := range others {
			if o.err != nil {
				return nil, o.err
			}
			more[i] = o.items
		}
		return seq.Concat(s, more...), nil
	})
}

// Interpose places sep between adjacent items.
func (c *Collection[T]) Interpose(sep T) *Collection[T] {
	return c.apply(func(s []T) []T { return seq.Interpose(s, sep) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional chaining
// ─────────────────────────────────────────────────────────────────────────────

// When applies fn only when condition is true.
func (c *Collection[T]) When(condition bool, fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	if condition && c.err == nil {
		return fn(c)
	}
	return c
}

// Unless applies fn only when condition is false.
func (c *Collection[T]) Unless(condition bool, fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	return c.When(!condition, fn)
}
