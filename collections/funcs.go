package collections

// Package-level functions for the operations that change the element type.
// Go methods cannot introduce their own type parameters, so these take the
// collection as their first argument and compose with method chains:
//
//	labels := collections.Map(
//	    collections.New(1, 2, 3, 4).Filter(func(n int) bool { return n%2 == 0 }),
//	    strconv.Itoa,
//	)
//
// A failed input yields a failed output carrying the same error.

import (
	"github.com/samber/lo"

	"github.com/hasbyte1/go-sanity/num"
	"github.com/hasbyte1/go-sanity/seq"
)

// Map applies f to every item and returns a new Collection[U].
func Map[T, U any](c *Collection[T], f func(T) U) *Collection[U] {
	if c.err != nil {
		return Failed[U](c.err)
	}
	return wrap(seq.Map(c.items, f))
}

// FlatMap applies f to every item and concatenates the results.
//
//	words := collections.FlatMap(collections.New("hello world", "foo bar"), strings.Fields)
//	// → ["hello", "world", "foo", "bar"]
func FlatMap[T, U any](c *Collection[T], f func(T) []U) *Collection[U] {
	if c.err != nil {
		return Failed[U](c.err)
	}
	return wrap(seq.Mapcat(c.items, f))
}

// Reduce folds c left-to-right into a value of type A, starting from init.
//
//	total, _ := collections.Reduce(c, 0.0, func(acc float64, o Order) float64 {
//	    return acc + o.Amount
//	})
func Reduce[T, A any](c *Collection[T], init A, f func(A, T) A) (A, error) {
	if c.err != nil {
		return init, c.err
	}
	return seq.Reduce(init, c.items, f), nil
}

// GroupBy splits c into collections keyed by the value key extracts.
// Items keep their relative order inside each group.
//
//	byDept, _ := collections.GroupBy(employees, func(e Employee) string { return e.Department })
func GroupBy[T any, K comparable](c *Collection[T], key func(T) K) (map[K]*Collection[T], error) {
	if c.err != nil {
		return nil, c.err
	}
	groups := seq.GroupBy(c.items, key)
	out := make(map[K]*Collection[T], len(groups))
	for k, items := range groups {
		out[k] = wrap(items)
	}
	return out, nil
}

// KeyBy indexes c by the value key extracts. When several items share a
// key, the last one wins.
func KeyBy[T any, K comparable](c *Collection[T], key func(T) K) (map[K]T, error) {
	if c.err != nil {
		return nil, c.err
	}
	return lo.KeyBy(c.items, key), nil
}

// Zip pairs the items of a and b by position, stopping at the shorter one.
//
//	collections.Zip(collections.New("a", "b", "c"), collections.New(1, 2))
//	// → [(a, 1), (b, 2)]
func Zip[A, B any](a *Collection[A], b *Collection[B]) *Collection[seq.Pair[A, B]] {
	if a.err != nil {
		return Failed[seq.Pair[A, B]](a.err)
	}
	if b.err != nil {
		return Failed[seq.Pair[A, B]](b.err)
	}
	return wrap(seq.Zip(a.items, b.items))
}

// Chunk splits c into consecutive runs of size items; the last run may be
// shorter. A size below 1 fails the chain.
func Chunk[T any](c *Collection[T], size int) *Collection[[]T] {
	if c.err != nil {
		return Failed[[]T](c.err)
	}
	chunks, err := seq.PartitionAll(c.items, size)
	if err != nil {
		return Failed[[]T](err)
	}
	return wrap(chunks)
}

// Flatten concatenates a collection of slices one level deep.
func Flatten[T any](c *Collection[[]T]) *Collection[T] {
	if c.err != nil {
		return Failed[T](c.err)
	}
	return wrap(seq.Flatten(c.items))
}

// Range creates the progression start, start+step, ... excluding end.
// A zero step yields a failed collection.
//
//	collections.Range(1, 10, 2) // → [1, 3, 5, 7, 9]
func Range[T num.Number](start, end, step T) *Collection[T] {
	items, err := seq.RangeStep(start, end, step)
	if err != nil {
		return Failed[T](err)
	}
	return wrap(items)
}

// Sum adds up the items of a numeric collection.
func Sum[T num.Number](c *Collection[T]) (T, error) {
	if c.err != nil {
		var zero T
		return zero, c.err
	}
	return num.Sum(c.items), nil
}
