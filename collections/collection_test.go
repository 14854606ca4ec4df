package collections_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-sanity/collections"
	"github.com/hasbyte1/go-sanity/randsrc"
	"github.com/hasbyte1/go-sanity/seq"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func ints(ns ...int) *collections.Collection[int] { return collections.New(ns...) }

func isEven(n int) bool { return n%2 == 0 }

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func all[T any](t *testing.T, c *collections.Collection[T]) []T {
	t.Helper()
	items, err := c.All()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return items
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

func TestNew(t *testing.T) {
	assertSlice(t, all(t, ints(1, 2, 3)), []int{1, 2, 3})
}

func TestFrom(t *testing.T) {
	s := []string{"a", "b", "c"}
	c := collections.From(s)
	s[0] = "z" // mutate original, should not affect the collection
	if all(t, c)[0] != "a" {
		t.Fatal("From did not copy the slice")
	}
}

func TestEmpty(t *testing.T) {
	c := collections.Empty[int]()
	if c.Count() != 0 || !c.IsEmpty() {
		t.Fatal("empty collection should have Count 0")
	}
	if items := all(t, c); items == nil {
		t.Fatal("All on an empty collection should be non-nil")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	c := ints(1, 2, 3)
	items := all(t, c)
	items[0] = 99
	assertSlice(t, all(t, c), []int{1, 2, 3})
}

// ─────────────────────────────────────────────────────────────────────────────
// Chaining
// ─────────────────────────────────────────────────────────────────────────────

func TestChain(t *testing.T) {
	got := all(t, ints(1, 2, 3, 4, 5, 6, 7, 8, 9, 10).
		Filter(isEven).
		Sort(func(a, b int) bool { return a > b }).
		Take(3))
	assertSlice(t, got, []int{10, 8, 6})
}

func TestChainLeavesReceiverUnchanged(t *testing.T) {
	c := ints(3, 1, 2)
	_ = c.Sort(func(a, b int) bool { return a < b }).Reverse().Conj(4).Cons(0)
	assertSlice(t, all(t, c), []int{3, 1, 2})
}

func TestFilterRemove(t *testing.T) {
	assertSlice(t, all(t, ints(1, 2, 3, 4).Filter(isEven)), []int{2, 4})
	assertSlice(t, all(t, ints(1, 2, 3, 4).Remove(isEven)), []int{1, 3})
}

func TestDistinct(t *testing.T) {
	words := collections.New("apple", "avocado", "banana", "blueberry", "cherry")
	got := all(t, words.Distinct(func(s string) any { return s[0] }))
	assertSlice(t, got, []string{"apple", "banana", "cherry"})
}

func TestSlicing(t *testing.T) {
	c := ints(1, 2, 3, 4, 5)
	assertSlice(t, all(t, c.Rest()), []int{2, 3, 4, 5})
	assertSlice(t, all(t, c.Butlast()), []int{1, 2, 3, 4})
	assertSlice(t, all(t, c.Take(2)), []int{1, 2})
	assertSlice(t, all(t, c.Drop(2)), []int{3, 4, 5})
	assertSlice(t, all(t, c.TakeLast(2)), []int{4, 5})
	assertSlice(t, all(t, c.DropLast(2)), []int{1, 2, 3})
	assertSlice(t, all(t, c.Take(10)), []int{1, 2, 3, 4, 5})
	lt3 := func(n int) bool { return n < 3 }
	assertSlice(t, all(t, c.TakeWhile(lt3)), []int{1, 2})
	assertSlice(t, all(t, c.DropWhile(lt3)), []int{3, 4, 5})
}

func TestBuilding(t *testing.T) {
	c := ints(1, 2)
	assertSlice(t, all(t, c.Cons(0)), []int{0, 1, 2})
	assertSlice(t, all(t, c.Conj(3)), []int{1, 2, 3})
	assertSlice(t, all(t, c.Concat(ints(3), ints(4, 5))), []int{1, 2, 3, 4, 5})
	assertSlice(t, all(t, ints(1, 2, 3).Interpose(0)), []int{1, 0, 2, 0, 3})
}

func TestShuffleWithIsReproducible(t *testing.T) {
	r1, err := randsrc.New(randsrc.WithSeed(42))
	if err != nil {
		t.Fatal(err)
	}
	r2, _ := randsrc.New(randsrc.WithSeed(42))

	c := ints(1, 2, 3, 4, 5, 6, 7, 8)
	a := all(t, c.ShuffleWith(r1))
	b := all(t, c.ShuffleWith(r2))
	assertSlice(t, a, b)
	assertSlice(t, all(t, collections.From(a).Sort(func(x, y int) bool { return x < y })), all(t, c))
}

func TestShuffleKeepsItems(t *testing.T) {
	got := all(t, ints(1, 2, 3, 4).Shuffle())
	if len(got) != 4 {
		t.Fatalf("Shuffle changed the length: %v", got)
	}
}

func TestWhenUnless(t *testing.T) {
	double := func(c *collections.Collection[int]) *collections.Collection[int] {
		return c.Concat(c)
	}
	assertSlice(t, all(t, ints(1).When(true, double)), []int{1, 1})
	assertSlice(t, all(t, ints(1).When(false, double)), []int{1})
	assertSlice(t, all(t, ints(1).Unless(false, double)), []int{1, 1})
}

// ─────────────────────────────────────────────────────────────────────────────
// Terminals
// ─────────────────────────────────────────────────────────────────────────────

func TestFirstLastNth(t *testing.T) {
	c := ints(4, 5, 6)
	if v, err := c.First(); err != nil || v != 4 {
		t.Fatalf("First: got %v, %v", v, err)
	}
	if v, err := c.Last(); err != nil || v != 6 {
		t.Fatalf("Last: got %v, %v", v, err)
	}
	if v, err := c.Nth(1); err != nil || v != 5 {
		t.Fatalf("Nth: got %v, %v", v, err)
	}
	if _, err := c.Nth(3); !errors.Is(err, seq.ErrIndexOutOfRange) {
		t.Fatalf("Nth(3): got %v", err)
	}
	if _, err := collections.Empty[int]().First(); !errors.Is(err, seq.ErrEmptyCollection) {
		t.Fatalf("First on empty: got %v", err)
	}
}

func TestFirstWhere(t *testing.T) {
	if v, err := ints(1, 3, 4, 6).FirstWhere(isEven); err != nil || v != 4 {
		t.Fatalf("FirstWhere: got %v, %v", v, err)
	}
	if _, err := ints(1, 3).FirstWhere(isEven); !errors.Is(err, collections.ErrNoMatchingItems) {
		t.Fatalf("FirstWhere no match: got %v", err)
	}
}

func TestReduceMethod(t *testing.T) {
	sum, err := ints(1, 2, 3, 4).Reduce(func(a, b int) int { return a + b })
	if err != nil || sum != 10 {
		t.Fatalf("Reduce: got %v, %v", sum, err)
	}
	if _, err := collections.Empty[int]().Reduce(func(a, b int) int { return a + b }); !errors.Is(err, seq.ErrEmptyCollection) {
		t.Fatalf("Reduce on empty: got %v", err)
	}
}

func TestEveryAny(t *testing.T) {
	if !ints(2, 4).Every(isEven) || ints(2, 3).Every(isEven) {
		t.Fatal("Every failed")
	}
	if !ints(1, 2).Any(isEven) || ints(1, 3).Any(isEven) {
		t.Fatal("Any failed")
	}
	if !collections.Empty[int]().Every(isEven) {
		t.Fatal("Every on empty should be true")
	}
}

func TestMinByMaxBy(t *testing.T) {
	less := func(a, b string) bool { return len(a) < len(b) }
	words := collections.New("bb", "a", "cc", "d")
	if v, _ := words.MinBy(less); v != "a" {
		t.Fatalf("MinBy: got %q", v)
	}
	if v, _ := words.MaxBy(less); v != "bb" {
		t.Fatalf("MaxBy: got %q", v)
	}
}

func TestString(t *testing.T) {
	if got := ints(1, 2).String(); got != "[1,2]" {
		t.Fatalf("String: got %q", got)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Sticky errors
// ─────────────────────────────────────────────────────────────────────────────

func TestStickyError(t *testing.T) {
	calls := 0
	c := ints(1, 2, 3).
		Take(-1).
		Filter(func(int) bool { calls++; return true }).
		Reverse().
		Conj(4)

	if !errors.Is(c.Err(), seq.ErrInvalidArgument) {
		t.Fatalf("Err: got %v", c.Err())
	}
	if calls != 0 {
		t.Fatalf("steps after a failure must not run, ran %d times", calls)
	}
	if items, err := c.All(); items != nil || err == nil {
		t.Fatalf("All: got %v, %v", items, err)
	}
	if _, err := c.First(); !errors.Is(err, seq.ErrInvalidArgument) {
		t.Fatalf("First: got %v", err)
	}
	if c.Count() != 0 || c.Any(func(int) bool { return true }) {
		t.Fatal("failed collection should look empty")
	}
}

func TestStickyErrorKeepsFirst(t *testing.T) {
	first := errors.New("first")
	c := collections.Failed[int](first).Drop(-5)
	if !errors.Is(c.Err(), first) {
		t.Fatalf("Err: got %v", c.Err())
	}
}

func TestConcatFailedArgument(t *testing.T) {
	c := ints(1).Concat(ints(2).Take(-1))
	if !errors.Is(c.Err(), seq.ErrInvalidArgument) {
		t.Fatalf("Concat should adopt the argument's error, got %v", c.Err())
	}
}

func TestMustAllPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustAll should panic on a failed collection")
		}
	}()
	ints(1).Drop(-1).MustAll()
}
