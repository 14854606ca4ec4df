package seq

import (
	"fmt"

	"github.com/samber/lo"
)

// Pair holds two values of possibly different types.
// It is the element type produced by [Zip].
type Pair[A, B any] struct {
	First  A
	Second B
}

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping & restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Distinct returns s with repeated elements removed, keeping the first
// occurrence of each.
func Distinct[T comparable](s []T) []T {
	return lo.Uniq(s)
}

// Frequencies maps every distinct element to the number of times it occurs.
func Frequencies[T comparable](s []T) map[T]int {
	return lo.CountValues(s)
}

// GroupBy groups elements by the key extracted with key. Within a group the
// elements keep their relative order.
func GroupBy[T any, K comparable](s []T, key func(T) K) map[K][]T {
	return lo.GroupBy(s, key)
}

// Partition splits s into the elements satisfying pred and the rest, in a
// single pass.
func Partition[T any](s []T, pred func(T) bool) ([]T, []T) {
	pass := make([]T, 0)
	fail := make([]T, 0)
	for _, item := range s {
		if pred(item) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return pass, fail
}

// PartitionAll splits s into consecutive chunks of size; the last chunk may
// be shorter. Returns [ErrInvalidArgument] when size <= 0.
func PartitionAll[T any](s []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: chunk size must be greater than 0, got %d", ErrInvalidArgument, size)
	}
	chunks := lo.Chunk(s, size)
	for i, c := range chunks {
		chunks[i] = clone(c)
	}
	return chunks, nil
}

// Flatten concatenates a sequence of sequences one level deep.
func Flatten[T any](s [][]T) []T {
	return lo.Flatten(s)
}

// Zip pairs the elements of a and b at equal indices, stopping at the
// shorter sequence.
func Zip[A, B any](a []A, b []B) []Pair[A, B] {
	n := min(len(a), len(b))
	out := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[A, B]{First: a[i], Second: b[i]}
	}
	return out
}
