package seq

import "fmt"

// ─────────────────────────────────────────────────────────────────────────────
// Element access
// ─────────────────────────────────────────────────────────────────────────────

// First returns the element at position 0.
// Returns [ErrEmptyCollection] when s is empty.
func First[T any](s []T) (T, error) {
	if len(s) == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}
	return s[0], nil
}

// Last returns the element at position len(s)-1.
// Returns [ErrEmptyCollection] when s is empty.
func Last[T any](s []T) (T, error) {
	if len(s) == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}
	return s[len(s)-1], nil
}

// Rest returns every element but the first. An empty s yields an empty
// result rather than an error.
func Rest[T any](s []T) []T {
	if len(s) == 0 {
		return []T{}
	}
	return clone(s[1:])
}

// Butlast returns every element but the last.
func Butlast[T any](s []T) []T {
	if len(s) == 0 {
		return []T{}
	}
	return clone(s[:len(s)-1])
}

// Nth returns the element at index i.
// Returns [ErrIndexOutOfRange] when i < 0 or i >= len(s).
func Nth[T any](s []T, i int) (T, error) {
	if i < 0 || i >= len(s) {
		var zero T
		return zero, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, len(s))
	}
	return s[i], nil
}

// NthOr returns the element at index i, or notFound when i is out of range.
func NthOr[T any](s []T, i int, notFound T) T {
	if i < 0 || i >= len(s) {
		return notFound
	}
	return s[i]
}

// Count returns the number of elements in s.
func Count[T any](s []T) int { return len(s) }

// IsEmpty reports whether s has no elements.
func IsEmpty[T any](s []T) bool { return len(s) == 0 }

func clone[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}
