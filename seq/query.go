package seq

import "cmp"

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// Every reports whether pred holds for every element.
// It is vacuously true for an empty s.
func Every[T any](s []T, pred func(T) bool) bool {
	for _, item := range s {
		if !pred(item) {
			return false
		}
	}
	return true
}

// Any reports whether pred holds for at least one element.
// It is false for an empty s.
func Any[T any](s []T, pred func(T) bool) bool {
	for _, item := range s {
		if pred(item) {
			return true
		}
	}
	return false
}

// NotEvery is the negation of [Every].
func NotEvery[T any](s []T, pred func(T) bool) bool { return !Every(s, pred) }

// NotAny is the negation of [Any].
func NotAny[T any](s []T, pred func(T) bool) bool { return !Any(s, pred) }

// Contains reports whether v occurs in s.
func Contains[T comparable](s []T, v T) bool {
	return IndexOf(s, v) >= 0
}

// IndexOf returns the index of the first occurrence of v, or -1.
func IndexOf[T comparable](s []T, v T) int {
	for i, item := range s {
		if item == v {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the index of the last occurrence of v, or -1.
func LastIndexOf[T comparable](s []T, v T) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == v {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Extremes
// ─────────────────────────────────────────────────────────────────────────────

// Minimum returns the smallest element. When several elements compare
// equal the first of them is returned.
// Returns [ErrEmptyCollection] when s is empty.
func Minimum[T cmp.Ordered](s []T) (T, error) {
	return MinBy(s, cmp.Less[T])
}

// Maximum returns the largest element. When several elements compare equal
// the first of them is returned.
// Returns [ErrEmptyCollection] when s is empty.
func Maximum[T cmp.Ordered](s []T) (T, error) {
	return MaxBy(s, cmp.Less[T])
}

// MinBy returns the smallest element under less.
// Returns [ErrEmptyCollection] when s is empty.
func MinBy[T any](s []T, less func(a, b T) bool) (T, error) {
	return ReduceFirst(s, func(a, b T) T {
		if less(b, a) {
			return b
		}
		return a
	})
}

// MaxBy returns the largest element under less.
// Returns [ErrEmptyCollection] when s is empty.
func MaxBy[T any](s []T, less func(a, b T) bool) (T, error) {
	return ReduceFirst(s, func(a, b T) T {
		if less(a, b) {
			return b
		}
		return a
	})
}
