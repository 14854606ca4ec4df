package seq

import "fmt"

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Take returns the first n elements, or all of s when n >= len(s).
// Returns [ErrInvalidArgument] when n < 0.
func Take[T any](s []T, n int) ([]T, error) {
	if n < 0 {
		return nil, negativeCount("take", n)
	}
	return clone(s[:min(n, len(s))]), nil
}

// Drop returns the elements after the first n, or an empty result when
// n >= len(s).
// Returns [ErrInvalidArgument] when n < 0.
func Drop[T any](s []T, n int) ([]T, error) {
	if n < 0 {
		return nil, negativeCount("drop", n)
	}
	return clone(s[min(n, len(s)):]), nil
}

// TakeLast returns the last n elements, or all of s when n >= len(s).
// Returns [ErrInvalidArgument] when n < 0.
func TakeLast[T any](s []T, n int) ([]T, error) {
	if n < 0 {
		return nil, negativeCount("take-last", n)
	}
	return clone(s[len(s)-min(n, len(s)):]), nil
}

// DropLast returns s without its last n elements.
// Returns [ErrInvalidArgument] when n < 0.
func DropLast[T any](s []T, n int) ([]T, error) {
	if n < 0 {
		return nil, negativeCount("drop-last", n)
	}
	return clone(s[:len(s)-min(n, len(s))]), nil
}

// SplitAt returns Take(s, n) and Drop(s, n) in one call.
func SplitAt[T any](s []T, n int) ([]T, []T, error) {
	if n < 0 {
		return nil, nil, negativeCount("split-at", n)
	}
	k := min(n, len(s))
	return clone(s[:k]), clone(s[k:]), nil
}

// TakeWhile returns the longest prefix of s whose elements all satisfy pred.
func TakeWhile[T any](s []T, pred func(T) bool) []T {
	return clone(s[:prefixLen(s, pred)])
}

// DropWhile returns everything after the prefix that [TakeWhile] would
// return.
func DropWhile[T any](s []T, pred func(T) bool) []T {
	return clone(s[prefixLen(s, pred):])
}

func prefixLen[T any](s []T, pred func(T) bool) int {
	for i, item := range s {
		if !pred(item) {
			return i
		}
	}
	return len(s)
}

func negativeCount(op string, n int) error {
	return fmt.Errorf("%w: %s count must not be negative, got %d", ErrInvalidArgument, op, n)
}
