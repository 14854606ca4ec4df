package seq

import (
	"fmt"
	"math"

	"github.com/hasbyte1/go-sanity/num"
)

// ─────────────────────────────────────────────────────────────────────────────
// Construction & combination
// ─────────────────────────────────────────────────────────────────────────────

// Cons returns a new sequence with item prepended to s.
func Cons[T any](s []T, item T) []T {
	out := make([]T, len(s)+1)
	out[0] = item
	copy(out[1:], s)
	return out
}

// Conj returns a new sequence with item appended to s.
func Conj[T any](s []T, item T) []T {
	out := make([]T, len(s), len(s)+1)
	copy(out, s)
	return append(out, item)
}

// Concat returns s followed by the elements of every sequence in more.
func Concat[T any](s []T, more ...[]T) []T {
	total := len(s)
	for _, m := range more {
		total += len(m)
	}
	out := make([]T, 0, total)
	out = append(out, s...)
	for _, m := range more {
		out = append(out, m...)
	}
	return out
}

// Interleave returns a[0], b[0], a[1], b[1], ... The result has
// 2·min(len(a), len(b)) elements; trailing elements of the longer sequence
// are dropped.
func Interleave[T any](a, b []T) []T {
	n := min(len(a), len(b))
	out := make([]T, 0, 2*n)
	for i := 0; i < n; i++ {
		out = append(out, a[i], b[i])
	}
	return out
}

// Interpose returns s with sep inserted between every adjacent pair.
// An empty s yields an empty result.
func Interpose[T any](s []T, sep T) []T {
	if len(s) == 0 {
		return []T{}
	}
	out := make([]T, 0, 2*len(s)-1)
	out = append(out, s[0])
	for _, item := range s[1:] {
		out = append(out, sep, item)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Generators
// ─────────────────────────────────────────────────────────────────────────────

// Range returns 0, 1, ..., end-1. A non-positive end yields an empty result.
func Range[T num.Number](end T) []T {
	out, _ := RangeStep(0, end, 1)
	return out
}

// RangeFrom returns start, start+1, ... up to but excluding end.
func RangeFrom[T num.Number](start, end T) []T {
	out, _ := RangeStep(start, end, 1)
	return out
}

// RangeStep returns the arithmetic progression start, start+step, ... over
// the half-open interval [start, end): ascending when step > 0, descending
// when step < 0.
//
//	seq.RangeStep(1, 10, 2)   // → [1 3 5 7 9]
//	seq.RangeStep(5, 0, -2)   // → [5 3 1]
//	seq.RangeStep(1.0, 2, .5) // → [1 1.5]
//
// The k-th element is computed as start + k·step, so float progressions do
// not accumulate rounding error. Returns [ErrInvalidArgument] when step is
// zero or any argument is NaN or infinite.
func RangeStep[T num.Number](start, end, step T) ([]T, error) {
	if step == 0 {
		return nil, fmt.Errorf("%w: range step must not be zero", ErrInvalidArgument)
	}
	if !finite(start) || !finite(end) || !finite(step) {
		return nil, fmt.Errorf("%w: range bounds must be finite", ErrInvalidArgument)
	}
	out := make([]T, 0)
	for k := 0; ; k++ {
		v := start + T(k)*step
		if (step > 0 && v >= end) || (step < 0 && v <= end) {
			return out, nil
		}
		// Stop if a narrow integer type wrapped around.
		if k > 0 && ((step > 0 && v <= out[k-1]) || (step < 0 && v >= out[k-1])) {
			return out, nil
		}
		out = append(out, v)
	}
}

func finite[T num.Number](x T) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Repeat returns n copies of item.
// Returns [ErrInvalidArgument] when n < 0.
func Repeat[T any](item T, n int) ([]T, error) {
	if n < 0 {
		return nil, negativeCount("repeat", n)
	}
	out := make([]T, n)
	for i := range out {
		out[i] = item
	}
	return out, nil
}

// Repeatedly calls f n times and returns the results in call order.
// f usually has side effects so that its values vary.
// Returns [ErrInvalidArgument] when n < 0.
func Repeatedly[T any](n int, f func() T) ([]T, error) {
	if n < 0 {
		return nil, negativeCount("repeatedly", n)
	}
	out := make([]T, n)
	for i := range out {
		out[i] = f()
	}
	return out, nil
}

// Iterate returns the n values seed, f(seed), f(f(seed)), ...
// f is called n-1 times; n == 0 yields an empty result.
// Returns [ErrInvalidArgument] when n < 0.
func Iterate[T any](n int, f func(T) T, seed T) ([]T, error) {
	if n < 0 {
		return nil, negativeCount("iterate", n)
	}
	out := make([]T, 0, n)
	memo := seed
	for i := 0; i < n; i++ {
		if i > 0 {
			memo = f(memo)
		}
		out = append(out, memo)
	}
	return out, nil
}
