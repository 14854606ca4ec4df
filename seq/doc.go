// Package seq provides Clojure- and Underscore-style higher-order helpers for
// plain Go slices, treating every slice as if it were immutable.
//
// # Immutability
//
// No function in this package writes to its input. Every function that
// produces a sequence returns a freshly allocated slice, including the ones
// that select a contiguous window of the input ([Rest], [Take], [Drop],
// [TakeWhile], [DropWhile]); the result never shares a backing array with
// an argument. Empty results are empty, non-nil slices.
//
// Because inputs are left untouched, calls compose by plain nesting:
//
//	evens := seq.Filter(seq.Map(xs, double), isPositive)
//	sum   := seq.Reduce(0, seq.Range(10), num.Add[int]) // → 45
//
// # Errors
//
// Operations with a precondition report violations with the sentinel errors
// in errors.go, wrapped with context where useful; compare with [errors.Is]:
//
//	_, err := seq.First([]int{})
//	errors.Is(err, seq.ErrEmptyCollection) // → true
//
// Operations that document a fallback ([NthOr], [Reduce] on an empty
// sequence) never fail.
//
// # Eagerness
//
// Everything is eager: each call materialises its full result before
// returning. There are no lazy or infinite sequences; generators such as
// [Repeatedly] and [Iterate] take an explicit count.
package seq
