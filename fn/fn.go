// Package fn provides generic function combinators that are handy as
// arguments to the sequence and mapping helpers:
//
//	seq.Map(xs, fn.Identity[int])                 // copy of xs
//	seq.Remove(xs, fn.Negate(num.IsEven[int]))    // same as seq.Filter(xs, num.IsEven[int])
//	seq.Map(xs, fn.Compose(num.Inc[int], num.Inc[int]))
package fn

// Identity returns x unchanged.
func Identity[T any](x T) T { return x }

// Negate returns a predicate that reports the opposite of pred.
// It is Clojure's complement.
func Negate[T any](pred func(T) bool) func(T) bool {
	return func(x T) bool { return !pred(x) }
}

// Constantly returns a function that ignores its argument and always
// returns v.
func Constantly[T, V any](v V) func(T) V {
	return func(T) V { return v }
}

// Compose returns the function x → g(f(x)).
// The first function is applied first, matching the reading order of a
// pipeline rather than mathematical notation.
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(x A) C { return g(f(x)) }
}

// Juxt returns a function that applies every fs to its argument and collects
// the results in order.
func Juxt[T, U any](fs ...func(T) U) func(T) []U {
	return func(x T) []U {
		out := make([]U, len(fs))
		for i, f := range fs {
			out[i] = f(x)
		}
		return out
	}
}

// Both returns a predicate that holds when a and b both hold.
func Both[T any](a, b func(T) bool) func(T) bool {
	return func(x T) bool { return a(x) && b(x) }
}

// Either returns a predicate that holds when a or b holds.
func Either[T any](a, b func(T) bool) func(T) bool {
	return func(x T) bool { return a(x) || b(x) }
}
