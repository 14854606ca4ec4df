// Package num provides small numeric predicates and arithmetic wrappers that
// are convenient as transformation or predicate arguments to the helpers in
// [github.com/hasbyte1/go-sanity/seq] and [github.com/hasbyte1/go-sanity/dict]:
//
//	evens := seq.Filter(seq.Range(10), num.IsEven[int])
//	total := seq.Reduce(0, []int{1, 2, 3, 4}, num.Add[int]) // → 10
//
// All helpers are generic over [Number] (every built-in integer and floating
// point type) or, where the operation is only meaningful for whole numbers,
// over [constraints.Integer].
//
// # Division
//
// Unlike the native operators, [Divide] and [Modulo] never panic and never
// return ±Inf or NaN: a zero divisor is reported as [ErrDivisionByZero].
package num
