package num

import "golang.org/x/exp/constraints"

// Number is satisfied by every built-in integer and floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// ─────────────────────────────────────────────────────────────────────────────
// Predicates
// ─────────────────────────────────────────────────────────────────────────────

// IsEven reports whether x is divisible by two.
func IsEven[T constraints.Integer](x T) bool { return x%2 == 0 }

// IsOdd reports whether x is not divisible by two.
func IsOdd[T constraints.Integer](x T) bool { return !IsEven(x) }

// IsZero reports whether x == 0.
func IsZero[T Number](x T) bool { return x == 0 }

// IsPositive reports whether x > 0.
func IsPositive[T Number](x T) bool { return x > 0 }

// IsNegative reports whether x < 0.
func IsNegative[T Number](x T) bool { return x < 0 }

// ─────────────────────────────────────────────────────────────────────────────
// Arithmetic
// ─────────────────────────────────────────────────────────────────────────────

// Inc returns x + 1.
func Inc[T Number](x T) T { return x + 1 }

// Dec returns x - 1.
func Dec[T Number](x T) T { return x - 1 }

// Add returns a + b.
func Add[T Number](a, b T) T { return a + b }

// Subtract returns a - b.
func Subtract[T Number](a, b T) T { return a - b }

// Multiply returns a * b.
func Multiply[T Number](a, b T) T { return a * b }

// Divide returns a / b. Integer division truncates toward zero.
// Returns [ErrDivisionByZero] when b is zero, for floats as well as integers.
func Divide[T Number](a, b T) (T, error) {
	if b == 0 {
		var zero T
		return zero, ErrDivisionByZero
	}
	return a / b, nil
}

// Modulo returns the remainder a % b, which takes the sign of a.
// Returns [ErrDivisionByZero] when b is zero.
func Modulo[T constraints.Integer](a, b T) (T, error) {
	if b == 0 {
		var zero T
		return zero, ErrDivisionByZero
	}
	return a % b, nil
}

// Abs returns the absolute value of x.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp limits x to the closed interval [lo, hi].
func Clamp[T Number](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum returns the sum of xs, or 0 for an empty slice.
func Sum[T Number](xs []T) T {
	var total T
	for _, x := range xs {
		total += x
	}
	return total
}

// Product returns the product of xs, or 1 for an empty slice.
func Product[T Number](xs []T) T {
	var total T = 1
	for _, x := range xs {
		total *= x
	}
	return total
}
