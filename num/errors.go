package num

import "errors"

// ErrDivisionByZero is returned by [Divide] and [Modulo] when the divisor is
// zero.
var ErrDivisionByZero = errors.New("num: division by zero")
