package textio

import "errors"

var (
	// ErrIO is wrapped by every filesystem failure of [Slurp], [SlurpLines],
	// [Spit] and [SpitAppend].
	ErrIO = errors.New("textio: I/O error")

	// ErrInvalidPattern is returned by [Split] when the pattern is not a
	// valid regular expression.
	ErrInvalidPattern = errors.New("textio: invalid pattern")
)
