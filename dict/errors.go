package dict

import "errors"

// ErrLengthMismatch is returned by [Zipmap] when the key and value sequences
// have different lengths.
var ErrLengthMismatch = errors.New("dict: keys and values must have the same length")
