package randsrc

import "errors"

var (
	// ErrInvalidKey is returned by [New] when a key supplied through
	// [WithKey] is not exactly 32 bytes long.
	ErrInvalidKey = errors.New("randsrc: key must be 32 bytes")

	// ErrInvalidSeed is returned by [LoadConfig] when SANITY_SEED is not a
	// decimal unsigned 64-bit integer.
	ErrInvalidSeed = errors.New("randsrc: invalid seed")
)
