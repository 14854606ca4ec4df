package seq

import "errors"

// Sentinel errors returned by sequence operations.
var (
	// ErrEmptyCollection is returned when an operation requires at least one
	// element but the sequence is empty.
	ErrEmptyCollection = errors.New("seq: operation on empty collection")

	// ErrIndexOutOfRange is returned by [Nth] when the index is outside
	// [0, len-1].
	ErrIndexOutOfRange = errors.New("seq: index out of range")

	// ErrInvalidArgument is returned for a count below zero, a zero range
	// step, a non-positive chunk size or a non-finite range bound.
	ErrInvalidArgument = errors.New("seq: invalid argument")
)
