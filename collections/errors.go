package collections

import "errors"

// Failures of individual steps surface as the error of the package that
// performed them (seq.ErrInvalidArgument, seq.ErrEmptyCollection, ...).
// The sentinel below is specific to the fluent API.
var (
	// ErrNoMatchingItems is returned by FirstWhere when no item satisfies
	// the predicate.
	ErrNoMatchingItems = errors.New("collections: no items match the given condition")
)
