// Package collections provides a fluent, chainable [Collection] type over
// the sequence operations of package seq.
//
// # Overview
//
// A [Collection][T] wraps a copied slice of T and exposes the common
// sequence operations as methods:
//
//	evens, err := collections.New(1, 2, 3, 4, 5, 6, 7, 8, 9, 10).
//	    Filter(func(n int) bool { return n%2 == 0 }).
//	    Sort(func(a, b int) bool { return a > b }).
//	    Take(3).
//	    All() // → [10 8 6], nil
//
// # Immutability
//
// All transformation methods return a *new* Collection, leaving the
// receiver unchanged. Collections are never mutated after construction and
// are safe to share across goroutines.
//
// # Errors
//
// Steps that can fail record a sticky error instead of returning one, so
// a chain stays a single expression. Once a step fails, the rest of the
// chain is skipped and every terminal ([Collection.All],
// [Collection.First], [Collection.Reduce], [Collection.Err], ...) reports
// the first error. The errors are the ones the seq package returns:
//
//	_, err := collections.New(1, 2, 3).Drop(-1).All()
//	errors.Is(err, seq.ErrInvalidArgument) // → true
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are package-level functions:
// [Map], [FlatMap], [Reduce], [GroupBy], [KeyBy], [Zip], [Chunk],
// [Flatten], [Range] and [Sum].
//
//	labels := collections.Map(collections.New(1, 2, 3), strconv.Itoa)
package collections
