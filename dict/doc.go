// Package dict provides Clojure-style helpers for Go maps, treating every map
// as if it were immutable: [Assoc], [Dissoc], [Merge] and friends return a
// new map and never write to their arguments.
//
//	m  := map[string]int{"a": 1, "b": 2}
//	m2 := dict.Assoc(m, "c", 3)       // m is unchanged
//	m3 := dict.Merge(m2, map[string]int{"b": 20})
//	v  := dict.Get(m3, "z", -1)       // → -1
//
// # Ordering
//
// Go maps have no iteration order, so [Keys], [Vals] and [Pairs] return
// their elements in an unspecified order that may differ between calls.
// Use [Unzip] when keys and values must correspond index by index, or
// [SortedKeys] when K is ordered and a stable order is required.
//
// # Nested maps
//
// [GetIn], [AssocIn], [DissocIn] and [UpdateIn] address values inside nested
// map[string]any structures by key path. The write helpers copy every map on
// the path and leave the original structure untouched.
package dict
