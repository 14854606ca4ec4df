package seq

import (
	"cmp"
	"slices"
	"sort"

	"github.com/hasbyte1/go-sanity/randsrc"
)

// Shuffler is the randomness needed by [ShuffleWith].
// Both *randsrc.Source and *math/rand.Rand satisfy it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

// Sort returns a copy of s in ascending natural order.
func Sort[T cmp.Ordered](s []T) []T {
	out := clone(s)
	slices.Sort(out)
	return out
}

// SortBy returns a copy of s ordered by less, which must be a strict weak
// ordering. The sort is stable.
func SortBy[T any](s []T, less func(a, b T) bool) []T {
	out := clone(s)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// SortByKey returns a copy of s ordered by the key extracted with key.
// The sort is stable and key is called once per element.
func SortByKey[T any, K cmp.Ordered](s []T, key func(T) K) []T {
	type keyed struct {
		k    K
		item T
	}
	tmp := make([]keyed, len(s))
	for i, item := range s {
		tmp[i] = keyed{k: key(item), item: item}
	}
	slices.SortStableFunc(tmp, func(a, b keyed) int { return cmp.Compare(a.k, b.k) })
	out := make([]T, len(tmp))
	for i, kv := range tmp {
		out[i] = kv.item
	}
	return out
}

// Shuffle returns a uniformly random permutation of s drawn from the
// process-wide [randsrc.Default] source.
func Shuffle[T any](s []T) []T {
	return ShuffleWith(s, randsrc.Default())
}

// ShuffleWith returns a random permutation of s drawn from r.
func ShuffleWith[T any](s []T, r Shuffler) []T {
	out := clone(s)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Reverse returns a copy of s in reverse order.
func Reverse[T any](s []T) []T {
	n := len(s)
	out := make([]T, n)
	for i, item := range s {
		out[n-1-i] = item
	}
	return out
}
