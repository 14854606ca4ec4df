package dict

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// Pair is a single key/value association, the element type of [Pairs].
type Pair[K comparable, V any] struct {
	Key K
	Val V
}

// String returns "key=val".
func (p Pair[K, V]) String() string {
	return fmt.Sprintf("%v=%v", p.Key, p.Val)
}

// ─────────────────────────────────────────────────────────────────────────────
// Lookup
// ─────────────────────────────────────────────────────────────────────────────

// HasKey reports whether key is present in m.
func HasKey[K comparable, V any](m map[K]V, key K) bool {
	_, ok := m[key]
	return ok
}

// Get returns the value stored under key, or notFound when key is absent.
// A key explicitly mapped to the zero value is present and returns it.
func Get[K comparable, V any](m map[K]V, key K, notFound V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return notFound
}

// Find returns the value stored under key and whether it was present.
func Find[K comparable, V any](m map[K]V, key K) (V, bool) {
	v, ok := m[key]
	return v, ok
}

// ─────────────────────────────────────────────────────────────────────────────
// Persistent updates
// ─────────────────────────────────────────────────────────────────────────────

// Assoc returns a copy of m with key mapped to val, replacing any existing
// value.
func Assoc[K comparable, V any](m map[K]V, key K, val V) map[K]V {
	out := clone(m, 1)
	out[key] = val
	return out
}

// Dissoc returns a copy of m without keys. Absent keys are ignored, so
// dissociating a missing key yields an unchanged copy.
func Dissoc[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	out := clone(m, 0)
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// Update returns a copy of m with the value under key replaced by
// f(old, present). f sees the zero value and false when key is absent.
func Update[K comparable, V any](m map[K]V, key K, f func(V, bool) V) map[K]V {
	old, ok := m[key]
	return Assoc(m, key, f(old, ok))
}

// ─────────────────────────────────────────────────────────────────────────────
// Views
// ─────────────────────────────────────────────────────────────────────────────

// Keys returns the keys of m in unspecified order.
func Keys[K comparable, V any](m map[K]V) []K {
	out := make([]K, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// Vals returns the values of m in unspecified order.
func Vals[K comparable, V any](m map[K]V) []V {
	out := make([]V, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}

// Pairs returns the associations of m in unspecified order.
func Pairs[K comparable, V any](m map[K]V) []Pair[K, V] {
	out := make([]Pair[K, V], 0, len(m))
	for k, v := range m {
		out = append(out, Pair[K, V]{Key: k, Val: v})
	}
	return out
}

// Unzip returns the keys and values of m from a single iteration, so that
// vals[i] is the value stored under keys[i].
func Unzip[K comparable, V any](m map[K]V) ([]K, []V) {
	keys := make([]K, 0, len(m))
	vals := make([]V, 0, len(m))
	for k, v := range m {
		keys = append(keys, k)
		vals = append(vals, v)
	}
	return keys, vals
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := Keys(m)
	slices.Sort(keys)
	return keys
}

// ─────────────────────────────────────────────────────────────────────────────
// Construction & combination
// ─────────────────────────────────────────────────────────────────────────────

// Zipmap builds a map from keys[i] to vals[i]. When a key repeats, the value
// at the later index wins.
// Returns [ErrLengthMismatch] when the sequences differ in length.
func Zipmap[K comparable, V any](keys []K, vals []V) (map[K]V, error) {
	if len(keys) != len(vals) {
		return nil, fmt.Errorf("%w: %d keys, %d values", ErrLengthMismatch, len(keys), len(vals))
	}
	out := make(map[K]V, len(keys))
	for i, k := range keys {
		out[k] = vals[i]
	}
	return out, nil
}

// Merge returns a new map holding every association of a, b and more.
// Later maps overwrite matching keys of earlier ones.
func Merge[K comparable, V any](a, b map[K]V, more ...map[K]V) map[K]V {
	all := make([]map[K]V, 0, 2+len(more))
	all = append(all, a, b)
	all = append(all, more...)
	return lo.Assign(all...)
}

// MergeWith is like [Merge] but resolves a key present in both maps with
// f(a[key], b[key]). Keys present in only one map are copied as-is.
func MergeWith[K comparable, V any](f func(V, V) V, a, b map[K]V) map[K]V {
	out := clone(a, len(b))
	for k, vb := range b {
		if va, ok := a[k]; ok {
			out[k] = f(va, vb)
		} else {
			out[k] = vb
		}
	}
	return out
}

// RenameKeys returns a copy of m in which every key found in table is stored
// under table[key] instead.
//
// Entries whose key is not renamed are copied first. Renamed entries are
// then applied in ascending order of their original key, so a renamed entry
// replaces an untouched entry with the same name, and when several keys
// rename to the same target the one with the greatest original key wins.
func RenameKeys[K cmp.Ordered, V any](m map[K]V, table map[K]K) map[K]V {
	out := make(map[K]V, len(m))
	renamed := make([]K, 0, len(table))
	for k, v := range m {
		if _, ok := table[k]; ok {
			renamed = append(renamed, k)
			continue
		}
		out[k] = v
	}
	slices.Sort(renamed)
	for _, k := range renamed {
		out[table[k]] = m[k]
	}
	return out
}

// SelectKeys returns a new map holding only the associations of keys that
// are present in m.
func SelectKeys[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	return lo.PickByKeys(m, keys)
}

// Invert returns a map from every value of m to its key. When several keys
// share a value the surviving key is unspecified.
func Invert[K, V comparable](m map[K]V) map[V]K {
	return lo.Invert(m)
}

// MapVals returns a new map with every value transformed by f.
func MapVals[K comparable, V, U any](m map[K]V, f func(V) U) map[K]U {
	out := make(map[K]U, len(m))
	for k, v := range m {
		out[k] = f(v)
	}
	return out
}

// FilterKeys returns a new map holding the associations whose key satisfies
// pred.
func FilterKeys[K comparable, V any](m map[K]V, pred func(K) bool) map[K]V {
	out := make(map[K]V)
	for k, v := range m {
		if pred(k) {
			out[k] = v
		}
	}
	return out
}

func clone[K comparable, V any](m map[K]V, extra int) map[K]V {
	out := make(map[K]V, len(m)+extra)
	for k, v := range m {
		out[k] = v
	}
	return out
}
