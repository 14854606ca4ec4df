package dict

import "strings"

// Path splits a dot-separated key path: Path("user.address.city") →
// ["user" "address" "city"].
func Path(dotted string) []string {
	if dotted == "" {
		return []string{}
	}
	return strings.Split(dotted, ".")
}

// GetIn returns the value found by following path through nested
// map[string]any values, or notFound when any step is missing or is not a
// map. An empty path returns m itself.
//
//	dict.GetIn(cfg, dict.Path("db.host"), "localhost")
func GetIn(m map[string]any, path []string, notFound any) any {
	if len(path) == 0 {
		return m
	}
	current := m
	for i, seg := range path {
		val, ok := current[seg]
		if !ok {
			return notFound
		}
		if i == len(path)-1 {
			return val
		}
		nested, ok := val.(map[string]any)
		if !ok {
			return notFound
		}
		current = nested
	}
	return notFound
}

// AssocIn returns a copy of m with val stored at path. Every map along the
// path is copied; missing or non-map intermediate values are replaced by
// new maps. An empty path returns a shallow copy of m.
func AssocIn(m map[string]any, path []string, val any) map[string]any {
	if len(path) == 0 {
		return clone(m, 0)
	}
	if len(path) == 1 {
		return Assoc(m, path[0], val)
	}
	nested, _ := m[path[0]].(map[string]any)
	return Assoc(m, path[0], any(AssocIn(nested, path[1:], val)))
}

// DissocIn returns a copy of m with the entry at path removed. Maps along
// the path are copied; a path that does not exist yields an unchanged copy.
// Emptied intermediate maps are kept.
func DissocIn(m map[string]any, path []string) map[string]any {
	if len(path) == 0 {
		return clone(m, 0)
	}
	if len(path) == 1 {
		return Dissoc(m, path[0])
	}
	nested, ok := m[path[0]].(map[string]any)
	if !ok {
		return clone(m, 0)
	}
	return Assoc(m, path[0], any(DissocIn(nested, path[1:])))
}

// UpdateIn returns a copy of m with the value at path replaced by
// f(old, present). An empty path returns a shallow copy of m without
// calling f.
func UpdateIn(m map[string]any, path []string, f func(any, bool) any) map[string]any {
	if len(path) == 0 {
		return clone(m, 0)
	}
	const missing = missingMarker(0)
	old := GetIn(m, path, missing)
	if old == missing {
		return AssocIn(m, path, f(nil, false))
	}
	return AssocIn(m, path, f(old, true))
}

type missingMarker int

// Dot flattens nested map[string]any values into a single-level map keyed
// by dot-separated paths.
//
//	dict.Dot(map[string]any{"a": map[string]any{"b": 1}}) // → {"a.b": 1}
func Dot(m map[string]any) map[string]any {
	out := make(map[string]any)
	dotFlatten("", m, out)
	return out
}

func dotFlatten(prefix string, m map[string]any, out map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok && len(nested) > 0 {
			dotFlatten(key, nested, out)
		} else {
			out[key] = v
		}
	}
}

// Undot expands a flat dot-notation map into nested map[string]any values,
// the inverse of [Dot]. Keys are applied in ascending order, so a deeper
// key such as "a.b" replaces a scalar stored at "a".
//
//	dict.Undot(map[string]any{"a.b": 1, "a.c": 2})
//	// → {"a": {"b": 1, "c": 2}}
func Undot(m map[string]any) map[string]any {
	out := make(map[string]any)
	for _, key := range SortedKeys(m) {
		out = AssocIn(out, Path(key), m[key])
	}
	return out
}

// HasIn reports whether path resolves to a value in m.
func HasIn(m map[string]any, path []string) bool {
	return GetIn(m, path, missingMarker(0)) != missingMarker(0)
}
