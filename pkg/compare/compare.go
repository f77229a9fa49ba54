package compare

import "slices"

// SameValues reports whether a and b have the same length and every element
// of a is present in b. Order is ignored.
func SameValues[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for _, v := range a {
		if !slices.Contains(b, v) {
			return false
		}
	}
	return true
}

// SameAny is SameValues for untyped sequences, using StrictEqual for
// membership.
func SameAny(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for _, v := range a {
		if !slices.ContainsFunc(b, func(w any) bool { return StrictEqual(v, w) }) {
			return false
		}
	}
	return true
}

// SameMap reports whether a and b have the same key set and every key maps to
// an equal value.
func SameMap[K, V comparable](a, b map[K]V) bool {
	if !SameValues(keys(a), keys(b)) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}

// SameObject is SameMap for decoded JSON/YAML objects. Values are compared
// with StrictEqual, so nested maps and slices must be the same instance.
func SameObject(a, b map[string]any) bool {
	if !SameValues(keys(a), keys(b)) {
		return false
	}
	for k, v := range a {
		if !StrictEqual(v, b[k]) {
			return false
		}
	}
	return true
}

func keys[K comparable, V any](m map[K]V) []K {
	out := make([]K, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
