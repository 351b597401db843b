package dict

import "maps"

// Transform is a curried map transformation.
type Transform[K comparable, V any] func(map[K]V) map[K]V

// Merge returns the union of ms. Later maps win on key collisions.
func Merge[K comparable, V any](ms ...map[K]V) map[K]V {
	out := make(map[K]V)
	for _, m := range ms {
		maps.Copy(out, m)
	}
	return out
}

// MergeWith returns a transform merging its argument after more, so keys of
// the argument win.
func MergeWith[K comparable, V any](more ...map[K]V) Transform[K, V] {
	return func(d map[K]V) map[K]V {
		return Merge(append(append([]map[K]V{}, more...), d)...)
	}
}

// CreateKey sets key to fn(d) only when d does not already hold key.
func CreateKey[K comparable, V any](key K, fn func(map[K]V) V) Transform[K, V] {
	return func(d map[K]V) map[K]V {
		if _, ok := d[key]; ok {
			return maps.Clone(d)
		}
		return assoc(d, key, fn(d))
	}
}

// UpdateKey sets key to fn(d), adding it when missing.
func UpdateKey[K comparable, V any](key K, fn func(map[K]V) V) Transform[K, V] {
	return func(d map[K]V) map[K]V { return assoc(d, key, fn(d)) }
}

// UpdateKeyV sets key to fn of its current value, or of def when missing.
func UpdateKeyV[K comparable, V any](key K, fn func(V) V, def V) Transform[K, V] {
	return func(d map[K]V) map[K]V {
		cur, ok := d[key]
		if !ok {
			cur = def
		}
		return assoc(d, key, fn(cur))
	}
}

// OnlyIfKey applies fn when d holds key and returns a copy of d otherwise.
func OnlyIfKey[K comparable, V any](key K, fn Transform[K, V]) Transform[K, V] {
	return func(d map[K]V) map[K]V {
		if _, ok := d[key]; ok {
			return fn(maps.Clone(d))
		}
		return maps.Clone(d)
	}
}

// UpdateIfKeyExists sets key to fn(d) only when d already holds key.
func UpdateIfKeyExists[K comparable, V any](key K, fn func(map[K]V) V) Transform[K, V] {
	return func(d map[K]V) map[K]V {
		if _, ok := d[key]; !ok {
			return maps.Clone(d)
		}
		return assoc(d, key, fn(d))
	}
}

// SetKey sets key to value.
func SetKey[K comparable, V any](key K, value V) Transform[K, V] {
	return func(d map[K]V) map[K]V { return assoc(d, key, value) }
}

// DropKey removes key. A missing key is not an error.
func DropKey[K comparable, V any](key K) Transform[K, V] {
	return DropKeys[K, V](key)
}

// DropKeys removes every key in keys.
func DropKeys[K comparable, V any](keys ...K) Transform[K, V] {
	return func(d map[K]V) map[K]V {
		out := maps.Clone(d)
		if out == nil {
			out = make(map[K]V)
		}
		for _, k := range keys {
			delete(out, k)
		}
		return out
	}
}

// MergeKeys replaces the keys in from with a single key to whose value is
// fn(d), computed before the keys are dropped.
func MergeKeys[K comparable, V any](from []K, to K, fn func(map[K]V) V) Transform[K, V] {
	return func(d map[K]V) map[K]V {
		value := fn(d)
		out := DropKeys[K, V](from...)(d)
		out[to] = value
		return out
	}
}

// ReplaceKey drops k1 and sets k2 to fn(d).
func ReplaceKey[K comparable, V any](k1, k2 K, fn func(map[K]V) V) Transform[K, V] {
	return MergeKeys([]K{k1}, k2, fn)
}

// Chain composes transforms left to right.
func Chain[K comparable, V any](ts ...Transform[K, V]) Transform[K, V] {
	return func(d map[K]V) map[K]V {
		out := maps.Clone(d)
		for _, t := range ts {
			out = t(out)
		}
		return out
	}
}

func assoc[K comparable, V any](d map[K]V, key K, value V) map[K]V {
	out := make(map[K]V, len(d)+1)
	maps.Copy(out, d)
	out[key] = value
	return out
}
