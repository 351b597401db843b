package util

import (
	"slices"

	"github.com/lowlandresearch/larc/maybe"
)

// Map transforms a slice using the given function.
func Map[T any, U any](slice []T, transform func(T) U) []U {
	result := make([]U, len(slice))
	for i, item := range slice {
		result[i] = transform(item)
	}
	return result
}

// MapWith is the curried form of Map.
func MapWith[T any, U any](transform func(T) U) func([]T) []U {
	return func(slice []T) []U { return Map(slice, transform) }
}

// Filter returns a new slice containing only elements that satisfy the predicate.
func Filter[T any](slice []T, predicate func(T) bool) []T {
	result := make([]T, 0)
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// FilterWith is the curried form of Filter.
func FilterWith[T any](predicate func(T) bool) func([]T) []T {
	return func(slice []T) []T { return Filter(slice, predicate) }
}

// Reject returns the elements that do not satisfy the predicate.
func Reject[T any](slice []T, predicate func(T) bool) []T {
	return Filter(slice, func(v T) bool { return !predicate(v) })
}

// FindWith returns a stage yielding the first element satisfying the
// predicate. It is the curried form of maybe.Find.
func FindWith[T any](predicate func(T) bool) func([]T) maybe.Option[T] {
	return func(slice []T) maybe.Option[T] { return maybe.Find(slice, predicate) }
}

// Unique returns a slice with duplicate values removed, keeping first
// occurrences in order.
func Unique[T comparable](slice []T) []T {
	seen := make(map[T]struct{}, len(slice))
	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			result = append(result, item)
		}
	}
	return result
}

// Union concatenates every inner slice into a single set.
func Union[T comparable](nested [][]T) map[T]struct{} {
	set := make(map[T]struct{})
	for _, inner := range nested {
		for _, v := range inner {
			set[v] = struct{}{}
		}
	}
	return set
}

// GroupBy groups elements by key, preserving the input order inside each
// group.
func GroupBy[T any, K comparable](slice []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range slice {
		k := key(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// Flatten concatenates the inner slices in order.
func Flatten[T any](nested [][]T) []T {
	return slices.Concat(nested...)
}

// Keys returns the keys of a map.
func Keys[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// Values returns the values of a map.
func Values[K comparable, V any](m map[K]V) []V {
	vals := make([]V, 0, len(m))
	for _, v := range m {
		vals = append(vals, v)
	}
	return vals
}

// Contains checks if a slice contains a value.
func Contains[T comparable](slice []T, val T) bool {
	return slices.Contains(slice, val)
}

// ContainsWith returns a predicate reporting whether its argument contains val.
func ContainsWith[T comparable](val T) func([]T) bool {
	return func(slice []T) bool { return Contains(slice, val) }
}

// Coalesce returns the first non-zero value, or the zero value if all are zero.
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
