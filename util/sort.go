package util

import (
	"cmp"
	"slices"
)

// Sorted returns a sorted copy of slice.
func Sorted[T cmp.Ordered](slice []T) []T {
	out := slices.Clone(slice)
	slices.Sort(out)
	return out
}

// SortBy returns a copy of slice stably sorted by key.
func SortBy[T any, K cmp.Ordered](slice []T, key func(T) K) []T {
	out := slices.Clone(slice)
	slices.SortStableFunc(out, func(a, b T) int { return cmp.Compare(key(a), key(b)) })
	return out
}

// SortByWith is the curried form of SortBy.
func SortByWith[T any, K cmp.Ordered](key func(T) K) func([]T) []T {
	return func(slice []T) []T { return SortBy(slice, key) }
}
