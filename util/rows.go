package util

import (
	"fmt"
	"slices"

	"github.com/lowlandresearch/larc/errors"
)

// Select picks the given positions out of every row.
func Select[T any](indices []int, rows [][]T) ([][]T, error) {
	out := make([][]T, len(rows))
	for r, row := range rows {
		picked := make([]T, len(indices))
		for j, i := range indices {
			if i < 0 || i >= len(row) {
				return nil, errors.InvalidInput("indices", fmt.Sprintf("index %d out of range for row %d of length %d", i, r, len(row)))
			}
			picked[j] = row[i]
		}
		out[r] = picked
	}
	return out, nil
}

// SelectKeys picks the values of keys out of every row. Every row must hold
// every key.
func SelectKeys[K comparable, V any](keys []K, rows []map[K]V) ([][]V, error) {
	out := make([][]V, len(rows))
	for r, row := range rows {
		picked := make([]V, len(keys))
		for j, k := range keys {
			v, ok := row[k]
			if !ok {
				return nil, errors.InvalidInput("keys", fmt.Sprintf("key %v missing from row %d", k, r))
			}
			picked[j] = v
		}
		out[r] = picked
	}
	return out, nil
}

// MapDo calls fn on every element for its side effect and returns a copy of
// slice.
func MapDo[T any](slice []T, fn func(T)) []T {
	out := slices.Clone(slice)
	for _, v := range out {
		fn(v)
	}
	return out
}

// Seti returns a copy of slice with the element at index replaced by
// fn(element). An index outside the slice leaves the copy unchanged.
func Seti[T any](index int, fn func(T) T, slice []T) []T {
	out := slices.Clone(slice)
	if index >= 0 && index < len(out) {
		out[index] = fn(out[index])
	}
	return out
}
