package util

import (
	"math/rand/v2"
	"slices"

	"github.com/lowlandresearch/larc/errors"
)

// Shuffled returns a shuffled copy of slice.
func Shuffled[T any](slice []T) []T {
	out := slices.Clone(slice)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Sample returns n elements of slice chosen at random without replacement.
func Sample[T any](n int, slice []T) ([]T, error) {
	if n < 0 || n > len(slice) {
		return nil, errors.TooLarge("sample", n, len(slice))
	}
	return Shuffled(slice)[:n], nil
}
