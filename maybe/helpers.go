package maybe

import (
	"cmp"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Int converts numbers and numeric strings to int. Floats truncate toward
// zero; strings must hold a base-10 integer.
func Int(v any) Option[int] {
	if IsAbsent(v) {
		return None[int]()
	}
	if s, ok := v.(string); ok {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		return FromOk(n, err == nil)
	}
	if i, ok := toInt64(v); ok {
		return Some(int(i))
	}
	if f, ok := toFloat(v); ok && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return Some(int(f))
	}
	return None[int]()
}

// Float converts numbers and numeric strings to float64.
func Float(v any) Option[float64] {
	if IsAbsent(v) {
		return None[float64]()
	}
	if s, ok := v.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return FromOk(f, err == nil)
	}
	f, ok := toFloat(v)
	return FromOk(f, ok)
}

// Max returns the largest element, or None for an empty slice.
func Max[T cmp.Ordered](xs []T) Option[T] {
	if len(xs) == 0 {
		return None[T]()
	}
	m := xs[0]
	for _, x := range xs[1:] {
		m = max(m, x)
	}
	return Some(m)
}

// Min returns the smallest element, or None for an empty slice.
func Min[T cmp.Ordered](xs []T) Option[T] {
	if len(xs) == 0 {
		return None[T]()
	}
	m := xs[0]
	for _, x := range xs[1:] {
		m = min(m, x)
	}
	return Some(m)
}

// MaxBy returns the first element with the largest key.
func MaxBy[T any, K cmp.Ordered](xs []T, key func(T) K) Option[T] {
	return bestBy(xs, key, func(a, b K) bool { return a > b })
}

// MinBy returns the first element with the smallest key.
func MinBy[T any, K cmp.Ordered](xs []T, key func(T) K) Option[T] {
	return bestBy(xs, key, func(a, b K) bool { return a < b })
}

func bestBy[T any, K cmp.Ordered](xs []T, key func(T) K, better func(a, b K) bool) Option[T] {
	if len(xs) == 0 {
		return None[T]()
	}
	best, bestKey := xs[0], key(xs[0])
	for _, x := range xs[1:] {
		if k := key(x); better(k, bestKey) {
			best, bestKey = x, k
		}
	}
	return Some(best)
}

// First returns xs[0].
func First[T any](xs []T) Option[T] { return nth(xs, 0) }

// Second returns xs[1].
func Second[T any](xs []T) Option[T] { return nth(xs, 1) }

// Last returns the final element.
func Last[T any](xs []T) Option[T] { return nth(xs, len(xs)-1) }

func nth[T any](xs []T, i int) Option[T] {
	if i < 0 || i >= len(xs) {
		return None[T]()
	}
	return Some(xs[i])
}

// Find returns the first element satisfying pred.
func Find[T any](xs []T, pred func(T) bool) Option[T] {
	for _, x := range xs {
		if pred(x) {
			return Some(x)
		}
	}
	return None[T]()
}

// Index returns the position of the first element satisfying pred.
func Index[T any](xs []T, pred func(T) bool) Option[int] {
	for i, x := range xs {
		if pred(x) {
			return Some(i)
		}
	}
	return None[int]()
}

// FirstTrue returns the first non-zero element.
func FirstTrue[T comparable](xs []T) Option[T] {
	var zero T
	return Find(xs, func(x T) bool { return x != zero })
}

// Juxt returns a function that calls each f on its argument in order. The
// first falsy result and every slot after it are Absent, and the functions
// after it are not called.
func Juxt(fs ...func(any) any) func(any) []any {
	return func(v any) []any {
		out := make([]any, len(fs))
		stopped := false
		for i, f := range fs {
			if !stopped {
				out[i] = f(v)
				stopped = !Truthy(out[i])
			}
			if stopped {
				out[i] = Absent
			}
		}
		return out
	}
}

// Truthy reports whether v counts as true: absent values, false, zero
// numbers and empty strings, slices, arrays and maps are falsy.
func Truthy(v any) bool {
	if IsAbsent(v) {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	}
	return true
}
