package maybe

import (
	"math"
	"reflect"
	"strings"
	"time"
)

// Add returns a+b, or Absent if either operand is absent or the pair is not
// numeric. Strings concatenate. Two integers of the same type keep that
// type, mixed integer types yield int64, and a result that overflows is
// Absent. Anything involving a float yields float64.
func Add(a, b any) any {
	if sa, ok := a.(string); ok {
		if sb, ok := b.(string); ok {
			return sa + sb
		}
		return Absent
	}
	return arith(a, b, addInt, func(x, y float64) float64 { return x + y })
}

// Sub returns a-b with the same rules as Add.
func Sub(a, b any) any {
	return arith(a, b, subInt, func(x, y float64) float64 { return x - y })
}

// Mul returns a*b with the same rules as Add.
func Mul(a, b any) any {
	return arith(a, b, mulInt, func(x, y float64) float64 { return x * y })
}

// Div returns a/b as a float64, or Absent when b is zero.
func Div(a, b any) any {
	x, okA := toFloat(a)
	y, okB := toFloat(b)
	if !okA || !okB || y == 0 {
		return Absent
	}
	return x / y
}

func arith(a, b any, ints func(x, y int64) (int64, bool), floats func(x, y float64) float64) any {
	if IsAbsent(a) || IsAbsent(b) {
		return Absent
	}
	if isInteger(a) && isInteger(b) {
		x, okA := toInt64(a)
		y, okB := toInt64(b)
		if !okA || !okB {
			return Absent
		}
		r, ok := ints(x, y)
		if !ok {
			return Absent
		}
		ta := reflect.TypeOf(a)
		if ta != reflect.TypeOf(b) {
			return r
		}
		out := reflect.ValueOf(r).Convert(ta)
		if back, _ := toInt64(out.Interface()); back != r {
			return Absent
		}
		return out.Interface()
	}
	x, okA := toFloat(a)
	y, okB := toFloat(b)
	if !okA || !okB {
		return Absent
	}
	return floats(x, y)
}

func addInt(x, y int64) (int64, bool) {
	r := x + y
	return r, (y >= 0) == (r >= x)
}

func subInt(x, y int64) (int64, bool) {
	r := x - y
	return r, (y >= 0) == (r <= x)
}

func mulInt(x, y int64) (int64, bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	r := x * y
	if r/y != x || (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
		return 0, false
	}
	return r, true
}

// Equal is false when either side is absent. Numbers compare by value,
// everything else with reflect.DeepEqual.
func Equal(a, b any) bool {
	if IsAbsent(a) || IsAbsent(b) {
		return false
	}
	if c, ok := compare(a, b); ok {
		return c == 0
	}
	return reflect.DeepEqual(a, b)
}

// Less is false when either side is absent or the values do not order.
func Less(a, b any) bool {
	c, ok := compare(a, b)
	return ok && c < 0
}

// Greater is false when either side is absent or the values do not order.
func Greater(a, b any) bool {
	c, ok := compare(a, b)
	return ok && c > 0
}

// LessEqual is false when either side is absent or the values do not order.
func LessEqual(a, b any) bool {
	c, ok := compare(a, b)
	return ok && c <= 0
}

// GreaterEqual is false when either side is absent or the values do not
// order.
func GreaterEqual(a, b any) bool {
	c, ok := compare(a, b)
	return ok && c >= 0
}

// compare orders numbers, strings and times.
func compare(a, b any) (int, bool) {
	if IsAbsent(a) || IsAbsent(b) {
		return 0, false
	}
	if isInteger(a) && isInteger(b) {
		x, okA := toInt64(a)
		y, okB := toInt64(b)
		if okA && okB {
			return cmpOrdered(x, y), true
		}
	}
	if x, ok := toFloat(a); ok {
		if y, ok := toFloat(b); ok {
			return cmpOrdered(x, y), true
		}
		return 0, false
	}
	if x, ok := a.(string); ok {
		if y, ok := b.(string); ok {
			return strings.Compare(x, y), true
		}
		return 0, false
	}
	if x, ok := a.(time.Time); ok {
		if y, ok := b.(time.Time); ok {
			return x.Compare(y), true
		}
	}
	return 0, false
}

func cmpOrdered[T int64 | float64](x, y T) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

func isInteger(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func toInt64(v any) (int64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	}
	if i, ok := toInt64(v); ok {
		return float64(i), true
	}
	return 0, false
}
