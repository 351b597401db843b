package maybe

import (
	"reflect"
)

type absent struct{}

// Absent is the sentinel for "no meaningful result". Its type has no
// fields, so every copy is identical and compares equal with ==.
var Absent = absent{}

// optional is implemented by Option[T] so IsAbsent can see a None.
type optional interface {
	isNone() bool
}

// IsAbsent reports whether v is Absent or a native "no value" marker: a nil
// interface, a typed nil pointer, map, func or channel, or a None Option.
// Empty slices and zero values are present.
func IsAbsent(v any) bool {
	switch v.(type) {
	case nil, absent:
		return true
	}
	// Nil checks come first: a nil *Option[T] satisfies optional too.
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		if rv.IsNil() {
			return true
		}
	}
	if o, ok := v.(optional); ok {
		return o.isNone()
	}
	return false
}

// Maybe returns Absent if v is absent and v unchanged otherwise.
func Maybe(v any) any {
	if IsAbsent(v) {
		return Absent
	}
	return v
}

// MaybeOr returns def when v is absent, or Absent if def is absent too.
func MaybeOr(v, def any) any {
	if !IsAbsent(v) {
		return v
	}
	return Maybe(def)
}

// Get returns Absent.
func (absent) Get(any) any { return Absent }

// Index returns Absent.
func (absent) Index(int) any { return Absent }

// Call returns Absent.
func (absent) Call(...any) any { return Absent }

// Add returns Absent.
func (absent) Add(any) any { return Absent }

// Sub returns Absent.
func (absent) Sub(any) any { return Absent }

// Mul returns Absent.
func (absent) Mul(any) any { return Absent }

// Div returns Absent.
func (absent) Div(any) any { return Absent }

// Len is always zero.
func (absent) Len() int { return 0 }

// Contains is always false.
func (absent) Contains(any) bool { return false }

// Bool is always false.
func (absent) Bool() bool { return false }

// Equal is always false, even against Absent.
func (absent) Equal(any) bool { return false }

func (absent) Less(any) bool         { return false }
func (absent) Greater(any) bool      { return false }
func (absent) LessEqual(any) bool    { return false }
func (absent) GreaterEqual(any) bool { return false }

func (absent) String() string { return "Absent" }

// MarshalJSON encodes Absent as null.
func (absent) MarshalJSON() ([]byte, error) { return []byte("null"), nil }
