package maybe

import (
	"fmt"
)

// Option is a typed optional value: either Some(v) or None.
// The zero Option is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns the empty Option for T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr is None for a nil pointer and Some(*p) otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromOk adapts the comma-ok idiom.
func FromOk[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// FromAny is Some when v is present and holds a T.
func FromAny[T any](v any) Option[T] {
	if o, ok := v.(Option[T]); ok {
		return o
	}
	if IsAbsent(v) {
		return None[T]()
	}
	t, ok := v.(T)
	return FromOk(t, ok)
}

func (o Option[T]) IsSome() bool { return o.ok }
func (o Option[T]) IsNone() bool { return !o.ok }

func (o Option[T]) isNone() bool { return !o.ok }

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

// OrElse returns the value, or def for None.
func (o Option[T]) OrElse(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

// OrZero returns the value, or the zero T for None.
func (o Option[T]) OrZero() T { return o.value }

// Any returns the value as an interface, or Absent for None.
func (o Option[T]) Any() any {
	if !o.ok {
		return Absent
	}
	return o.value
}

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Map applies f to a present value.
func Map[A, B any](o Option[A], f func(A) B) Option[B] {
	if !o.ok {
		return None[B]()
	}
	return Some(f(o.value))
}

// FlatMap applies an Option-returning f to a present value.
func FlatMap[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if !o.ok {
		return None[B]()
	}
	return f(o.value)
}

// Filter keeps a present value only if pred holds for it.
func Filter[T any](o Option[T], pred func(T) bool) Option[T] {
	if !o.ok || !pred(o.value) {
		return None[T]()
	}
	return o
}
