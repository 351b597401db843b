package maybe

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/lowlandresearch/larc/errors"
)

// Kind tags the outcome of a stage or a whole pipeline run.
type Kind uint8

const (
	// Continued means a present value flows on.
	Continued Kind = iota
	// Empty means the stage produced absence.
	Empty
	// Failed means the stage returned an error or panicked.
	Failed
)

func (k Kind) String() string {
	switch k {
	case Continued:
		return "continued"
	case Empty:
		return "empty"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Result is what a Stage hands back to the pipeline runner.
// The zero Result is Continued with a nil value, which the runner treats
// as Empty.
type Result struct {
	kind  Kind
	value any
	err   error
	stack string
}

// Continue passes v to the next stage. An absent v yields Stop().
func Continue(v any) Result {
	if IsAbsent(v) {
		return Stop()
	}
	return Result{kind: Continued, value: v}
}

// Stop ends the pipeline without an error.
func Stop() Result {
	return Result{kind: Empty}
}

// Fail ends the pipeline with err.
func Fail(err error) Result {
	if err == nil {
		err = errors.New(errors.ErrCodeStageFailed, "stage failed without an error")
	}
	return Result{kind: Failed, err: err}
}

func (r Result) Kind() Kind { return r.kind }
func (r Result) Value() any { return r.value }
func (r Result) Err() error { return r.err }

func (r Result) String() string {
	switch r.kind {
	case Continued:
		return fmt.Sprintf("continued(%v)", r.value)
	case Failed:
		return fmt.Sprintf("failed(%v)", r.err)
	default:
		return r.kind.String()
	}
}

// Stage is one step of a pipeline.
type Stage func(any) Result

// Func lifts an untyped function into a Stage.
func Func(f func(any) any) Stage {
	return func(v any) Result {
		return protect(func() Result { return Continue(f(v)) })
	}
}

// Funcs lifts several untyped functions at once.
func Funcs(fs ...func(any) any) []Stage {
	stages := make([]Stage, len(fs))
	for i, f := range fs {
		stages[i] = Func(f)
	}
	return stages
}

// failAt is Fail with a stack excerpt of the stage's call site.
func failAt(err error) Result {
	res := Fail(err)
	res.stack = stackExcerpt(StackDepth())
	return res
}

// Try lifts a function that may return an error.
func Try(f func(any) (any, error)) Stage {
	return func(v any) Result {
		return protect(func() Result {
			out, err := f(v)
			if err != nil {
				return failAt(err)
			}
			return Continue(out)
		})
	}
}

// Then lifts a typed function. The stage fails with TYPE_MISMATCH when the
// incoming value is not an A.
func Then[A, B any](f func(A) B) Stage {
	return func(v any) Result {
		return protect(func() Result {
			a, ok := v.(A)
			if !ok {
				return Fail(errors.TypeMismatch(typeName[A](), v))
			}
			return Continue(f(a))
		})
	}
}

// TryThen lifts a typed function that may return an error.
func TryThen[A, B any](f func(A) (B, error)) Stage {
	return func(v any) Result {
		return protect(func() Result {
			a, ok := v.(A)
			if !ok {
				return Fail(errors.TypeMismatch(typeName[A](), v))
			}
			b, err := f(a)
			if err != nil {
				return failAt(err)
			}
			return Continue(b)
		})
	}
}

// ThenOpt lifts a typed function returning an Option. Some values are
// unwrapped before they reach the next stage.
func ThenOpt[A, B any](f func(A) Option[B]) Stage {
	return func(v any) Result {
		return protect(func() Result {
			a, ok := v.(A)
			if !ok {
				return Fail(errors.TypeMismatch(typeName[A](), v))
			}
			return Continue(f(a).Any())
		})
	}
}

// ShortCircuit stops the pipeline when pred(v) is false and passes v on
// unchanged otherwise. A nil pred uses Truthy.
func ShortCircuit(pred func(any) bool) Stage {
	if pred == nil {
		pred = Truthy
	}
	return func(v any) Result {
		return protect(func() Result {
			if !pred(v) {
				return Stop()
			}
			return Continue(v)
		})
	}
}

// CallIf applies f when pred(v) holds and stops the pipeline otherwise.
func CallIf(pred func(any) bool, f func(any) any) Stage {
	return func(v any) Result {
		return protect(func() Result {
			if !pred(v) {
				return Stop()
			}
			return Continue(f(v))
		})
	}
}

// protect turns a panic in fn into a STAGE_PANIC failure.
func protect(fn func() Result) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			stack := stackExcerpt(StackDepth())
			res = Fail(errors.StagePanic(r, stack))
			res.stack = stack
		}
	}()
	return fn()
}

// plumbing names the frames of this package that run stages on behalf of
// the caller.
var plumbing = []string{"maybe.protect", "maybe.failAt", "/maybe.Try", "/maybe.(*Pipeline)", "/maybe.Pipe"}

func isPlumbing(fn string) bool {
	if strings.HasPrefix(fn, "runtime.") {
		return true
	}
	for _, p := range plumbing {
		if strings.Contains(fn, p) {
			return true
		}
	}
	return false
}

// stackExcerpt formats up to depth frames of the current goroutine,
// skipping runtime internals and this package's stage plumbing.
func stackExcerpt(depth int) string {
	pcs := make([]uintptr, depth+32)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	var b strings.Builder
	for kept := 0; kept < depth; {
		f, more := frames.Next()
		if !isPlumbing(f.Function) {
			if kept > 0 {
				b.WriteByte('\n')
			}
			fmt.Fprintf(&b, "%s\n\t%s:%d", f.Function, f.File, f.Line)
			kept++
		}
		if !more {
			break
		}
	}
	return b.String()
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
