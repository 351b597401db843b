// Package maybe implements an optional-value convention and a
// short-circuiting pipeline runner.
//
// # Absent
//
// Absent is the single value meaning "no meaningful result". It is falsy,
// has zero length, contains nothing, compares false against everything, and
// every accessor, call or arithmetic method on it yields Absent again:
//
//	v := maybe.GetIn(doc, "hosts", 0, "addr") // Absent if any step misses
//
// IsAbsent also treats nil interfaces, typed nil pointers, maps, funcs and
// channels, and a None Option as absent.
//
// # Pipelines
//
// A Stage is a func(any) Result. Pipe folds a value through stages in order
// and stops at the first stage that yields absence or fails:
//
//	out := maybe.Pipe(10,
//	    maybe.Func(func(v any) any { return maybe.Add(v, 1) }),
//	    maybe.Then(func(n int) int { return n * 2 }),
//	) // 22
//
// Panics and errors inside stages never reach the caller; they are logged
// through the "maybe" logger and the pipeline returns Absent or the default
// given to PipeOr or WithDefault. Evaluate returns a Report saying which
// stage stopped the run and why.
//
// # Options
//
// Option[T] is the typed counterpart of Absent for code that knows its
// types. Some and None build it; Map, FlatMap and Filter combine it; Any
// converts back to the dynamic form.
package maybe
