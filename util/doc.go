// Package util provides generic collection helpers for larc pipelines.
//
// Most helpers come in two forms: a plain function taking the collection
// last, and a curried "With" form that returns a func([]T) ... so it can be
// used directly as a pipeline stage through maybe.Then.
package util
