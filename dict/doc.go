// Package dict provides map transformation helpers.
//
// Every helper returns a new map and leaves its input untouched. The
// curried helpers return a func(map[K]V) map[K]V so a chain of them can run
// as pipeline stages:
//
//	stage := maybe.Then(dict.SetKey("b", 2))
//	maybe.Pipe(map[string]int{"a": 1}, stage, maybe.Then(dict.DropKey[string, int]("a")))
//
// Search evaluates JMESPath expressions against decoded JSON-like data.
package dict
