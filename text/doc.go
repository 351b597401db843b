// Package text provides line-oriented helpers: comment stripping, set-style
// line diffs, grep filters and ordered regex rewrites.
//
// A comment starts at the first '#' on a line and runs to its end.
package text
