// Package timeutil parses timestamps leniently and compares file times.
//
// Parsing goes through github.com/araddon/dateparse, which recognises most
// common layouts without a format string.
package timeutil
