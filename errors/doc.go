// Package errors provides the structured error type used across larc.
// Errors carry a machine-readable code, a human-readable message, optional
// details and an underlying cause. Functions outside the maybe pipeline
// return them directly; inside a pipeline they are converted to absence.
package errors
