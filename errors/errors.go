package errors

import (
	"fmt"
)

// AppError is the unified error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// --- Common Error Constructors ---

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("invalid input: %s", reason),
		Details: details,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidInput, Message: message}
}

// InvalidFormat creates a new AppError for a value that could not be parsed.
func InvalidFormat(value, expectedFormat string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidFormat, Message: fmt.Sprintf("cannot parse %q as %s", value, expectedFormat),
		Details: map[string]any{"value": value, "expected_format": expectedFormat},
	}
}

// TypeMismatch creates a new AppError for a value of an unexpected type.
func TypeMismatch(expected string, got any) *AppError {
	return &AppError{
		Code: ErrCodeTypeMismatch, Message: fmt.Sprintf("expected %s, got %T", expected, got),
		Details: map[string]any{"expected": expected, "got": fmt.Sprintf("%T", got)},
	}
}

// TooLarge creates a new AppError for an expansion above limit.
func TooLarge(what string, size, limit int) *AppError {
	return &AppError{
		Code: ErrCodeTooLarge, Message: fmt.Sprintf("%s has %d entries, limit is %d", what, size, limit),
		Details: map[string]any{"size": size, "limit": limit},
	}
}

// NotFound creates a new AppError for a missing resource.
func NotFound(resource, id string) *AppError {
	details := map[string]any{"resource": resource}
	if id != "" {
		details["id"] = id
	}
	return &AppError{
		Code: ErrCodeNotFound, Message: fmt.Sprintf("%s not found", resource),
		Details: details,
	}
}

// StageFailed creates a new AppError for a pipeline stage that returned an error.
func StageFailed(stage string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeStageFailed, Message: fmt.Sprintf("stage %s failed", stage),
		Details: map[string]any{"stage": stage}, Cause: cause,
	}
}

// StagePanic creates a new AppError for a pipeline stage that panicked.
// The stack excerpt is stored under the "stack" detail.
func StagePanic(recovered any, stack string) *AppError {
	return &AppError{
		Code: ErrCodeStagePanic, Message: fmt.Sprintf("stage panicked: %v", recovered),
		Details: map[string]any{"stack": stack},
	}
}

// IO creates a new AppError for a failed read or write.
func IO(op, path string, cause error) *AppError {
	details := map[string]any{"op": op}
	if path != "" {
		details["path"] = path
	}
	return &AppError{
		Code: ErrCodeIO, Message: fmt.Sprintf("%s failed", op),
		Details: details, Cause: cause,
	}
}

// Internal creates a new AppError for an unexpected internal error.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "an unexpected error occurred",
		Cause: cause,
	}
}
