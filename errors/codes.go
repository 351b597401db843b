package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Input errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInvalidFormat indicates a value could not be parsed in the expected format.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	// ErrCodeTypeMismatch indicates a value had an unexpected dynamic type.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"
	// ErrCodeTooLarge indicates an expansion would exceed the configured limit.
	ErrCodeTooLarge ErrorCode = "TOO_LARGE"
)

// Lookup errors
const (
	// ErrCodeNotFound indicates the requested key, file or value was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Pipeline errors
const (
	// ErrCodeStageFailed indicates a pipeline stage returned an error.
	ErrCodeStageFailed ErrorCode = "STAGE_FAILED"
	// ErrCodeStagePanic indicates a pipeline stage panicked.
	ErrCodeStagePanic ErrorCode = "STAGE_PANIC"
)

// Internal errors
const (
	// ErrCodeIO indicates a read or write on a file or stream failed.
	ErrCodeIO ErrorCode = "IO_ERROR"
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var pipelineCodes = map[ErrorCode]bool{
	ErrCodeStageFailed: true,
	ErrCodeStagePanic:  true,
}

// IsPipelineCode returns true if the code is raised by a pipeline stage.
func IsPipelineCode(code ErrorCode) bool {
	return pipelineCodes[code]
}
