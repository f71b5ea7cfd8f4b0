package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeValidation        ErrorType = "validation"
	ErrorTypeDirectoryNotFound ErrorType = "directory_not_found"
	ErrorTypeMissingPair       ErrorType = "missing_pair"
	ErrorTypeDecode            ErrorType = "decode_failure"
	ErrorTypeComputation       ErrorType = "computation_failure"
	ErrorTypeInvalidNumeric    ErrorType = "invalid_numeric"
	ErrorTypeEmptyResult       ErrorType = "empty_result"
	ErrorTypeInternal          ErrorType = "internal"
)

// AppError represents a structured application error
type AppError struct {
	Type     ErrorType `json:"type"`
	Message  string    `json:"message"`
	Details  string    `json:"details,omitempty"`
	ExitCode int       `json:"exit_code"`
	Cause    error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:     ErrorTypeValidation,
		Message:  message,
		ExitCode: 2,
		Cause:    cause,
	}
}

// NewDirectoryNotFoundError is fatal for a run; no items are processed
func NewDirectoryNotFoundError(dir string, cause error) *AppError {
	return &AppError{
		Type:     ErrorTypeDirectoryNotFound,
		Message:  fmt.Sprintf("directory %q does not exist", dir),
		Details:  dir,
		ExitCode: 3,
		Cause:    cause,
	}
}

// NewMissingPairError marks an item without a processed counterpart
func NewMissingPairError(filename string, cause error) *AppError {
	return &AppError{
		Type:     ErrorTypeMissingPair,
		Message:  "no counterpart in processed folder",
		Details:  filename,
		ExitCode: 1,
		Cause:    cause,
	}
}

// NewDecodeError marks an unreadable or corrupt image
func NewDecodeError(message string, cause error) *AppError {
	return &AppError{
		Type:     ErrorTypeDecode,
		Message:  message,
		ExitCode: 1,
		Cause:    cause,
	}
}

// NewComputationError marks a failure while computing a metric
func NewComputationError(message string, cause error) *AppError {
	return &AppError{
		Type:     ErrorTypeComputation,
		Message:  message,
		ExitCode: 1,
		Cause:    cause,
	}
}

// NewInvalidNumericError marks a NaN or infinite score
func NewInvalidNumericError(metric string, value float64) *AppError {
	return &AppError{
		Type:     ErrorTypeInvalidNumeric,
		Message:  fmt.Sprintf("%s=%v", metric, value),
		Details:  metric,
		ExitCode: 1,
	}
}

// NewEmptyResultError reports a run in which nothing was scored
func NewEmptyResultError(message string) *AppError {
	return &AppError{
		Type:     ErrorTypeEmptyResult,
		Message:  message,
		ExitCode: 1,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:     ErrorTypeInternal,
		Message:  message,
		ExitCode: 1,
		Cause:    cause,
	}
}

// IsType checks if the error, or any error it wraps, is of a specific type
func IsType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}

// GetExitCode extracts the process exit code from an error
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.ExitCode
	}
	return 1
}
