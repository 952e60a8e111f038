package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Resolution errors
	ErrNotFound           ErrorCode = "NOT_FOUND"
	ErrToolMissing        ErrorCode = "TOOL_MISSING"
	ErrNoMatches          ErrorCode = "NO_MATCHES"
	ErrCancelled          ErrorCode = "CANCELLED"
	ErrInvalidDestination ErrorCode = "INVALID_DESTINATION"
	ErrChangeDirFailed    ErrorCode = "CHDIR_FAILED"

	// Subprocess errors
	ErrToolFailed ErrorCode = "TOOL_FAILED"
)

// SmartcdError represents a structured error with code and details
type SmartcdError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SmartcdError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SmartcdError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a SmartcdError carrying the same code.
func (e *SmartcdError) Is(target error) bool {
	var targetErr *SmartcdError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SmartcdError with the given code and message
func New(code ErrorCode, message string) *SmartcdError {
	return &SmartcdError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SmartcdError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SmartcdError {
	return &SmartcdError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SmartcdError
func Wrap(err error, code ErrorCode, message string) *SmartcdError {
	if err == nil {
		return nil
	}
	return &SmartcdError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SmartcdError {
	if err == nil {
		return nil
	}
	return &SmartcdError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SmartcdError) WithDetail(key string, value interface{}) *SmartcdError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var scErr *SmartcdError
	if errors.As(err, &scErr) {
		return scErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SmartcdError
func GetErrorCode(err error) ErrorCode {
	var scErr *SmartcdError
	if errors.As(err, &scErr) {
		return scErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SmartcdError
func GetErrorDetails(err error) map[string]interface{} {
	var scErr *SmartcdError
	if errors.As(err, &scErr) {
		return scErr.Details
	}
	return nil
}

// UserMessage returns the message meant for the one-line warning shown to
// the user: the outermost SmartcdError message without its code prefix.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var scErr *SmartcdError
	if errors.As(err, &scErr) {
		if scErr.Wrapped != nil && !IsErrorCode(scErr.Wrapped, scErr.Code) {
			return fmt.Sprintf("%s: %v", scErr.Message, scErr.Wrapped)
		}
		return scErr.Message
	}
	return err.Error()
}
