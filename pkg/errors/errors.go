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
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrCanceled     ErrorCode = "CANCELED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Registry errors
	ErrNoMatch ErrorCode = "NO_MATCH"

	// Pipeline errors, one per stage
	ErrResolve   ErrorCode = "RESOLVE"
	ErrTransform ErrorCode = "TRANSFORM"
	ErrCompact   ErrorCode = "COMPACT"
	ErrPersist   ErrorCode = "PERSIST"
)

// BundlrError represents a structured error with code and details
type BundlrError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error renders "[CODE] message: cause"
func (e *BundlrError) Error() string {
	if e.Wrapped == nil {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
}

// Unwrap returns the cause
func (e *BundlrError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a BundlrError carrying the same code
func (e *BundlrError) Is(target error) bool {
	var targetErr *BundlrError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

func newError(code ErrorCode, message string, wrapped error) *BundlrError {
	return &BundlrError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: wrapped,
	}
}

// New creates a BundlrError
func New(code ErrorCode, message string) *BundlrError {
	return newError(code, message, nil)
}

// Newf creates a BundlrError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BundlrError {
	return newError(code, fmt.Sprintf(format, args...), nil)
}

// Wrap attaches a code and message to err. A nil err stays nil.
func Wrap(err error, code ErrorCode, message string) *BundlrError {
	if err == nil {
		return nil
	}
	return newError(code, message, err)
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BundlrError {
	if err == nil {
		return nil
	}
	return newError(code, fmt.Sprintf(format, args...), err)
}

// WithDetail sets one detail and returns e
func (e *BundlrError) WithDetail(key string, value interface{}) *BundlrError {
	return e.WithDetails(map[string]interface{}{key: value})
}

// WithDetails merges details into e and returns it
func (e *BundlrError) WithDetails(details map[string]interface{}) *BundlrError {
	if e.Details == nil {
		e.Details = make(map[string]interface{}, len(details))
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode reports whether err or any BundlrError it wraps carries code
func IsErrorCode(err error, code ErrorCode) bool {
	var be *BundlrError
	for errors.As(err, &be) {
		if be.Code == code {
			return true
		}
		err = be.Wrapped
	}
	return false
}

// GetErrorCode returns the outermost code, or ErrUnknown for foreign errors
func GetErrorCode(err error) ErrorCode {
	var be *BundlrError
	if errors.As(err, &be) {
		return be.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the outermost details, or nil for foreign errors
func GetErrorDetails(err error) map[string]interface{} {
	var be *BundlrError
	if errors.As(err, &be) {
		return be.Details
	}
	return nil
}
