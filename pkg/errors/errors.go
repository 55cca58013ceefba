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

	// Manifest and transformation errors
	ErrDirectiveSyntax ErrorCode = "DIRECTIVE_SYNTAX"
	ErrSubstitution    ErrorCode = "SUBSTITUTION"
	ErrPathEscape      ErrorCode = "PATH_ESCAPE"
	ErrInvalidRewrite  ErrorCode = "INVALID_REWRITE"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileRead   ErrorCode = "FILE_READ"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// TreeError represents a structured error with code and details
type TreeError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TreeError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TreeError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TreeError) Is(target error) bool {
	var targetErr *TreeError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TreeError with the given code and message
func New(code ErrorCode, message string) *TreeError {
	return &TreeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TreeError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TreeError {
	return &TreeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TreeError
func Wrap(err error, code ErrorCode, message string) *TreeError {
	if err == nil {
		return nil
	}
	return &TreeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TreeError {
	if err == nil {
		return nil
	}
	return &TreeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TreeError) WithDetail(key string, value interface{}) *TreeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *TreeError) WithDetails(details map[string]interface{}) *TreeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// AddDetail sets key on the TreeError inside err unless a deeper layer
// already set it. Other errors are returned unchanged.
func AddDetail(err error, key string, value interface{}) error {
	var treeErr *TreeError
	if errors.As(err, &treeErr) {
		if _, ok := treeErr.Details[key]; !ok {
			treeErr.WithDetail(key, value)
		}
	}
	return err
}

// AtSpec attaches the install spec index to err. Errors that are not
// TreeErrors are wrapped as internal errors first. An index already set by
// a deeper layer is kept.
func AtSpec(err error, index int) error {
	if err == nil {
		return nil
	}
	var treeErr *TreeError
	if !errors.As(err, &treeErr) {
		return Wrap(err, ErrInternal, "install spec failed").WithDetail("spec", index)
	}
	return AddDetail(err, "spec", index)
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var treeErr *TreeError
	if errors.As(err, &treeErr) {
		return treeErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TreeError
func GetErrorCode(err error) ErrorCode {
	var treeErr *TreeError
	if errors.As(err, &treeErr) {
		return treeErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a TreeError
func GetErrorDetails(err error) map[string]interface{} {
	var treeErr *TreeError
	if errors.As(err, &treeErr) {
		return treeErr.Details
	}
	return nil
}
