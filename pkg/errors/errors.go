// Package errors provides the structured error type used across rich-ascii.
//
// Every failure that can reach the command line carries an ErrorCode so tests
// and callers can match on the kind of failure instead of the message text.
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

	// Code point resolution errors
	ErrMissingAlias ErrorCode = "MISSING_ALIAS"
	ErrUnknownName  ErrorCode = "UNKNOWN_NAME"
	ErrAliasParse   ErrorCode = "ALIAS_PARSE"
	ErrAliasRead    ErrorCode = "ALIAS_READ"

	// Styling errors
	ErrStyleInvalid  ErrorCode = "STYLE_INVALID"
	ErrThemeNotFound ErrorCode = "THEME_NOT_FOUND"
	ErrThemeParse    ErrorCode = "THEME_PARSE"

	// Help topic errors
	ErrTopicNotFound ErrorCode = "TOPIC_NOT_FOUND"
)

// Error represents a structured error with code and details
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new Error with the given code and message
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an Error
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var codeErr *Error
	if errors.As(err, &codeErr) {
		return codeErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an *Error
func GetErrorCode(err error) ErrorCode {
	var codeErr *Error
	if errors.As(err, &codeErr) {
		return codeErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an *Error
func GetErrorDetails(err error) map[string]interface{} {
	var codeErr *Error
	if errors.As(err, &codeErr) {
		return codeErr.Details
	}
	return nil
}

// MissingAlias reports a control-range byte with no entry in the alias table.
func MissingAlias(value int, key string) *Error {
	return Newf(ErrMissingAlias, "no alias entry for code point 0x%02X (key %s)", value, key).
		WithDetail("code_point", value).
		WithDetail("key", key)
}

// UnknownName reports a byte the Unicode name database has no name for.
func UnknownName(value int) *Error {
	return Newf(ErrUnknownName, "no Unicode name for code point 0x%02X", value).
		WithDetail("code_point", value)
}
