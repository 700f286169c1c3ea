// Package errors provides structured error types for bioplot.
//
// This package defines error codes and types that enable:
//   - A single failure envelope for every error category
//   - Machine-readable error codes next to the free-text message
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: configuration, parameter or data validation failures
//   - UNSUPPORTED_*: values outside the closed sets the tool understands
//   - *_FAILED: rendering and export failures
//   - INTERNAL_*: unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnsupportedPlotType, "Unsupported plot type: %s", tag)
//	if errors.Is(err, errors.ErrCodeUnsupportedPlotType) {
//	    // Handle unknown kind
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidConfig, origErr, "read config %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeUsage             Code = "INVALID_USAGE"
	ErrCodeInvalidConfig     Code = "INVALID_CONFIG"
	ErrCodeInvalidParameters Code = "INVALID_PARAMETERS"
	ErrCodeInvalidData       Code = "INVALID_DATA"
	ErrCodeInvalidPath       Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Closed-set errors
	ErrCodeUnsupportedFormat   Code = "UNSUPPORTED_FORMAT"
	ErrCodeUnsupportedPlotType Code = "UNSUPPORTED_PLOT_TYPE"

	// Output errors
	ErrCodeRender Code = "RENDER_FAILED"
	ErrCodeExport Code = "EXPORT_FAILED"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// RootCode returns the code of the innermost *Error in the chain.
// Wrapping layers add context ("Failed to generate ...") but the
// innermost code names what actually went wrong.
func RootCode(err error) Code {
	var code Code
	for err != nil {
		if e, ok := err.(*Error); ok {
			code = e.Code
		}
		err = errors.Unwrap(err)
	}
	return code
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Chain returns the full message chain of err without code prefixes,
// joining each layer with ": ".
//
//	Failed to generate heatmap: read data.csv: open data.csv: permission denied
func Chain(err error) string {
	if err == nil {
		return ""
	}
	e, ok := err.(*Error)
	if !ok {
		return err.Error()
	}
	if e.Cause == nil {
		return e.Message
	}
	if e.Message == "" {
		return Chain(e.Cause)
	}
	return e.Message + ": " + Chain(e.Cause)
}
