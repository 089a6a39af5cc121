// Package errors provides structured error types for nocap.
//
// Every failure that can end an invocation carries a [Code], so the CLI can
// report it consistently and tests can match on the kind of failure rather
// than on message text.
//
// # Error Codes
//
//   - MANIFEST_*: reading, checking or writing pyproject.toml
//   - SUBPROCESS_*: launching or waiting on the poetry executable
//   - INVALID_*: bad user input or configuration
//
// # Usage
//
//	err := errors.Wrap(errors.ErrCodeManifestUnreadable, cause, "could not read %s", path)
//	if errors.Is(err, errors.ErrCodeManifestUnreadable) {
//	    // no subprocess was started
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Manifest errors
	ErrCodeManifestUnreadable  Code = "MANIFEST_UNREADABLE"
	ErrCodeManifestNotPoetry   Code = "MANIFEST_NOT_POETRY"
	ErrCodeManifestWriteFailed Code = "MANIFEST_WRITE_FAILED"

	// Subprocess errors
	ErrCodeSubprocessLaunch Code = "SUBPROCESS_LAUNCH_FAILED"
	ErrCodeSubprocessFailed Code = "SUBPROCESS_FAILED"

	// Input errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
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
// It unwraps the error chain looking for an *Error or *ExitError with a
// matching code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error carries no code.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var x *ExitError
	if errors.As(err, &x) {
		return x.Code()
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message (and cause) without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// ExitError reports a subprocess that ran but did not exit cleanly.
type ExitError struct {
	Command  string // Command line as run, e.g. "poetry lock --no-update"
	ExitCode int    // -1 when the process was killed by a signal
	Cause    error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.ExitCode < 0 {
		return fmt.Sprintf("%s: %q terminated abnormally: %v", ErrCodeSubprocessFailed, e.Command, e.Cause)
	}
	return fmt.Sprintf("%s: %q exited with status %d", ErrCodeSubprocessFailed, e.Command, e.ExitCode)
}

// Unwrap returns the underlying *exec.ExitError or context error.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// Code returns the error code for this error type.
func (e *ExitError) Code() Code {
	return ErrCodeSubprocessFailed
}
