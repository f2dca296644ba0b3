// Package errors defines the coded error type shared by the renaming pipeline.
//
// Only CodeDirectory is fatal to a run. The other codes describe per-file
// failures that are logged and counted but never abort processing.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode classifies a pipeline failure.
type ErrorCode string

const (
	// Fatal
	CodeDirectory ErrorCode = "DIRECTORY_ERROR"

	// Per-file
	CodeExtractionFailed   ErrorCode = "EXTRACTION_FAILED"
	CodeCollisionExhausted ErrorCode = "COLLISION_EXHAUSTED"
	CodeRenameFailed       ErrorCode = "RENAME_FAILED"
)

// Error is a structured pipeline error.
type Error struct {
	Code    ErrorCode
	Message string
	Path    string
	Cause   error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Path != "" {
		msg += " (" + e.Path + ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// HasCode reports whether err, or any error it wraps, is an *Error with code.
func HasCode(err error, code ErrorCode) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// Factory functions

func NewDirectoryError(path string, cause error) *Error {
	msg := "target is not a readable directory"
	if cause == nil {
		msg = "target is not a directory"
	}
	return &Error{
		Code:    CodeDirectory,
		Message: msg,
		Path:    path,
		Cause:   cause,
	}
}

func NewExtractionError(path string, cause error) *Error {
	return &Error{
		Code:    CodeExtractionFailed,
		Message: "could not extract text from image",
		Path:    path,
		Cause:   cause,
	}
}

func NewCollisionExhaustedError(name string, attempts int) *Error {
	return &Error{
		Code:    CodeCollisionExhausted,
		Message: fmt.Sprintf("no free name after %d attempts", attempts),
		Path:    name,
	}
}

func NewRenameError(path string, cause error) *Error {
	return &Error{
		Code:    CodeRenameFailed,
		Message: "rename failed",
		Path:    path,
		Cause:   cause,
	}
}
