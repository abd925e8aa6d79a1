// Package errors provides structured error types for kitreport.
//
// Error codes let the CLI tell apart the fatal conditions of a report run:
//   - INVALID_*: bad command-line input or configuration
//   - LAYOUT_OVERFLOW: a kit table can not fit on an empty page
//   - ASSET: a logo or signature file exists but can not be decoded
//   - RENDER: the page backend failed or a drawing surface was misused
//   - IO: the finished document could not be written
//
// Parse problems inside the kit data are not errors at all; they degrade to
// sentinel values in the inventory model.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "invalid date: %s", s)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "write %s", path)
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
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Generation errors
	ErrCodeLayoutOverflow Code = "LAYOUT_OVERFLOW"
	ErrCodeAsset          Code = "ASSET"
	ErrCodeRender         Code = "RENDER"
	ErrCodeIO             Code = "IO"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a coded failure. Err, when set, is the lower-level cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	s := string(e.Code) + ": " + e.Message
	if e.Err == nil {
		return s
	}
	return s + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// New returns a coded error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return Wrap(code, nil, format, args...)
}

// Wrap returns a coded error with a formatted message around err.
func Wrap(code Code, err error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Err: err}
}

// Is reports whether any coded layer in err's chain carries code. A RENDER
// error caused by a LAYOUT_OVERFLOW matches both.
func Is(err error, code Code) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		if e, ok := err.(*Error); ok && e.Code == code {
			return true
		}
	}
	return false
}

// outermost returns the first coded layer of err, or nil.
func outermost(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// GetCode returns the code of the outermost coded layer, or "".
func GetCode(err error) Code {
	if e := outermost(err); e != nil {
		return e.Code
	}
	return ""
}

// UserMessage is the message of the outermost coded layer without its code.
// Uncoded errors are returned as-is.
func UserMessage(err error) string {
	if e := outermost(err); e != nil {
		return e.Message
	}
	return err.Error()
}

// Trace walks the wrap chain of err and returns one line per layer,
// outermost first. Coded layers are rendered as "CODE: message" without
// repeating their cause, so each cause appears exactly once.
func Trace(err error) []string {
	var lines []string
	for err != nil {
		if e, ok := err.(*Error); ok {
			lines = append(lines, fmt.Sprintf("%s: %s", e.Code, e.Message))
		} else {
			lines = append(lines, err.Error())
		}
		err = errors.Unwrap(err)
	}
	return lines
}
