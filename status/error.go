// SPDX-License-Identifier: MIT

package status

import "fmt"

// Record is the last error reported by the native error handler.
type Record struct {
	Message string
	File    string
	Line    int
	Code    Code
}

// Error is a failure reported by the native library.
//
// Its message has the form "Error at {file}:{line}: {message} -- {code-name}".
// errors.Is matches the kind sentinel of Code (see Code.Kind) and, when the
// failure started in a Go callback, the original cause as well.
type Error struct {
	Code    Code
	File    string
	Line    int
	Message string
	Cause   error
}

// NewError builds an *Error from a record and an optional callback cause.
func NewError(rec Record, cause error) *Error {
	return &Error{
		Code:    rec.Code,
		File:    rec.File,
		Line:    rec.Line,
		Message: rec.Message,
		Cause:   cause,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("Error at %s:%d: %s -- %s", e.File, e.Line, e.Message, e.Code)
}

// Unwrap exposes the kind sentinel and the callback cause.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if k := e.Code.Kind(); k != nil {
		errs = append(errs, k)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}
