// SPDX-License-Identifier: MIT

// Package status translates between native igraph error codes and Go errors.
//
// It owns three things:
//
//   - Code: the Go mirror of igraph_error_t, with human-readable names.
//   - The error taxonomy: sentinel kinds (ErrIllegalArgument, ErrConversion,
//     ErrType, ErrRuntime, ErrOutOfMemory, ErrUnimplemented, ErrInterrupted,
//     ErrNative) and the *Error type that carries the native file and line.
//   - State: the process-wide last-error record written by the native error
//     handler during a call and consumed once the call returns a nonzero code.
//
// Host validation errors (illegal arguments, conversions) are returned before
// any native call is made and never touch State. Errors raised by Go code
// running inside a native callback are kept as the State's cause so the
// caller sees the original error class through errors.Is / errors.As.
//
// The package is pure Go; the cgo side lives in package native.
package status
