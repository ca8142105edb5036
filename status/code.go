// SPDX-License-Identifier: MIT

package status

import (
	"context"
	"errors"
	"strconv"
)

// Code mirrors igraph_error_t. The numeric values follow igraph 0.10.
type Code int

// Native error codes.
const (
	Success         Code = 0
	Failure         Code = 1
	OutOfMemory     Code = 2
	ParseError      Code = 3
	InvalidValue    Code = 4
	Exists          Code = 5
	InvalidVertexID Code = 7
	InvalidEdgeID   Code = 8
	InvalidMode     Code = 9
	FileError       Code = 10
	Unimplemented   Code = 12
	Interrupted     Code = 13
	Diverged        Code = 14
	NegativeLoop    Code = 37
	Internal        Code = 38
	DivideByZero    Code = 42
	Overflow        Code = 55
	Underflow       Code = 56
	RandomWalkStuck Code = 57
	Stop            Code = 58
	Range           Code = 59
	NoSolution      Code = 60
)

type codeInfo struct {
	symbol string
	text   string
}

var codeTable = map[Code]codeInfo{
	Success:         {"IGRAPH_SUCCESS", "No error"},
	Failure:         {"IGRAPH_FAILURE", "Failed"},
	OutOfMemory:     {"IGRAPH_ENOMEM", "Out of memory"},
	ParseError:      {"IGRAPH_PARSEERROR", "Parse error"},
	InvalidValue:    {"IGRAPH_EINVAL", "Invalid value"},
	Exists:          {"IGRAPH_EXISTS", "Already exists"},
	InvalidVertexID: {"IGRAPH_EINVVID", "Invalid vertex ID"},
	InvalidEdgeID:   {"IGRAPH_EINVEID", "Invalid edge ID"},
	InvalidMode:     {"IGRAPH_EINVMODE", "Invalid mode"},
	FileError:       {"IGRAPH_EFILE", "File operation error"},
	Unimplemented:   {"IGRAPH_UNIMPLEMENTED", "Not implemented"},
	Interrupted:     {"IGRAPH_INTERRUPTED", "Interrupted"},
	Diverged:        {"IGRAPH_DIVERGED", "Numeric procedure did not converge"},
	NegativeLoop:    {"IGRAPH_ENEGLOOP", "Negative loop detected while calculating shortest paths"},
	Internal:        {"IGRAPH_EINTERNAL", "Internal error, likely a bug in igraph"},
	DivideByZero:    {"IGRAPH_EDIVZERO", "Division by zero"},
	Overflow:        {"IGRAPH_EOVERFLOW", "Integer or double overflow"},
	Underflow:       {"IGRAPH_EUNDERFLOW", "Arithmetic underflow"},
	RandomWalkStuck: {"IGRAPH_ERWSTUCK", "Random walk got stuck"},
	Stop:            {"IGRAPH_STOP", "Search stopped"},
	Range:           {"IGRAPH_ERANGE", "Result out of range"},
	NoSolution:      {"IGRAPH_ENOSOL", "Input problem has no solution"},
}

// String returns the human-readable name of the code, as used in messages.
func (c Code) String() string {
	if info, ok := codeTable[c]; ok {
		return info.text
	}
	return "Unknown error (" + strconv.Itoa(int(c)) + ")"
}

// Symbol returns the C enumerator name, e.g. "IGRAPH_EINVAL".
func (c Code) Symbol() string {
	if info, ok := codeTable[c]; ok {
		return info.symbol
	}
	return "IGRAPH_" + strconv.Itoa(int(c))
}

// Kind returns the sentinel error class a native code is reported as.
func (c Code) Kind() error {
	switch c {
	case Success:
		return nil
	case Unimplemented:
		return ErrUnimplemented
	case OutOfMemory:
		return ErrOutOfMemory
	case Interrupted:
		return ErrInterrupted
	default:
		return ErrNative
	}
}

// CodeOf maps a Go error to the native code a callback should return for it.
// A nil error maps to Success.
func CodeOf(err error) Code {
	if err == nil {
		return Success
	}
	var ne *Error
	if errors.As(err, &ne) && ne.Code != Success {
		return ne.Code
	}
	switch {
	case errors.Is(err, ErrUnimplemented):
		return Unimplemented
	case errors.Is(err, ErrOutOfMemory):
		return OutOfMemory
	case errors.Is(err, ErrInterrupted), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return Interrupted
	case errors.Is(err, ErrIllegalArgument), errors.Is(err, ErrType), errors.Is(err, ErrConversion):
		return InvalidValue
	default:
		return Failure
	}
}
