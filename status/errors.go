// SPDX-License-Identifier: MIT

package status

import "errors"

// Error kinds. Every error returned by this module matches exactly one of
// these through errors.Is.
var (
	// ErrIllegalArgument is a host-side validation failure, e.g. a negative
	// vertex index or a length-changing assignment on a fixed-length list.
	ErrIllegalArgument = errors.New("igraph: illegal argument")

	// ErrConversion indicates a host value that cannot be represented in the
	// requested native type.
	ErrConversion = errors.New("igraph: conversion failed")

	// ErrType indicates a value of the wrong kind, e.g. a selector string other
	// than "all" or CONCAT applied to a numeric attribute.
	ErrType = errors.New("igraph: wrong type")

	// ErrRuntime is a failure with no better classification, e.g. a nonzero
	// native return without an error record, or deletion from a fixed-length list.
	ErrRuntime = errors.New("igraph: runtime error")

	// ErrOutOfMemory is reported by the native allocator.
	ErrOutOfMemory = errors.New("igraph: out of memory")

	// ErrUnimplemented is reported when the native library lacks a feature.
	ErrUnimplemented = errors.New("igraph: not implemented")

	// ErrInterrupted is returned when a native call acknowledged a cancellation.
	ErrInterrupted = errors.New("igraph: interrupted")

	// ErrNative is any other nonzero native return.
	ErrNative = errors.New("igraph: native error")
)
