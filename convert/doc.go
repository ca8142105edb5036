// SPDX-License-Identifier: MIT

// Package convert holds the host-side half of the native converters.
//
// Everything here is pure Go and independent of cgo: scalar coercions that
// decide how an arbitrary Go value becomes a native boolean, index, real or
// byte string; sequence coercions that turn any Go slice or array into a
// typed buffer ready to be copied into (or aliased by) a native vector; and
// Dense, a row-major host matrix that the native package lays out in the
// column-major order the native library expects.
//
// Coercion rules:
//
//	Bool   – truthiness: nil, false, numeric zero, "" and empty slices/maps are false.
//	Index  – non-negative integers only; negative or fractional values fail with
//	         status.ErrIllegalArgument before any native call is made.
//	Real   – numeric conversion, strings parsed as floats, NaN otherwise.
//	Bytes  – UTF-8 with invalid sequences replaced by U+FFFD.
//
// Sequence coercions fail with status.ErrConversion naming the offending
// position.
package convert
