// SPDX-License-Identifier: MIT

package attr

import (
	"fmt"

	"github.com/katalvlaran/igraphgo/status"
)

// Sentinel errors. Each wraps the status kind it is reported as, so callers
// can match either the precise condition or the broad class.
var (
	// ErrFixedLength rejects an operation that would change the length of a
	// fixed-length list.
	ErrFixedLength = fmt.Errorf("attr: length of a fixed-length list cannot change: %w", status.ErrIllegalArgument)

	// ErrFixedDelete rejects a non-empty deletion from a fixed-length list.
	ErrFixedDelete = fmt.Errorf("attr: cannot delete from a fixed-length list: %w", status.ErrRuntime)

	// ErrIndexOutOfRange indicates a position outside the list.
	ErrIndexOutOfRange = fmt.Errorf("attr: index out of range: %w", status.ErrIllegalArgument)

	// ErrLengthMismatch indicates an iterable right-hand side (or a mask) whose
	// length does not match the selection.
	ErrLengthMismatch = fmt.Errorf("attr: length mismatch: %w", status.ErrIllegalArgument)

	// ErrBadSlice indicates a slice with a negative step.
	ErrBadSlice = fmt.Errorf("attr: slice step must be positive: %w", status.ErrIllegalArgument)

	// ErrBadShape indicates an index array whose shape does not match its data.
	ErrBadShape = fmt.Errorf("attr: index array shape does not match its data: %w", status.ErrIllegalArgument)

	// ErrNoSuchAttribute indicates a lookup of an attribute name that is not defined.
	ErrNoSuchAttribute = fmt.Errorf("attr: no such attribute: %w", status.ErrIllegalArgument)

	// ErrWrongType indicates an attribute read as a type it does not have, or a
	// combination applied to values it cannot combine.
	ErrWrongType = fmt.Errorf("attr: wrong attribute type: %w", status.ErrType)

	// ErrNoFunction indicates a Function combination without a function.
	ErrNoFunction = fmt.Errorf("attr: combination function is nil: %w", status.ErrIllegalArgument)

	// ErrUnknownPolicy indicates a combination policy name that is not recognised.
	ErrUnknownPolicy = fmt.Errorf("attr: unknown combination policy: %w", status.ErrIllegalArgument)

	// ErrNoRandomSource indicates a RANDOM combination without a random source.
	ErrNoRandomSource = fmt.Errorf("attr: random combination needs a random source: %w", status.ErrUnimplemented)
)
