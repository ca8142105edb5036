// SPDX-License-Identifier: MIT

package attr

import (
	"fmt"
	"math"
)

// Index selects positions of a ValueList. Implementations: At, Slice,
// Ellipsis, Mask and Indices.
type Index interface {
	positions(n int) ([]int, error)
}

// At selects a single position.
type At int

func (a At) positions(n int) ([]int, error) {
	if int(a) < 0 || int(a) >= n {
		return nil, fmt.Errorf("position %d of %d: %w", int(a), n, ErrIndexOutOfRange)
	}
	return []int{int(a)}, nil
}

// End is a Slice.Stop meaning "through the last position".
const End = math.MaxInt

// Slice selects Start, Start+Step, ... below Stop. Bounds are clamped to the
// list; a zero Step means 1.
type Slice struct {
	Start, Stop, Step int
}

// Span returns the Slice [start, stop) with step 1.
func Span(start, stop int) Slice { return Slice{Start: start, Stop: stop, Step: 1} }

func (s Slice) bounds(n int) (start, stop, step int, err error) {
	step = s.Step
	if step == 0 {
		step = 1
	}
	if step < 0 {
		return 0, 0, 0, ErrBadSlice
	}
	start = min(max(s.Start, 0), n)
	stop = min(max(s.Stop, start), n)
	return start, stop, step, nil
}

func (s Slice) positions(n int) ([]int, error) {
	start, stop, step, err := s.bounds(n)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, (stop-start+step-1)/step)
	for i := start; i < stop; i += step {
		out = append(out, i)
	}
	return out, nil
}

type ellipsis struct{}

func (ellipsis) positions(n int) ([]int, error) {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out, nil
}

// Ellipsis selects the whole list.
var Ellipsis Index = ellipsis{}

// Mask selects the positions whose entry is true. Its length must equal the
// list length.
type Mask []bool

func (m Mask) positions(n int) ([]int, error) {
	if len(m) != n {
		return nil, fmt.Errorf("mask of length %d for list of length %d: %w", len(m), n, ErrLengthMismatch)
	}
	out := make([]int, 0, n)
	for i, keep := range m {
		if keep {
			out = append(out, i)
		}
	}
	return out, nil
}

// Indices selects the listed positions, in order, repetitions allowed.
type Indices []int

func (ix Indices) positions(n int) ([]int, error) {
	out := make([]int, len(ix))
	for j, i := range ix {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("position %d of %d: %w", i, n, ErrIndexOutOfRange)
		}
		out[j] = i
	}
	return out, nil
}

// IndexArray is an n-dimensional integer index array in row-major order.
type IndexArray struct {
	Shape []int
	Data  []int
}

// ValueArray is the result of indexing with an IndexArray: raw values with
// the same shape as the index array.
type ValueArray struct {
	Shape  []int
	Values []any
}

func (a IndexArray) size() (int, error) {
	n := 1
	for _, d := range a.Shape {
		if d < 0 {
			return 0, ErrBadShape
		}
		n *= d
	}
	if n != len(a.Data) {
		return 0, fmt.Errorf("shape %v holds %d entries, data has %d: %w", a.Shape, n, len(a.Data), ErrBadShape)
	}
	return n, nil
}
