// SPDX-License-Identifier: MIT

package attr

import (
	"fmt"

	"github.com/katalvlaran/igraphgo/convert"
)

// Get returns a new variable-length list holding the selected values, even
// when l itself is fixed-length.
func (l *ValueList) Get(ix Index) (*ValueList, error) {
	pos, err := ix.positions(l.length)
	if err != nil {
		return nil, err
	}
	return l.take(pos), nil
}

// Select returns the selected values as a raw slice.
func (l *ValueList) Select(ix Index) ([]any, error) {
	pos, err := ix.positions(l.length)
	if err != nil {
		return nil, err
	}
	out := make([]any, len(pos))
	for j, i := range pos {
		out[j] = l.at(i)
	}
	return out, nil
}

// Take indexes the list with an n-d integer array and returns the raw values
// in an array of identical shape.
func (l *ValueList) Take(a IndexArray) (ValueArray, error) {
	n, err := a.size()
	if err != nil {
		return ValueArray{}, err
	}
	out := ValueArray{Shape: append([]int(nil), a.Shape...), Values: make([]any, n)}
	for j, i := range a.Data {
		if i < 0 || i >= l.length {
			return ValueArray{}, fmt.Errorf("position %d of %d: %w", i, l.length, ErrIndexOutOfRange)
		}
		out.Values[j] = l.at(i)
	}
	return out, nil
}

// Set assigns rhs to the selected positions.
//
// An atomic rhs (anything but a slice, an array or a *ValueList) is
// broadcast. An iterable rhs is assigned elementwise and its length must match
// the selection, except for a contiguous Slice (or Ellipsis) on a
// variable-length list, where the selected run is replaced and the list may
// shrink or grow. At stores rhs as one value; a *ValueList rhs must then
// hold exactly one.
//
// Errors:
//   - ErrFixedLength when the assignment would change a fixed list's length.
//   - ErrLengthMismatch for other length mismatches.
func (l *ValueList) Set(ix Index, rhs any) error {
	pos, err := ix.positions(l.length)
	if err != nil {
		return err
	}
	if a, ok := ix.(At); ok {
		if vl, ok := rhs.(*ValueList); ok {
			if vl.Len() != 1 {
				return fmt.Errorf("%d values for 1 position: %w", vl.Len(), ErrLengthMismatch)
			}
			rhs = vl.at(0)
		}
		l.store(int(a), rhs)
		return nil
	}
	values, iterable := iterate(rhs)
	if !iterable {
		for _, i := range pos {
			l.store(i, rhs)
		}
		return nil
	}
	if len(values) == len(pos) {
		for j, i := range pos {
			l.store(i, values[j])
		}
		return nil
	}
	start, stop, contiguous := l.run(ix)
	if !contiguous {
		return fmt.Errorf("%d values for %d positions: %w", len(values), len(pos), ErrLengthMismatch)
	}
	if l.fixed {
		return fmt.Errorf("%d values for %d positions: %w", len(values), len(pos), ErrFixedLength)
	}
	l.splice(start, stop, values)
	return nil
}

// run reports the [start, stop) run selected by a step-1 Slice or Ellipsis.
func (l *ValueList) run(ix Index) (start, stop int, ok bool) {
	switch s := ix.(type) {
	case ellipsis:
		return 0, l.length, true
	case Slice:
		start, stop, step, err := s.bounds(l.length)
		if err != nil || step != 1 {
			return 0, 0, false
		}
		return start, stop, true
	}
	return 0, 0, false
}

// splice replaces positions [start, stop) with values.
func (l *ValueList) splice(start, stop int, values []any) {
	tail := make([]any, l.length-stop)
	for j := range tail {
		tail[j] = l.at(stop + j)
	}
	l.truncate(start)
	l.grow(len(values) + len(tail))
	for j, v := range values {
		l.store(start+j, v)
	}
	for j, v := range tail {
		l.store(start+len(values)+j, v)
	}
}

// Delete removes the selected positions.
//
// Errors:
//   - ErrFixedDelete on a fixed-length list, unless the selection is empty.
func (l *ValueList) Delete(ix Index) error {
	pos, err := ix.positions(l.length)
	if err != nil {
		return err
	}
	if len(pos) == 0 {
		return nil
	}
	if l.fixed {
		return fmt.Errorf("%d positions: %w", len(pos), ErrFixedDelete)
	}
	drop := make([]bool, l.length)
	for _, i := range pos {
		drop[i] = true
	}
	keep := make([]int, 0, l.length)
	for i, d := range drop {
		if !d {
			keep = append(keep, i)
		}
	}
	l.compact(keep)
	return nil
}

// compact moves the values at keep (ascending) to the front and shrinks the
// list to len(keep).
func (l *ValueList) compact(keep []int) {
	for j, i := range keep {
		switch l.typ {
		case Numeric:
			l.nums[j] = l.nums[i]
		case Boolean:
			l.bools[j] = l.bools[i]
		default:
			l.objs[j] = l.objs[i]
		}
	}
	l.truncate(len(keep))
}

// Append adds values at the end of a variable-length list.
func (l *ValueList) Append(values ...any) error {
	if l.fixed {
		return ErrFixedLength
	}
	n := l.length
	l.grow(len(values))
	for j, v := range values {
		l.store(n+j, v)
	}
	return nil
}

// iterate expands an iterable right-hand side.
func iterate(rhs any) ([]any, bool) {
	if vl, ok := rhs.(*ValueList); ok {
		return vl.Values(), true
	}
	return convert.Elements(rhs)
}
