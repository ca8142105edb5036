// SPDX-License-Identifier: MIT

// Dense storage (row-major) and the column-major bridge.
//
// Purpose:
//   - Give host code a cache-friendly row-major matrix with the index formula i*cols + j.
//   - Convert to and from the column-major layout (offset j*rows + i) the native
//     library uses for igraph_matrix_t, without the caller thinking about it.
//   - Keep the public surface panic-free: At/Set return errors.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); ColMajor/FromColMajor: O(r*c).

package convert

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/igraphgo/status"
)

// Sentinel errors of the Dense surface.
var (
	// ErrOutOfRange indicates that a row or column index is outside the matrix.
	ErrOutOfRange = fmt.Errorf("convert: index out of range: %w", status.ErrIllegalArgument)

	// ErrBadShape indicates negative dimensions or a data length that does not
	// match rows*cols.
	ErrBadShape = fmt.Errorf("convert: invalid shape: %w", status.ErrIllegalArgument)

	// ErrNonRectangular indicates input rows of differing lengths.
	ErrNonRectangular = errors.New("convert: all rows must have the same length")
)

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64.
//   - r,c hold dimensions; zero is legal in either so empty native matrices round-trip.
//   - data is a flat buffer of length r*c (offset = i*c + j).
type Dense struct {
	r, c int
	data []float64
}

// NewDense creates an r×c zero matrix.
//
// Errors:
//   - ErrBadShape on negative dimensions.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows builds a Dense from a slice of equally long rows (copying).
//
// Implementation:
//   - Stage 1: validate that every row has len(rows[0]) entries.
//   - Stage 2: copy row by row into the flat buffer.
//
// Errors:
//   - ErrNonRectangular when row lengths differ.
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return &Dense{}, nil
	}
	c := len(rows[0])
	m := &Dense{r: len(rows), c: c, data: make([]float64, len(rows)*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), c, ErrNonRectangular)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}
	return m, nil
}

// FromColMajor builds a Dense from a column-major buffer (copying), which is
// how native matrices are laid out.
//
// Errors:
//   - ErrBadShape when len(data) != rows*cols or a dimension is negative.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromColMajor(rows, cols int, data []float64) (*Dense, error) {
	if rows < 0 || cols < 0 || len(data) != rows*cols {
		return nil, ErrBadShape
	}
	m := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			m.data[i*cols+j] = data[j*rows+i]
		}
	}
	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols().
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}
	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v
	return nil
}

// ColMajor returns a fresh column-major copy of the matrix.
//
// Determinism:
//   - Fixed loop order (columns outer, rows inner), matching the output layout.
func (m *Dense) ColMajor() []float64 {
	out := make([]float64, len(m.data))
	for j := 0; j < m.c; j++ {
		for i := 0; i < m.r; i++ {
			out[j*m.r+i] = m.data[i*m.c+j]
		}
	}
	return out
}

// RowsData returns the matrix as a fresh [][]float64.
func (m *Dense) RowsData() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = append([]float64(nil), m.data[i*m.c:(i+1)*m.c]...)
	}
	return out
}

// Equal reports whether both matrices have the same shape and entries.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i, v := range m.data {
		if v != o.data[i] {
			return false
		}
	}
	return true
}

// String renders the matrix row by row.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
		}
		b.WriteString("]\n")
	}
	return b.String()
}
