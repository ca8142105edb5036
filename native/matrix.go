// SPDX-License-Identifier: MIT

package native

/*
#include "bridge.h"
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/katalvlaran/igraphgo/convert"
	"github.com/katalvlaran/igraphgo/status"
)

// Matrix owns a column-major igraph_matrix_t of reals.
type Matrix struct {
	*Boxed[C.igraph_matrix_t]
}

func destroyMatrix(p *C.igraph_matrix_t) { C.igraph_matrix_destroy(p) }

// matrixFrom copies d into a new native matrix, transposing the row-major
// host layout into column-major storage. Caller holds the lock.
func matrixFrom(d *convert.Dense) (*Matrix, error) {
	rows, cols := d.Shape()
	b, err := newBoxed(func(p *C.igraph_matrix_t) C.igraph_error_t {
		return C.igraph_matrix_init(p, cint(int64(rows)), cint(int64(cols)))
	}, destroyMatrix)
	if err != nil {
		return nil, err
	}
	m := &Matrix{b}
	copy(m.data(), d.ColMajor())
	return m, nil
}

// MatrixFrom copies d into a new native matrix.
func MatrixFrom(d *convert.Dense) (*Matrix, error) {
	return locked(func() (*Matrix, error) { return matrixFrom(d) })
}

// Shape returns the number of rows and columns.
func (m *Matrix) Shape() (rows, cols int) {
	return int(m.ptr.nrow), int(m.ptr.ncol)
}

func (m *Matrix) data() []float64 {
	rows, cols := m.Shape()
	if rows*cols == 0 {
		return nil
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(m.ptr.data.stor_begin)), rows*cols)
}

// Dense copies the matrix out into a row-major host matrix.
func (m *Matrix) Dense() (*convert.Dense, error) {
	rows, cols := m.Shape()
	return convert.FromColMajor(rows, cols, append([]float64(nil), m.data()...))
}

// MatrixInt owns a column-major igraph_matrix_int_t.
type MatrixInt struct {
	*Boxed[C.igraph_matrix_int_t]
}

func destroyMatrixInt(p *C.igraph_matrix_int_t) { C.igraph_matrix_int_destroy(p) }

// matrixIntFrom copies rows (all of equal length) into a new native matrix.
// Caller holds the lock.
func matrixIntFrom(rows [][]int64) (*MatrixInt, error) {
	nrow, ncol := len(rows), 0
	if nrow > 0 {
		ncol = len(rows[0])
	}
	for i, r := range rows {
		if len(r) != ncol {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", status.ErrIllegalArgument, i, len(r), ncol)
		}
	}
	b, err := newBoxed(func(p *C.igraph_matrix_int_t) C.igraph_error_t {
		return C.igraph_matrix_int_init(p, cint(int64(nrow)), cint(int64(ncol)))
	}, destroyMatrixInt)
	if err != nil {
		return nil, err
	}
	m := &MatrixInt{b}
	dst := m.data()
	for i, r := range rows {
		for j, x := range r {
			dst[j*nrow+i] = C.igraph_integer_t(x)
		}
	}
	return m, nil
}

// MatrixIntFrom copies rows into a new native matrix.
func MatrixIntFrom(rows [][]int64) (*MatrixInt, error) {
	return locked(func() (*MatrixInt, error) { return matrixIntFrom(rows) })
}

// Shape returns the number of rows and columns.
func (m *MatrixInt) Shape() (rows, cols int) {
	return int(m.ptr.nrow), int(m.ptr.ncol)
}

func (m *MatrixInt) data() []C.igraph_integer_t {
	rows, cols := m.Shape()
	if rows*cols == 0 {
		return nil
	}
	return unsafe.Slice(m.ptr.data.stor_begin, rows*cols)
}

// Rows copies the matrix out row by row.
func (m *MatrixInt) Rows() [][]int64 {
	nrow, ncol := m.Shape()
	src := m.data()
	out := make([][]int64, nrow)
	for i := range out {
		out[i] = make([]int64, ncol)
		for j := range out[i] {
			out[i][j] = int64(src[j*nrow+i])
		}
	}
	return out
}

// VectorIntList owns an igraph_vector_int_list_t.
type VectorIntList struct {
	*Boxed[C.igraph_vector_int_list_t]
}

func destroyVectorIntList(p *C.igraph_vector_int_list_t) { C.igraph_vector_int_list_destroy(p) }

// newVectorIntList returns a list of n empty vectors. Caller holds the lock.
func newVectorIntList(n int) (*VectorIntList, error) {
	b, err := newBoxed(func(p *C.igraph_vector_int_list_t) C.igraph_error_t {
		return C.igraph_vector_int_list_init(p, cint(int64(n)))
	}, destroyVectorIntList)
	if err != nil {
		return nil, err
	}
	return &VectorIntList{b}, nil
}

// vectorIntListFrom copies xs into a new list. Caller holds the lock.
func vectorIntListFrom(xs [][]int64) (*VectorIntList, error) {
	l, err := newVectorIntList(len(xs))
	if err != nil {
		return nil, err
	}
	for i, x := range xs {
		v := C.igraph_vector_int_list_get_ptr(l.ptr, cint(int64(i)))
		if err := check(C.igraph_vector_int_resize(v, cint(int64(len(x))))); err != nil {
			l.Close()
			return nil, err
		}
		if len(x) > 0 {
			dst := unsafe.Slice(v.stor_begin, len(x))
			for j, e := range x {
				dst[j] = C.igraph_integer_t(e)
			}
		}
	}
	return l, nil
}

// VectorIntListFrom copies xs into a new list.
func VectorIntListFrom(xs [][]int64) (*VectorIntList, error) {
	return locked(func() (*VectorIntList, error) { return vectorIntListFrom(xs) })
}

// Len returns the number of vectors.
func (l *VectorIntList) Len() int { return int(C.igraph_vector_int_list_size(l.ptr)) }

// Slices copies the list out.
func (l *VectorIntList) Slices() [][]int64 {
	lists := intLists(l.ptr)
	out := make([][]int64, len(lists))
	for i, xs := range lists {
		out[i] = make([]int64, len(xs))
		for j, x := range xs {
			out[i][j] = int64(x)
		}
	}
	return out
}

func intLists(p *C.igraph_vector_int_list_t) [][]int {
	n := int(C.igraph_vector_int_list_size(p))
	out := make([][]int, n)
	for i := range out {
		v := C.igraph_vector_int_list_get_ptr(p, cint(int64(i)))
		out[i] = ints(v)
	}
	return out
}

// ints copies a native int vector into Go ints.
func ints(v *C.igraph_vector_int_t) []int {
	n := int(C.igraph_vector_int_size(v))
	out := make([]int, n)
	if n == 0 {
		return out
	}
	for i, x := range unsafe.Slice(v.stor_begin, n) {
		out[i] = int(x)
	}
	return out
}
