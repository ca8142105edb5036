// SPDX-License-Identifier: MIT

package native

/*
#include "bridge.h"
*/
import "C"

import (
	"unsafe"

	"github.com/katalvlaran/igraphgo/convert"
)

// locked runs fn under exclusive and returns its result.
func locked[R any](fn func() (R, error)) (R, error) {
	var r R
	err := exclusive(func() (err error) {
		r, err = fn()
		return err
	})
	return r, err
}

// Vector owns an igraph_vector_t of reals.
type Vector struct {
	*Boxed[C.igraph_vector_t]
}

func destroyVector(p *C.igraph_vector_t) { C.igraph_vector_destroy(p) }

// newVector returns a zero-filled vector of length n. Caller holds the lock.
func newVector(n int) (*Vector, error) {
	b, err := newBoxed(func(p *C.igraph_vector_t) C.igraph_error_t {
		return C.igraph_vector_init(p, cint(int64(n)))
	}, destroyVector)
	if err != nil {
		return nil, err
	}
	return &Vector{b}, nil
}

// vectorFrom copies xs into a new vector. Caller holds the lock.
func vectorFrom(xs []float64) (*Vector, error) {
	v, err := newVector(len(xs))
	if err != nil {
		return nil, err
	}
	copy(v.data(), xs)
	return v, nil
}

// NewVector returns a zero-filled vector of length n.
func NewVector(n int) (*Vector, error) {
	return locked(func() (*Vector, error) { return newVector(n) })
}

// VectorFrom copies xs into a new vector.
func VectorFrom(xs []float64) (*Vector, error) {
	return locked(func() (*Vector, error) { return vectorFrom(xs) })
}

// ToVector coerces a host sequence to reals and copies it into a new vector.
func ToVector(values any) (*Vector, error) {
	xs, err := convert.Reals(values)
	if err != nil {
		return nil, err
	}
	return VectorFrom(xs)
}

// Len returns the number of elements.
func (v *Vector) Len() int { return int(C.igraph_vector_size(v.ptr)) }

func (v *Vector) data() []float64 {
	n := v.Len()
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(v.ptr.stor_begin)), n)
}

// Slice copies the elements out.
func (v *Vector) Slice() []float64 {
	return append(make([]float64, 0, v.Len()), v.data()...)
}

// VectorInt owns an igraph_vector_int_t.
type VectorInt struct {
	*Boxed[C.igraph_vector_int_t]
}

func destroyVectorInt(p *C.igraph_vector_int_t) { C.igraph_vector_int_destroy(p) }

// newVectorInt returns a zero-filled vector of length n. Caller holds the lock.
func newVectorInt(n int) (*VectorInt, error) {
	b, err := newBoxed(func(p *C.igraph_vector_int_t) C.igraph_error_t {
		return C.igraph_vector_int_init(p, cint(int64(n)))
	}, destroyVectorInt)
	if err != nil {
		return nil, err
	}
	return &VectorInt{b}, nil
}

// vectorIntFrom copies xs into a new vector. Caller holds the lock.
func vectorIntFrom(xs []int64) (*VectorInt, error) {
	v, err := newVectorInt(len(xs))
	if err != nil {
		return nil, err
	}
	dst := v.data()
	for i, x := range xs {
		dst[i] = C.igraph_integer_t(x)
	}
	return v, nil
}

// NewVectorInt returns a zero-filled vector of length n.
func NewVectorInt(n int) (*VectorInt, error) {
	return locked(func() (*VectorInt, error) { return newVectorInt(n) })
}

// VectorIntFrom copies xs into a new vector.
func VectorIntFrom(xs []int64) (*VectorInt, error) {
	return locked(func() (*VectorInt, error) { return vectorIntFrom(xs) })
}

// ToVectorInt coerces a host sequence to integers and copies it into a new
// vector.
func ToVectorInt(values any) (*VectorInt, error) {
	xs, err := convert.Ints(values)
	if err != nil {
		return nil, err
	}
	return VectorIntFrom(xs)
}

// Len returns the number of elements.
func (v *VectorInt) Len() int { return int(C.igraph_vector_int_size(v.ptr)) }

func (v *VectorInt) data() []C.igraph_integer_t {
	n := v.Len()
	if n == 0 {
		return nil
	}
	return unsafe.Slice(v.ptr.stor_begin, n)
}

// Slice copies the elements out.
func (v *VectorInt) Slice() []int64 {
	src := v.data()
	out := make([]int64, len(src))
	for i, x := range src {
		out[i] = int64(x)
	}
	return out
}

// VectorBool owns an igraph_vector_bool_t.
type VectorBool struct {
	*Boxed[C.igraph_vector_bool_t]
}

func destroyVectorBool(p *C.igraph_vector_bool_t) { C.igraph_vector_bool_destroy(p) }

// newVectorBool returns an all-false vector of length n. Caller holds the lock.
func newVectorBool(n int) (*VectorBool, error) {
	b, err := newBoxed(func(p *C.igraph_vector_bool_t) C.igraph_error_t {
		return C.igraph_vector_bool_init(p, cint(int64(n)))
	}, destroyVectorBool)
	if err != nil {
		return nil, err
	}
	return &VectorBool{b}, nil
}

// vectorBoolFrom copies xs into a new vector. Caller holds the lock.
func vectorBoolFrom(xs []bool) (*VectorBool, error) {
	v, err := newVectorBool(len(xs))
	if err != nil {
		return nil, err
	}
	dst := v.data()
	for i, x := range xs {
		dst[i] = cbool(x)
	}
	return v, nil
}

// VectorBoolFrom copies xs into a new vector.
func VectorBoolFrom(xs []bool) (*VectorBool, error) {
	return locked(func() (*VectorBool, error) { return vectorBoolFrom(xs) })
}

// Len returns the number of elements.
func (v *VectorBool) Len() int { return int(C.igraph_vector_bool_size(v.ptr)) }

func (v *VectorBool) data() []C.igraph_bool_t {
	n := v.Len()
	if n == 0 {
		return nil
	}
	return unsafe.Slice(v.ptr.stor_begin, n)
}

// Slice copies the elements out.
func (v *VectorBool) Slice() []bool {
	src := v.data()
	out := make([]bool, len(src))
	for i, x := range src {
		out[i] = bool(x)
	}
	return out
}

// StrVector owns an igraph_strvector_t.
type StrVector struct {
	*Boxed[C.igraph_strvector_t]
}

func destroyStrVector(p *C.igraph_strvector_t) { C.igraph_strvector_destroy(p) }

// newStrVector returns a vector of n empty strings. Caller holds the lock.
func newStrVector(n int) (*StrVector, error) {
	b, err := newBoxed(func(p *C.igraph_strvector_t) C.igraph_error_t {
		return C.igraph_strvector_init(p, cint(int64(n)))
	}, destroyStrVector)
	if err != nil {
		return nil, err
	}
	return &StrVector{b}, nil
}

// strVectorFrom copies xs into a new vector. Caller holds the lock.
func strVectorFrom(xs []string) (*StrVector, error) {
	v, err := newStrVector(len(xs))
	if err != nil {
		return nil, err
	}
	for i, s := range xs {
		if err := setString(v.ptr, i, s); err != nil {
			v.Close()
			return nil, err
		}
	}
	return v, nil
}

// setString stores s, made valid UTF-8, at position i. Caller holds the lock.
func setString(sv *C.igraph_strvector_t, i int, s string) error {
	cs := C.CString(string(convert.Bytes(s)))
	defer C.free(unsafe.Pointer(cs))
	return check(C.igraph_strvector_set(sv, cint(int64(i)), cs))
}

// StrVectorFrom copies xs into a new vector.
func StrVectorFrom(xs []string) (*StrVector, error) {
	return locked(func() (*StrVector, error) { return strVectorFrom(xs) })
}

// Len returns the number of elements.
func (v *StrVector) Len() int { return int(C.igraph_strvector_size(v.ptr)) }

// Slice copies the elements out.
func (v *StrVector) Slice() []string {
	return goStrings(v.ptr)
}

func goStrings(sv *C.igraph_strvector_t) []string {
	out := make([]string, int(C.igraph_strvector_size(sv)))
	for i := range out {
		out[i] = C.GoString(C.igraph_strvector_get(sv, cint(int64(i))))
	}
	return out
}
