// SPDX-License-Identifier: MIT

package native

/*
#include "bridge.h"
*/
import "C"

import "unsafe"

// Views alias a Go slice instead of copying it. The slice is pinned until
// the view is closed; the view must not outlive the slice and must not be
// resized by native code. Empty slices, and element types whose layout
// differs from the native one, fall back to an owning copy.

// ViewVector returns a vector aliasing xs.
func ViewVector(xs []float64) (*Vector, error) {
	return locked(func() (*Vector, error) { return viewVector(xs) })
}

// viewVector is ViewVector for callers holding the lock.
func viewVector(xs []float64) (*Vector, error) {
	if len(xs) == 0 {
		return vectorFrom(nil)
	}
	b := uninit[C.igraph_vector_t](nil)
	b.pinner.Pin(&xs[0])
	C.igraph_vector_view(b.ptr, (*C.igraph_real_t)(unsafe.Pointer(&xs[0])), cint(int64(len(xs))))
	b.MarkInitialized()
	return &Vector{b}, nil
}

// ViewVectorInt returns a vector aliasing xs.
func ViewVectorInt(xs []int64) (*VectorInt, error) {
	return locked(func() (*VectorInt, error) { return viewVectorInt(xs) })
}

func viewVectorInt(xs []int64) (*VectorInt, error) {
	if len(xs) == 0 || unsafe.Sizeof(C.igraph_integer_t(0)) != unsafe.Sizeof(xs[0]) {
		return vectorIntFrom(xs)
	}
	b := uninit[C.igraph_vector_int_t](nil)
	b.pinner.Pin(&xs[0])
	C.igraph_vector_int_view(b.ptr, (*C.igraph_integer_t)(unsafe.Pointer(&xs[0])), cint(int64(len(xs))))
	b.MarkInitialized()
	return &VectorInt{b}, nil
}

// ViewVectorBool returns a vector aliasing xs.
func ViewVectorBool(xs []bool) (*VectorBool, error) {
	return locked(func() (*VectorBool, error) { return viewVectorBool(xs) })
}

func viewVectorBool(xs []bool) (*VectorBool, error) {
	var nb C.igraph_bool_t
	if len(xs) == 0 || unsafe.Sizeof(nb) != unsafe.Sizeof(xs[0]) {
		return vectorBoolFrom(xs)
	}
	b := uninit[C.igraph_vector_bool_t](nil)
	b.pinner.Pin(&xs[0])
	C.igraph_vector_bool_view(b.ptr, (*C.igraph_bool_t)(unsafe.Pointer(&xs[0])), cint(int64(len(xs))))
	b.MarkInitialized()
	return &VectorBool{b}, nil
}

// IsView reports whether v aliases Go memory.
func (v *Vector) IsView() bool { return v.destroy == nil }

// IsView reports whether v aliases Go memory.
func (v *VectorInt) IsView() bool { return v.destroy == nil }

// IsView reports whether v aliases Go memory.
func (v *VectorBool) IsView() bool { return v.destroy == nil }
