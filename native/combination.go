// SPDX-License-Identifier: MIT

package native

/*
#include "bridge.h"
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"

	"github.com/katalvlaran/igraphgo/attr"
)

// AttributeCombination owns an igraph_attribute_combination_t built from
// an attr.Spec. Function entries travel through the record's function
// pointer slot as cgo handles, released by Close.
type AttributeCombination struct {
	box   *Boxed[C.igraph_attribute_combination_t]
	funcs []cgo.Handle
}

var nativePolicies = map[attr.Policy]C.int{
	attr.Default:  C.int(C.IGRAPH_ATTRIBUTE_COMBINE_DEFAULT),
	attr.Ignore:   C.int(C.IGRAPH_ATTRIBUTE_COMBINE_IGNORE),
	attr.Function: C.int(C.IGRAPH_ATTRIBUTE_COMBINE_FUNCTION),
	attr.Sum:      C.int(C.IGRAPH_ATTRIBUTE_COMBINE_SUM),
	attr.Prod:     C.int(C.IGRAPH_ATTRIBUTE_COMBINE_PROD),
	attr.Min:      C.int(C.IGRAPH_ATTRIBUTE_COMBINE_MIN),
	attr.Max:      C.int(C.IGRAPH_ATTRIBUTE_COMBINE_MAX),
	attr.Random:   C.int(C.IGRAPH_ATTRIBUTE_COMBINE_RANDOM),
	attr.First:    C.int(C.IGRAPH_ATTRIBUTE_COMBINE_FIRST),
	attr.Last:     C.int(C.IGRAPH_ATTRIBUTE_COMBINE_LAST),
	attr.Mean:     C.int(C.IGRAPH_ATTRIBUTE_COMBINE_MEAN),
	attr.Median:   C.int(C.IGRAPH_ATTRIBUTE_COMBINE_MEDIAN),
	attr.Concat:   C.int(C.IGRAPH_ATTRIBUTE_COMBINE_CONCAT),
}

// policyFromNative maps an igraph_attribute_combination_type_t back to its
// policy. Unknown values read as Default.
func policyFromNative(t C.int) attr.Policy {
	for p, n := range nativePolicies {
		if n == t {
			return p
		}
	}
	return attr.Default
}

func destroyCombination(p *C.igraph_attribute_combination_t) {
	C.igraph_attribute_combination_destroy(p)
}

// newCombination converts spec; a nil spec yields an empty combination,
// which drops every attribute. Caller holds the lock.
func newCombination(spec *attr.Spec) (*AttributeCombination, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	b, err := newBoxed(func(p *C.igraph_attribute_combination_t) C.igraph_error_t {
		return C.igraph_attribute_combination_init(p)
	}, destroyCombination)
	if err != nil {
		return nil, err
	}
	c := &AttributeCombination{box: b}
	for _, e := range spec.Entries() {
		var fn C.uintptr_t
		if e.Policy == attr.Function {
			h := cgo.NewHandle(e.Fn)
			c.funcs = append(c.funcs, h)
			fn = C.uintptr_t(h)
		}
		var name *C.char
		if e.Name != "" {
			name = C.CString(e.Name)
		}
		code := C.bridge_combination_add(b.ptr, name, nativePolicies[e.Policy], fn)
		C.free(unsafe.Pointer(name))
		if err := check(code); err != nil {
			c.Close()
			return nil, err
		}
	}
	return c, nil
}

// NewAttributeCombination converts spec into its native form.
func NewAttributeCombination(spec *attr.Spec) (*AttributeCombination, error) {
	return locked(func() (*AttributeCombination, error) { return newCombination(spec) })
}

// Query returns the combination the native record selects for name.
func (c *AttributeCombination) Query(name string) (attr.Combination, error) {
	return locked(func() (attr.Combination, error) {
		spec, err := specFromNative(c.box.ptr, []string{name})
		if err != nil {
			return attr.Combination{}, err
		}
		return spec.For(name), nil
	})
}

func (c *AttributeCombination) ptr() *C.igraph_attribute_combination_t { return c.box.ptr }

// Close destroys the native record and releases the function handles.
func (c *AttributeCombination) Close() {
	if c == nil {
		return
	}
	c.box.Close()
	for _, h := range c.funcs {
		h.Delete()
	}
	c.funcs = nil
}
