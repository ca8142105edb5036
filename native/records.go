// SPDX-License-Identifier: MIT

package native

/*
#include "bridge.h"
*/
import "C"

import (
	"fmt"
	"slices"
	"unsafe"

	"github.com/katalvlaran/igraphgo/attr"
	"github.com/katalvlaran/igraphgo/convert"
	"github.com/katalvlaran/igraphgo/status"
)

// Records are attribute values handed to the native library together with
// new vertices or edges: name to a numeric, boolean or string sequence
// with one entry per new entity.
type Records map[string]any

// nativeRecords is the igraph_vector_ptr_t of igraph_attribute_record_t
// built from Records, with everything it points to.
type nativeRecords struct {
	list   *Boxed[C.igraph_vector_ptr_t]
	recs   []*C.igraph_attribute_record_t
	names  []*C.char
	values []interface{ Close() }
}

// buildRecords converts rs for n new entities. A nil result means no
// records. Caller holds the lock.
func buildRecords(rs Records, n int) (*nativeRecords, error) {
	if len(rs) == 0 {
		return nil, nil
	}
	names := make([]string, 0, len(rs))
	for name := range rs {
		names = append(names, name)
	}
	slices.Sort(names)

	list, err := newBoxed(func(p *C.igraph_vector_ptr_t) C.igraph_error_t {
		return C.igraph_vector_ptr_init(p, cint(int64(len(names))))
	}, func(p *C.igraph_vector_ptr_t) { C.igraph_vector_ptr_destroy(p) })
	if err != nil {
		return nil, err
	}
	r := &nativeRecords{list: list}
	for i, name := range names {
		rec, err := r.record(name, rs[name], n)
		if err != nil {
			r.Close()
			return nil, err
		}
		C.bridge_record_put(list.ptr, cint(int64(i)), rec)
	}
	return r, nil
}

func (r *nativeRecords) record(name string, values any, n int) (*C.igraph_attribute_record_t, error) {
	elems, ok := convert.Elements(values)
	if !ok {
		return nil, fmt.Errorf("%w: attribute %q: %T is not a sequence", status.ErrConversion, name, values)
	}
	if len(elems) != n {
		return nil, fmt.Errorf("%w: attribute %q: %d values for %d entities", status.ErrIllegalArgument, name, len(elems), n)
	}
	typ := attr.Numeric
	if n > 0 {
		typ = attr.TypeOf(elems[0])
	}

	rec := alloc[C.igraph_attribute_record_t]()
	r.recs = append(r.recs, rec)
	cname := C.CString(name)
	r.names = append(r.names, cname)
	rec.name = cname

	switch typ {
	case attr.Numeric:
		xs, err := convert.Reals(values)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}
		v, err := vectorFrom(xs)
		if err != nil {
			return nil, err
		}
		r.values = append(r.values, v)
		rec._type = C.IGRAPH_ATTRIBUTE_NUMERIC
		rec.value = unsafe.Pointer(v.ptr)
	case attr.Boolean:
		xs, err := convert.Bools(values)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}
		v, err := vectorBoolFrom(xs)
		if err != nil {
			return nil, err
		}
		r.values = append(r.values, v)
		rec._type = C.IGRAPH_ATTRIBUTE_BOOLEAN
		rec.value = unsafe.Pointer(v.ptr)
	case attr.String:
		xs, err := convert.Strings(values)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}
		v, err := strVectorFrom(xs)
		if err != nil {
			return nil, err
		}
		r.values = append(r.values, v)
		rec._type = C.IGRAPH_ATTRIBUTE_STRING
		rec.value = unsafe.Pointer(v.ptr)
	default:
		return nil, fmt.Errorf("%w: attribute %q: %s values cannot be passed to the native library", status.ErrConversion, name, typ)
	}
	return rec, nil
}

func (r *nativeRecords) ptr() *C.igraph_vector_ptr_t {
	if r == nil {
		return nil
	}
	return r.list.ptr
}

func (r *nativeRecords) Close() {
	if r == nil {
		return
	}
	r.list.Close()
	for _, v := range r.values {
		v.Close()
	}
	for _, p := range r.recs {
		C.free(unsafe.Pointer(p))
	}
	for _, p := range r.names {
		C.free(unsafe.Pointer(p))
	}
	r.values, r.recs, r.names = nil, nil, nil
}
