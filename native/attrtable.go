// SPDX-License-Identifier: MIT

package native

/*
#include "bridge.h"
*/
import "C"

import (
	"errors"
	"fmt"
	"runtime/cgo"
	"unsafe"

	"github.com/katalvlaran/igraphgo/attr"
	"github.com/katalvlaran/igraphgo/convert"
	"github.com/katalvlaran/igraphgo/status"
)

// scope is igraph_attribute_elemtype_t.
type scope int

const (
	scopeGraph  scope = C.IGRAPH_ATTRIBUTE_GRAPH
	scopeVertex scope = C.IGRAPH_ATTRIBUTE_VERTEX
	scopeEdge   scope = C.IGRAPH_ATTRIBUTE_EDGE
)

func (s scope) String() string {
	switch s {
	case scopeGraph:
		return "graph"
	case scopeVertex:
		return "vertex"
	case scopeEdge:
		return "edge"
	}
	return fmt.Sprintf("scope(%d)", int(s))
}

var errNoStorage = fmt.Errorf("%w: graph has no attribute storage", status.ErrRuntime)

// AttributeTable identifies an igraph_attribute_table_t.
type AttributeTable struct {
	p *C.igraph_attribute_table_t
}

// IsNil reports whether no table was installed.
func (t AttributeTable) IsNil() bool { return t.p == nil }

// IsBinding reports whether t is the table of this package.
func (t AttributeTable) IsBinding() bool {
	return t.p != nil && C.bridge_attribute_table_is_ours(t.p) != 0
}

// previousTable is the table found by the first install, for Restore.
var previousTable *C.igraph_attribute_table_t

// InstallAttributeTable registers the attribute table of this package and
// returns the previously installed table. Installing twice keeps the same
// table active; the second call returns it.
func InstallAttributeTable() AttributeTable {
	t, _ := locked(func() (AttributeTable, error) { return installAttributeTable(), nil })
	return t
}

// installAttributeTable is InstallAttributeTable for callers holding the lock.
func installAttributeTable() AttributeTable {
	prev := C.igraph_set_attribute_table(C.bridge_attribute_table())
	if C.bridge_attribute_table_is_ours(prev) == 0 {
		previousTable = prev
	}
	return AttributeTable{p: prev}
}

// restoreAttributeTable puts back the table found at install time.
// Caller holds the lock.
func restoreAttributeTable() {
	C.igraph_set_attribute_table(previousTable)
	previousTable = nil
}

// storageOf returns the storage attached to g.
func storageOf(g *C.igraph_t) (*attr.Storage, error) {
	h := C.bridge_get_attr(g)
	if h == 0 {
		return nil, errNoStorage
	}
	s, ok := cgo.Handle(h).Value().(*attr.Storage)
	if !ok {
		return nil, errNoStorage
	}
	return s, nil
}

// attachStorage installs s on g, taking a reference.
func attachStorage(g *C.igraph_t, s *attr.Storage) {
	s.Retain()
	C.bridge_set_attr(g, C.uintptr_t(cgo.NewHandle(s)))
}

// detachStorage removes the storage of g and drops its reference.
func detachStorage(g *C.igraph_t) {
	h := C.bridge_get_attr(g)
	if h == 0 {
		return
	}
	C.bridge_set_attr(g, 0)
	handle := cgo.Handle(h)
	if s, ok := handle.Value().(*attr.Storage); ok {
		s.Release()
	}
	handle.Delete()
}

func mapOf(s *attr.Storage, sc scope) *attr.Map {
	if sc == scopeVertex {
		return s.Vertex
	}
	return s.Edge
}

func setMap(s *attr.Storage, sc scope, m *attr.Map) {
	if sc == scopeVertex {
		s.Vertex = m
	} else {
		s.Edge = m
	}
}

// nativeErr reports a failed native call made inside a callback. The
// native error handler has already recorded the failure.
func nativeErr(code C.igraph_error_t) error {
	if code == C.IGRAPH_SUCCESS {
		return nil
	}
	return &status.Error{Code: status.Code(code), Message: "native call inside attribute handler failed"}
}

func attrInit(g *C.igraph_t, records *C.igraph_vector_ptr_t) error {
	s := attr.NewStorage(0, 0)
	if err := applyRecords(s, scopeGraph, 0, records); err != nil {
		return err
	}
	attachStorage(g, s)
	return nil
}

func attrCopy(to, from *C.igraph_t, ga, va, ea bool) error {
	nv, ne := int(C.igraph_vcount(to)), int(C.igraph_ecount(to))
	src, err := storageOf(from)
	if errors.Is(err, errNoStorage) {
		src = attr.NewStorage(int(C.igraph_vcount(from)), int(C.igraph_ecount(from)))
	} else if err != nil {
		return err
	}
	attachStorage(to, src.Clone(ga, va, ea, nv, ne))
	return nil
}

func attrAdd(g *C.igraph_t, sc scope, n int, records *C.igraph_vector_ptr_t) error {
	s, err := storageOf(g)
	if err != nil {
		return err
	}
	m := mapOf(s, sc)
	start := m.Len()
	m.Extend(n)
	return applyRecords(s, sc, start, records)
}

func attrPermute(g, newg *C.igraph_t, sc scope, idx *C.igraph_vector_int_t) error {
	src, err := storageOf(g)
	if err != nil {
		return err
	}
	dst, err := storageOf(newg)
	if err != nil {
		return err
	}
	order := ints(idx)
	if src == dst {
		return mapOf(src, sc).Permute(order)
	}
	m := mapOf(src, sc).Clone()
	if err := m.Permute(order); err != nil {
		return err
	}
	setMap(dst, sc, m)
	return nil
}

func attrCombine(g, newg *C.igraph_t, sc scope, merges *C.igraph_vector_int_list_t, comb *C.igraph_attribute_combination_t) error {
	src, err := storageOf(g)
	if err != nil {
		return err
	}
	dst, err := storageOf(newg)
	if err != nil {
		return err
	}
	m := mapOf(src, sc)
	spec, err := specFromNative(comb, m.Names())
	if err != nil {
		return err
	}
	merged, err := m.Combine(intLists(merges), spec, attr.Env{Rand: randomness()})
	if err != nil {
		return err
	}
	setMap(dst, sc, merged)
	return nil
}

// specFromNative asks the native combination record what to do with each
// of names.
func specFromNative(comb *C.igraph_attribute_combination_t, names []string) (*attr.Spec, error) {
	spec := &attr.Spec{}
	for _, name := range names {
		var (
			typ C.int
			fn  C.uintptr_t
		)
		cname := C.CString(name)
		code := C.bridge_combination_query(comb, cname, &typ, &fn)
		C.free(unsafe.Pointer(cname))
		if err := nativeErr(code); err != nil {
			return nil, err
		}
		c := attr.Combination{Policy: policyFromNative(typ)}
		if c.Policy == attr.Function && fn != 0 {
			f, ok := cgo.Handle(fn).Value().(attr.Func)
			if !ok {
				return nil, fmt.Errorf("%w: attribute %q: combination function handle is stale", status.ErrRuntime, name)
			}
			c.Fn = f
		}
		spec.Set(name, c)
	}
	return spec, nil
}

func attrInfo(g *C.igraph_t, names [3]*C.igraph_strvector_t, types [3]*C.igraph_vector_int_t) error {
	s, err := storageOf(g)
	if err != nil {
		return err
	}
	for i, sc := range []scope{scopeGraph, scopeVertex, scopeEdge} {
		var ns []string
		var ts []attr.Type
		if sc == scopeGraph {
			ns = s.Graph.Names()
			for _, n := range ns {
				t, _ := s.Graph.Type(n)
				ts = append(ts, t)
			}
		} else {
			m := mapOf(s, sc)
			ns = m.Names()
			for _, n := range ns {
				t, _ := m.Type(n)
				ts = append(ts, t)
			}
		}
		if names[i] != nil {
			if err := nativeErr(C.igraph_strvector_resize(names[i], cint(int64(len(ns))))); err != nil {
				return err
			}
			for j, n := range ns {
				if err := putString(names[i], j, n); err != nil {
					return err
				}
			}
		}
		if types[i] != nil {
			if err := nativeErr(C.igraph_vector_int_resize(types[i], cint(int64(len(ts))))); err != nil {
				return err
			}
			if len(ts) > 0 {
				dst := unsafe.Slice(types[i].stor_begin, len(ts))
				for j, t := range ts {
					dst[j] = C.igraph_integer_t(t)
				}
			}
		}
	}
	return nil
}

func putString(sv *C.igraph_strvector_t, i int, s string) error {
	cs := C.CString(string(convert.Bytes(s)))
	defer C.free(unsafe.Pointer(cs))
	return nativeErr(C.igraph_strvector_set(sv, cint(int64(i)), cs))
}

func attrHas(g *C.igraph_t, sc scope, name string) bool {
	s, err := storageOf(g)
	if err != nil {
		return false
	}
	if sc == scopeGraph {
		return s.Graph.Has(name)
	}
	return mapOf(s, sc).Has(name)
}

func attrType(g *C.igraph_t, sc scope, name string) (attr.Type, error) {
	s, err := storageOf(g)
	if err != nil {
		return attr.Unspecified, err
	}
	var (
		t  attr.Type
		ok bool
	)
	if sc == scopeGraph {
		t, ok = s.Graph.Type(name)
	} else {
		t, ok = mapOf(s, sc).Type(name)
	}
	if !ok {
		return attr.Unspecified, fmt.Errorf("%s attribute %q: %w", sc, name, attr.ErrNoSuchAttribute)
	}
	return t, nil
}

// selected reads the values of one attribute: the single graph value, or
// the list entries at ids.
func selected(g *C.igraph_t, sc scope, name string, ids *C.igraph_vector_int_t) ([]any, error) {
	s, err := storageOf(g)
	if err != nil {
		return nil, err
	}
	if sc == scopeGraph {
		v, err := s.Graph.Get(name)
		if err != nil {
			return nil, err
		}
		return []any{v}, nil
	}
	l, err := mapOf(s, sc).Get(name)
	if err != nil {
		return nil, err
	}
	return l.Select(attr.Indices(ints(ids)))
}

func attrNumeric(g *C.igraph_t, sc scope, name string, ids *C.igraph_vector_int_t, out *C.igraph_vector_t) error {
	values, err := selected(g, sc, name, ids)
	if err != nil {
		return err
	}
	if err := nativeErr(C.igraph_vector_resize(out, cint(int64(len(values))))); err != nil {
		return err
	}
	if len(values) == 0 {
		return nil
	}
	dst := unsafe.Slice((*float64)(unsafe.Pointer(out.stor_begin)), len(values))
	for i, v := range values {
		if t := attr.TypeOf(v); t != attr.Numeric && t != attr.Boolean {
			return fmt.Errorf("%s attribute %q is %s: %w", sc, name, t, attr.ErrWrongType)
		}
		dst[i] = convert.Real(v)
	}
	return nil
}

func attrString(g *C.igraph_t, sc scope, name string, ids *C.igraph_vector_int_t, out *C.igraph_strvector_t) error {
	values, err := selected(g, sc, name, ids)
	if err != nil {
		return err
	}
	if err := nativeErr(C.igraph_strvector_resize(out, cint(int64(len(values))))); err != nil {
		return err
	}
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("%s attribute %q is %s: %w", sc, name, attr.TypeOf(v), attr.ErrWrongType)
		}
		if err := putString(out, i, s); err != nil {
			return err
		}
	}
	return nil
}

func attrBool(g *C.igraph_t, sc scope, name string, ids *C.igraph_vector_int_t, out *C.igraph_vector_bool_t) error {
	values, err := selected(g, sc, name, ids)
	if err != nil {
		return err
	}
	if err := nativeErr(C.igraph_vector_bool_resize(out, cint(int64(len(values))))); err != nil {
		return err
	}
	if len(values) == 0 {
		return nil
	}
	dst := unsafe.Slice(out.stor_begin, len(values))
	for i, v := range values {
		if t := attr.TypeOf(v); t != attr.Boolean && t != attr.Numeric {
			return fmt.Errorf("%s attribute %q is %s: %w", sc, name, t, attr.ErrWrongType)
		}
		dst[i] = cbool(convert.Bool(v))
	}
	return nil
}

// applyRecords stores native attribute records: the first value for graph
// attributes, positions [start, start+n) for vertex and edge attributes.
func applyRecords(s *attr.Storage, sc scope, start int, records *C.igraph_vector_ptr_t) error {
	n := int(C.bridge_record_count(records))
	for i := 0; i < n; i++ {
		rec := C.bridge_record_at(records, cint(int64(i)))
		name := C.GoString(rec.name)
		values, err := recordValues(rec)
		if err != nil {
			return fmt.Errorf("attribute %q: %w", name, err)
		}
		if sc == scopeGraph {
			if len(values) > 0 {
				s.Graph.Set(name, values[0])
			}
			continue
		}
		if err := mapOf(s, sc).Assign(name, start, values); err != nil {
			return err
		}
	}
	return nil
}

func recordValues(rec *C.igraph_attribute_record_t) ([]any, error) {
	switch rec._type {
	case C.IGRAPH_ATTRIBUTE_NUMERIC:
		v := (*C.igraph_vector_t)(rec.value)
		n := int(C.igraph_vector_size(v))
		out := make([]any, n)
		if n > 0 {
			for i, x := range unsafe.Slice((*float64)(unsafe.Pointer(v.stor_begin)), n) {
				out[i] = x
			}
		}
		return out, nil
	case C.IGRAPH_ATTRIBUTE_BOOLEAN:
		v := (*C.igraph_vector_bool_t)(rec.value)
		n := int(C.igraph_vector_bool_size(v))
		out := make([]any, n)
		if n > 0 {
			for i, x := range unsafe.Slice(v.stor_begin, n) {
				out[i] = bool(x)
			}
		}
		return out, nil
	case C.IGRAPH_ATTRIBUTE_STRING:
		strs := goStrings((*C.igraph_strvector_t)(rec.value))
		out := make([]any, len(strs))
		for i, s := range strs {
			out[i] = s
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: record type %d", status.ErrUnimplemented, int(rec._type))
}
