// SPDX-License-Identifier: MIT

package native

/*
#include "bridge.h"
*/
import "C"

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/igraphgo/convert"
	"github.com/katalvlaran/igraphgo/status"
)

// SelectorKind is the case of a vertex or edge selector.
type SelectorKind int

const (
	SelectNone SelectorKind = iota
	SelectAll
	SelectSingle
	SelectVector
)

func (k SelectorKind) String() string {
	switch k {
	case SelectNone:
		return "none"
	case SelectAll:
		return "all"
	case SelectSingle:
		return "single"
	case SelectVector:
		return "vector"
	}
	return fmt.Sprintf("SelectorKind(%d)", int(k))
}

// All selects every vertex or edge. The string "all" is equivalent.
const All = "all"

// selection is a parsed selector descriptor.
type selection struct {
	kind SelectorKind
	one  int64
	ids  []int64
}

// parseSelection validates desc without touching the native library:
// nil is NONE, "all" is ALL, a non-negative integer is SINGLE and any
// integer sequence is VECTOR.
func parseSelection(desc any) (selection, error) {
	switch d := desc.(type) {
	case nil:
		return selection{kind: SelectNone}, nil
	case string:
		if d == All {
			return selection{kind: SelectAll}, nil
		}
		return selection{}, fmt.Errorf("%w: selector string must be %q, got %q", status.ErrType, All, d)
	case bool:
		return selection{}, fmt.Errorf("%w: bool is not a selector", status.ErrType)
	}
	if convert.IsSequence(desc) {
		ids, err := convert.Indices(desc)
		if err != nil {
			return selection{}, err
		}
		return selection{kind: SelectVector, ids: ids}, nil
	}
	switch reflect.ValueOf(desc).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		id, err := convert.Index(desc)
		if err != nil {
			return selection{}, err
		}
		return selection{kind: SelectSingle, one: id}, nil
	}
	return selection{}, fmt.Errorf("%w: %T is not a selector", status.ErrType, desc)
}

// VertexSelector owns an igraph_vs_t.
type VertexSelector struct {
	*Boxed[C.igraph_vs_t]
	kind SelectorKind
}

// Kind returns the selector case.
func (s *VertexSelector) Kind() SelectorKind { return s.kind }

func destroyVS(p *C.igraph_vs_t) { C.igraph_vs_destroy(p) }

// newVertexSelector builds a selector from desc. Caller holds the lock.
func newVertexSelector(desc any) (*VertexSelector, error) {
	sel, err := parseSelection(desc)
	if err != nil {
		return nil, err
	}
	var init func(*C.igraph_vs_t) C.igraph_error_t
	switch sel.kind {
	case SelectNone:
		init = func(p *C.igraph_vs_t) C.igraph_error_t { return C.igraph_vs_none(p) }
	case SelectAll:
		init = func(p *C.igraph_vs_t) C.igraph_error_t { return C.igraph_vs_all(p) }
	case SelectSingle:
		init = func(p *C.igraph_vs_t) C.igraph_error_t { return C.igraph_vs_1(p, cint(sel.one)) }
	case SelectVector:
		ids, err := vectorIntFrom(sel.ids)
		if err != nil {
			return nil, err
		}
		defer ids.Close()
		init = func(p *C.igraph_vs_t) C.igraph_error_t { return C.igraph_vs_vector_copy(p, ids.ptr) }
	}
	b, err := newBoxed(init, destroyVS)
	if err != nil {
		return nil, err
	}
	return &VertexSelector{Boxed: b, kind: sel.kind}, nil
}

// NewVertexSelector builds a vertex selector: nil selects none, "all" (or
// All) every vertex, a non-negative integer one vertex, an integer
// sequence the listed vertices (an empty sequence selects none).
//
// Errors:
//   - status.ErrType for other strings and non-integer descriptors.
//   - status.ErrIllegalArgument for negative ids.
func NewVertexSelector(desc any) (*VertexSelector, error) {
	return locked(func() (*VertexSelector, error) { return newVertexSelector(desc) })
}

// EdgeSelector owns an igraph_es_t.
type EdgeSelector struct {
	*Boxed[C.igraph_es_t]
	kind SelectorKind
}

// Kind returns the selector case.
func (s *EdgeSelector) Kind() SelectorKind { return s.kind }

func destroyES(p *C.igraph_es_t) { C.igraph_es_destroy(p) }

// newEdgeSelector builds a selector from desc. Caller holds the lock.
func newEdgeSelector(desc any) (*EdgeSelector, error) {
	sel, err := parseSelection(desc)
	if err != nil {
		return nil, err
	}
	var init func(*C.igraph_es_t) C.igraph_error_t
	switch sel.kind {
	case SelectNone:
		init = func(p *C.igraph_es_t) C.igraph_error_t { return C.igraph_es_none(p) }
	case SelectAll:
		init = func(p *C.igraph_es_t) C.igraph_error_t { return C.igraph_es_all(p, C.IGRAPH_EDGEORDER_ID) }
	case SelectSingle:
		init = func(p *C.igraph_es_t) C.igraph_error_t { return C.igraph_es_1(p, cint(sel.one)) }
	case SelectVector:
		ids, err := vectorIntFrom(sel.ids)
		if err != nil {
			return nil, err
		}
		defer ids.Close()
		init = func(p *C.igraph_es_t) C.igraph_error_t { return C.igraph_es_vector_copy(p, ids.ptr) }
	}
	b, err := newBoxed(init, destroyES)
	if err != nil {
		return nil, err
	}
	return &EdgeSelector{Boxed: b, kind: sel.kind}, nil
}

// NewEdgeSelector builds an edge selector from the same descriptors as
// NewVertexSelector.
func NewEdgeSelector(desc any) (*EdgeSelector, error) {
	return locked(func() (*EdgeSelector, error) { return newEdgeSelector(desc) })
}
