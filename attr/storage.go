// SPDX-License-Identifier: MIT

package attr

import "sync/atomic"

// Storage is the attribute storage of one graph: graph, vertex and edge
// scopes. It is reference counted by the code that attaches it to native
// graphs; a fresh Storage starts with zero references.
type Storage struct {
	refs atomic.Int32

	Graph  *GraphAttrs
	Vertex *Map
	Edge   *Map
}

// NewStorage returns empty storage for a graph with nv vertices and ne edges.
func NewStorage(nv, ne int) *Storage {
	return &Storage{Graph: NewGraphAttrs(), Vertex: NewMap(nv), Edge: NewMap(ne)}
}

// Retain adds a reference.
func (s *Storage) Retain() { s.refs.Add(1) }

// Release drops a reference and reports whether it was the last one.
func (s *Storage) Release() bool { return s.refs.Add(-1) <= 0 }

// Refs returns the current reference count.
func (s *Storage) Refs() int { return int(s.refs.Load()) }

// Clone returns new storage for a copy of the graph. Scopes selected by
// ga, va and ea are deep-copied; the others start empty, with vertex and
// edge maps sized nv and ne.
func (s *Storage) Clone(ga, va, ea bool, nv, ne int) *Storage {
	c := NewStorage(nv, ne)
	if ga {
		c.Graph = s.Graph.Clone()
	}
	if va {
		c.Vertex = s.Vertex.Clone()
	}
	if ea {
		c.Edge = s.Edge.Clone()
	}
	return c
}
