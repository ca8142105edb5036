// SPDX-License-Identifier: MIT

package native

/*
#include "bridge.h"
*/
import "C"

import (
	"context"
	"fmt"
	"unsafe"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/igraphgo/attr"
	"github.com/katalvlaran/igraphgo/status"
)

// Mode selects which edges of a directed graph are followed.
type Mode int

const (
	Out Mode = C.IGRAPH_OUT
	In  Mode = C.IGRAPH_IN
	Any Mode = C.IGRAPH_ALL
)

// ErrClosed is returned by methods of a closed Graph.
var ErrClosed = fmt.Errorf("%w: graph is closed", status.ErrRuntime)

// Graph owns an igraph_t. It is not safe for concurrent use.
type Graph struct {
	box *Boxed[C.igraph_t]
	id  uuid.UUID
}

func destroyGraph(p *C.igraph_t) { C.igraph_destroy(p) }

// newGraph constructs a graph with init. Caller holds the lock.
func newGraph(kind string, init func(*C.igraph_t) C.igraph_error_t) (*Graph, error) {
	b, err := newBoxed(init, destroyGraph)
	if err != nil {
		return nil, err
	}
	g := &Graph{box: b, id: uuid.New()}
	g.logger().WithFields(logrus.Fields{
		"kind":     kind,
		"vertices": g.vcount(),
		"edges":    g.ecount(),
	}).Debug("graph created")
	return g, nil
}

func (g *Graph) logger() *logrus.Entry {
	return log.WithField("graph", g.id.String())
}

// ID identifies the graph in log output.
func (g *Graph) ID() uuid.UUID { return g.id }

// Close destroys the native graph and its attribute storage.
func (g *Graph) Close() {
	if g == nil || g.box == nil || g.box.ptr == nil {
		return
	}
	_ = exclusive(func() error {
		g.box.Close()
		return nil
	})
	g.logger().Debug("graph destroyed")
}

func (g *Graph) ptr() *C.igraph_t {
	if g == nil || g.box == nil {
		return nil
	}
	return g.box.ptr
}

// exclusive runs fn under the native lock, failing with ErrClosed once g
// is closed.
func (g *Graph) exclusive(fn func() error) error {
	return exclusive(func() error {
		if g.ptr() == nil {
			return ErrClosed
		}
		return fn()
	})
}

func (g *Graph) run(ctx context.Context, fn func() error) error {
	return run(ctx, func() error {
		if g.ptr() == nil {
			return ErrClosed
		}
		return fn()
	})
}

func lockedOn[R any](g *Graph, fn func() (R, error)) (R, error) {
	return locked(func() (R, error) {
		if g.ptr() == nil {
			var zero R
			return zero, ErrClosed
		}
		return fn()
	})
}

func (g *Graph) vcount() int64 {
	if g.ptr() == nil {
		return 0
	}
	return int64(C.igraph_vcount(g.ptr()))
}

func (g *Graph) ecount() int64 {
	if g.ptr() == nil {
		return 0
	}
	return int64(C.igraph_ecount(g.ptr()))
}

// Empty returns a graph with n vertices and no edges.
func Empty(n int64, directed bool) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative vertex count %d", status.ErrIllegalArgument, n)
	}
	return locked(func() (*Graph, error) {
		return newGraph("empty", func(p *C.igraph_t) C.igraph_error_t {
			return C.igraph_empty(p, cint(n), cbool(directed))
		})
	})
}

// Full returns the complete graph on n vertices.
func Full(n int64, directed, loops bool) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative vertex count %d", status.ErrIllegalArgument, n)
	}
	return locked(func() (*Graph, error) {
		return newGraph("full", func(p *C.igraph_t) C.igraph_error_t {
			return C.igraph_full(p, cint(n), cbool(directed), cbool(loops))
		})
	})
}

// SquareLattice returns a lattice with the given dimension sizes. Vertices
// within nei steps are connected; circular wraps every dimension.
//
// Errors:
//   - status.ErrIllegalArgument for a negative dimension.
//   - native errors for an invalid nei.
//
// Complexity:
//   - Time O(V*nei^d), d = len(dims).
func SquareLattice(dims []int64, nei int64, directed, mutual, circular bool) (*Graph, error) {
	for _, d := range dims {
		if d < 0 {
			return nil, fmt.Errorf("%w: negative lattice dimension %d", status.ErrIllegalArgument, d)
		}
	}
	return locked(func() (*Graph, error) {
		dimv, err := vectorIntFrom(dims)
		if err != nil {
			return nil, err
		}
		defer dimv.Close()
		periodic := make([]bool, len(dims))
		for i := range periodic {
			periodic[i] = circular
		}
		circ, err := vectorBoolFrom(periodic)
		if err != nil {
			return nil, err
		}
		defer circ.Close()
		return newGraph("lattice", func(p *C.igraph_t) C.igraph_error_t {
			return C.igraph_square_lattice(p, dimv.ptr, cint(nei), cbool(directed), cbool(mutual), circ.ptr)
		})
	})
}

// ErdosRenyiGNM returns a uniform random graph with n vertices and m edges,
// drawn from the installed random source.
func ErdosRenyiGNM(ctx context.Context, n, m int64, directed, loops bool) (*Graph, error) {
	var g *Graph
	err := run(ctx, func() (err error) {
		g, err = newGraph("gnm", func(p *C.igraph_t) C.igraph_error_t {
			return C.igraph_erdos_renyi_game_gnm(p, cint(n), cint(m), cbool(directed), cbool(loops))
		})
		return err
	})
	return g, err
}

// Copy returns a deep copy, attributes included.
func (g *Graph) Copy() (*Graph, error) {
	return lockedOn(g, func() (*Graph, error) {
		return newGraph("copy", func(p *C.igraph_t) C.igraph_error_t {
			return C.igraph_copy(p, g.ptr())
		})
	})
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int64 { return g.vcount() }

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int64 { return g.ecount() }

// IsDirected reports whether the graph is directed.
func (g *Graph) IsDirected() bool {
	if g.ptr() == nil {
		return false
	}
	return bool(C.igraph_is_directed(g.ptr()))
}

// Attributes returns the live attribute storage of the graph.
func (g *Graph) Attributes() (*attr.Storage, error) {
	return lockedOn(g, func() (*attr.Storage, error) { return storageOf(g.ptr()) })
}

// AddVertices appends n vertices. records, if any, carry one value per new
// vertex; vertex attributes not mentioned are extended with defaults.
func (g *Graph) AddVertices(n int64, records Records) error {
	if n < 0 {
		return fmt.Errorf("%w: negative vertex count %d", status.ErrIllegalArgument, n)
	}
	return g.exclusive(func() error {
		rs, err := buildRecords(records, int(n))
		if err != nil {
			return err
		}
		defer rs.Close()
		return check(C.igraph_add_vertices(g.ptr(), cint(n), unsafe.Pointer(rs.ptr())))
	})
}

// AddEdges appends edges given as a flat list of endpoint pairs.
func (g *Graph) AddEdges(edges []int64, records Records) error {
	if len(edges)%2 != 0 {
		return fmt.Errorf("%w: edge list has odd length %d", status.ErrIllegalArgument, len(edges))
	}
	for _, v := range edges {
		if v < 0 {
			return fmt.Errorf("%w: negative vertex id %d", status.ErrIllegalArgument, v)
		}
	}
	return g.exclusive(func() error {
		ev, err := vectorIntFrom(edges)
		if err != nil {
			return err
		}
		defer ev.Close()
		rs, err := buildRecords(records, len(edges)/2)
		if err != nil {
			return err
		}
		defer rs.Close()
		return check(C.igraph_add_edges(g.ptr(), ev.ptr, unsafe.Pointer(rs.ptr())))
	})
}

// DeleteVertices removes the vertices selected by desc (see
// NewVertexSelector) and their incident edges.
func (g *Graph) DeleteVertices(desc any) error {
	return g.exclusive(func() error {
		vs, err := newVertexSelector(desc)
		if err != nil {
			return err
		}
		defer vs.Close()
		return check(C.igraph_delete_vertices(g.ptr(), vs.Value()))
	})
}

// DeleteEdges removes the edges selected by desc.
func (g *Graph) DeleteEdges(desc any) error {
	return g.exclusive(func() error {
		es, err := newEdgeSelector(desc)
		if err != nil {
			return err
		}
		defer es.Close()
		return check(C.igraph_delete_edges(g.ptr(), es.Value()))
	})
}

// Edge returns the endpoints of edge eid.
func (g *Graph) Edge(eid int64) (from, to int64, err error) {
	err = g.exclusive(func() error {
		var f, t C.igraph_integer_t
		if err := check(C.igraph_edge(g.ptr(), cint(eid), &f, &t)); err != nil {
			return err
		}
		from, to = int64(f), int64(t)
		return nil
	})
	return from, to, err
}

// EdgeID returns the id of an edge from -> to. A missing edge is -1, or a
// native error when mustExist is set.
func (g *Graph) EdgeID(from, to int64, directed, mustExist bool) (int64, error) {
	return lockedOn(g, func() (int64, error) {
		var eid C.igraph_integer_t
		if err := check(C.igraph_get_eid(g.ptr(), &eid, cint(from), cint(to), cbool(directed), cbool(mustExist))); err != nil {
			return 0, err
		}
		return int64(eid), nil
	})
}

// Neighbors returns the neighbours of vid along mode.
func (g *Graph) Neighbors(vid int64, mode Mode) ([]int64, error) {
	return lockedOn(g, func() ([]int64, error) {
		out, err := newVectorInt(0)
		if err != nil {
			return nil, err
		}
		defer out.Close()
		if err := check(C.igraph_neighbors(g.ptr(), out.ptr, cint(vid), C.igraph_neimode_t(mode))); err != nil {
			return nil, err
		}
		return out.Slice(), nil
	})
}

// Degree returns the degrees of the vertices selected by desc.
func (g *Graph) Degree(desc any, mode Mode, loops bool) ([]int64, error) {
	return lockedOn(g, func() ([]int64, error) {
		vs, err := newVertexSelector(desc)
		if err != nil {
			return nil, err
		}
		defer vs.Close()
		out, err := newVectorInt(0)
		if err != nil {
			return nil, err
		}
		defer out.Close()
		if err := check(C.igraph_degree(g.ptr(), out.ptr, vs.Value(), C.igraph_neimode_t(mode), cbool(loops))); err != nil {
			return nil, err
		}
		return out.Slice(), nil
	})
}

// ShortestPath returns the vertices of an unweighted shortest path from
// -> to, or an empty path when to is unreachable.
func (g *Graph) ShortestPath(ctx context.Context, from, to int64, mode Mode) ([]int64, error) {
	return g.path(ctx, func(out *C.igraph_vector_int_t, _ *C.igraph_vector_t) C.igraph_error_t {
		return C.igraph_get_shortest_path(g.ptr(), out, nil, cint(from), cint(to), C.igraph_neimode_t(mode))
	}, nil)
}

// ShortestPathDijkstra is ShortestPath with non-negative edge weights.
func (g *Graph) ShortestPathDijkstra(ctx context.Context, from, to int64, weights []float64, mode Mode) ([]int64, error) {
	return g.path(ctx, func(out *C.igraph_vector_int_t, w *C.igraph_vector_t) C.igraph_error_t {
		return C.igraph_get_shortest_path_dijkstra(g.ptr(), out, nil, cint(from), cint(to), w, C.igraph_neimode_t(mode))
	}, weights)
}

// ShortestPathBellmanFord is ShortestPath with arbitrary edge weights.
// Negative cycles fail with status.NegativeLoop.
func (g *Graph) ShortestPathBellmanFord(ctx context.Context, from, to int64, weights []float64, mode Mode) ([]int64, error) {
	return g.path(ctx, func(out *C.igraph_vector_int_t, w *C.igraph_vector_t) C.igraph_error_t {
		return C.igraph_get_shortest_path_bellman_ford(g.ptr(), out, nil, cint(from), cint(to), w, C.igraph_neimode_t(mode))
	}, weights)
}

func (g *Graph) path(ctx context.Context, call func(*C.igraph_vector_int_t, *C.igraph_vector_t) C.igraph_error_t, weights []float64) ([]int64, error) {
	var path []int64
	err := g.run(ctx, func() error {
		var w *C.igraph_vector_t
		if weights != nil {
			wv, err := viewVector(weights)
			if err != nil {
				return err
			}
			defer wv.Close()
			w = wv.ptr
		}
		out, err := newVectorInt(0)
		if err != nil {
			return err
		}
		defer out.Close()
		if err := check(call(out.ptr, w)); err != nil {
			return err
		}
		path = out.Slice()
		return nil
	})
	return path, err
}

// AveragePathLength returns the mean shortest path length over vertex
// pairs, and the number of unconnected pairs. With unconn false,
// unconnected pairs count as |V|.
func (g *Graph) AveragePathLength(ctx context.Context, directed, unconn bool) (avg, unconnectedPairs float64, err error) {
	err = g.run(ctx, func() error {
		var res, pairs C.igraph_real_t
		if err := check(C.igraph_average_path_length(g.ptr(), &res, &pairs, cbool(directed), cbool(unconn))); err != nil {
			return err
		}
		avg, unconnectedPairs = float64(res), float64(pairs)
		return nil
	})
	return avg, unconnectedPairs, err
}

// ContractVertices merges vertices: vertex i becomes mapping[i]. Vertex
// attributes are combined with spec; a nil spec drops them.
//
// Implementation:
//   - Stage 1: convert spec into a native combination record.
//   - Stage 2: igraph_contract_vertices calls back into the attribute table,
//     which merges the stored vertex map group by group.
//
// Errors:
//   - ErrClosed after Close.
//   - errors raised by combination functions, returned unchanged in the chain.
func (g *Graph) ContractVertices(mapping []int64, spec *attr.Spec) error {
	return g.exclusive(func() error {
		m, err := vectorIntFrom(mapping)
		if err != nil {
			return err
		}
		defer m.Close()
		comb, err := newCombination(spec)
		if err != nil {
			return err
		}
		defer comb.Close()
		return check(C.igraph_contract_vertices(g.ptr(), m.ptr, comb.ptr()))
	})
}

// Simplify removes multi-edges and/or loops. Edge attributes of merged
// multi-edges are combined with spec; a nil spec drops them.
func (g *Graph) Simplify(multiple, loops bool, spec *attr.Spec) error {
	return g.exclusive(func() error {
		comb, err := newCombination(spec)
		if err != nil {
			return err
		}
		defer comb.Close()
		return check(C.igraph_simplify(g.ptr(), cbool(multiple), cbool(loops), comb.ptr()))
	})
}

// PermuteVertices returns a copy in which vertex i becomes vertex perm[i].
func (g *Graph) PermuteVertices(perm []int64) (*Graph, error) {
	return lockedOn(g, func() (*Graph, error) {
		p, err := vectorIntFrom(perm)
		if err != nil {
			return nil, err
		}
		defer p.Close()
		return newGraph("permuted", func(res *C.igraph_t) C.igraph_error_t {
			return C.igraph_permute_vertices(g.ptr(), res, p.ptr)
		})
	})
}
