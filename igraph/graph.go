// SPDX-License-Identifier: MIT

package igraph

import (
	"context"

	"github.com/katalvlaran/igraphgo/attr"
	"github.com/katalvlaran/igraphgo/native"
)

// Attrs are attribute values for new vertices or edges: name to a
// sequence with one value per new entity.
type Attrs = native.Records

// Graph owns a native graph. Close releases it.
type Graph struct {
	g *native.Graph
}

func wrap(g *native.Graph, err error) (*Graph, error) {
	if err != nil {
		return nil, err
	}
	return &Graph{g: g}, nil
}

// New returns a graph with n vertices and no edges.
func New(n int, opts ...Option) (*Graph, error) {
	o := buildOptions(opts)
	return wrap(native.Empty(int64(n), o.Directed))
}

// Full returns the complete graph on n vertices.
func Full(n int, opts ...Option) (*Graph, error) {
	o := buildOptions(opts)
	return wrap(native.Full(int64(n), o.Directed, o.Loops))
}

// Lattice returns a square lattice with the given dimension sizes. Vertex
// ids run fastest along the first dimension.
func Lattice(dims []int, opts ...Option) (*Graph, error) {
	o := buildOptions(opts)
	ds := make([]int64, len(dims))
	for i, d := range dims {
		ds[i] = int64(d)
	}
	return wrap(native.SquareLattice(ds, int64(o.Nei), o.Directed, o.Mutual, o.Circular))
}

// Random returns a uniform random graph with n vertices and m edges.
func Random(ctx context.Context, n, m int, opts ...Option) (*Graph, error) {
	o := buildOptions(opts)
	return wrap(native.ErdosRenyiGNM(ctx, int64(n), int64(m), o.Directed, o.Loops))
}

// Native exposes the underlying handle.
func (g *Graph) Native() *native.Graph { return g.g }

// Close destroys the graph. It is safe to call more than once.
func (g *Graph) Close() {
	if g == nil || g.g == nil {
		return
	}
	g.g.Close()
	g.g = nil
}

func (g *Graph) open() error {
	if g == nil || g.g == nil {
		return ErrClosed
	}
	return nil
}

// Copy returns an independent deep copy, attributes included.
func (g *Graph) Copy() (*Graph, error) {
	if err := g.open(); err != nil {
		return nil, err
	}
	return wrap(g.g.Copy())
}

// VertexCount returns |V|, or 0 for a closed graph.
func (g *Graph) VertexCount() int {
	if g.open() != nil {
		return 0
	}
	return int(g.g.VertexCount())
}

// EdgeCount returns |E|, or 0 for a closed graph.
func (g *Graph) EdgeCount() int {
	if g.open() != nil {
		return 0
	}
	return int(g.g.EdgeCount())
}

// IsDirected reports whether the graph is directed. A closed graph is not.
func (g *Graph) IsDirected() bool {
	if g.open() != nil {
		return false
	}
	return g.g.IsDirected()
}

// AddVertices appends n vertices with optional attribute values.
func (g *Graph) AddVertices(n int, attrs Attrs) error {
	if err := g.open(); err != nil {
		return err
	}
	return g.g.AddVertices(int64(n), attrs)
}

// AddEdges appends edges with optional attribute values.
func (g *Graph) AddEdges(edges [][2]int, attrs Attrs) error {
	if err := g.open(); err != nil {
		return err
	}
	flat := make([]int64, 0, 2*len(edges))
	for _, e := range edges {
		flat = append(flat, int64(e[0]), int64(e[1]))
	}
	return g.g.AddEdges(flat, attrs)
}

// DeleteVertices removes the selected vertices: an id, a list of ids,
// "all", or nil for none.
func (g *Graph) DeleteVertices(sel any) error {
	if err := g.open(); err != nil {
		return err
	}
	return g.g.DeleteVertices(sel)
}

// DeleteEdges removes the selected edges.
func (g *Graph) DeleteEdges(sel any) error {
	if err := g.open(); err != nil {
		return err
	}
	return g.g.DeleteEdges(sel)
}

// Edge returns the endpoints of edge eid.
func (g *Graph) Edge(eid int) (from, to int, err error) {
	if err := g.open(); err != nil {
		return 0, 0, err
	}
	f, t, err := g.g.Edge(int64(eid))
	return int(f), int(t), err
}

// EdgeID returns the id of the edge from -> to, or -1 when there is none.
// With mustExist a missing edge is an error.
func (g *Graph) EdgeID(from, to int, mustExist bool) (int, error) {
	if err := g.open(); err != nil {
		return 0, err
	}
	eid, err := g.g.EdgeID(int64(from), int64(to), g.g.IsDirected(), mustExist)
	return int(eid), err
}

// Neighbors returns the neighbours of v along mode.
func (g *Graph) Neighbors(v int, mode Mode) ([]int, error) {
	if err := g.open(); err != nil {
		return nil, err
	}
	return toInts(g.g.Neighbors(int64(v), mode))
}

// Degree returns the degrees of the selected vertices, loops counted.
func (g *Graph) Degree(sel any, mode Mode) ([]int, error) {
	if err := g.open(); err != nil {
		return nil, err
	}
	return toInts(g.g.Degree(sel, mode, true))
}

// AveragePathLength returns the mean shortest path length over connected
// vertex pairs.
func (g *Graph) AveragePathLength(ctx context.Context) (float64, error) {
	if err := g.open(); err != nil {
		return 0, err
	}
	avg, _, err := g.g.AveragePathLength(ctx, g.g.IsDirected(), true)
	return avg, err
}

// Contract merges vertex i into mapping[i]. Vertex attributes are combined
// with spec; attributes spec does not cover are dropped.
func (g *Graph) Contract(mapping []int, spec *attr.Spec) error {
	if err := g.open(); err != nil {
		return err
	}
	return g.g.ContractVertices(toInt64s(mapping), spec)
}

// Simplify removes loops and multi-edges, combining the edge attributes of
// merged edges with spec.
func (g *Graph) Simplify(spec *attr.Spec) error {
	if err := g.open(); err != nil {
		return err
	}
	return g.g.Simplify(true, true, spec)
}

// Permute returns a copy in which vertex i becomes vertex perm[i].
func (g *Graph) Permute(perm []int) (*Graph, error) {
	if err := g.open(); err != nil {
		return nil, err
	}
	return wrap(g.g.PermuteVertices(toInt64s(perm)))
}

// Vertices returns the live vertex attribute map.
func (g *Graph) Vertices() (*attr.Map, error) {
	s, err := g.storage()
	if err != nil {
		return nil, err
	}
	return s.Vertex, nil
}

// Edges returns the live edge attribute map.
func (g *Graph) Edges() (*attr.Map, error) {
	s, err := g.storage()
	if err != nil {
		return nil, err
	}
	return s.Edge, nil
}

// Attrs returns the live graph attributes.
func (g *Graph) Attrs() (*attr.GraphAttrs, error) {
	s, err := g.storage()
	if err != nil {
		return nil, err
	}
	return s.Graph, nil
}

func (g *Graph) storage() (*attr.Storage, error) {
	if err := g.open(); err != nil {
		return nil, err
	}
	return g.g.Attributes()
}

func toInts(xs []int64, err error) ([]int, error) {
	if err != nil {
		return nil, err
	}
	out := make([]int, len(xs))
	for i, x := range xs {
		out[i] = int(x)
	}
	return out, nil
}

func toInt64s(xs []int) []int64 {
	out := make([]int64, len(xs))
	for i, x := range xs {
		out[i] = int64(x)
	}
	return out
}
