// SPDX-License-Identifier: MIT

package igraph

import (
	"context"
	"fmt"
	"slices"
)

// ShortestPath returns the vertices of a shortest path from -> to, empty
// when to is unreachable.
//
// Methods:
//   - auto: bfs without weights, dijkstra for non-negative weights,
//     bellman_ford otherwise.
//   - bfs: ignores weights.
//   - dijkstra: non-negative weights.
//   - bellman_ford: arbitrary weights; negative cycles are an error.
//
// Errors:
//   - ErrUnknownMethod for any other method.
//   - ErrWeightCount when weights are given but not one per edge.
func (g *Graph) ShortestPath(ctx context.Context, from, to int, opts ...PathOption) ([]int, error) {
	if err := g.open(); err != nil {
		return nil, err
	}
	o := PathOptions{Method: MethodAuto, Mode: Out}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Weights != nil && len(o.Weights) != g.EdgeCount() {
		return nil, fmt.Errorf("%w: %d weights for %d edges", ErrWeightCount, len(o.Weights), g.EdgeCount())
	}

	method := o.Method
	if method == MethodAuto {
		method = autoMethod(o.Weights)
	}
	f, t := int64(from), int64(to)
	switch method {
	case MethodBFS:
		return toInts(g.g.ShortestPath(ctx, f, t, o.Mode))
	case MethodDijkstra:
		return toInts(g.g.ShortestPathDijkstra(ctx, f, t, o.Weights, o.Mode))
	case MethodBellmanFord:
		return toInts(g.g.ShortestPathBellmanFord(ctx, f, t, o.Weights, o.Mode))
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownMethod, o.Method)
}

func autoMethod(weights []float64) string {
	if weights == nil {
		return MethodBFS
	}
	if slices.ContainsFunc(weights, func(w float64) bool { return w < 0 }) {
		return MethodBellmanFord
	}
	return MethodDijkstra
}
