// SPDX-License-Identifier: MIT

// Package igraph is a small graph API on top of package native.
//
// A Graph owns one native graph. Construction, traversal and analysis run
// in the native library; vertex, edge and graph attributes live in Go and
// follow every native mutation (see package attr):
//
//	g, _ := igraph.Lattice([]int{4, 3})
//	defer g.Close()
//	path, _ := g.ShortestPath(ctx, 0, 11)
//
// Graphs are not safe for concurrent use; see package native for the
// concurrency contract.
package igraph
