// SPDX-License-Identifier: MIT

// Package native binds the igraph C library.
//
// It owns every native value through Boxed, registers Go receivers for the
// library's error, warning, fatal and interruption handlers, backs the
// library's default random number generator with a Go rand.Source, and
// installs an attribute table that keeps graph, vertex and edge attributes
// in Go (package attr).
//
// Registration happens on the first native call; Init adjusts it and
// Restore undoes it.
//
// # Concurrency
//
// The native library keeps process-wide state, so all native calls made by
// this package are serialised by one lock and run on a locked OS thread.
// Values (graphs, vectors, selectors) are not safe for concurrent use.
// Functions that take a context.Context can be interrupted by cancelling
// it; they then fail with status.ErrInterrupted wrapping the context error.
package native
