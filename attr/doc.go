// SPDX-License-Identifier: MIT

// Package attr stores user-defined graph, vertex and edge attributes so that
// they survive every graph mutation the native library performs.
//
// The native library knows nothing about attribute values. It calls back into
// an attribute table at well-defined points (graph init/destroy/copy, vertices
// and edges appended, permuted or merged) and the table keeps a Storage per
// graph in sync. This package is the pure-Go half of that table:
//
//   - ValueList: a typed, contiguous list of values (Boolean, Numeric, String,
//     Object) with a logical length, a fixed-length flag and a doubling growth
//     policy. Lists stored in a Map are fixed-length: user code may rewrite
//     values but not the length, which only the attribute table changes.
//   - Map: attribute name → ValueList, all lists sharing the map's common length.
//   - GraphAttrs: attribute name → single value, for graph-level attributes.
//   - Storage: the reference-counted {graph, vertex, edge} triple owned by one
//     native graph.
//   - Spec / Combination: what happens to each attribute when groups of
//     vertices or edges are merged into one (IGNORE, FIRST, LAST, SUM, PROD,
//     MIN, MAX, MEAN, MEDIAN, RANDOM, CONCAT or a user function).
//
// Invariant: for every Map m and every list l in m, l.Len() == m.Len().
//
// Indexing a ValueList uses Index values instead of operator syntax:
//
//	l.Get(attr.At(3))                 // one-element copy
//	l.Get(attr.Span(1, 4))            // l[1:4]
//	l.Get(attr.Ellipsis)              // the whole list
//	l.Get(attr.Mask{true, false, ...}) // boolean mask, len == l.Len()
//	l.Get(attr.Indices{4, 0, 0})      // integer sequence
//	l.Take(attr.IndexArray{...})      // n-d integer array → raw values, same shape
//
// Nothing in this package is safe for concurrent mutation; storages are owned
// by one graph and the native library is driven from one goroutine at a time.
package attr
