// SPDX-License-Identifier: MIT

// Package igraphgo binds the igraph C library for Go.
//
// The module is organised in layers:
//
//	status/  — native error codes, the last-error record and error kinds
//	convert/ — coercion of Go values and sequences to native scalar types,
//	           row-major host matrices and their column-major layout
//	attr/    — attribute value lists, per-graph attribute storage and
//	           combination policies for merged vertices and edges
//	native/  — cgo bridge: owned native values, containers and views,
//	           selectors, handlers, RNG adapter, attribute table, graphs
//	igraph/  — small user-facing Graph API
//	config/  — YAML/TOML settings and environment overrides
//
// The command cmd/igraphctl checks an installation and exercises the
// binding. Building requires igraph 0.10 and pkg-config.
package igraphgo
