// SPDX-License-Identifier: MIT

package igraph

import (
	"fmt"

	"github.com/katalvlaran/igraphgo/native"
	"github.com/katalvlaran/igraphgo/status"
)

// ErrUnknownMethod is returned by ShortestPath for a method name outside
// auto, bfs, dijkstra and bellman_ford.
var ErrUnknownMethod = fmt.Errorf("%w: unknown method", status.ErrIllegalArgument)

// ErrClosed is returned by methods of a closed Graph.
var ErrClosed = native.ErrClosed

// ErrWeightCount is returned when the weight vector does not have one entry
// per edge.
var ErrWeightCount = fmt.Errorf("%w: one weight per edge required", status.ErrIllegalArgument)
