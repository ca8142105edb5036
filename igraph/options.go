// SPDX-License-Identifier: MIT

package igraph

import "github.com/katalvlaran/igraphgo/native"

// Mode selects the edges followed from a vertex of a directed graph.
type Mode = native.Mode

const (
	Out = native.Out
	In  = native.In
	All = native.Any
)

// Options configure graph constructors.
type Options struct {
	Directed bool
	Loops    bool
	Circular bool
	Mutual   bool
	Nei      int
}

// Option mutates Options.
type Option func(*Options)

// Directed builds a directed graph.
func Directed() Option { return func(o *Options) { o.Directed = true } }

// WithLoops allows self-loops in Full and Random.
func WithLoops() Option { return func(o *Options) { o.Loops = true } }

// Circular wraps every lattice dimension.
func Circular() Option { return func(o *Options) { o.Circular = true } }

// Mutual adds edges in both directions in a directed lattice.
func Mutual() Option { return func(o *Options) { o.Mutual = true } }

// WithNeighborhood connects lattice vertices up to k steps apart.
func WithNeighborhood(k int) Option { return func(o *Options) { o.Nei = k } }

func buildOptions(opts []Option) Options {
	o := Options{Nei: 1}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Path methods accepted by WithMethod.
const (
	MethodAuto        = "auto"
	MethodBFS         = "bfs"
	MethodDijkstra    = "dijkstra"
	MethodBellmanFord = "bellman_ford"
)

// PathOptions configure ShortestPath.
type PathOptions struct {
	Method  string
	Weights []float64
	Mode    Mode
}

// PathOption mutates PathOptions.
type PathOption func(*PathOptions)

// WithMethod selects the algorithm: auto (default), bfs, dijkstra or
// bellman_ford.
func WithMethod(m string) PathOption { return func(o *PathOptions) { o.Method = m } }

// WithWeights sets one weight per edge, indexed by edge id.
func WithWeights(w []float64) PathOption { return func(o *PathOptions) { o.Weights = w } }

// WithMode sets the direction followed in directed graphs. Default: Out.
func WithMode(m Mode) PathOption { return func(o *PathOptions) { o.Mode = m } }
