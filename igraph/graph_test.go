package igraph_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/igraphgo/attr"
	"github.com/katalvlaran/igraphgo/igraph"
	"github.com/katalvlaran/igraphgo/native"
	"github.com/katalvlaran/igraphgo/status"
)

func ring(t *testing.T) *igraph.Graph {
	t.Helper()
	g, err := igraph.New(5)
	require.NoError(t, err)
	t.Cleanup(g.Close)
	require.NoError(t, g.AddEdges([][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}}, nil))
	return g
}

func TestRing(t *testing.T) {
	g := ring(t)
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 5, g.EdgeCount())
	assert.False(t, g.IsDirected())

	nb, err := g.Neighbors(0, igraph.All)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 4}, nb)

	deg, err := g.Degree(native.All, igraph.All)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 2, 2, 2}, deg)
}

func TestLatticeShortestPaths(t *testing.T) {
	ctx := context.Background()
	g, err := igraph.Lattice([]int{4, 3})
	require.NoError(t, err)
	defer g.Close()

	path, err := g.ShortestPath(ctx, 0, 11)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 7, 11}, path)

	preferred := []int{0, 4, 5, 6, 7, 11}
	weights := make([]float64, g.EdgeCount())
	for i := range weights {
		weights[i] = 2
	}
	for i := 0; i+1 < len(preferred); i++ {
		eid, err := g.EdgeID(preferred[i], preferred[i+1], true)
		require.NoError(t, err)
		weights[eid] = 1
	}

	for _, m := range []string{igraph.MethodAuto, igraph.MethodDijkstra, igraph.MethodBellmanFord} {
		path, err := g.ShortestPath(ctx, 0, 11, igraph.WithWeights(weights), igraph.WithMethod(m))
		require.NoError(t, err, m)
		assert.Equal(t, preferred, path, m)
	}

	path, err = g.ShortestPath(ctx, 0, 11, igraph.WithWeights(weights), igraph.WithMethod(igraph.MethodBFS))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 7, 11}, path, "bfs ignores weights")

	_, err = g.ShortestPath(ctx, 0, 11, igraph.WithMethod("astar"))
	require.ErrorIs(t, err, igraph.ErrUnknownMethod)
	require.ErrorIs(t, err, status.ErrIllegalArgument)
	assert.Contains(t, err.Error(), "unknown method")

	_, err = g.ShortestPath(ctx, 0, 11, igraph.WithWeights([]float64{1}))
	require.ErrorIs(t, err, igraph.ErrWeightCount)
}

func TestNegativeWeightsUseBellmanFord(t *testing.T) {
	g, err := igraph.New(3, igraph.Directed())
	require.NoError(t, err)
	defer g.Close()
	require.NoError(t, g.AddEdges([][2]int{{0, 1}, {1, 2}, {0, 2}}, nil))

	path, err := g.ShortestPath(context.Background(), 0, 2, igraph.WithWeights([]float64{1, -1, 1}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, path)
}

func TestCopyIsIndependent(t *testing.T) {
	g, err := igraph.Full(4)
	require.NoError(t, err)
	defer g.Close()
	es, err := g.Edges()
	require.NoError(t, err)
	require.NoError(t, es.Set("weight", []float64{4, 2, 5, 7, 8, 10}))

	c, err := g.Copy()
	require.NoError(t, err)
	defer c.Close()
	ces, err := c.Edges()
	require.NoError(t, err)
	w, err := ces.Get("weight")
	require.NoError(t, err)
	require.NoError(t, w.Set(attr.Span(0, 2), []float64{40, 20}))

	orig, err := es.Get("weight")
	require.NoError(t, err)
	fs, _ := orig.Floats()
	assert.Equal(t, []float64{4, 2, 5, 7, 8, 10}, fs)

	require.NoError(t, ces.Delete("weight"))
	assert.False(t, ces.Has("weight"))
	assert.True(t, es.Has("weight"))
}

func TestAddVerticesPadsAttributes(t *testing.T) {
	g, err := igraph.New(5)
	require.NoError(t, err)
	defer g.Close()
	vs, err := g.Vertices()
	require.NoError(t, err)
	require.NoError(t, vs.Set("age", []int{5, 10, 15, 20, 25}))

	require.NoError(t, g.AddVertices(3, nil))
	age, err := vs.Get("age")
	require.NoError(t, err)
	fs, _ := age.Floats()
	assert.Equal(t, []float64{5, 10, 15, 20, 25, 0, 0, 0}, fs)

	err = age.Append(30)
	require.ErrorIs(t, err, status.ErrIllegalArgument, "attribute lists of a graph have fixed length")
}

func TestNativeErrorMessage(t *testing.T) {
	g := ring(t)

	_, err := g.EdgeID(0, 2, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Error at")
	var nerr *status.Error
	require.True(t, errors.As(err, &nerr))
	assert.Contains(t, err.Error(), nerr.Code.String())

	_, pending := native.LastError()
	assert.False(t, pending)

	eid, err := g.EdgeID(0, 2, false)
	require.NoError(t, err)
	assert.Equal(t, -1, eid)
}

func TestContractAndSimplify(t *testing.T) {
	g := ring(t)
	vs, err := g.Vertices()
	require.NoError(t, err)
	require.NoError(t, vs.Set("weight", []float64{1, 2, 3, 4, 5}))

	spec := attr.NewSpec(attr.Use(attr.Sum))
	require.NoError(t, g.Contract([]int{0, 0, 1, 1, 1}, spec))
	assert.Equal(t, 2, g.VertexCount())

	vs, err = g.Vertices()
	require.NoError(t, err)
	w, err := vs.Get("weight")
	require.NoError(t, err)
	fs, _ := w.Floats()
	assert.Equal(t, []float64{3, 12}, fs)

	require.NoError(t, g.Simplify(nil))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestPermute(t *testing.T) {
	g, err := igraph.New(3)
	require.NoError(t, err)
	defer g.Close()
	vs, err := g.Vertices()
	require.NoError(t, err)
	require.NoError(t, vs.Set("name", []string{"a", "b", "c"}))

	p, err := g.Permute([]int{1, 2, 0})
	require.NoError(t, err)
	defer p.Close()
	pvs, err := p.Vertices()
	require.NoError(t, err)
	names, err := pvs.Get("name")
	require.NoError(t, err)
	strs, _ := names.Strings()
	assert.Equal(t, []string{"c", "a", "b"}, strs)
}

func TestGraphAttributes(t *testing.T) {
	g := ring(t)
	ga, err := g.Attrs()
	require.NoError(t, err)
	ga.Set("title", "pentagon")

	c, err := g.Copy()
	require.NoError(t, err)
	defer c.Close()
	cga, err := c.Attrs()
	require.NoError(t, err)
	v, err := cga.Get("title")
	require.NoError(t, err)
	assert.Equal(t, "pentagon", v)
}

func TestClosedGraph(t *testing.T) {
	g, err := igraph.New(1)
	require.NoError(t, err)
	g.Close()
	g.Close()

	_, err = g.Copy()
	assert.ErrorIs(t, err, igraph.ErrClosed)
	_, err = g.Vertices()
	assert.ErrorIs(t, err, igraph.ErrClosed)
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
	assert.False(t, g.IsDirected())
	assert.ErrorIs(t, g.AddVertices(1, nil), igraph.ErrClosed)
	assert.ErrorIs(t, g.AddEdges([][2]int{{0, 0}}, nil), igraph.ErrClosed)
}

func TestCancellation(t *testing.T) {
	if testing.Short() {
		t.Skip("long computation")
	}
	g, err := igraph.Lattice([]int{300, 300})
	require.NoError(t, err)
	defer g.Close()

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	start := time.Now()
	_, err = g.AveragePathLength(ctx)
	require.ErrorIs(t, err, status.ErrInterrupted)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), 10*time.Second)
}
