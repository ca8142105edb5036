package native_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/igraphgo/attr"
	"github.com/katalvlaran/igraphgo/convert"
	"github.com/katalvlaran/igraphgo/native"
	"github.com/katalvlaran/igraphgo/status"
)

type NativeSuite struct {
	suite.Suite
}

func TestNativeSuite(t *testing.T) {
	suite.Run(t, new(NativeSuite))
}

func (s *NativeSuite) SetupSuite() {
	s.Require().NoError(native.Init(native.WithSeed(42)))
}

// lattice returns the 4x3 lattice used by the path tests.
func (s *NativeSuite) lattice() *native.Graph {
	g, err := native.SquareLattice([]int64{4, 3}, 1, false, false, false)
	s.Require().NoError(err)
	s.T().Cleanup(g.Close)
	return g
}

func (s *NativeSuite) TestVectorRoundTrip() {
	require := require.New(s.T())

	v, err := native.VectorFrom([]float64{1.5, -2, 3})
	require.NoError(err)
	defer v.Close()
	require.Equal(3, v.Len())
	require.Equal([]float64{1.5, -2, 3}, v.Slice())
	require.False(v.IsView())

	vi, err := native.VectorIntFrom([]int64{4, 0, 7})
	require.NoError(err)
	defer vi.Close()
	require.Equal([]int64{4, 0, 7}, vi.Slice())

	vb, err := native.VectorBoolFrom([]bool{true, false, true})
	require.NoError(err)
	defer vb.Close()
	require.Equal([]bool{true, false, true}, vb.Slice())

	sv, err := native.StrVectorFrom([]string{"a", "", "ccc"})
	require.NoError(err)
	defer sv.Close()
	require.Equal([]string{"a", "", "ccc"}, sv.Slice())
}

func (s *NativeSuite) TestEmptyContainers() {
	require := require.New(s.T())

	v, err := native.VectorFrom(nil)
	require.NoError(err)
	defer v.Close()
	require.Equal(0, v.Len())
	require.Empty(v.Slice())

	z, err := native.NewVectorInt(3)
	require.NoError(err)
	defer z.Close()
	require.Equal([]int64{0, 0, 0}, z.Slice())
}

func (s *NativeSuite) TestToVectorCoercions() {
	require := require.New(s.T())

	v, err := native.ToVector([]int{1, 2, 3})
	require.NoError(err)
	defer v.Close()
	require.Equal([]float64{1, 2, 3}, v.Slice())

	vi, err := native.ToVectorInt([]float64{1, -2})
	require.NoError(err)
	defer vi.Close()
	require.Equal([]int64{1, -2}, vi.Slice())

	_, err = native.ToVectorInt([]float64{1.5})
	require.ErrorIs(err, status.ErrConversion, "fractional entries are rejected before any native call")
}

func (s *NativeSuite) TestViews() {
	require := require.New(s.T())

	xs := []float64{1, 2, 3}
	v, err := native.ViewVector(xs)
	require.NoError(err)
	require.True(v.IsView())
	require.Equal(xs, v.Slice())
	xs[1] = 20
	require.Equal([]float64{1, 20, 3}, v.Slice(), "a view aliases the slice")
	v.Close()
	v.Close()

	empty, err := native.ViewVector(nil)
	require.NoError(err)
	defer empty.Close()
	require.False(empty.IsView(), "empty input falls back to an owning vector")
	require.Equal(0, empty.Len())

	ids, err := native.ViewVectorInt([]int64{3, 1})
	require.NoError(err)
	defer ids.Close()
	require.Equal([]int64{3, 1}, ids.Slice())
}

func (s *NativeSuite) TestMatrixColumnMajor() {
	require := require.New(s.T())

	d, err := convert.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(err)
	m, err := native.MatrixFrom(d)
	require.NoError(err)
	defer m.Close()

	rows, cols := m.Shape()
	require.Equal(2, rows)
	require.Equal(3, cols)
	back, err := m.Dense()
	require.NoError(err)
	require.Equal(d.RowsData(), back.RowsData())

	mi, err := native.MatrixIntFrom([][]int64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(err)
	defer mi.Close()
	require.Equal([][]int64{{1, 2}, {3, 4}, {5, 6}}, mi.Rows())

	_, err = native.MatrixIntFrom([][]int64{{1, 2}, {3}})
	require.ErrorIs(err, status.ErrIllegalArgument)

	l, err := native.VectorIntListFrom([][]int64{{1}, {}, {2, 3}})
	require.NoError(err)
	defer l.Close()
	require.Equal(3, l.Len())
	require.Equal([][]int64{{1}, {}, {2, 3}}, l.Slices())
}

func (s *NativeSuite) TestSelectors() {
	require := require.New(s.T())

	cases := []struct {
		desc any
		kind native.SelectorKind
	}{
		{nil, native.SelectNone},
		{native.All, native.SelectAll},
		{3, native.SelectSingle},
		{[]int{0, 2}, native.SelectVector},
		{[]int{}, native.SelectVector},
	}
	for _, c := range cases {
		vs, err := native.NewVertexSelector(c.desc)
		require.NoError(err, "%v", c.desc)
		require.Equal(c.kind, vs.Kind(), "%v", c.desc)
		vs.Close()

		es, err := native.NewEdgeSelector(c.desc)
		require.NoError(err, "%v", c.desc)
		require.Equal(c.kind, es.Kind(), "%v", c.desc)
		es.Close()
	}

	_, err := native.NewVertexSelector("some")
	require.ErrorIs(err, status.ErrType)
	_, err = native.NewVertexSelector(1.5)
	require.ErrorIs(err, status.ErrType)
	_, err = native.NewEdgeSelector(-1)
	require.ErrorIs(err, status.ErrIllegalArgument)
	_, err = native.NewEdgeSelector([]int{0, -4})
	require.ErrorIs(err, status.ErrIllegalArgument)
}

func (s *NativeSuite) TestRingGraph() {
	require := require.New(s.T())

	g, err := native.Empty(5, false)
	require.NoError(err)
	defer g.Close()
	require.NoError(g.AddEdges([]int64{0, 1, 1, 2, 2, 3, 3, 4, 4, 0}, nil))

	require.EqualValues(5, g.VertexCount())
	require.EqualValues(5, g.EdgeCount())
	require.False(g.IsDirected())

	nb, err := g.Neighbors(0, native.Any)
	require.NoError(err)
	require.ElementsMatch([]int64{1, 4}, nb)

	deg, err := g.Degree(native.All, native.Any, true)
	require.NoError(err)
	require.Equal([]int64{2, 2, 2, 2, 2}, deg)

	from, to, err := g.Edge(2)
	require.NoError(err)
	require.ElementsMatch([]int64{2, 3}, []int64{from, to})

	require.ErrorIs(g.AddEdges([]int64{0}, nil), status.ErrIllegalArgument)
}

func (s *NativeSuite) TestDeleteVerticesAndEdges() {
	require := require.New(s.T())

	g, err := native.Full(4, false, false)
	require.NoError(err)
	defer g.Close()
	st, err := g.Attributes()
	require.NoError(err)
	require.NoError(st.Vertex.Set("id", []float64{0, 1, 2, 3}))

	require.NoError(g.DeleteVertices([]int{1}))
	require.EqualValues(3, g.VertexCount())
	require.EqualValues(3, g.EdgeCount())
	st, err = g.Attributes()
	require.NoError(err)
	ids, err := st.Vertex.Get("id")
	require.NoError(err)
	fs, _ := ids.Floats()
	require.Equal([]float64{0, 2, 3}, fs)

	require.NoError(g.DeleteEdges(0))
	require.EqualValues(2, g.EdgeCount())
	require.NoError(g.DeleteEdges(nil))
	require.EqualValues(2, g.EdgeCount())
}

func (s *NativeSuite) TestShortestPaths() {
	require := require.New(s.T())
	ctx := context.Background()
	g := s.lattice()

	path, err := g.ShortestPath(ctx, 0, 11, native.Out)
	require.NoError(err)
	require.Equal([]int64{0, 1, 2, 3, 7, 11}, path)

	preferred := []int64{0, 4, 5, 6, 7, 11}
	weights := make([]float64, g.EdgeCount())
	for i := range weights {
		weights[i] = 2
	}
	for i := 0; i+1 < len(preferred); i++ {
		eid, err := g.EdgeID(preferred[i], preferred[i+1], false, true)
		require.NoError(err)
		weights[eid] = 1
	}

	path, err = g.ShortestPathDijkstra(ctx, 0, 11, weights, native.Out)
	require.NoError(err)
	require.Equal(preferred, path)

	path, err = g.ShortestPathBellmanFord(ctx, 0, 11, weights, native.Out)
	require.NoError(err)
	require.Equal(preferred, path)
}

func (s *NativeSuite) TestNativeErrorIsTranslated() {
	require := require.New(s.T())

	g, err := native.Empty(4, false)
	require.NoError(err)
	defer g.Close()

	eid, err := g.EdgeID(0, 3, false, false)
	require.NoError(err)
	require.EqualValues(-1, eid)

	_, err = g.EdgeID(0, 3, false, true)
	require.Error(err)
	require.Contains(err.Error(), "Error at")
	var nerr *status.Error
	require.True(errors.As(err, &nerr))
	require.NotEqual(status.Success, nerr.Code)
	require.NotEmpty(nerr.Code.Symbol())

	_, pending := native.LastError()
	require.False(pending, "the error record is consumed by the failing call")
}

func (s *NativeSuite) TestCopyIsolatesAttributes() {
	require := require.New(s.T())

	g, err := native.Full(4, false, false)
	require.NoError(err)
	defer g.Close()
	st, err := g.Attributes()
	require.NoError(err)
	require.NoError(st.Edge.Set("weight", []float64{4, 2, 5, 7, 8, 10}))
	st.Graph.Set("name", "k4")

	c, err := g.Copy()
	require.NoError(err)
	defer c.Close()
	require.NotEqual(g.ID(), c.ID())

	cst, err := c.Attributes()
	require.NoError(err)
	require.NotSame(st, cst)
	w, err := cst.Edge.Get("weight")
	require.NoError(err)
	require.NoError(w.Set(attr.At(0), 100.0))

	orig, err := st.Edge.Get("weight")
	require.NoError(err)
	fs, _ := orig.Floats()
	require.Equal([]float64{4, 2, 5, 7, 8, 10}, fs)

	require.NoError(cst.Edge.Delete("weight"))
	require.False(cst.Edge.Has("weight"))
	require.True(st.Edge.Has("weight"))

	name, err := cst.Graph.Get("name")
	require.NoError(err)
	require.Equal("k4", name)
}

func (s *NativeSuite) TestAddVerticesExtendsAttributes() {
	require := require.New(s.T())

	g, err := native.Empty(5, false)
	require.NoError(err)
	defer g.Close()
	st, err := g.Attributes()
	require.NoError(err)
	require.NoError(st.Vertex.Set("age", []float64{5, 10, 15, 20, 25}))

	require.NoError(g.AddVertices(3, nil))
	age, err := st.Vertex.Get("age")
	require.NoError(err)
	fs, _ := age.Floats()
	require.Equal([]float64{5, 10, 15, 20, 25, 0, 0, 0}, fs)
	require.True(age.Fixed())
}

func (s *NativeSuite) TestRecordsReachAttributes() {
	require := require.New(s.T())

	g, err := native.Empty(2, false)
	require.NoError(err)
	defer g.Close()
	require.NoError(g.AddVertices(2, native.Records{
		"label": []string{"c", "d"},
		"seen":  []bool{true, false},
		"size":  []float64{1.5, 2.5},
	}))

	st, err := g.Attributes()
	require.NoError(err)
	label, err := st.Vertex.Get("label")
	require.NoError(err)
	strs, ok := label.Strings()
	require.True(ok)
	require.Equal([]string{"", "", "c", "d"}, strs)

	seen, err := st.Vertex.Get("seen")
	require.NoError(err)
	bs, ok := seen.Bools()
	require.True(ok)
	require.Equal([]bool{false, false, true, false}, bs)

	size, err := st.Vertex.Get("size")
	require.NoError(err)
	fs, _ := size.Floats()
	require.Equal([]float64{0, 0, 1.5, 2.5}, fs)

	require.ErrorIs(g.AddVertices(1, native.Records{"size": []float64{1, 2}}), status.ErrIllegalArgument)
	require.EqualValues(4, g.VertexCount(), "a rejected record adds nothing")
}

func (s *NativeSuite) TestSimplifyCombinesEdgeAttributes() {
	require := require.New(s.T())

	g, err := native.Empty(2, false)
	require.NoError(err)
	defer g.Close()
	require.NoError(g.AddEdges([]int64{0, 1, 0, 1, 1, 1}, native.Records{
		"w": []float64{1, 2, 4},
		"n": []float64{7, 8, 9},
	}))

	spec := attr.NewSpec(attr.Use(attr.Ignore)).Set("w", attr.Use(attr.Sum))
	require.NoError(g.Simplify(true, true, spec))
	require.EqualValues(1, g.EdgeCount())

	st, err := g.Attributes()
	require.NoError(err)
	w, err := st.Edge.Get("w")
	require.NoError(err)
	fs, _ := w.Floats()
	require.Equal([]float64{3}, fs)
	require.False(st.Edge.Has("n"), "ignored attributes are dropped")
}

func (s *NativeSuite) TestContractWithFunction() {
	require := require.New(s.T())

	g, err := native.Full(4, false, false)
	require.NoError(err)
	defer g.Close()
	st, err := g.Attributes()
	require.NoError(err)
	require.NoError(st.Vertex.Set("name", []string{"a", "b", "c", "d"}))
	require.NoError(st.Vertex.Set("age", []float64{1, 2, 3, 4}))

	size := func(group *attr.ValueList) (any, error) { return float64(group.Len()), nil }
	spec := attr.NewSpec(attr.Use(attr.Ignore)).
		Set("name", attr.Use(attr.Concat)).
		Set("age", attr.With(size))
	require.NoError(g.ContractVertices([]int64{0, 0, 1, 1}, spec))
	require.EqualValues(2, g.VertexCount())

	st, err = g.Attributes()
	require.NoError(err)
	name, err := st.Vertex.Get("name")
	require.NoError(err)
	strs, _ := name.Strings()
	require.Equal([]string{"ab", "cd"}, strs)
	age, err := st.Vertex.Get("age")
	require.NoError(err)
	fs, _ := age.Floats()
	require.Equal([]float64{2, 2}, fs)
}

func (s *NativeSuite) TestLatticeShapes() {
	require := require.New(s.T())

	g := s.lattice()
	require.EqualValues(12, g.VertexCount())
	require.EqualValues(17, g.EdgeCount())

	torus, err := native.SquareLattice([]int64{4, 3}, 1, false, false, true)
	require.NoError(err)
	defer torus.Close()
	require.EqualValues(24, torus.EdgeCount())
	deg, err := torus.Degree(native.All, native.Any, true)
	require.NoError(err)
	require.Len(deg, 12)
	for _, d := range deg {
		require.EqualValues(4, d)
	}

	cube, err := native.SquareLattice([]int64{2, 2, 2}, 1, false, false, false)
	require.NoError(err)
	defer cube.Close()
	require.EqualValues(8, cube.VertexCount())
	require.EqualValues(12, cube.EdgeCount())
}

func (s *NativeSuite) TestCombinationQuery() {
	require := require.New(s.T())

	size := func(group *attr.ValueList) (any, error) { return float64(group.Len()), nil }
	c, err := native.NewAttributeCombination(attr.NewSpec(attr.Use(attr.Sum)).
		Set("w", attr.Use(attr.Min)).
		Set("n", attr.Use(attr.Ignore)).
		Set("f", attr.With(size)))
	require.NoError(err)
	defer c.Close()

	for name, want := range map[string]attr.Policy{"w": attr.Min, "n": attr.Ignore, "other": attr.Sum} {
		got, err := c.Query(name)
		require.NoError(err)
		require.Equal(want, got.Policy, name)
	}
	f, err := c.Query("f")
	require.NoError(err)
	require.Equal(attr.Function, f.Policy)
	require.NotNil(f.Fn)

	bare, err := native.NewAttributeCombination((&attr.Spec{}).Set("n", attr.Use(attr.Ignore)))
	require.NoError(err)
	defer bare.Close()
	got, err := bare.Query("n")
	require.NoError(err)
	require.Equal(attr.Ignore, got.Policy)
	got, err = bare.Query("missing")
	require.NoError(err)
	require.Equal(attr.Default, got.Policy)
}

func (s *NativeSuite) TestClosedGraphFails() {
	require := require.New(s.T())

	g, err := native.Empty(2, false)
	require.NoError(err)
	g.Close()
	g.Close()

	require.Zero(g.VertexCount())
	require.Zero(g.EdgeCount())
	require.False(g.IsDirected())
	require.ErrorIs(g.AddVertices(1, nil), native.ErrClosed)
	require.ErrorIs(g.AddEdges([]int64{0, 1}, nil), native.ErrClosed)
	_, err = g.Copy()
	require.ErrorIs(err, native.ErrClosed)
	_, err = g.Attributes()
	require.ErrorIs(err, native.ErrClosed)
	_, err = g.ShortestPath(context.Background(), 0, 1, native.Out)
	require.ErrorIs(err, native.ErrClosed)
	require.ErrorIs(g.Simplify(true, true, nil), native.ErrClosed)
}

func (s *NativeSuite) TestCallbackErrorPropagates() {
	require := require.New(s.T())

	g, err := native.Empty(2, false)
	require.NoError(err)
	defer g.Close()
	require.NoError(g.AddEdges([]int64{0, 1, 0, 1}, native.Records{"w": []float64{1, 2}}))

	boom := errors.New("boom")
	spec := attr.NewSpec(attr.With(func(*attr.ValueList) (any, error) { return nil, boom }))
	err = g.Simplify(true, true, spec)
	require.ErrorIs(err, boom)
	_, pending := native.LastError()
	require.False(pending)

	panicky := attr.NewSpec(attr.With(func(*attr.ValueList) (any, error) { panic("kaput") }))
	err = g.Simplify(true, true, panicky)
	require.ErrorIs(err, status.ErrRuntime)
	require.Contains(err.Error(), "kaput")
}

func (s *NativeSuite) TestPermuteVertices() {
	require := require.New(s.T())

	g, err := native.Empty(3, true)
	require.NoError(err)
	defer g.Close()
	require.NoError(g.AddEdges([]int64{0, 1}, nil))
	st, err := g.Attributes()
	require.NoError(err)
	require.NoError(st.Vertex.Set("age", []float64{5, 10, 15}))

	p, err := g.PermuteVertices([]int64{2, 0, 1})
	require.NoError(err)
	defer p.Close()

	pst, err := p.Attributes()
	require.NoError(err)
	age, err := pst.Vertex.Get("age")
	require.NoError(err)
	fs, _ := age.Floats()
	require.Equal([]float64{10, 15, 5}, fs)

	from, to, err := p.Edge(0)
	require.NoError(err)
	require.EqualValues(2, from)
	require.EqualValues(0, to)
}

func (s *NativeSuite) TestSeededRandomGraphsRepeat() {
	require := require.New(s.T())
	ctx := context.Background()

	edges := func() [][2]int64 {
		_, err := native.Seed(7)
		require.NoError(err)
		g, err := native.ErdosRenyiGNM(ctx, 20, 30, false, false)
		require.NoError(err)
		defer g.Close()
		out := make([][2]int64, g.EdgeCount())
		for i := range out {
			f, t, err := g.Edge(int64(i))
			require.NoError(err)
			out[i] = [2]int64{f, t}
		}
		return out
	}
	first := edges()
	require.Len(first, 30)
	require.Equal(first, edges())
}

func (s *NativeSuite) TestAttributeTableIsInstalledOnce() {
	require := require.New(s.T())

	prev := native.InstallAttributeTable()
	require.True(prev.IsBinding())
	again := native.InstallAttributeTable()
	require.True(again.IsBinding())
}

func (s *NativeSuite) TestRestoreThenReuse() {
	require := require.New(s.T())

	native.Restore()
	native.Restore()

	g, err := native.Empty(2, false)
	require.NoError(err, "the next call registers again")
	defer g.Close()
	require.True(native.InstallAttributeTable().IsBinding())
	_, err = g.Attributes()
	require.NoError(err)
}

func (s *NativeSuite) TestCancelledContext() {
	require := require.New(s.T())

	g := s.lattice()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := g.ShortestPath(ctx, 0, 11, native.Out)
	require.ErrorIs(err, status.ErrInterrupted)
	require.ErrorIs(err, context.Canceled)
}

func (s *NativeSuite) TestInterruptLongComputation() {
	if testing.Short() {
		s.T().Skip("long computation")
	}
	require := require.New(s.T())

	g, err := native.SquareLattice([]int64{300, 300}, 1, false, false, false)
	require.NoError(err)
	defer g.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	start := time.Now()
	_, _, err = g.AveragePathLength(ctx, false, true)
	require.ErrorIs(err, status.ErrInterrupted)
	require.ErrorIs(err, context.DeadlineExceeded)
	require.Less(time.Since(start), 10*time.Second)

	// The library is usable again afterwards.
	path, err := s.lattice().ShortestPath(context.Background(), 0, 3, native.Out)
	require.NoError(err)
	require.Equal([]int64{0, 1, 2, 3}, path)
}

func (s *NativeSuite) TestVersion() {
	v := native.Version()
	s.Require().Equal(0, v.Major)
	s.Require().True(strings.HasPrefix(v.String(), "0."))
}
