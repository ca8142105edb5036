package convert_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/igraphgo/convert"
	"github.com/katalvlaran/igraphgo/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type named struct{ s string }

type flag bool

func (n named) String() string { return n.s }

func TestBool(t *testing.T) {
	truthy := []any{true, 1, int8(-1), uint(3), 0.5, "x", []int{0}, map[string]int{"a": 1}, struct{}{}}
	falsy := []any{nil, false, 0, uint64(0), 0.0, "", []int{}, map[string]int{}}
	for _, v := range truthy {
		assert.True(t, convert.Bool(v), "%#v", v)
	}
	for _, v := range falsy {
		assert.False(t, convert.Bool(v), "%#v", v)
	}
}

func TestIndex(t *testing.T) {
	n, err := convert.Index(7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)

	n, err = convert.Index(3.0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, err = convert.Index(math.Nextafter(0x1p63, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64-1023), n)

	for _, bad := range []any{-1, int64(-5), 2.5, -1.0, "3", nil, 0x1p63, math.Inf(1), uint64(math.MaxUint64)} {
		_, err := convert.Index(bad)
		assert.ErrorIs(t, err, status.ErrIllegalArgument, "%#v", bad)
	}
}

func TestReal(t *testing.T) {
	assert.Equal(t, 2.0, convert.Real(2))
	assert.Equal(t, 1.0, convert.Real(true))
	assert.Equal(t, 1.5, convert.Real(" 1.5 "))
	assert.Equal(t, float64(float32(0.25)), convert.Real(float32(0.25)))
	assert.True(t, math.IsNaN(convert.Real("abc")))
	assert.True(t, math.IsNaN(convert.Real(struct{}{})))
	assert.Equal(t, 1.0, convert.Real(flag(true)))
	assert.Equal(t, 0.0, convert.Real(flag(false)))
}

func TestBytes(t *testing.T) {
	assert.Equal(t, []byte("héllo"), convert.Bytes("héllo"))
	assert.Equal(t, []byte("a�b"), convert.Bytes([]byte{'a', 0xff, 'b'}))
	assert.Equal(t, []byte("42"), convert.Bytes(42))
	assert.Equal(t, []byte("n"), convert.Bytes(named{"n"}))
	assert.Equal(t, []byte{}, convert.Bytes(nil))
}

func TestInts(t *testing.T) {
	got, err := convert.Ints([]any{1, int32(2), 3.0, uint8(4)})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4}, got)

	got, err = convert.Ints([3]int{5, 6, 7})
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 6, 7}, got)

	_, err = convert.Ints([]any{1, 2.5})
	assert.ErrorIs(t, err, status.ErrConversion)

	_, err = convert.Ints(5)
	assert.ErrorIs(t, err, status.ErrConversion)

	got, err = convert.Ints([]float64{-0x1p63})
	require.NoError(t, err)
	assert.Equal(t, []int64{math.MinInt64}, got)

	for _, big := range []float64{1e19, 0x1p63, -1e19} {
		_, err = convert.Ints([]float64{big})
		assert.ErrorIs(t, err, status.ErrConversion, "%v", big)
	}
}

func TestIndices_RejectsNegative(t *testing.T) {
	_, err := convert.Indices([]int{0, 1, -2})
	require.ErrorIs(t, err, status.ErrIllegalArgument)

	got, err := convert.Indices([]int{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReals_BoolsAndStrings(t *testing.T) {
	r, err := convert.Reals([]any{1, 2.5, true})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, 1}, r)

	_, err = convert.Reals([]any{"x"})
	assert.ErrorIs(t, err, status.ErrConversion)

	b, err := convert.Bools([]any{0, "a", nil, 2})
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, false, true}, b)

	s, err := convert.Strings([]any{"a", []byte("b"), named{"c"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, s)

	_, err = convert.Strings([]any{"a", 1})
	assert.ErrorIs(t, err, status.ErrConversion)
}

func TestDense_ColumnMajorRoundTrip(t *testing.T) {
	m, err := convert.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 4, 2, 5, 3, 6}, m.ColMajor())

	back, err := convert.FromColMajor(2, 3, m.ColMajor())
	require.NoError(t, err)
	assert.True(t, m.Equal(back))
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, back.RowsData())
}

func TestDense_Accessors(t *testing.T) {
	m, err := convert.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 0, 9))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 9.0, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, convert.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), status.ErrIllegalArgument)

	_, err = convert.NewDense(-1, 2)
	assert.ErrorIs(t, err, convert.ErrBadShape)

	_, err = convert.FromRows([][]float64{{1}, {1, 2}})
	assert.True(t, errors.Is(err, convert.ErrNonRectangular))

	_, err = convert.FromColMajor(2, 2, []float64{1})
	assert.ErrorIs(t, err, convert.ErrBadShape)
}

func TestDense_Empty(t *testing.T) {
	m, err := convert.FromRows(nil)
	require.NoError(t, err)
	r, c := m.Shape()
	assert.Zero(t, r)
	assert.Zero(t, c)
	assert.Empty(t, m.ColMajor())

	z, err := convert.NewDense(0, 3)
	require.NoError(t, err)
	assert.Equal(t, "", z.String())
}
