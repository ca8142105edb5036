// SPDX-License-Identifier: MIT

package attr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrow_FillsTypeDefault(t *testing.T) {
	cases := []struct {
		name   string
		values any
		want   any
	}{
		{"numeric", []float64{1, 2, 3}, 0.0},
		{"boolean", []bool{true}, false},
		{"string", []string{"x", "y"}, ""},
		{"object", []any{struct{}{}}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := NewValueList(tc.values, Unspecified)
			require.NoError(t, err)
			n := l.Len()

			l.grow(3)
			require.Equal(t, n+3, l.Len())
			for i := n; i < n+3; i++ {
				v, err := l.Value(i)
				require.NoError(t, err)
				assert.Equal(t, tc.want, v, "position %d", i)
			}
		})
	}
}

func TestGrow_DoublesToPowerOfTwo(t *testing.T) {
	l, err := NewValueList([]float64{1, 2, 3}, Numeric)
	require.NoError(t, err)
	require.Equal(t, 3, l.Cap())

	l.grow(2)
	assert.Equal(t, 8, l.Cap())
	assert.Equal(t, []any{1.0, 2.0, 3.0, 0.0, 0.0}, l.Values())

	l.grow(3)
	assert.Equal(t, 8, l.Cap(), "fits in the existing buffer")
	l.grow(1)
	assert.Equal(t, 16, l.Cap())
}

func TestGrow_PreservesFixedFlag(t *testing.T) {
	m := NewMap(2)
	require.NoError(t, m.Set("w", []float64{1, 2}))
	m.Extend(2)

	l, err := m.Get("w")
	require.NoError(t, err)
	assert.True(t, l.Fixed())
	assert.Equal(t, 4, l.Len())
}

func TestNextPow2(t *testing.T) {
	for n, want := range map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 5: 8, 8: 8, 9: 16} {
		assert.Equal(t, want, nextPow2(n), "n=%d", n)
	}
}

func TestWiden(t *testing.T) {
	assert.Equal(t, Numeric, widen(Numeric, Boolean))
	assert.Equal(t, Numeric, widen(Boolean, Numeric))
	assert.Equal(t, Object, widen(String, Numeric))
	assert.Equal(t, Object, widen(Boolean, String))
	assert.Equal(t, String, widen(Unspecified, String))
	assert.Equal(t, Object, widen(Object, Boolean))
}
