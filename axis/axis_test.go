package axis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Derived", func(t *testing.T) {
		a, err := New(Inline, []int{100, 102, 104})
		require.NoError(t, err)

		assert.Equal(t, "Inline", a.Name())
		assert.Equal(t, 3, a.Len())
		assert.Equal(t, 100, a.Origin())
		assert.Equal(t, 2, a.Stride())
		assert.Equal(t, 104, a.Last())
		assert.Equal(t, 106, a.Extent())
		assert.Equal(t, "Inline 100:106:2", a.String())
	})

	t.Run("ValuesAreCopied", func(t *testing.T) {
		in := []int{0, 4, 8}
		a := MustNew(Samples, in)
		in[0] = 99

		vals := a.Values()
		assert.Equal(t, []int{0, 4, 8}, vals)
		vals[1] = 99
		assert.Equal(t, 4, a.Value(1))
	})

	tests := []struct {
		name   string
		values []int
	}{
		{"Empty", nil},
		{"Single", []int{1}},
		{"ZeroStride", []int{5, 5, 5}},
		{"Descending", []int{10, 8, 6}},
		{"Irregular", []int{1, 2, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(Crossline, tt.values)
			require.ErrorIs(t, err, ErrInvalidAxis)
		})
	}
}

func TestArange(t *testing.T) {
	a, err := Arange(Crossline, 10, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 12, 14, 16}, a.Values())

	_, err = Arange(Crossline, 10, 2, -1)
	require.ErrorIs(t, err, ErrInvalidAxis)
}

func TestAxis_Index(t *testing.T) {
	a := MustNew(Inline, []int{100, 102, 104})

	for i, v := range a.Values() {
		got, ok := a.Index(v)
		require.True(t, ok)
		assert.Equal(t, i, got)
		assert.Equal(t, v, a.Value(got))
	}

	_, ok := a.Index(101)
	assert.False(t, ok)
}
