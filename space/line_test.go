// SPDX-License-Identifier: EPL-2.0

package space

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine_Identity(t *testing.T) {
	t.Parallel()

	l := NewLine(8)
	assert.Equal(t, 1, l.Dims())
	assert.Equal(t, uint32(8), l.Length(0))
	assert.Equal(t, uint64(8), l.Size())

	for i := range uint64(8) {
		c, ok := l.IndexToCoord(i)
		require.True(t, ok)
		assert.Equal(t, Coord{uint32(i)}, c)
	}
}

func TestLine_Empty(t *testing.T) {
	t.Parallel()

	l := NewLine(0)
	assert.Equal(t, uint64(0), l.Size())

	_, ok := l.IndexToCoord(0)
	assert.False(t, ok)
}

func TestAdapter_LiftsLine(t *testing.T) {
	t.Parallel()

	a, err := NewAdapter(NewLine(5), 2)
	require.NoError(t, err)

	assert.Equal(t, 2, a.Dims())
	assert.Equal(t, uint32(5), a.Length(0))
	assert.Equal(t, uint32(1), a.Length(1))
	assert.Equal(t, uint64(5), a.Size(), "size must not double count the padded dimension")

	for i := range uint64(5) {
		c, ok := a.IndexToCoord(i)
		require.True(t, ok)
		assert.Equal(t, Coord{uint32(i), 0}, c)
	}

	_, ok := a.IndexToCoord(5)
	assert.False(t, ok)
}

func TestAdapter_RejectsNonIncreasingDims(t *testing.T) {
	t.Parallel()

	h, err := NewHilbert(4)
	require.NoError(t, err)

	tests := []struct {
		name  string
		inner Strategy
		dims  int
	}{
		{"line to line", NewLine(4), 1},
		{"line to zero", NewLine(4), 0},
		{"hilbert to plane", h, 2},
		{"hilbert down", h, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewAdapter(tt.inner, tt.dims)
			assert.ErrorIs(t, err, ErrAdapterDims)
		})
	}

	_, err = NewAdapter(nil, 2)
	assert.ErrorIs(t, err, ErrNilStrategy)
}

func TestAdapter_Inner(t *testing.T) {
	t.Parallel()

	l := NewLine(3)
	a, err := NewAdapter(l, 3)
	require.NoError(t, err)

	assert.Same(t, l, a.Inner())
	assert.Equal(t, uint64(3), a.Size())

	c, ok := a.IndexToCoord(2)
	require.True(t, ok)
	assert.Equal(t, Coord{2, 0, 0}, c)
}
