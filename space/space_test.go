// SPDX-License-Identifier: EPL-2.0

package space

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHilbert(t *testing.T, side uint32) *Hilbert {
	t.Helper()

	h, err := NewHilbert(side)
	require.NoError(t, err)

	return h
}

func TestStrategies_CoordWithinLengths(t *testing.T) {
	t.Parallel()

	lifted, err := NewAdapter(NewLine(37), 2)
	require.NoError(t, err)

	tests := []struct {
		name     string
		strategy Strategy
	}{
		{"hilbert 1", mustHilbert(t, 1)},
		{"hilbert 2", mustHilbert(t, 2)},
		{"hilbert 16", mustHilbert(t, 16)},
		{"line 37", NewLine(37)},
		{"adapted line 37", lifted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := tt.strategy
			for i := range s.Size() {
				c, ok := s.IndexToCoord(i)
				require.True(t, ok, "IndexToCoord(%d) reported no value", i)
				require.Len(t, c, s.Dims())

				for d := range s.Dims() {
					assert.Less(t, c[d], s.Length(d), "index %d dim %d", i, d)
				}
			}

			_, ok := s.IndexToCoord(s.Size())
			assert.False(t, ok, "IndexToCoord(Size()) should report no value")

			_, ok = s.IndexToCoord(s.Size() + 100)
			assert.False(t, ok)
		})
	}
}

func TestProductSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(64), ProductSize(mustHilbert(t, 8)))
	assert.Equal(t, uint64(12), ProductSize(NewLine(12)))
}

func TestPlanar(t *testing.T) {
	t.Parallel()

	h := mustHilbert(t, 4)
	got, err := Planar(h)
	require.NoError(t, err)
	assert.Same(t, h, got)

	flat, err := Planar(NewLine(10))
	require.NoError(t, err)
	assert.Equal(t, 2, flat.Dims())
	assert.Equal(t, uint32(10), flat.Length(0))
	assert.Equal(t, uint32(1), flat.Length(1))

	cube, err := NewAdapter(h, 3)
	require.NoError(t, err)
	_, err = Planar(cube)
	assert.ErrorIs(t, err, ErrTooManyDims)

	_, err = Planar(nil)
	assert.ErrorIs(t, err, ErrNilStrategy)
}

func TestLength_PanicsOutOfRange(t *testing.T) {
	t.Parallel()

	lifted, err := NewAdapter(NewLine(4), 2)
	require.NoError(t, err)

	assert.Panics(t, func() { NewLine(4).Length(1) })
	assert.Panics(t, func() { mustHilbert(t, 4).Length(2) })
	assert.Panics(t, func() { lifted.Length(2) })
	assert.Panics(t, func() { lifted.Length(-1) })
}
