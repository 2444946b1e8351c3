// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audpix/audio"
	"github.com/ik5/audpix/internal/audiotest"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int16(-5), Normalize(int16(-5)))

	assert.Equal(t, int16(0), Normalize(int32(1)))
	assert.Equal(t, int16(-50), Normalize(int32(-100)))
	assert.Equal(t, int16(math.MaxInt16), Normalize(int32(math.MaxInt32)))
	assert.Equal(t, int16(math.MinInt16), Normalize(int32(math.MinInt32)))

	assert.Equal(t, int16(16384), Normalize(float32(0.5)))
	assert.Equal(t, int16(math.MaxInt16), Normalize(float32(1)))
	assert.Equal(t, int16(math.MinInt16), Normalize(float32(-1)))
	assert.Equal(t, int16(math.MaxInt16), Normalize(float32(7)))
	assert.Equal(t, int16(0), Normalize(float32(math.NaN())))
}

func TestSliceReader(t *testing.T) {
	t.Parallel()

	r := NewSliceReader([]float32{0.25, -0.25})
	assert.Equal(t, 2, r.Len())

	s, err := r.ReadSample()
	require.NoError(t, err)
	assert.Equal(t, int16(8192), s)

	s, err = r.ReadSample()
	require.NoError(t, err)
	assert.Equal(t, int16(-8192), s)
	assert.Zero(t, r.Len())

	_, err = r.ReadSample()
	assert.ErrorIs(t, err, io.EOF)
}

func readAllSamples(t *testing.T, r SampleReader) []int16 {
	t.Helper()

	var out []int16
	for {
		s, err := r.ReadSample()
		if err == io.EOF {
			return out
		}
		require.NoError(t, err)
		out = append(out, s)
	}
}

func TestSourceReader(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSliceSource(8000, 2, []float32{0.5, -1, 1, 0})
	r := NewSourceReader(src)

	assert.Equal(t, []int16{16384, -32768, 32767, 0}, readAllSamples(t, r))

	_, err := r.ReadSample()
	assert.ErrorIs(t, err, io.EOF)
}

func TestSourceReader_LargeSource(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(44100, 1, 10000, 440)
	got := readAllSamples(t, NewSourceReader(src))
	assert.Len(t, got, 10000)
}

func TestSourceReader_WholeFrames(t *testing.T) {
	t.Parallel()

	for _, channels := range []int{3, 5, 6} {
		res, err := audio.NewResampler(audiotest.NewSineSource(48000, channels, 1000, 440), 44100)
		require.NoError(t, err)

		got := readAllSamples(t, NewSourceReader(res))
		assert.NotEmpty(t, got, "%d channels", channels)
		assert.Zero(t, len(got)%channels, "%d channels", channels)
	}
}

func TestSourceReader_Error(t *testing.T) {
	t.Parallel()

	src := audiotest.NewFailingSource(audiotest.NewConstantSource(8000, 1, 100, 0.5), 0)
	r := NewSourceReader(src)

	_, err := r.ReadSample()
	assert.ErrorIs(t, err, audiotest.ErrInjected)

	// sticky
	_, err = r.ReadSample()
	assert.ErrorIs(t, err, audiotest.ErrInjected)
}

type stalledSource struct{ reads int }

func (s *stalledSource) SampleRate() int                   { return 8000 }
func (s *stalledSource) Channels() int                     { return 1 }
func (s *stalledSource) BufSize() int                      { return 0 }
func (s *stalledSource) Close() error                      { return nil }
func (s *stalledSource) ReadSamples([]float32) (int, error) { s.reads++; return 0, nil }

func TestSourceReader_NoProgress(t *testing.T) {
	t.Parallel()

	src := &stalledSource{}
	_, err := NewSourceReader(src).ReadSample()
	assert.ErrorIs(t, err, io.ErrNoProgress)
	assert.Equal(t, maxEmptyReads, src.reads)
}

func TestSkip(t *testing.T) {
	t.Parallel()

	r := NewSliceReader([]int16{1, 2, 3, 4, 5})

	n, err := Skip(r, 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), n)

	s, err := r.ReadSample()
	require.NoError(t, err)
	assert.Equal(t, int16(4), s)

	n, err = Skip(r, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), n)

	n, err = Skip(r, 0)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSkip_Error(t *testing.T) {
	t.Parallel()

	src := audiotest.NewFailingSource(audiotest.NewConstantSource(8000, 1, 100, 0), 10)

	n, err := Skip(NewSourceReader(src), 50)
	assert.ErrorIs(t, err, audiotest.ErrInjected)
	assert.Equal(t, uint64(10), n)
}
