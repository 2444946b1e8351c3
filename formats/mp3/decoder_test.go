// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockMP3Reader hands out PCM bytes in chunks of at most step bytes.
type mockMP3Reader struct {
	sampleRate int
	data       []byte
	step       int
	err        error
}

func newMockReader(step int, samples ...int16) *mockMP3Reader {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, samples)

	return &mockMP3Reader{sampleRate: 44100, data: buf.Bytes(), step: step}
}

func (m *mockMP3Reader) SampleRate() int { return m.sampleRate }

func (m *mockMP3Reader) Read(p []byte) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if len(m.data) == 0 {
		return 0, io.EOF
	}

	if m.step > 0 && len(p) > m.step {
		p = p[:m.step]
	}
	n := copy(p, m.data)
	m.data = m.data[n:]

	return n, nil
}

func newSource(dec *mockMP3Reader) *source {
	return &source{dec: dec, sampleRate: dec.sampleRate}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{[]byte("This is not MP3 data"), nil} {
		_, err := Decoder{}.Decode(bytes.NewReader(data))
		assert.ErrorIs(t, err, ErrNotMP3File)
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newSource(newMockReader(0))
	assert.Equal(t, 44100, src.SampleRate())
	assert.Equal(t, 2, src.Channels())
	assert.Equal(t, defaultBufSize, src.BufSize())
	assert.NoError(t, src.Close())
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := newSource(newMockReader(0, 0, 16384, -16384, 32767, -32768, 1))

	dst := make([]float32, 4)
	n, err := src.ReadSamples(dst)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	assert.InDeltaSlice(t, []float32{0, 0.5, -0.5, 32767.0 / 32768}, dst, 1e-6)

	n, err = src.ReadSamples(dst)
	assert.ErrorIs(t, err, io.EOF)
	require.Equal(t, 2, n)
	assert.InDeltaSlice(t, []float32{-1, 1.0 / 32768}, dst[:n], 1e-6)

	n, err = src.ReadSamples(dst)
	assert.ErrorIs(t, err, io.EOF)
	assert.Zero(t, n)
}

// go-mp3 may return fewer bytes than asked, and odd counts.
func TestSource_ReadSamples_ShortReads(t *testing.T) {
	t.Parallel()

	samples := make([]int16, 301)
	for i := range samples {
		samples[i] = int16(i * 100)
	}
	src := newSource(newMockReader(7, samples...))

	var got []float32
	dst := make([]float32, 64)
	for {
		n, err := src.ReadSamples(dst)
		got = append(got, dst[:n]...)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}

	require.Len(t, got, len(samples))
	for i, s := range samples {
		assert.InDelta(t, float32(s)/32768, got[i], 1e-6)
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	n, err := newSource(newMockReader(0, 1)).ReadSamples(nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	dec := newMockReader(0, 1, 2)
	dec.err = io.ErrClosedPipe

	_, err := newSource(dec).ReadSamples(make([]float32, 2))
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}

func TestSource_BufferResize(t *testing.T) {
	t.Parallel()

	src := newSource(newMockReader(0, make([]int16, 10000)...))

	_, err := src.ReadSamples(make([]float32, 100))
	require.NoError(t, err)
	assert.Equal(t, 100, src.BufSize())

	_, err = src.ReadSamples(make([]float32, 5000))
	require.NoError(t, err)
	assert.Equal(t, 5000, src.BufSize())
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int16, 88200)
	for i := range samples {
		samples[i] = int16(i)
	}
	dst := make([]float32, 4096)

	b.ReportAllocs()

	for b.Loop() {
		src := newSource(newMockReader(0, samples...))
		for {
			if _, err := src.ReadSamples(dst); err != nil {
				break
			}
		}
	}
}
