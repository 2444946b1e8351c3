// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"fmt"
	"io"

	"github.com/ik5/audpix/audio"
	"github.com/ik5/audpix/utils"
)

// maxEmptyReads bounds consecutive (0, nil) reads from a Source.
const maxEmptyReads = 100

// SampleReader yields 16-bit samples one at a time. io.EOF ends the stream.
type SampleReader interface {
	ReadSample() (int16, error)
}

// Sample is any raw sample type the codec accepts.
type Sample interface {
	int16 | int32 | float32
}

// Normalize converts a raw sample to int16. Floats are scaled by 32768 and
// 32-bit integers halved; both truncate toward zero and saturate.
func Normalize[S Sample](s S) int16 {
	switch v := any(s).(type) {
	case float32:
		return utils.Float32ToInt16(v)
	case int32:
		return utils.Int32ToInt16(v)
	case int16:
		return v
	}

	return 0
}

// SliceReader reads samples from memory, normalizing each one.
type SliceReader[S Sample] struct {
	samples []S
	pos     int
}

func NewSliceReader[S Sample](samples []S) *SliceReader[S] {
	return &SliceReader[S]{samples: samples}
}

func (r *SliceReader[S]) ReadSample() (int16, error) {
	if r.pos >= len(r.samples) {
		return 0, io.EOF
	}

	s := r.samples[r.pos]
	r.pos++

	return Normalize(s), nil
}

// Len is the number of unread samples.
func (r *SliceReader[S]) Len() int { return len(r.samples) - r.pos }

// SourceReader adapts an audio.Source. Interleaved channels are read as they
// come; fold them with audio.MonoMixer first if one channel is wanted.
type SourceReader struct {
	src  audio.Source
	buf  []float32
	pos  int
	n    int
	err  error
	read uint64
}

// NewSourceReader reads in whole frames of src, rounding BufSize up to a
// multiple of the channel count.
func NewSourceReader(src audio.Source) *SourceReader {
	channels := max(src.Channels(), 1)
	size := max(src.BufSize(), 1)
	if rem := size % channels; rem != 0 {
		size += channels - rem
	}

	return &SourceReader{src: src, buf: make([]float32, size)}
}

func (r *SourceReader) ReadSample() (int16, error) {
	for empty := 0; r.pos >= r.n; {
		if r.err != nil {
			return 0, r.err
		}

		n, err := r.src.ReadSamples(r.buf)
		r.pos, r.n = 0, n

		switch {
		case err == io.EOF:
			r.err = io.EOF
		case err != nil:
			r.err = fmt.Errorf("reading source after %d samples: %w", r.read+uint64(n), err)
		case n == 0:
			empty++
			if empty >= maxEmptyReads {
				r.err = io.ErrNoProgress
			}
		}
	}

	s := r.buf[r.pos]
	r.pos++
	r.read++

	return utils.Float32ToInt16(s), nil
}

// Skip discards up to n samples and reports how many were dropped. Running
// out of samples early is not an error.
func Skip(r SampleReader, n uint64) (uint64, error) {
	var skipped uint64
	for skipped < n {
		if _, err := r.ReadSample(); err != nil {
			if err == io.EOF {
				return skipped, nil
			}
			return skipped, err
		}
		skipped++
	}

	return skipped, nil
}
