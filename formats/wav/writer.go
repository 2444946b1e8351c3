// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

const writerBitDepth = 16

// Writer streams 16-bit PCM samples into a WAV file. Samples are committed
// in whole frames; a trailing partial frame is held until more samples
// arrive, and Close pads it with silence. Close does not close the
// underlying writer.
type Writer struct {
	enc      *gowav.Encoder
	buf      *goaudio.IntBuffer
	channels int
	pending  []int16
	written  int
}

func NewWriter(w io.WriteSeeker, sampleRate, channels int) (*Writer, error) {
	if sampleRate <= 0 || channels <= 0 {
		return nil, fmt.Errorf("%w: rate %d, channels %d", ErrInvalidWriterFormat, sampleRate, channels)
	}

	return &Writer{
		enc: gowav.NewEncoder(w, sampleRate, writerBitDepth, channels, formatPCM),
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
			SourceBitDepth: writerBitDepth,
		},
		channels: channels,
	}, nil
}

// WriteSamples appends interleaved samples. They need not end on a frame
// boundary.
func (w *Writer) WriteSamples(samples []int16) error {
	if len(samples) == 0 {
		return nil
	}

	total := len(w.pending) + len(samples)
	whole := total - total%w.channels
	if whole == 0 {
		w.pending = append(w.pending, samples...)
		return nil
	}

	split := whole - len(w.pending)
	if err := w.commit(w.pending, samples[:split]); err != nil {
		return err
	}
	w.written += whole
	w.pending = append(w.pending[:0], samples[split:]...)

	return nil
}

// commit hands head followed by tail to the encoder; together they must
// span whole frames.
func (w *Writer) commit(head, tail []int16) error {
	n := len(head) + len(tail)
	if cap(w.buf.Data) < n {
		w.buf.Data = make([]int, n)
	}
	w.buf.Data = w.buf.Data[:n]

	for i, s := range head {
		w.buf.Data[i] = int(s)
	}
	for i, s := range tail {
		w.buf.Data[len(head)+i] = int(s)
	}

	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("writing wav data: %w", err)
	}

	return nil
}

// Written is the number of caller samples committed so far. Padding added
// by Close is not counted.
func (w *Writer) Written() int { return w.written }

func (w *Writer) Close() error {
	if len(w.pending) > 0 {
		pad := make([]int16, w.channels-len(w.pending))
		if err := w.commit(w.pending, pad); err != nil {
			return err
		}
		w.written += len(w.pending)
		w.pending = w.pending[:0]
	}

	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}

	return nil
}

// WriteWAV16 writes a complete 16-bit PCM WAV holding samples.
func WriteWAV16(w io.WriteSeeker, sampleRate, channels int, samples []int16) error {
	ww, err := NewWriter(w, sampleRate, channels)
	if err != nil {
		return err
	}

	if err := ww.WriteSamples(samples); err != nil {
		return err
	}

	return ww.Close()
}
