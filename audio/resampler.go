// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audpix/utils"
)

const (
	resampleChunkFrames = 1024
	lowPassAlpha        = 0.5
)

// Resampler converts src to another sample rate with Catmull-Rom
// interpolation, keeping the channel count. When downsampling each input
// frame first passes a one-pole low-pass filter.
type Resampler struct {
	src      Source
	rate     int
	step     float64 // source frames per output frame
	channels int

	// window holds frames t-1, t, t+1, t+2 around the interpolation point;
	// real marks which of them came from the source rather than padding.
	window [4][]float32
	real   [4]bool
	pos    float64
	primed bool
	done   bool

	in      []float32
	off, n  int
	srcDone bool

	lowPass bool
	state   []float32
	warm    bool
}

// NewResampler fails with ErrInvalidRate when dstRate is not positive.
func NewResampler(src Source, dstRate int) (*Resampler, error) {
	if dstRate <= 0 || src.SampleRate() <= 0 {
		return nil, fmt.Errorf("%w: %d -> %d", ErrInvalidRate, src.SampleRate(), dstRate)
	}

	channels := max(src.Channels(), 1)
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		rate:     dstRate,
		step:     step,
		channels: channels,
		in:       make([]float32, resampleChunkFrames*channels),
		lowPass:  step > 1,
		state:    make([]float32, channels),
	}
	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r, nil
}

func (r *Resampler) SampleRate() int { return r.rate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("closing resampler source: %w", err)
	}

	return nil
}

// ReadSamples fills dst with resampled frames. len(dst) must be a multiple
// of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames && !r.done {
		for r.pos >= 1 {
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
			r.pos--
		}

		if !r.real[1] {
			r.done = true
			break
		}

		x := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = utils.CubicInterpolate(r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], x)
		}

		written++
		r.pos += r.step
	}

	if r.done {
		return written * r.channels, io.EOF
	}

	return written * r.channels, nil
}

func (r *Resampler) prime() error {
	r.primed = true

	ok, err := r.pull(r.window[1])
	if err != nil {
		return err
	}
	r.real[1] = ok
	copy(r.window[0], r.window[1])

	for i := 2; i < len(r.window); i++ {
		ok, err := r.pull(r.window[i])
		if err != nil {
			return err
		}
		if !ok {
			copy(r.window[i], r.window[i-1])
		}
		r.real[i] = ok
	}

	return nil
}

// advance slides the window forward by one source frame, padding with the
// last frame once the source is exhausted.
func (r *Resampler) advance() error {
	w := r.window
	r.window = [4][]float32{w[1], w[2], w[3], w[0]}
	r.real = [4]bool{r.real[1], r.real[2], r.real[3], false}

	ok, err := r.pull(r.window[3])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.window[3], r.window[2])
	}
	r.real[3] = ok

	return nil
}

// pull copies the next source frame into frame and reports false at the end
// of the source.
func (r *Resampler) pull(frame []float32) (bool, error) {
	for r.off >= r.n {
		if r.srcDone {
			return false, nil
		}

		n, err := r.src.ReadSamples(r.in)
		r.off, r.n = 0, n-n%r.channels

		if errors.Is(err, io.EOF) {
			r.srcDone = true
		} else if err != nil {
			return false, fmt.Errorf("resampling: %w", err)
		}
	}

	copy(frame, r.in[r.off:r.off+r.channels])
	r.off += r.channels

	if r.lowPass {
		if !r.warm {
			copy(r.state, frame)
			r.warm = true
		}
		for c := range frame {
			frame[c] = lowPassAlpha*frame[c] + (1-lowPassAlpha)*r.state[c]
			r.state[c] = frame[c]
		}
	}

	return true, nil
}
