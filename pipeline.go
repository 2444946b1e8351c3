// SPDX-License-Identifier: EPL-2.0

package audpix

import (
	"fmt"

	"github.com/ik5/audpix/audio"
)

// Option tunes how a source is prepared before encoding.
type Option func(*options)

type options struct {
	skipImages uint64
	mono       bool
	rate       int
}

// WithSkip discards the first n images' worth of samples, so the result is
// the (n+1)th image of the stream.
func WithSkip(n uint64) Option {
	return func(o *options) { o.skipImages = n }
}

// WithMono folds all channels into one before encoding. Without it channels
// are encoded interleaved.
func WithMono() Option {
	return func(o *options) { o.mono = true }
}

// WithSampleRate resamples the source to hz. Zero keeps the source rate.
func WithSampleRate(hz int) Option {
	return func(o *options) { o.rate = hz }
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Condition builds the resample then mono chain the options ask for. Sources
// already at the wanted rate are not resampled.
func Condition(src audio.Source, opts ...Option) (audio.Source, error) {
	return newOptions(opts).condition(src)
}

func (o options) condition(src audio.Source) (audio.Source, error) {
	out := src

	if o.rate != 0 && o.rate != src.SampleRate() {
		rs, err := audio.NewResampler(out, o.rate)
		if err != nil {
			return nil, fmt.Errorf("resampling to %d Hz: %w", o.rate, err)
		}
		out = rs
	}

	if o.mono && out.Channels() > 1 {
		out = audio.NewMonoMixer(out)
	}

	return out, nil
}
