// SPDX-License-Identifier: EPL-2.0

package audpix

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/ik5/audpix/audio"
	"github.com/ik5/audpix/codec"
	"github.com/ik5/audpix/formats/wav"
	"github.com/ik5/audpix/preset"
)

// Encode renders src into one image using the strategies of p.
func Encode(src audio.Source, p preset.Preset, opts ...Option) (*image.NRGBA, error) {
	colors, sp, err := p.Strategies()
	if err != nil {
		return nil, err
	}

	o := newOptions(opts)
	conditioned, err := o.condition(src)
	if err != nil {
		return nil, err
	}

	r := codec.NewSourceReader(conditioned)
	if o.skipImages > 0 {
		if _, err := codec.Skip(r, o.skipImages*sp.Size()); err != nil {
			return nil, fmt.Errorf("skipping %d images: %w", o.skipImages, err)
		}
	}

	return codec.EncodeImage(r, colors, sp)
}

// EncodePNG is Encode followed by PNG encoding into w.
func EncodePNG(w io.Writer, src audio.Source, p preset.Preset, opts ...Option) error {
	img, err := Encode(src, p, opts...)
	if err != nil {
		return err
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}

	return nil
}

// Decode recovers every sample of img into w and returns the count.
func Decode(img image.Image, w codec.SampleWriter, p preset.Preset) (uint64, error) {
	colors, sp, err := p.Strategies()
	if err != nil {
		return 0, err
	}

	return codec.DecodeImage(img, w, colors, sp)
}

// DecodePNG reads a PNG from r and decodes it into w.
func DecodePNG(r io.Reader, w codec.SampleWriter, p preset.Preset) (uint64, error) {
	img, err := png.Decode(r)
	if err != nil {
		return 0, fmt.Errorf("decoding png: %w", err)
	}

	return Decode(img, w, p)
}

// DecodePNGToWAV decodes a PNG into a 16-bit WAV file. The image carries no
// rate or layout, so both are the caller's to supply.
func DecodePNGToWAV(r io.Reader, ws io.WriteSeeker, p preset.Preset, sampleRate, channels int) (uint64, error) {
	out, err := wav.NewWriter(ws, sampleRate, channels)
	if err != nil {
		return 0, err
	}

	n, err := DecodePNG(r, out, p)
	if err != nil {
		return n, err
	}

	if err := out.Close(); err != nil {
		return n, err
	}

	return n, nil
}
