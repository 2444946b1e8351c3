// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"iter"
	"math"

	"github.com/ik5/audpix/colormap"
	"github.com/ik5/audpix/space"
)

// Pixel is one encoded sample placed on the plane.
type Pixel struct {
	X, Y  uint32
	Color color.NRGBA
}

// Encoder maps samples to pixels in the order of its space strategy.
type Encoder struct {
	r      SampleReader
	colors colormap.Strategy
	space  space.Strategy
	size   uint64
	index  uint64
}

func NewEncoder(r SampleReader, colors colormap.Strategy, sp space.Strategy) (*Encoder, error) {
	if err := checkStrategies(colors, sp); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrNilReader
	}

	return &Encoder{r: r, colors: colors, space: sp, size: sp.Size()}, nil
}

func checkStrategies(colors colormap.Strategy, sp space.Strategy) error {
	if colors == nil || sp == nil {
		return ErrNilStrategy
	}
	if sp.Dims() != 2 {
		return fmt.Errorf("%w: %d dimensions", ErrNotPlanar, sp.Dims())
	}

	return nil
}

// Index is the number of pixels produced so far.
func (e *Encoder) Index() uint64 { return e.index }

// Next returns the next pixel, or io.EOF once either the samples or the
// plane are exhausted. The plane is checked first, so no sample is consumed
// past capacity.
func (e *Encoder) Next() (Pixel, error) {
	if e.index >= e.size {
		return Pixel{}, io.EOF
	}

	sample, err := e.r.ReadSample()
	if err != nil {
		if err == io.EOF {
			return Pixel{}, io.EOF
		}
		return Pixel{}, fmt.Errorf("encoding pixel %d: %w", e.index, err)
	}

	coord, ok := e.space.IndexToCoord(e.index)
	if !ok {
		return Pixel{}, io.EOF
	}
	e.index++

	return Pixel{X: coord[0], Y: coord[1], Color: e.colors.SampleToColor(sample)}, nil
}

// All ranges over the remaining pixels. Iteration stops after the first
// error, which is yielded.
func (e *Encoder) All() iter.Seq2[Pixel, error] {
	return func(yield func(Pixel, error) bool) {
		for {
			p, err := e.Next()
			if err == io.EOF {
				return
			}
			if !yield(p, err) || err != nil {
				return
			}
		}
	}
}

// EncodeImage encodes r into a fresh image of Length(0) x Length(1) pixels.
// Cells the samples did not reach stay transparent black.
func EncodeImage(r SampleReader, colors colormap.Strategy, sp space.Strategy) (*image.NRGBA, error) {
	enc, err := NewEncoder(r, colors, sp)
	if err != nil {
		return nil, err
	}

	w, h := uint64(sp.Length(0)), uint64(sp.Length(1))
	if w*h > math.MaxInt/4 {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, w, h)
	}

	img := image.NewNRGBA(image.Rect(0, 0, int(w), int(h)))
	for p, err := range enc.All() {
		if err != nil {
			return nil, err
		}
		img.SetNRGBA(int(p.X), int(p.Y), p.Color)
	}

	return img, nil
}
