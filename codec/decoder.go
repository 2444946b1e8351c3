// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/ik5/audpix/colormap"
	"github.com/ik5/audpix/space"
)

// Decoder reads samples back from an image, one per cell of the space
// strategy, in index order.
type Decoder struct {
	img    image.Image
	nrgba  *image.NRGBA
	min    image.Point
	colors colormap.Strategy
	space  space.Strategy
	size   uint64
	index  uint64
}

// NewDecoder fails with ErrDimensionMismatch unless the image bounds are
// exactly Length(0) x Length(1).
func NewDecoder(img image.Image, colors colormap.Strategy, sp space.Strategy) (*Decoder, error) {
	if err := checkStrategies(colors, sp); err != nil {
		return nil, err
	}
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrDimensionMismatch)
	}

	b := img.Bounds()
	w, h := sp.Length(0), sp.Length(1)
	if uint64(b.Dx()) != uint64(w) || uint64(b.Dy()) != uint64(h) {
		return nil, fmt.Errorf("%w: image is %dx%d, strategy wants %dx%d",
			ErrDimensionMismatch, b.Dx(), b.Dy(), w, h)
	}

	nrgba, _ := img.(*image.NRGBA)

	return &Decoder{
		img:    img,
		nrgba:  nrgba,
		min:    b.Min,
		colors: colors,
		space:  sp,
		size:   sp.Size(),
	}, nil
}

// Remaining is the number of samples left before io.EOF.
func (d *Decoder) Remaining() uint64 { return d.size - d.index }

func (d *Decoder) ReadSample() (int16, error) {
	if d.index >= d.size {
		return 0, io.EOF
	}

	coord, ok := d.space.IndexToCoord(d.index)
	if !ok {
		return 0, io.EOF
	}
	d.index++

	x, y := d.min.X+int(coord[0]), d.min.Y+int(coord[1])

	var c color.NRGBA
	if d.nrgba != nil {
		c = d.nrgba.NRGBAAt(x, y)
	} else {
		c = color.NRGBAModel.Convert(d.img.At(x, y)).(color.NRGBA)
	}

	return d.colors.ColorToSample(c), nil
}

// ReadSamples fills dst and returns the count. n may be non-zero together
// with io.EOF.
func (d *Decoder) ReadSamples(dst []int16) (int, error) {
	for i := range dst {
		s, err := d.ReadSample()
		if err != nil {
			return i, err
		}
		dst[i] = s
	}

	if len(dst) > 0 && d.index >= d.size {
		return len(dst), io.EOF
	}

	return len(dst), nil
}
