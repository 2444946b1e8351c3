// SPDX-License-Identifier: EPL-2.0

package colormap

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	DefaultSaturation = 1.0
	DefaultValue      = 1.0

	// MaxRoundTripError bounds the circular distance between a sample and
	// its decoded color at default saturation and value.
	MaxRoundTripError = 32

	sampleOffset = 1 << 15
	sampleRange  = 1 << 16
	fullTurn     = 360.0
)

// Hue encodes amplitude as hue at a fixed saturation and value.
type Hue struct {
	saturation float64
	value      float64
}

// NewHue clamps saturation and value to [0, 1].
func NewHue(saturation, value float64) *Hue {
	return &Hue{
		saturation: clampUnit(saturation),
		value:      clampUnit(value),
	}
}

func DefaultHue() *Hue {
	return NewHue(DefaultSaturation, DefaultValue)
}

func (h *Hue) Saturation() float64 { return h.saturation }
func (h *Hue) Value() float64      { return h.value }

func (h *Hue) SampleToColor(sample int16) color.NRGBA {
	fraction := (float64(sample) + sampleOffset) / sampleRange
	r, g, b := colorful.Hsv(fraction*fullTurn, h.saturation, h.value).Clamped().RGB255()

	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

func (h *Hue) ColorToSample(c color.NRGBA) int16 {
	sample := HueFraction(c)*sampleRange - sampleOffset
	switch {
	case math.IsNaN(sample):
		return math.MinInt16
	case sample >= math.MaxInt16:
		return math.MaxInt16
	case sample <= math.MinInt16:
		return math.MinInt16
	}

	return int16(sample)
}

// HueFraction is the position of c on the color wheel in [0, 1).
func HueFraction(c color.NRGBA) float64 {
	hue, _, _ := colorful.Color{
		R: float64(c.R) / 0xff,
		G: float64(c.G) / 0xff,
		B: float64(c.B) / 0xff,
	}.Hsv()

	return hue / fullTurn
}

func clampUnit(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return 0
	case x < 0:
		return 0
	case x > 1:
		return 1
	}

	return x
}
