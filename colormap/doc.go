// SPDX-License-Identifier: EPL-2.0

// Package colormap maps 16-bit audio samples to 8-bit RGBA colors and back.
//
// A Strategy must accept every int16 and every color without failing. The
// two directions are not exact inverses: 65536 amplitudes are folded onto a
// color space whose usable resolution along the mapped axis is much smaller,
// so decoding is approximate by construction.
//
// # Hue
//
// Hue treats the amplitude as an angle around the color wheel at a fixed
// saturation and value:
//
//	fraction = (sample + 32768) / 65536
//	hue      = fraction * 360°
//
// Decoding reads the hue back and inverts the affine map, truncating toward
// zero. With saturation and value at 1.0 the decoded sample is within
// MaxRoundTripError of the input sample, measured around the wheel: amplitudes
// just below +32767 sit next to -32768 on the circle and may decode to it.
//
// Alpha is written as 255 and ignored when decoding.
package colormap
