// SPDX-License-Identifier: EPL-2.0

package colormap

import "image/color"

// Strategy converts between samples and colors.
type Strategy interface {
	// SampleToColor maps any sample to an opaque color.
	SampleToColor(sample int16) color.NRGBA
	// ColorToSample recovers an approximate sample from any color.
	ColorToSample(c color.NRGBA) int16
}

// CircularDistance is the distance between a and b on a ring of 65536
// amplitudes.
func CircularDistance(a, b int16) int {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}

	return min(d, 1<<16-d)
}
