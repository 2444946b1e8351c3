// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"fmt"
	"image"
	"io"

	"github.com/ik5/audpix/colormap"
	"github.com/ik5/audpix/space"
)

// DefaultChunkSize is the number of samples DecodeImage hands to a writer at once.
const DefaultChunkSize = 4096

// SampleWriter receives decoded samples in order.
type SampleWriter interface {
	WriteSamples(samples []int16) error
}

// SliceWriter collects samples in memory.
type SliceWriter struct {
	Samples []int16
}

func (w *SliceWriter) WriteSamples(samples []int16) error {
	w.Samples = append(w.Samples, samples...)
	return nil
}

// DecodeImage decodes every cell of img into w and returns the number of
// samples written.
func DecodeImage(img image.Image, w SampleWriter, colors colormap.Strategy, sp space.Strategy) (uint64, error) {
	dec, err := NewDecoder(img, colors, sp)
	if err != nil {
		return 0, err
	}

	buf := make([]int16, DefaultChunkSize)

	var total uint64
	for {
		n, err := dec.ReadSamples(buf)
		if n > 0 {
			if werr := w.WriteSamples(buf[:n]); werr != nil {
				return total, fmt.Errorf("writing samples at %d: %w", total, werr)
			}
			total += uint64(n)
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}
