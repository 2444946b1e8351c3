// SPDX-License-Identifier: EPL-2.0

package space

import (
	"fmt"
	"math/bits"
)

const maxHilbertExp = 31

// Hilbert places indices along a Hilbert curve filling a square whose side
// is a power of two.
type Hilbert struct {
	exp  uint
	side uint32
}

// NewHilbert builds a curve over a side x side square.
func NewHilbert(side uint32) (*Hilbert, error) {
	if side == 0 || side&(side-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, side)
	}

	return &Hilbert{
		exp:  uint(bits.TrailingZeros32(side)),
		side: side,
	}, nil
}

// NewHilbertExp builds a curve over a square of side 2^exp.
func NewHilbertExp(exp uint) (*Hilbert, error) {
	if exp > maxHilbertExp {
		return nil, fmt.Errorf("%w: %d", ErrExponentTooLarge, exp)
	}

	return &Hilbert{exp: exp, side: 1 << exp}, nil
}

// Exp is the base-2 exponent of the side length.
func (h *Hilbert) Exp() uint { return h.exp }

// Side is the length of each side of the square.
func (h *Hilbert) Side() uint32 { return h.side }

func (h *Hilbert) Dims() int { return 2 }

func (h *Hilbert) Length(dim int) uint32 {
	checkDim(dim, 2)

	return h.side
}

func (h *Hilbert) Size() uint64 {
	return uint64(h.side) * uint64(h.side)
}

func (h *Hilbert) IndexToCoord(index uint64) (Coord, bool) {
	if index >= h.Size() {
		return nil, false
	}

	var x, y uint32
	t := index
	for s := uint32(1); s < h.side; s <<= 1 {
		rx := uint32(1 & (t >> 1))
		ry := uint32(1 & (t ^ uint64(rx)))
		x, y = rotate(s, x, y, rx, ry)
		x += s * rx
		y += s * ry
		t >>= 2
	}

	return Coord{x, y}, true
}

// CoordToIndex is the inverse of IndexToCoord. It reports false when (x, y)
// lies outside the square.
func (h *Hilbert) CoordToIndex(x, y uint32) (uint64, bool) {
	if x >= h.side || y >= h.side {
		return 0, false
	}

	var d uint64
	for s := h.side >> 1; s > 0; s >>= 1 {
		var rx, ry uint32
		if x&s != 0 {
			rx = 1
		}
		if y&s != 0 {
			ry = 1
		}
		d += uint64(s) * uint64(s) * uint64((3*rx)^ry)
		x, y = rotate(h.side, x, y, rx, ry)
	}

	return d, true
}

// rotate flips and transposes a quadrant so the sub-curve has the right
// orientation.
func rotate(n, x, y, rx, ry uint32) (uint32, uint32) {
	if ry == 0 {
		if rx == 1 {
			x = n - 1 - x
			y = n - 1 - y
		}
		x, y = y, x
	}

	return x, y
}
