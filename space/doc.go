// SPDX-License-Identifier: EPL-2.0

// Package space maps a linear sample index onto a coordinate in an
// N-dimensional grid.
//
// Every mapping implements Strategy:
//
//	type Strategy interface {
//	    Dims() int
//	    IndexToCoord(index uint64) (Coord, bool)
//	    Length(dim int) uint32
//	    Size() uint64
//	}
//
// IndexToCoord reports false exactly when index >= Size(). Callers treat that
// as the end of the sequence, not as a failure.
//
// # Hilbert
//
// Hilbert walks a square of power-of-two side along a Hilbert curve, so
// consecutive indices always land on neighbouring cells:
//
//	h, err := space.NewHilbert(512)
//	c, _ := h.IndexToCoord(1000) // c[0] = x, c[1] = y
//
// # Line
//
// Line is the identity embedding of an index into one dimension. Wrap it in
// an Adapter (or call Planar) to use it where a planar strategy is expected:
//
//	flat, _ := space.Planar(space.NewLine(4096)) // 4096x1
//
// # Adapter
//
// Adapter lifts a lower-dimensional strategy into more dimensions by zero
// padding. The added dimensions have length 1.
//
// Strategies are immutable once built. Length panics when asked for a
// dimension the strategy does not have.
package space
