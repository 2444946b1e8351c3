// SPDX-License-Identifier: EPL-2.0

package space

import "fmt"

// Coord is a point in an N-dimensional grid, one component per dimension.
type Coord []uint32

// Strategy maps a linear index onto a grid coordinate.
type Strategy interface {
	// Dims is the fixed number of coordinate components.
	Dims() int
	// IndexToCoord returns the coordinate of index, or false when index >= Size().
	IndexToCoord(index uint64) (Coord, bool)
	// Length is the number of distinct values of dimension dim.
	// It panics when dim is outside [0, Dims()).
	Length(dim int) uint32
	// Size is the number of indices the strategy can place.
	Size() uint64
}

// ProductSize is the default capacity of s: the product of all its lengths.
func ProductSize(s Strategy) uint64 {
	size := uint64(1)
	for d := range s.Dims() {
		size *= uint64(s.Length(d))
	}

	return size
}

// Planar returns s as a two-dimensional strategy, lifting it with an Adapter
// when it has fewer dimensions.
func Planar(s Strategy) (Strategy, error) {
	if s == nil {
		return nil, ErrNilStrategy
	}

	switch {
	case s.Dims() == 2:
		return s, nil
	case s.Dims() < 2:
		return NewAdapter(s, 2)
	default:
		return nil, fmt.Errorf("%w: %d", ErrTooManyDims, s.Dims())
	}
}

func checkDim(dim, dims int) {
	if dim < 0 || dim >= dims {
		panic(fmt.Sprintf("space: dimension %d out of range [0, %d)", dim, dims))
	}
}
