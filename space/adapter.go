// SPDX-License-Identifier: EPL-2.0

package space

import "fmt"

// Adapter presents a lower-dimensional strategy in more dimensions. Extra
// coordinate components are always zero and extra dimensions have length 1.
type Adapter struct {
	inner Strategy
	dims  int
}

// NewAdapter lifts inner into dims dimensions. dims must be strictly greater
// than inner.Dims().
func NewAdapter(inner Strategy, dims int) (*Adapter, error) {
	if inner == nil {
		return nil, ErrNilStrategy
	}
	if inner.Dims() >= dims {
		return nil, fmt.Errorf("%w: %d -> %d", ErrAdapterDims, inner.Dims(), dims)
	}

	return &Adapter{inner: inner, dims: dims}, nil
}

// Inner returns the wrapped strategy.
func (a *Adapter) Inner() Strategy { return a.inner }

func (a *Adapter) Dims() int { return a.dims }

func (a *Adapter) Length(dim int) uint32 {
	checkDim(dim, a.dims)

	if dim < a.inner.Dims() {
		return a.inner.Length(dim)
	}

	return 1
}

func (a *Adapter) Size() uint64 { return ProductSize(a) }

func (a *Adapter) IndexToCoord(index uint64) (Coord, bool) {
	from, ok := a.inner.IndexToCoord(index)
	if !ok {
		return nil, false
	}

	to := make(Coord, a.dims)
	copy(to, from)

	return to, true
}
