// SPDX-License-Identifier: EPL-2.0

package space

import "errors"

var (
	// ErrNotPowerOfTwo indicates a Hilbert side length that is zero or not a power of two.
	ErrNotPowerOfTwo = errors.New("hilbert side length must be a non-zero power of two")

	// ErrExponentTooLarge indicates a Hilbert exponent whose side length does not fit in 32 bits.
	ErrExponentTooLarge = errors.New("hilbert exponent must not exceed 31")

	// ErrAdapterDims indicates an adapter target dimension not strictly above the inner one.
	ErrAdapterDims = errors.New("adapter target dimension must exceed the inner dimension")

	// ErrTooManyDims indicates a strategy with more dimensions than a planar image holds.
	ErrTooManyDims = errors.New("strategy has more than two dimensions")

	ErrNilStrategy = errors.New("nil space strategy")
)
