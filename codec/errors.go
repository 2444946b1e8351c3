// SPDX-License-Identifier: EPL-2.0

package codec

import "errors"

var (
	// ErrNotPlanar indicates a space strategy that does not have exactly two
	// dimensions. Lift lower-dimensional strategies with space.Planar.
	ErrNotPlanar = errors.New("space strategy is not two-dimensional")

	// ErrNilStrategy indicates a missing color or space strategy.
	ErrNilStrategy = errors.New("nil strategy")

	ErrNilReader = errors.New("nil sample reader")

	// ErrDimensionMismatch indicates an image whose bounds differ from the
	// space strategy's lengths.
	ErrDimensionMismatch = errors.New("image dimensions do not match space strategy")

	// ErrImageTooLarge indicates a space strategy whose plane cannot be
	// allocated as a single image.
	ErrImageTooLarge = errors.New("space strategy too large for an in-memory image")
)
