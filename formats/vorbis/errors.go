// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

var (
	// ErrNotVorbisFile wraps any failure to read the Ogg/Vorbis headers.
	ErrNotVorbisFile = errors.New("not an Ogg Vorbis file")

	// ErrShortBuffer is returned when dst cannot hold one whole frame.
	ErrShortBuffer = errors.New("buffer smaller than one frame")
)
