// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF (Audio Interchange File Format) files through
// github.com/go-audio/aiff.
//
// Integer PCM at 8, 16, 24 and 32 bits is accepted, in any channel layout.
// Samples come out as float32 in [-1, 1], scaled by the file's bit depth:
//
//	f, _ := os.Open("loop.aif")
//	src, err := aiff.Decoder{}.Decode(f)
//
// The decoder seeks, so readers that are not io.ReadSeeker are buffered in
// memory before parsing.
package aiff
