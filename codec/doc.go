// SPDX-License-Identifier: EPL-2.0

// Package codec turns a stream of 16-bit samples into pixels and back.
//
// An Encoder pairs each sample with the next coordinate of a two-dimensional
// space.Strategy and colors it with a colormap.Strategy. It stops at whichever
// runs out first, the samples or the plane. A Decoder walks the same
// coordinates over an image and recovers one sample per pixel:
//
//	sp, _ := space.NewHilbert(512)
//	img, err := codec.EncodeImage(codec.NewSliceReader(samples), colormap.DefaultHue(), sp)
//
//	var out codec.SliceWriter
//	n, err := codec.DecodeImage(img, &out, colormap.DefaultHue(), sp)
//
// The decoder always yields Size() samples; when the encoded stream was
// shorter, the tail comes from the background color of the unvisited cells.
//
// The color mapping is lossy. A round trip through colormap.Hue lands within
// colormap.MaxRoundTripError of the input sample on the circular sample scale.
//
// Encoders and decoders are single-goroutine values; they hold a cursor and
// do no locking.
package codec
