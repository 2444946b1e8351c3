// SPDX-License-Identifier: EPL-2.0

// Package audpix renders audio as images and reads it back.
//
// Every sample becomes one pixel. Its position comes from a space strategy
// (a Hilbert curve or a plain line) and its color from a color strategy (a
// hue on the color wheel). The two strategies are chosen by a preset.Preset;
// an image only decodes correctly with the preset that encoded it.
//
// # Quick Start
//
//	f, _ := os.Open("voice.wav")
//	src, _ := wav.Decoder{}.Decode(f)
//
//	out, _ := os.Create("voice.png")
//	err := audpix.EncodePNG(out, src, preset.Default(), audpix.WithMono())
//
// and back again:
//
//	in, _ := os.Open("voice.png")
//	wavOut, _ := os.Create("voice.wav")
//	n, err := audpix.DecodePNGToWAV(in, wavOut, preset.Default(), 48000, 1)
//
// # Lossiness
//
// Samples are quantized to 16 bits on the way in and the hue mapping loses a
// few more bits; see colormap.MaxRoundTripError. An image holds at most
// Size() samples of the space strategy. Longer inputs are cut, shorter ones
// leave transparent cells that decode as the lowest sample value.
//
// The lower-level pieces live in the codec, space, colormap, audio and
// formats packages.
package audpix
