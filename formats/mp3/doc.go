// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams with github.com/hajimehoshi/go-mp3.
//
// go-mp3 always renders two interleaved channels of 16-bit PCM, so every
// Source from this package reports Channels() == 2 whatever the file holds.
// Fold it with audio.NewMonoMixer when a single channel is wanted:
//
//	src, err := mp3.Decoder{}.Decode(f)
//	mono := audio.NewMonoMixer(src)
//
// Decoding only; there is no MP3 writer.
package mp3
