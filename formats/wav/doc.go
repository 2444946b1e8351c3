// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files on top of github.com/go-audio/wav.
//
// # Decoding
//
// Decoder accepts PCM integer data at 8, 16, 24 and 32 bits and 32-bit IEEE
// float data. Samples are delivered as float32 in [-1, 1]:
//
//	f, _ := os.Open("input.wav")
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    // ErrNotWavFile, ErrUnsupportedWavLayout or ErrUnsupportedBitDepth
//	}
//
// go-audio seeks between chunks, so a reader that is not an io.ReadSeeker is
// buffered in memory first.
//
// # Encoding
//
// Writer streams interleaved 16-bit samples and fixes up the header on Close.
// It needs an io.WriteSeeker, usually an *os.File:
//
//	f, _ := os.Create("output.wav")
//	w, _ := wav.NewWriter(f, 48000, 2)
//	_ = w.WriteSamples(samples)
//	_ = w.Close()
//	_ = f.Close()
//
// WriteWAV16 does the same for a slice that is already in memory.
package wav
