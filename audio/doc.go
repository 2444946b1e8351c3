// SPDX-License-Identifier: EPL-2.0

// Package audio is the sample-source boundary of audpix.
//
// Container decoders under formats/ produce a Source of interleaved float32
// samples in [-1, 1]. The encoder consumes a Source through
// codec.NewSourceReader, optionally after reshaping it here:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	mono := audio.NewMonoMixer(src)
//	slow, err := audio.NewResampler(mono, 8000)
//
// # Registry
//
// Registry picks a Decoder by file extension:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, ok := reg.ForPath("song.WAV")
//
// # Errors
//
// ReadSamples returns io.EOF at the end of the stream, possibly together with
// the final samples:
//
//	for {
//	    n, err := src.ReadSamples(buf)
//	    consume(buf[:n])
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
