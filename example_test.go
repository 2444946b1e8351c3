// SPDX-License-Identifier: EPL-2.0

package audpix_test

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/ik5/audpix"
	"github.com/ik5/audpix/codec"
	"github.com/ik5/audpix/formats/wav"
	"github.com/ik5/audpix/internal/audiotest"
	"github.com/ik5/audpix/preset"
)

// Example renders a generated tone into a PNG and reads it back.
func Example() {
	p := preset.Default()
	p.Space.Options.Size = 64

	tone := audiotest.NewSineSource(8000, 1, 4096, 440)

	var png bytes.Buffer
	if err := audpix.EncodePNG(&png, tone, p); err != nil {
		log.Fatal(err)
	}

	var out codec.SliceWriter
	n, err := audpix.DecodePNG(&png, &out, p)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(n, "samples")

	// Output:
	// 4096 samples
}

// Example_encodeWAV shows the usual file pipeline.
func Example_encodeWAV() {
	in, err := os.Open("voice.wav")
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	src, err := wav.Decoder{}.Decode(in)
	if err != nil {
		log.Fatal(err)
	}

	out, err := os.Create("voice.png")
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	// second 512x512 image of the mono stream
	if err := audpix.EncodePNG(out, src, preset.Default(), audpix.WithMono(), audpix.WithSkip(1)); err != nil {
		log.Fatal(err)
	}
}
