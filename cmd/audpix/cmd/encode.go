// SPDX-License-Identifier: EPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ik5/audpix"
)

var errUnsupportedInput = errors.New("unsupported input format")

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <input> [output]",
		Short: "Encode an audio file into a PNG",
		Long: `Encode an audio file into a PNG image.

The output defaults to the input path with a .png extension. When output is
an existing directory the image is written there under the input's name.

Example:
  audpix encode voice.wav
  audpix encode --mono --skip 2 song.mp3 out/`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runEncode,
	}

	cmd.Flags().Uint64("skip", 0, "skip this many whole images of samples first")
	cmd.Flags().Bool("mono", false, "mix all channels down to one")
	cmd.Flags().Int("rate", 0, "resample to this rate in Hz (0 keeps the source rate)")

	return cmd
}

func runEncode(cmd *cobra.Command, args []string) error {
	logger := loggerFrom(cmd)
	input := args[0]
	output := resolveOutput(input, optionalArg(args, 1), ".png")

	registry := newRegistry()
	dec, ok := registry.ForPath(input)
	if !ok {
		return fmt.Errorf("%w: %s (known: %s)", errUnsupportedInput, input, strings.Join(registry.Formats(), ", "))
	}

	in, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	src, err := dec.Decode(in)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", input, err)
	}
	defer src.Close()

	skip, _ := cmd.Flags().GetUint64("skip")
	mono, _ := cmd.Flags().GetBool("mono")
	rate, _ := cmd.Flags().GetInt("rate")

	opts := []audpix.Option{audpix.WithSkip(skip), audpix.WithSampleRate(rate)}
	if mono {
		opts = append(opts, audpix.WithMono())
	}

	logger.Debug("encoding", "input", input, "rate", src.SampleRate(),
		"channels", src.Channels(), "skip", skip, "mono", mono)

	err = writeFile(output, func(f *os.File) error {
		return audpix.EncodePNG(f, src, presetFrom(cmd), opts...)
	})
	if err != nil {
		return err
	}

	logger.Info("encoded", "output", output)

	return nil
}

func optionalArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}

	return ""
}
