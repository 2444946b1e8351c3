// SPDX-License-Identifier: EPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/audpix"
)

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <input.png> [output]",
		Short: "Decode a PNG back into a 16-bit WAV file",
		Long: `Decode a PNG produced by encode back into audio.

The image does not record the sample rate or channel layout, so pass the
ones the audio was encoded with.

Example:
  audpix decode voice.png
  audpix decode -c 1 -s 16000 voice.png voice-restored.wav`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runDecode,
	}

	cmd.Flags().IntP("channels", "c", 2, "channels of the written WAV")
	cmd.Flags().IntP("sample-rate", "s", 48000, "sample rate of the written WAV in Hz")

	return cmd
}

func runDecode(cmd *cobra.Command, args []string) error {
	logger := loggerFrom(cmd)
	input := args[0]
	output := resolveOutput(input, optionalArg(args, 1), ".wav")

	channels, _ := cmd.Flags().GetInt("channels")
	rate, _ := cmd.Flags().GetInt("sample-rate")

	in, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	var n uint64
	err = writeFile(output, func(f *os.File) error {
		var err error
		n, err = audpix.DecodePNGToWAV(in, f, presetFrom(cmd), rate, channels)
		return err
	})
	if err != nil {
		return err
	}

	logger.Info("decoded", "output", output, "samples", n, "rate", rate, "channels", channels)

	return nil
}
