// SPDX-License-Identifier: EPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/audpix/audio"
	"github.com/ik5/audpix/formats/aiff"
	"github.com/ik5/audpix/formats/mp3"
	"github.com/ik5/audpix/formats/vorbis"
	"github.com/ik5/audpix/formats/wav"
	"github.com/ik5/audpix/preset"
)

// PresetEnv names the environment variable consulted when --preset is not given.
const PresetEnv = "AUDPIX_PRESET"

type ctxKey int

const (
	presetKey ctxKey = iota
	loggerKey
)

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "audpix",
		Short: "Render audio as images and back",
		Long: `audpix maps every audio sample to one pixel: a space strategy picks
where it goes, a color strategy picks its color. Decoding with the same
preset recovers the samples.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			logger := newLogger(cmd.ErrOrStderr(), verbose)

			path, _ := cmd.Flags().GetString("preset")
			p, source, err := loadPreset(path)
			if err != nil {
				return err
			}
			logger.Debug("preset loaded", "source", source,
				"color", p.Color.Strategy, "space", p.Space.Strategy)

			ctx := context.WithValue(cmd.Context(), presetKey, p)
			cmd.SetContext(context.WithValue(ctx, loggerKey, logger))

			return nil
		},
	}

	root.PersistentFlags().StringP("preset", "p", "", "preset file (.toml, .json, .yaml); defaults to $"+PresetEnv)
	root.PersistentFlags().BoolP("verbose", "v", false, "log debug details to stderr")

	root.AddCommand(newEncodeCmd(), newDecodeCmd(), newDumpPresetCmd())

	return root
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadPreset resolves the flag, then the environment, then the built-in default.
func loadPreset(path string) (preset.Preset, string, error) {
	if path == "" {
		path = os.Getenv(PresetEnv)
	}
	if path == "" {
		return preset.Default(), "default", nil
	}

	p, err := preset.Load(path)
	if err != nil {
		return preset.Preset{}, "", fmt.Errorf("loading preset: %w", err)
	}

	return p, path, nil
}

func presetFrom(cmd *cobra.Command) preset.Preset {
	if p, ok := cmd.Context().Value(presetKey).(preset.Preset); ok {
		return p
	}

	return preset.Default()
}

func loggerFrom(cmd *cobra.Command) *slog.Logger {
	if l, ok := cmd.Context().Value(loggerKey).(*slog.Logger); ok {
		return l
	}

	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})

	return r
}
