// SPDX-License-Identifier: EPL-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ik5/audpix/preset"
)

func newDumpPresetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump-preset",
		Short: "Print the active preset",
		Long: `Print the active preset, for use as a starting point for a preset file.

Example:
  audpix dump-preset > my.toml
  audpix -p my.toml dump-preset -f json --pretty`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, _ := cmd.Flags().GetString("format")
			pretty, _ := cmd.Flags().GetBool("pretty")

			format, err := preset.ParseFormat(name)
			if err != nil {
				return err
			}

			return presetFrom(cmd).Dump(cmd.OutOrStdout(), format, pretty)
		},
	}

	cmd.Flags().StringP("format", "f", string(preset.FormatTOML), "toml, json, yaml or debug")
	cmd.Flags().Bool("pretty", false, "indent the output")

	return cmd
}
