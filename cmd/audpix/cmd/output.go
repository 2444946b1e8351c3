// SPDX-License-Identifier: EPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// resolveOutput picks the output file for input. An empty output swaps the
// input extension for ext next to the input; an existing directory receives
// the input's base name with ext.
func resolveOutput(input, output, ext string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + ext

	if output == "" {
		return filepath.Join(filepath.Dir(input), base)
	}

	if info, err := os.Stat(output); err == nil && info.IsDir() {
		return filepath.Join(output, base)
	}

	return output
}

// writeFile runs write against a temporary file beside path and renames it
// into place only when write succeeds, so a failed run leaves path untouched.
func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.CreateTemp(filepath.Dir(path), ".audpix-*"+filepath.Ext(path))
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	tmp := f.Name()

	if err := write(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing output: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("moving output into place: %w", err)
	}

	return nil
}
