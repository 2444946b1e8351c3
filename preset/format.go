// SPDX-License-Identifier: EPL-2.0

package preset

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a preset encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	// FormatDebug prints the Go value. Dump only.
	FormatDebug Format = "debug"
)

// ParseFormat accepts a format name in any case; "yml" is an alias of yaml.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatTOML, FormatJSON, FormatYAML, FormatDebug:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}

	f, err := ParseFormat(ext)
	if err != nil || f == FormatDebug {
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	return f, nil
}

// Dump writes p in format. pretty indents JSON and TOML and switches debug
// output to Go syntax; YAML is always block style.
func (p Preset) Dump(w io.Writer, format Format, pretty bool) error {
	switch format {
	case FormatTOML:
		enc := toml.NewEncoder(w)
		if !pretty {
			enc.Indent = ""
		}
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("encoding toml preset: %w", err)
		}
	case FormatJSON:
		enc := json.NewEncoder(w)
		if pretty {
			enc.SetIndent("", "  ")
		}
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("encoding json preset: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("encoding yaml preset: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encoding yaml preset: %w", err)
		}
	case FormatDebug:
		verb := "%+v\n"
		if pretty {
			verb = "%#v\n"
		}
		if _, err := fmt.Fprintf(w, verb, p); err != nil {
			return fmt.Errorf("writing preset: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return nil
}
