// SPDX-License-Identifier: EPL-2.0

package preset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ik5/audpix/colormap"
	"github.com/ik5/audpix/space"
)

// Strategy names.
const (
	ColorHue     = "hue"
	SpaceHilbert = "hilbert"
	SpaceLine    = "line"
)

// DefaultHilbertSize is the side length of the default Hilbert plane.
const DefaultHilbertSize = 512

// Preset selects and parameterizes the strategies of a codec run.
type Preset struct {
	Color ColorConfig `toml:"color" json:"color" yaml:"color"`
	Space SpaceConfig `toml:"space" json:"space" yaml:"space"`
}

type ColorConfig struct {
	Strategy string       `toml:"strategy" json:"strategy" yaml:"strategy"`
	Options  ColorOptions `toml:"options" json:"options" yaml:"options"`
}

type ColorOptions struct {
	Saturation float64 `toml:"saturation" json:"saturation" yaml:"saturation"`
	Value      float64 `toml:"value" json:"value" yaml:"value"`
}

type SpaceConfig struct {
	Strategy string       `toml:"strategy" json:"strategy" yaml:"strategy"`
	Options  SpaceOptions `toml:"options" json:"options" yaml:"options"`
}

// SpaceOptions carries Size for hilbert and Length for line; the other one
// is cleared on parse.
type SpaceOptions struct {
	Size   uint32 `toml:"size,omitzero" json:"size,omitempty" yaml:"size,omitempty"`
	Length uint32 `toml:"length,omitzero" json:"length,omitempty" yaml:"length,omitempty"`
}

// Default is hue at full saturation and value over a 512x512 Hilbert plane.
func Default() Preset {
	return Preset{
		Color: ColorConfig{
			Strategy: ColorHue,
			Options: ColorOptions{
				Saturation: colormap.DefaultSaturation,
				Value:      colormap.DefaultValue,
			},
		},
		Space: SpaceConfig{
			Strategy: SpaceHilbert,
			Options:  SpaceOptions{Size: DefaultHilbertSize},
		},
	}
}

// Load reads a preset file, choosing the decoder from its extension.
func Load(path string) (Preset, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Preset{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, fmt.Errorf("reading preset: %w", err)
	}

	p, err := Parse(data, format)
	if err != nil {
		return Preset{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	return p, nil
}

// Parse decodes data over Default and validates the result. Keys that do not
// map to an option are rejected.
func Parse(data []byte, format Format) (Preset, error) {
	p := Default()

	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &p)
		if err != nil {
			return Preset{}, fmt.Errorf("parsing toml preset: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Preset{}, fmt.Errorf("%w: %s", ErrUnknownKey, undecoded[0])
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return Preset{}, fmt.Errorf("parsing json preset: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// an empty document is valid and keeps the defaults
		if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
			return Preset{}, fmt.Errorf("parsing yaml preset: %w", err)
		}
	default:
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	p.normalize()
	if err := p.Validate(); err != nil {
		return Preset{}, err
	}

	return p, nil
}

func (p *Preset) normalize() {
	p.Color.Strategy = strings.ToLower(strings.TrimSpace(p.Color.Strategy))
	p.Space.Strategy = strings.ToLower(strings.TrimSpace(p.Space.Strategy))

	switch p.Space.Strategy {
	case SpaceHilbert:
		p.Space.Options.Length = 0
	case SpaceLine:
		p.Space.Options.Size = 0
	}
}

// Validate checks strategy names and option ranges.
func (p Preset) Validate() error {
	switch p.Color.Strategy {
	case ColorHue:
		if !inUnit(p.Color.Options.Saturation) {
			return fmt.Errorf("%w: saturation %v not in [0, 1]", ErrOutOfRange, p.Color.Options.Saturation)
		}
		if !inUnit(p.Color.Options.Value) {
			return fmt.Errorf("%w: value %v not in [0, 1]", ErrOutOfRange, p.Color.Options.Value)
		}
	default:
		return fmt.Errorf("%w: color %q", ErrUnknownStrategy, p.Color.Strategy)
	}

	switch p.Space.Strategy {
	case SpaceHilbert:
		if _, err := space.NewHilbert(p.Space.Options.Size); err != nil {
			return fmt.Errorf("%w: size %d: %w", ErrOutOfRange, p.Space.Options.Size, err)
		}
	case SpaceLine:
		if p.Space.Options.Length == 0 {
			return fmt.Errorf("%w: line length must be positive", ErrOutOfRange)
		}
	default:
		return fmt.Errorf("%w: space %q", ErrUnknownStrategy, p.Space.Strategy)
	}

	return nil
}

func inUnit(x float64) bool {
	return !math.IsNaN(x) && x >= 0 && x <= 1
}

func (p Preset) ColorStrategy() (colormap.Strategy, error) {
	if p.Color.Strategy != ColorHue {
		return nil, fmt.Errorf("%w: color %q", ErrUnknownStrategy, p.Color.Strategy)
	}

	return colormap.NewHue(p.Color.Options.Saturation, p.Color.Options.Value), nil
}

// SpaceStrategy builds the planar space strategy. A line is lifted to two
// dimensions, giving a Length x 1 image.
func (p Preset) SpaceStrategy() (space.Strategy, error) {
	switch p.Space.Strategy {
	case SpaceHilbert:
		return space.NewHilbert(p.Space.Options.Size)
	case SpaceLine:
		return space.Planar(space.NewLine(p.Space.Options.Length))
	}

	return nil, fmt.Errorf("%w: space %q", ErrUnknownStrategy, p.Space.Strategy)
}

// Strategies validates p and builds both strategies.
func (p Preset) Strategies() (colormap.Strategy, space.Strategy, error) {
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}

	colors, err := p.ColorStrategy()
	if err != nil {
		return nil, nil, err
	}

	sp, err := p.SpaceStrategy()
	if err != nil {
		return nil, nil, err
	}

	return colors, sp, nil
}
