// SPDX-License-Identifier: EPL-2.0

package preset

import "errors"

var (
	// ErrUnknownStrategy indicates a color or space strategy name that is not recognized.
	ErrUnknownStrategy = errors.New("unknown strategy")

	// ErrOutOfRange indicates a strategy option outside its valid range.
	ErrOutOfRange = errors.New("option out of range")

	// ErrUnknownFormat indicates a preset encoding other than toml, json, yaml or debug.
	ErrUnknownFormat = errors.New("unknown preset format")

	// ErrUnknownKey indicates a key in a preset file that maps to no option.
	ErrUnknownKey = errors.New("unknown preset key")
)
