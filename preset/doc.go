// SPDX-License-Identifier: EPL-2.0

// Package preset holds the strategy configuration shared by encoding and
// decoding. A preset names one color strategy and one space strategy, each
// with its options:
//
//	[color]
//	strategy = "hue"
//	[color.options]
//	saturation = 1.0
//	value = 1.0
//
//	[space]
//	strategy = "hilbert"
//	[space.options]
//	size = 512
//
// The same shape is accepted as JSON and YAML. Keys left out keep the
// values of Default. An image decodes correctly only with the preset it was
// encoded with.
package preset
