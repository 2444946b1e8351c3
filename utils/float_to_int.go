// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

const int16Scale = 32768.0

// Float32ToInt16 scales a [-1, 1] sample by 32768 and truncates toward zero.
// Values outside the int16 range saturate; NaN becomes silence.
func Float32ToInt16(x float32) int16 {
	v := float64(x) * int16Scale

	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt16:
		return math.MaxInt16
	case v <= math.MinInt16:
		return math.MinInt16
	}

	return int16(v)
}

// Int32ToInt16 halves a 32-bit integer sample, truncating toward zero, and
// saturates the result to the int16 range.
func Int32ToInt16(x int32) int16 {
	v := x / 2

	switch {
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	}

	return int16(v)
}

// Int16ToFloat32 is the inverse scale of Float32ToInt16.
func Int16ToFloat32(x int16) float32 {
	return float32(x) / int16Scale
}

// IntToFloat32 normalizes an integer sample of the given bit depth to [-1, 1).
// Unknown depths are treated as 16-bit.
func IntToFloat32(x int, bitDepth int) float32 {
	var full float32
	switch bitDepth {
	case 8:
		full = 1 << 7
	case 24:
		full = 1 << 23
	case 32:
		full = 1 << 31
	default:
		full = int16Scale
	}

	return float32(x) / full
}
