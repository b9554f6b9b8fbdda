package pixpipe

import "math"

// ClampChannel converts an intermediate channel value to a uint8.
// The value is rounded down and then clamped to [0, 255], so an overflow
// saturates instead of wrapping. NaN maps to 0.
func ClampChannel(x float64) uint8 {
	if math.IsNaN(x) || x <= 0 {
		return 0
	}
	if x >= 255 {
		return 255
	}
	return uint8(math.Floor(x))
}

// clampInt clamps v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
