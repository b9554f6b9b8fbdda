package filter

import (
	"math"

	"github.com/gogpu/pixpipe"
)

// Filter names used by the constructors in this file.
const (
	NameBrightness = "brightness"
	NameContrast   = "contrast"
	NameGamma      = "gamma"
	NameThreshold  = "threshold"
)

// BrightnessLUT returns the table used by Brightness.
// Each color channel becomes clamp(0, 255, floor(v * factor)).
func BrightnessLUT(factor float64) *LUT {
	return NewColorLUT(func(v uint8) uint8 {
		return pixpipe.ClampChannel(float64(v) * factor)
	})
}

// Brightness scales red, green and blue by factor.
// factor: 0.0 = black, 1.0 = unchanged, 2.0 = twice as bright.
// Results are clamped to [0, 255]; alpha is untouched.
func Brightness(factor float64) pixpipe.Filter {
	return pixpipe.Filter{Name: NameBrightness, Transformer: BrightnessLUT(factor)}
}

// ContrastLUT returns the table used by Contrast.
// Each color channel becomes clamp(0, 255, floor(128 + (v-128) * factor)).
func ContrastLUT(factor float64) *LUT {
	return NewColorLUT(func(v uint8) uint8 {
		return pixpipe.ClampChannel(128 + (float64(v)-128)*factor)
	})
}

// Contrast stretches red, green and blue away from (or toward) mid-gray.
// factor: 0.0 = flat gray, 1.0 = unchanged, 2.0 = high contrast.
// Results are clamped to [0, 255]; alpha is untouched.
func Contrast(factor float64) pixpipe.Filter {
	return pixpipe.Filter{Name: NameContrast, Transformer: ContrastLUT(factor)}
}

// Gamma applies gamma correction: v' = 255 * (v/255)^(1/gamma), rounded.
// A non-positive or NaN gamma yields the identity.
func Gamma(gamma float64) pixpipe.Filter {
	if !(gamma > 0) {
		return pixpipe.Filter{Name: NameGamma, Transformer: IdentityLUT()}
	}
	inv := 1 / gamma
	return pixpipe.Filter{Name: NameGamma, Transformer: NewColorLUT(func(v uint8) uint8 {
		return pixpipe.ClampChannel(255*math.Pow(float64(v)/255, inv) + 0.5)
	})}
}

// Threshold maps each color channel to 255 if it is >= level and 0 otherwise.
func Threshold(level uint8) pixpipe.Filter {
	return pixpipe.Filter{Name: NameThreshold, Transformer: NewColorLUT(func(v uint8) uint8 {
		if v >= level {
			return 255
		}
		return 0
	})}
}
