package filter

import (
	"math"

	"github.com/gogpu/pixpipe"
)

// Filter names used by the color matrix constructors.
const (
	NameIdentity   = "identity"
	NameInvert     = "invert"
	NameGrayscale  = "grayscale"
	NameSaturation = "saturation"
	NameSepia      = "sepia"
	NameOpacity    = "opacity"
	NameHueRotate  = "hue-rotate"
	NameTint       = "tint"
)

// ColorMatrix applies a 4x5 color transformation matrix to a pixel.
// The transformation is:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
//
// The fifth column provides bias/offset values. Channels are straight
// alpha values in [0, 255] during the transformation, then rounded and
// clamped back to [0, 255].
type ColorMatrix struct {
	// Matrix is the 4x5 transformation matrix in row-major order.
	// [0-4] = row 0 (R), [5-9] = row 1 (G), [10-14] = row 2 (B), [15-19] = row 3 (A)
	Matrix [20]float32
}

// NewColorMatrix creates a color matrix transformer with the given matrix.
func NewColorMatrix(matrix [20]float32) *ColorMatrix {
	return &ColorMatrix{Matrix: matrix}
}

// IdentityMatrix returns a color matrix that passes pixels through unchanged.
func IdentityMatrix() *ColorMatrix {
	return &ColorMatrix{
		Matrix: [20]float32{
			1, 0, 0, 0, 0, // R
			0, 1, 0, 0, 0, // G
			0, 0, 1, 0, 0, // B
			0, 0, 0, 1, 0, // A
		},
	}
}

// SaturationMatrix returns a matrix that adjusts color saturation.
// factor: 0.0 = grayscale, 1.0 = unchanged, 2.0 = oversaturated
func SaturationMatrix(factor float32) *ColorMatrix {
	// Luminance weights (Rec. 709)
	const (
		lumR = 0.2126
		lumG = 0.7152
		lumB = 0.0722
	)

	// Blend between luminance (0) and identity (1)
	invFactor := 1 - factor

	return &ColorMatrix{
		Matrix: [20]float32{
			lumR*invFactor + factor, lumG * invFactor, lumB * invFactor, 0, 0,
			lumR * invFactor, lumG*invFactor + factor, lumB * invFactor, 0, 0,
			lumR * invFactor, lumG * invFactor, lumB*invFactor + factor, 0, 0,
			0, 0, 0, 1, 0,
		},
	}
}

// SepiaMatrix returns the classic sepia tone matrix.
func SepiaMatrix() *ColorMatrix {
	return &ColorMatrix{
		Matrix: [20]float32{
			0.393, 0.769, 0.189, 0, 0,
			0.349, 0.686, 0.168, 0, 0,
			0.272, 0.534, 0.131, 0, 0,
			0, 0, 0, 1, 0,
		},
	}
}

// InvertMatrix returns a matrix that inverts red, green and blue.
func InvertMatrix() *ColorMatrix {
	return &ColorMatrix{
		Matrix: [20]float32{
			-1, 0, 0, 0, 255,
			0, -1, 0, 0, 255,
			0, 0, -1, 0, 255,
			0, 0, 0, 1, 0,
		},
	}
}

// OpacityMatrix returns a matrix that multiplies alpha by factor.
// factor: 0.0 = fully transparent, 1.0 = unchanged
func OpacityMatrix(factor float32) *ColorMatrix {
	return &ColorMatrix{
		Matrix: [20]float32{
			1, 0, 0, 0, 0,
			0, 1, 0, 0, 0,
			0, 0, 1, 0, 0,
			0, 0, 0, factor, 0,
		},
	}
}

// HueRotateMatrix returns a matrix that rotates hue by degrees.
func HueRotateMatrix(degrees float32) *ColorMatrix {
	rad := float64(degrees) * math.Pi / 180
	cos := float32(math.Cos(rad))
	sin := float32(math.Sin(rad))

	// Rotation in YIQ-like space
	const (
		lumR = 0.213
		lumG = 0.715
		lumB = 0.072
	)

	return &ColorMatrix{
		Matrix: [20]float32{
			lumR + cos*(1-lumR) + sin*(-lumR), lumG + cos*(-lumG) + sin*(-lumG), lumB + cos*(-lumB) + sin*(1-lumB), 0, 0,
			lumR + cos*(-lumR) + sin*(0.143), lumG + cos*(1-lumG) + sin*(0.140), lumB + cos*(-lumB) + sin*(-0.283), 0, 0,
			lumR + cos*(-lumR) + sin*(-(1 - lumR)), lumG + cos*(-lumG) + sin*(lumG), lumB + cos*(1-lumB) + sin*(lumB), 0, 0,
			0, 0, 0, 1, 0,
		},
	}
}

// TintMatrix returns a matrix that blends every pixel toward tint.
// The tint's alpha is the blend weight: 0 = unchanged, 255 = solid tint.
func TintMatrix(tint pixpipe.Pixel) *ColorMatrix {
	f := float32(tint.Alpha()) / 255
	invF := 1 - f

	return &ColorMatrix{
		Matrix: [20]float32{
			invF, 0, 0, 0, float32(tint.Red()) * f,
			0, invF, 0, 0, float32(tint.Green()) * f,
			0, 0, invF, 0, float32(tint.Blue()) * f,
			0, 0, 0, 1, 0,
		},
	}
}

// Transform implements pixpipe.Transformer.
func (m *ColorMatrix) Transform(p pixpipe.Pixel) pixpipe.Pixel {
	r := float32(p.Red())
	g := float32(p.Green())
	b := float32(p.Blue())
	a := float32(p.Alpha())

	x := &m.Matrix
	newR := x[0]*r + x[1]*g + x[2]*b + x[3]*a + x[4]
	newG := x[5]*r + x[6]*g + x[7]*b + x[8]*a + x[9]
	newB := x[10]*r + x[11]*g + x[12]*b + x[13]*a + x[14]
	newA := x[15]*r + x[16]*g + x[17]*b + x[18]*a + x[19]

	return pixpipe.NewPixel(clampUint8(newR), clampUint8(newG), clampUint8(newB), clampUint8(newA))
}

// Multiply returns a matrix that applies m first, then other.
func (m *ColorMatrix) Multiply(other *ColorMatrix) *ColorMatrix {
	a := &m.Matrix
	b := &other.Matrix

	result := &ColorMatrix{}
	r := &result.Matrix

	// result = b * a, treating the 5th column as a constant input
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += b[row*5+k] * a[k*5+col]
			}
			r[row*5+col] = sum
		}
		r[row*5+4] = b[row*5+0]*a[4] + b[row*5+1]*a[9] +
			b[row*5+2]*a[14] + b[row*5+3]*a[19] + b[row*5+4]
	}

	return result
}

// Identity returns a filter that leaves pixels unchanged.
func Identity() pixpipe.Filter {
	return pixpipe.Filter{Name: NameIdentity, Transformer: IdentityLUT()}
}

// Invert returns a filter that inverts red, green and blue.
func Invert() pixpipe.Filter {
	return pixpipe.Filter{Name: NameInvert, Transformer: InvertMatrix()}
}

// Grayscale returns a filter that converts to grayscale with Rec. 709 weights.
func Grayscale() pixpipe.Filter {
	return pixpipe.Filter{Name: NameGrayscale, Transformer: SaturationMatrix(0)}
}

// Saturation returns a filter that adjusts color saturation.
func Saturation(factor float32) pixpipe.Filter {
	return pixpipe.Filter{Name: NameSaturation, Transformer: SaturationMatrix(factor)}
}

// Sepia returns a sepia tone filter.
func Sepia() pixpipe.Filter {
	return pixpipe.Filter{Name: NameSepia, Transformer: SepiaMatrix()}
}

// Opacity returns a filter that multiplies alpha by factor.
func Opacity(factor float32) pixpipe.Filter {
	return pixpipe.Filter{Name: NameOpacity, Transformer: OpacityMatrix(factor)}
}

// HueRotate returns a filter that rotates hue by degrees.
func HueRotate(degrees float32) pixpipe.Filter {
	return pixpipe.Filter{Name: NameHueRotate, Transformer: HueRotateMatrix(degrees)}
}

// Tint returns a filter that blends pixels toward tint by tint's alpha.
func Tint(tint pixpipe.Pixel) pixpipe.Filter {
	return pixpipe.Filter{Name: NameTint, Transformer: TintMatrix(tint)}
}

// clampUint8 clamps a float32 to [0, 255] and rounds to nearest.
func clampUint8(v float32) uint8 {
	if !(v > 0) { // also catches NaN
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
