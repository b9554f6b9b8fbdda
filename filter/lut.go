package filter

import "github.com/gogpu/pixpipe"

// LUT is a per-channel lookup table. Transform maps each channel value
// through its table. A zero LUT maps everything to 0; start from
// IdentityLUT to build partial tables.
type LUT struct {
	R, G, B, A [256]uint8
}

// IdentityLUT returns a table that leaves every channel unchanged.
func IdentityLUT() *LUT {
	l := &LUT{}
	for i := 0; i < 256; i++ {
		v := uint8(i)
		l.R[i], l.G[i], l.B[i], l.A[i] = v, v, v, v
	}
	return l
}

// NewColorLUT builds a table that applies fn to red, green and blue and
// leaves alpha unchanged.
func NewColorLUT(fn func(v uint8) uint8) *LUT {
	l := IdentityLUT()
	for i := 0; i < 256; i++ {
		v := fn(uint8(i))
		l.R[i], l.G[i], l.B[i] = v, v, v
	}
	return l
}

// Transform implements pixpipe.Transformer.
func (l *LUT) Transform(p pixpipe.Pixel) pixpipe.Pixel {
	r, g, b, a := p.RGBA()
	return pixpipe.NewPixel(l.R[r], l.G[g], l.B[b], l.A[a])
}

// Then returns a table equivalent to applying l followed by next.
func (l *LUT) Then(next *LUT) *LUT {
	out := &LUT{}
	for i := 0; i < 256; i++ {
		out.R[i] = next.R[l.R[i]]
		out.G[i] = next.G[l.G[i]]
		out.B[i] = next.B[l.B[i]]
		out.A[i] = next.A[l.A[i]]
	}
	return out
}
