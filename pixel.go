package pixpipe

import "fmt"

// Pixel is a packed 32-bit RGBA value with 8 bits per channel.
//
// Channel layout, from least to most significant byte:
//
//	bits  0-7   red
//	bits  8-15  green
//	bits 16-23  blue
//	bits 24-31  alpha
//
// Serialized in little-endian order this gives the R, G, B, A byte sequence
// used by [Decode] and [PixelBuffer.RawBytes].
type Pixel uint32

// Channel identifies one 8-bit component of a [Pixel].
type Channel uint8

const (
	// Red is the red channel (bits 0-7).
	Red Channel = iota

	// Green is the green channel (bits 8-15).
	Green

	// Blue is the blue channel (bits 16-23).
	Blue

	// Alpha is the alpha channel (bits 24-31).
	Alpha

	// channelCount is the number of channels (for internal use).
	channelCount
)

// shift returns the bit offset of the channel inside a packed pixel.
func (c Channel) shift() uint {
	return uint(c) * 8
}

// IsValid returns true if c is one of Red, Green, Blue or Alpha.
func (c Channel) IsValid() bool {
	return c < channelCount
}

// String returns the channel name.
func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Alpha:
		return "alpha"
	default:
		return "unknown"
	}
}

// Common pixels.
const (
	// Transparent is fully transparent black.
	Transparent Pixel = 0x00000000

	// Opaque is opaque black, the default fill for new buffers.
	Opaque Pixel = 0xFF000000

	// White is opaque white.
	White Pixel = 0xFFFFFFFF
)

// NewPixel packs four channel values into a Pixel.
func NewPixel(r, g, b, a uint8) Pixel {
	return Pixel(uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24)
}

// Channel returns the value of channel c.
// Returns 0 for an invalid channel.
func (p Pixel) Channel(c Channel) uint8 {
	if !c.IsValid() {
		return 0
	}
	return uint8(uint32(p) >> c.shift())
}

// WithChannel returns a copy of p with channel c replaced by v.
// The other three channels are preserved bit for bit.
// An invalid channel returns p unchanged.
func (p Pixel) WithChannel(c Channel, v uint8) Pixel {
	if !c.IsValid() {
		return p
	}
	s := c.shift()
	mask := uint32(0xFF) << s
	return Pixel(uint32(p)&^mask | uint32(v)<<s)
}

// SetChannel replaces channel c with v in place.
func (p *Pixel) SetChannel(c Channel, v uint8) {
	*p = p.WithChannel(c, v)
}

// Red returns the red channel.
func (p Pixel) Red() uint8 { return uint8(p) }

// Green returns the green channel.
func (p Pixel) Green() uint8 { return uint8(p >> 8) }

// Blue returns the blue channel.
func (p Pixel) Blue() uint8 { return uint8(p >> 16) }

// Alpha returns the alpha channel.
func (p Pixel) Alpha() uint8 { return uint8(p >> 24) }

// SetRed replaces the red channel.
func (p *Pixel) SetRed(v uint8) { *p = p.WithChannel(Red, v) }

// SetGreen replaces the green channel.
func (p *Pixel) SetGreen(v uint8) { *p = p.WithChannel(Green, v) }

// SetBlue replaces the blue channel.
func (p *Pixel) SetBlue(v uint8) { *p = p.WithChannel(Blue, v) }

// SetAlpha replaces the alpha channel.
func (p *Pixel) SetAlpha(v uint8) { *p = p.WithChannel(Alpha, v) }

// WithRed returns p with the red channel replaced.
func (p Pixel) WithRed(v uint8) Pixel { return p.WithChannel(Red, v) }

// WithGreen returns p with the green channel replaced.
func (p Pixel) WithGreen(v uint8) Pixel { return p.WithChannel(Green, v) }

// WithBlue returns p with the blue channel replaced.
func (p Pixel) WithBlue(v uint8) Pixel { return p.WithChannel(Blue, v) }

// WithAlpha returns p with the alpha channel replaced.
func (p Pixel) WithAlpha(v uint8) Pixel { return p.WithChannel(Alpha, v) }

// RGBA returns all four channels.
func (p Pixel) RGBA() (r, g, b, a uint8) {
	return p.Red(), p.Green(), p.Blue(), p.Alpha()
}

// String returns the pixel as "rgba(r, g, b, a)".
func (p Pixel) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", p.Red(), p.Green(), p.Blue(), p.Alpha())
}
