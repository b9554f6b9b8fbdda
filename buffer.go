package pixpipe

import (
	"encoding/binary"
	"fmt"
	"image"
	"math"
)

// BytesPerPixel is the size of one serialized pixel.
const BytesPerPixel = 4

// PixelBuffer is a rectangular buffer of packed pixels in row-major order.
//
// The buffer exclusively owns its storage: accessors that expose pixel data
// return copies. len(pixels) == width*height holds for every buffer returned
// by this package.
//
// Thread safety: PixelBuffer is not safe for concurrent mutation.
type PixelBuffer struct {
	width  int
	height int
	pixels []Pixel
}

// NewPixelBuffer creates a width x height buffer with every pixel set to fill.
// Use Opaque for the conventional opaque black default.
// Returns ErrInvalidDimensions if width or height is negative, or if the
// buffer would not fit in memory addressable by an int.
func NewPixelBuffer(width, height int, fill Pixel) (*PixelBuffer, error) {
	if err := checkDims(width, height); err != nil {
		return nil, err
	}

	b := &PixelBuffer{
		width:  width,
		height: height,
		pixels: make([]Pixel, width*height),
	}
	if fill != 0 {
		b.Fill(fill)
	}
	return b, nil
}

// Decode interprets raw as width*height pixels in R, G, B, A byte order.
// Returns ErrInvalidDimensions for negative or overflowing dimensions and a
// *DecodeError wrapping ErrSizeMismatch if len(raw) != width*height*4.
// The returned buffer does not alias raw.
func Decode(raw []byte, width, height int) (*PixelBuffer, error) {
	if err := checkDims(width, height); err != nil {
		return nil, err
	}

	want := width * height * BytesPerPixel
	if len(raw) != want {
		return nil, &DecodeError{Width: width, Height: height, Want: want, Got: len(raw)}
	}

	pixels := make([]Pixel, width*height)
	for i := range pixels {
		pixels[i] = Pixel(binary.LittleEndian.Uint32(raw[i*BytesPerPixel:]))
	}

	return &PixelBuffer{
		width:  width,
		height: height,
		pixels: pixels,
	}, nil
}

// checkDims rejects negative dimensions and sizes whose byte length
// width*height*4 overflows int.
func checkDims(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width != 0 && height > math.MaxInt/BytesPerPixel/width {
		return fmt.Errorf("%w: %dx%d overflows", ErrInvalidDimensions, width, height)
	}
	return nil
}

// Width returns the buffer width in pixels.
func (b *PixelBuffer) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *PixelBuffer) Height() int {
	return b.height
}

// Len returns the number of pixels (width * height).
func (b *PixelBuffer) Len() int {
	return len(b.pixels)
}

// Bounds returns the buffer rectangle anchored at the origin.
func (b *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// IsEmpty returns true if the buffer has zero width or height.
func (b *PixelBuffer) IsEmpty() bool {
	return b.width == 0 || b.height == 0
}

// index returns the slice index of (x, y), or -1 if out of bounds.
func (b *PixelBuffer) index(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// GetPixel returns the pixel at (x, y).
// Returns ErrOutOfBounds if the coordinates are outside the buffer.
func (b *PixelBuffer) GetPixel(x, y int) (Pixel, error) {
	i := b.index(x, y)
	if i < 0 {
		return 0, outOfBounds(x, y, b.width, b.height)
	}
	return b.pixels[i], nil
}

// SetPixel overwrites the pixel at (x, y).
// Returns ErrOutOfBounds, without touching the buffer, if the coordinates
// are outside it.
func (b *PixelBuffer) SetPixel(x, y int, p Pixel) error {
	i := b.index(x, y)
	if i < 0 {
		return outOfBounds(x, y, b.width, b.height)
	}
	b.pixels[i] = p
	return nil
}

// Fill sets every pixel to p.
func (b *PixelBuffer) Fill(p Pixel) {
	for i := range b.pixels {
		b.pixels[i] = p
	}
}

// Pixels returns a copy of the pixels in row-major order.
func (b *PixelBuffer) Pixels() []Pixel {
	out := make([]Pixel, len(b.pixels))
	copy(out, b.pixels)
	return out
}

// RawBytes returns the pixels serialized in R, G, B, A byte order.
// The result is a fresh slice of length Width()*Height()*4.
func (b *PixelBuffer) RawBytes() []byte {
	raw := make([]byte, len(b.pixels)*BytesPerPixel)
	for i, p := range b.pixels {
		binary.LittleEndian.PutUint32(raw[i*BytesPerPixel:], uint32(p))
	}
	return raw
}

// Clone creates a deep copy of the buffer.
func (b *PixelBuffer) Clone() *PixelBuffer {
	return &PixelBuffer{
		width:  b.width,
		height: b.height,
		pixels: b.Pixels(),
	}
}

// Equal reports whether both buffers have the same dimensions and pixels.
func (b *PixelBuffer) Equal(other *PixelBuffer) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.width != other.width || b.height != other.height {
		return false
	}
	for i, p := range b.pixels {
		if other.pixels[i] != p {
			return false
		}
	}
	return true
}

// Resize changes the buffer dimensions. The overlapping top-left region is
// kept and new pixels are set to fill.
// Returns ErrInvalidDimensions, leaving the buffer untouched, if width or
// height is negative or their product overflows.
func (b *PixelBuffer) Resize(width, height int, fill Pixel) error {
	if err := checkDims(width, height); err != nil {
		return err
	}
	if width == b.width && height == b.height {
		return nil
	}

	pixels := make([]Pixel, width*height)
	keepW := clampInt(b.width, 0, width)
	keepH := clampInt(b.height, 0, height)

	for y := range height {
		row := pixels[y*width : (y+1)*width]
		start := 0
		if y < keepH {
			copy(row, b.pixels[y*b.width:y*b.width+keepW])
			start = keepW
		}
		for x := start; x < width; x++ {
			row[x] = fill
		}
	}

	b.width = width
	b.height = height
	b.pixels = pixels
	return nil
}
