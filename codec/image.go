package codec

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/pixpipe"
)

// FromImage converts any image.Image to a pixel buffer.
// The result is straight alpha, anchored at the origin.
func FromImage(img image.Image) *pixpipe.PixelBuffer {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	var pix []byte

	// Fast path: tightly packed NRGBA needs no conversion.
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Stride == width*4 {
		pix = nrgba.Pix[:width*height*4]
	} else {
		dst := image.NewNRGBA(image.Rect(0, 0, width, height))
		draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
		pix = dst.Pix
	}

	// len(pix) == width*height*4 by construction
	buf, _ := pixpipe.Decode(pix, width, height)
	return buf
}

// ToImage converts a pixel buffer to an *image.NRGBA.
// The image owns a copy of the pixel data.
func ToImage(buf *pixpipe.PixelBuffer) *image.NRGBA {
	img := image.NewNRGBA(buf.Bounds())
	copy(img.Pix, buf.RawBytes())
	return img
}

// Scale resamples buf to width x height with a Catmull-Rom kernel.
// Returns pixpipe.ErrInvalidDimensions for negative sizes.
func Scale(buf *pixpipe.PixelBuffer, width, height int) (*pixpipe.PixelBuffer, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", pixpipe.ErrInvalidDimensions, width, height)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), ToImage(buf), buf.Bounds(), draw.Src, nil)
	return FromImage(dst), nil
}
