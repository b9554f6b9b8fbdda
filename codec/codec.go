// Package codec converts between pixpipe buffers and encoded images.
//
// It is the decoder/encoder collaborator of the pixpipe core: the core only
// understands raw R, G, B, A bytes, and this package turns image files into
// such buffers and back. Supported formats are PNG, JPEG, BMP, TIFF, WebP
// (decode only) and PXZ, a zstd-compressed raw pixel container.
//
// Buffers are straight (non-premultiplied) alpha. Decoded images are
// converted to NRGBA before being handed to the core.
package codec

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"

	"github.com/gogpu/pixpipe"
)

// Codec errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("codec: unsupported format")

	// ErrEncodeUnsupported is returned when a format can be read but not written.
	ErrEncodeUnsupported = errors.New("codec: encoding not supported for format")

	// ErrNilBuffer is returned when encoding a nil buffer.
	ErrNilBuffer = errors.New("codec: nil buffer")
)

// Decoder produces a pixel buffer from an encoded stream.
type Decoder interface {
	Decode(r io.Reader) (*pixpipe.PixelBuffer, error)
}

// Encoder writes a pixel buffer as an encoded stream.
type Encoder interface {
	Encode(w io.Writer, buf *pixpipe.PixelBuffer) error
}

// Format identifies an encoded image format.
type Format uint8

const (
	// FormatUnknown is the zero Format.
	FormatUnknown Format = iota

	// FormatPNG is Portable Network Graphics.
	FormatPNG

	// FormatJPEG is JPEG (lossy, alpha is dropped).
	FormatJPEG

	// FormatBMP is Windows bitmap.
	FormatBMP

	// FormatTIFF is Tagged Image File Format.
	FormatTIFF

	// FormatWebP is WebP (decode only).
	FormatWebP

	// FormatPXZ is raw pixels compressed with zstd.
	FormatPXZ

	// formatCount is the number of formats (for internal use).
	formatCount
)

// formatNames maps formats to their canonical names.
var formatNames = [formatCount]string{
	FormatUnknown: "unknown",
	FormatPNG:     "png",
	FormatJPEG:    "jpeg",
	FormatBMP:     "bmp",
	FormatTIFF:    "tiff",
	FormatWebP:    "webp",
	FormatPXZ:     "pxz",
}

// String returns the canonical format name.
func (f Format) String() string {
	if f >= formatCount {
		return "unknown"
	}
	return formatNames[f]
}

// CanEncode returns true if buffers can be written in this format.
func (f Format) CanEncode() bool {
	switch f {
	case FormatPNG, FormatJPEG, FormatBMP, FormatTIFF, FormatPXZ:
		return true
	default:
		return false
	}
}

// ParseFormat returns the format with the given name or file extension.
// Matching is case-insensitive and ignores a leading dot.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	case "webp":
		return FormatWebP, nil
	case "pxz":
		return FormatPXZ, nil
	default:
		return FormatUnknown, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// FormatFromPath returns the format matching the file extension of path.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Codec decodes and encodes one format.
// It implements both Decoder and Encoder.
type Codec struct {
	format Format
	opts   encodeOptions
}

// ForFormat returns a codec for f configured by opts.
func ForFormat(f Format, opts ...EncodeOption) (*Codec, error) {
	if f == FormatUnknown || f >= formatCount {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	o := defaultEncodeOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Codec{format: f, opts: o}, nil
}

// Format returns the codec's format.
func (c *Codec) Format() Format {
	return c.format
}

// Decode implements Decoder.
func (c *Codec) Decode(r io.Reader) (*pixpipe.PixelBuffer, error) {
	if c.format == FormatPXZ {
		return DecodePXZ(r)
	}

	var (
		img image.Image
		err error
	)
	switch c.format {
	case FormatPNG:
		img, err = png.Decode(r)
	case FormatJPEG:
		img, err = jpeg.Decode(r)
	case FormatBMP:
		img, err = bmp.Decode(r)
	case FormatTIFF:
		img, err = tiff.Decode(r)
	case FormatWebP:
		img, err = webp.Decode(r)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, c.format)
	}
	if err != nil {
		return nil, fmt.Errorf("codec: decode %v: %w", c.format, err)
	}
	return FromImage(img), nil
}

// Encode implements Encoder.
func (c *Codec) Encode(w io.Writer, buf *pixpipe.PixelBuffer) error {
	if buf == nil {
		return ErrNilBuffer
	}
	if c.format == FormatPXZ {
		return EncodePXZ(w, buf, c.opts.zstdLevel)
	}

	img := ToImage(buf)
	var err error
	switch c.format {
	case FormatPNG:
		enc := png.Encoder{CompressionLevel: c.opts.pngLevel}
		err = enc.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: c.opts.jpegQuality})
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: c.opts.tiffCompression})
	case FormatWebP:
		return fmt.Errorf("%w: %v", ErrEncodeUnsupported, c.format)
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, c.format)
	}
	if err != nil {
		return fmt.Errorf("codec: encode %v: %w", c.format, err)
	}
	return nil
}

// Decode decodes r, detecting the format from its content.
// Every format in this package registers itself with the image package,
// so PXZ streams are detected too.
func Decode(r io.Reader) (*pixpipe.PixelBuffer, Format, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		return nil, FormatUnknown, fmt.Errorf("codec: decode: %w", err)
	}
	f, _ := ParseFormat(name)
	return FromImage(img), f, nil
}

// Encode writes buf to w in format f.
func Encode(w io.Writer, buf *pixpipe.PixelBuffer, f Format, opts ...EncodeOption) error {
	c, err := ForFormat(f, opts...)
	if err != nil {
		return err
	}
	return c.Encode(w, buf)
}
