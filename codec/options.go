package codec

import (
	"image/png"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/image/tiff"
)

// EncodeOption configures encoding.
type EncodeOption func(*encodeOptions)

// encodeOptions holds per-format encoder settings.
type encodeOptions struct {
	jpegQuality     int
	pngLevel        png.CompressionLevel
	tiffCompression tiff.CompressionType
	zstdLevel       zstd.EncoderLevel
}

// defaultEncodeOptions returns the default encoder settings.
func defaultEncodeOptions() encodeOptions {
	return encodeOptions{
		jpegQuality:     90,
		pngLevel:        png.DefaultCompression,
		tiffCompression: tiff.Deflate,
		zstdLevel:       zstd.SpeedDefault,
	}
}

// WithJPEGQuality sets the JPEG quality (1-100). Out of range values are clamped.
func WithJPEGQuality(q int) EncodeOption {
	return func(o *encodeOptions) {
		o.jpegQuality = min(max(q, 1), 100)
	}
}

// WithPNGCompression sets the PNG compression level.
func WithPNGCompression(level png.CompressionLevel) EncodeOption {
	return func(o *encodeOptions) {
		o.pngLevel = level
	}
}

// WithTIFFCompression sets the TIFF compression scheme.
func WithTIFFCompression(c tiff.CompressionType) EncodeOption {
	return func(o *encodeOptions) {
		o.tiffCompression = c
	}
}

// WithZstdLevel sets the zstd level used for PXZ output.
func WithZstdLevel(level zstd.EncoderLevel) EncodeOption {
	return func(o *encodeOptions) {
		o.zstdLevel = level
	}
}
