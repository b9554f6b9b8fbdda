package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/gogpu/pixpipe"
)

// PXZ container layout:
//
//	offset  size  field
//	0       4     magic "PXZ1"
//	4       4     width  (uint32, little endian)
//	8       4     height (uint32, little endian)
//	12      -     zstd frame holding width*height*4 raw R, G, B, A bytes
const (
	pxzMagic      = "PXZ1"
	pxzHeaderSize = 12

	// maxPXZPixels bounds the allocation made for a declared header.
	maxPXZPixels = 1 << 28
)

// PXZ errors.
var (
	// ErrBadMagic is returned when a stream does not start with "PXZ1".
	ErrBadMagic = errors.New("codec: pxz: bad magic")

	// ErrTooLarge is returned when a header declares more pixels than allowed.
	ErrTooLarge = errors.New("codec: pxz: image too large")
)

func init() {
	image.RegisterFormat("pxz", pxzMagic, decodePXZImage, decodePXZConfig)
}

// EncodePXZ writes buf as a PXZ stream compressed at level.
func EncodePXZ(w io.Writer, buf *pixpipe.PixelBuffer, level zstd.EncoderLevel) error {
	if buf == nil {
		return ErrNilBuffer
	}

	var hdr [pxzHeaderSize]byte
	copy(hdr[:4], pxzMagic)
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(buf.Width()))
	binary.LittleEndian.PutUint32(hdr[8:12], uint32(buf.Height()))
	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("codec: pxz: write header: %w", err)
	}

	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(level), zstd.WithEncoderConcurrency(1))
	if err != nil {
		return fmt.Errorf("codec: pxz: %w", err)
	}
	if _, err := enc.Write(buf.RawBytes()); err != nil {
		_ = enc.Close()
		return fmt.Errorf("codec: pxz: compress: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("codec: pxz: compress: %w", err)
	}
	return nil
}

// DecodePXZ reads a PXZ stream.
// A payload whose length disagrees with the header fails with an error
// wrapping pixpipe.ErrSizeMismatch.
func DecodePXZ(r io.Reader) (*pixpipe.PixelBuffer, error) {
	width, height, err := readPXZHeader(r)
	if err != nil {
		return nil, err
	}

	dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("codec: pxz: %w", err)
	}
	defer dec.Close()

	// Read at most one byte past the expected size so that trailing data
	// is reported as a mismatch without buffering all of it.
	want := int64(width) * int64(height) * pixpipe.BytesPerPixel
	raw, err := io.ReadAll(io.LimitReader(dec, want+1))
	if err != nil {
		return nil, fmt.Errorf("codec: pxz: decompress: %w", err)
	}

	buf, err := pixpipe.Decode(raw, width, height)
	if err != nil {
		return nil, fmt.Errorf("codec: pxz: %w", err)
	}

	pixpipe.Logger().Debug("codec: pxz decoded",
		"width", width, "height", height, "bytes", len(raw))
	return buf, nil
}

// readPXZHeader reads and validates the fixed header.
func readPXZHeader(r io.Reader) (width, height int, err error) {
	var hdr [pxzHeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return 0, 0, fmt.Errorf("codec: pxz: read header: %w", err)
	}
	if string(hdr[:4]) != pxzMagic {
		return 0, 0, ErrBadMagic
	}

	w := binary.LittleEndian.Uint32(hdr[4:8])
	h := binary.LittleEndian.Uint32(hdr[8:12])
	if uint64(w)*uint64(h) > maxPXZPixels {
		return 0, 0, fmt.Errorf("%w: %dx%d", ErrTooLarge, w, h)
	}
	return int(w), int(h), nil
}

// decodePXZImage adapts DecodePXZ to image.Decode.
func decodePXZImage(r io.Reader) (image.Image, error) {
	buf, err := DecodePXZ(r)
	if err != nil {
		return nil, err
	}
	return ToImage(buf), nil
}

// decodePXZConfig adapts the header to image.DecodeConfig.
func decodePXZConfig(r io.Reader) (image.Config, error) {
	w, h, err := readPXZHeader(r)
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{ColorModel: color.NRGBAModel, Width: w, Height: h}, nil
}
