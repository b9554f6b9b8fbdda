package codec

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/pixpipe"
)

// Load reads an image file, choosing the decoder from the file extension.
// Files with an unknown extension are sniffed by content.
func Load(path string) (*pixpipe.PixelBuffer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("codec: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var buf *pixpipe.PixelBuffer
	format, ferr := FormatFromPath(path)
	if ferr != nil {
		buf, format, err = Decode(f)
	} else {
		c, _ := ForFormat(format) // known format
		buf, err = c.Decode(f)
	}
	if err != nil {
		return nil, fmt.Errorf("codec: load %s: %w", path, err)
	}

	pixpipe.Logger().Debug("codec: loaded image",
		"path", path, "format", format.String(),
		"width", buf.Width(), "height", buf.Height())
	return buf, nil
}

// Save writes buf to path, choosing the encoder from the file extension.
func Save(path string, buf *pixpipe.PixelBuffer, opts ...EncodeOption) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if !format.CanEncode() {
		return fmt.Errorf("%w: %v", ErrEncodeUnsupported, format)
	}
	c, err := ForFormat(format, opts...)
	if err != nil {
		return err
	}

	// Encode fully before touching the file so a failed encode leaves
	// nothing behind.
	var data bytes.Buffer
	if err := c.Encode(&data, buf); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Clean(path), data.Bytes(), 0o644); err != nil {
		return fmt.Errorf("codec: write file: %w", err)
	}

	pixpipe.Logger().Debug("codec: saved image",
		"path", path, "format", format.String(),
		"width", buf.Width(), "height", buf.Height(), "bytes", data.Len())
	return nil
}
