package filter

import (
	"testing"

	"github.com/gogpu/pixpipe"
)

// Test helper functions shared across filter tests.

// apply runs f over a single pixel.
func apply(f pixpipe.Filter, p pixpipe.Pixel) pixpipe.Pixel {
	return f.Transformer.Transform(p)
}

// gray returns an opaque gray pixel.
func gray(v uint8) pixpipe.Pixel {
	return pixpipe.NewPixel(v, v, v, 255)
}

// createTestBuffer creates a buffer filled with p.
func createTestBuffer(t testing.TB, w, h int, p pixpipe.Pixel) *pixpipe.PixelBuffer {
	t.Helper()
	buf, err := pixpipe.NewPixelBuffer(w, h, p)
	if err != nil {
		t.Fatal(err)
	}
	return buf
}

// channelApproxEqual compares two channel values with tolerance.
func channelApproxEqual(a, b uint8, tolerance int) bool {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d <= tolerance
}
