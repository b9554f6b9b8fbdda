package pixpipe

import (
	"errors"
	"fmt"
)

// Common errors for buffer and pipeline operations.
var (
	// ErrInvalidDimensions is returned when width or height is negative.
	ErrInvalidDimensions = errors.New("pixpipe: invalid dimensions")

	// ErrSizeMismatch is returned when raw pixel data does not hold exactly
	// width*height*4 bytes.
	ErrSizeMismatch = errors.New("pixpipe: size mismatch")

	// ErrOutOfBounds is returned when pixel coordinates are outside the buffer.
	ErrOutOfBounds = errors.New("pixpipe: coordinates out of bounds")

	// ErrNilTransformer is returned when a filter has no transform function.
	ErrNilTransformer = errors.New("pixpipe: filter has nil transformer")
)

// DecodeError describes raw pixel data that could not be decoded.
// It wraps ErrSizeMismatch, so errors.Is(err, ErrSizeMismatch) holds.
type DecodeError struct {
	Width  int
	Height int
	Want   int // expected byte length
	Got    int // actual byte length
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("pixpipe: decode %dx%d: got %d bytes, want %d: size mismatch",
		e.Width, e.Height, e.Got, e.Want)
}

// Unwrap returns ErrSizeMismatch.
func (e *DecodeError) Unwrap() error {
	return ErrSizeMismatch
}

// outOfBounds wraps ErrOutOfBounds with the offending coordinates.
func outOfBounds(x, y, width, height int) error {
	return fmt.Errorf("%w: (%d, %d) not in %dx%d", ErrOutOfBounds, x, y, width, height)
}
