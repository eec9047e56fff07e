package seiscube

import (
	"errors"

	"github.com/hupe1980/seiscube/axis"
	"github.com/hupe1980/seiscube/grid"
	"github.com/hupe1980/seiscube/view"
)

var (
	// ErrOutOfRange is returned when a start or stop lies outside an axis.
	// Errors carry an *axis.RangeError with the offending axis and value.
	ErrOutOfRange = axis.ErrOutOfRange

	// ErrInvalidStep is returned when a step is not a positive multiple of the axis stride.
	ErrInvalidStep = axis.ErrInvalidStep

	// ErrKeyNotFound is returned when a keyed view does not hold a key.
	ErrKeyNotFound = view.ErrKeyNotFound

	// ErrShapeMismatch is returned when a Reader returns data of the wrong shape.
	ErrShapeMismatch = grid.ErrShapeMismatch

	// ErrInvalidGeometry is returned by Open when the reader geometry is not a regular grid.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrClosed is returned when using a closed Volume.
	ErrClosed = errors.New("volume is closed")
)

// isRequestError reports whether err was caused by the caller's request
// rather than by the Reader.
func isRequestError(err error) bool {
	return errors.Is(err, ErrOutOfRange) ||
		errors.Is(err, ErrInvalidStep) ||
		errors.Is(err, ErrKeyNotFound) ||
		errors.Is(err, ErrClosed)
}
