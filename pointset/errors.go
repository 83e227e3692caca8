package pointset

import "errors"

// Sentinel errors for pointset operations.
var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("pointset: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a row or column index outside valid range.
	ErrIndexOutOfBounds = errors.New("pointset: index out of bounds")
)
