package geometry

import "errors"

// Sentinel errors for geometry operations.
var (
	// ErrEmptyInput indicates FromPoints was called with no points.
	ErrEmptyInput = errors.New("geometry: no points given")

	// ErrDimensionMismatch indicates operands with differing dimensionality.
	ErrDimensionMismatch = errors.New("geometry: dimension mismatch")
)
