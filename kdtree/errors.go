package kdtree

import "errors"

// Sentinel errors for kdtree operations.
var (
	// ErrEmptyInput indicates Build was called on a matrix with zero columns.
	ErrEmptyInput = errors.New("kdtree: point set is empty")

	// ErrInvalidNMin indicates N_min < 1.
	ErrInvalidNMin = errors.New("kdtree: N_min must be >= 1")
)
