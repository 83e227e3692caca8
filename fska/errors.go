package fska

import "errors"

// Sentinel errors returned by Run. All map to spec §7's error kinds:
// shape mismatch, invalid parameter, and empty input.
var (
	// ErrShapeMismatch indicates X and Y have different row counts, or
	// ws does not have one entry per column of X.
	ErrShapeMismatch = errors.New("fska: X and Y must have the same row count, and len(ws) must equal X's column count")

	// ErrInvalidNMin indicates N_min < 1.
	ErrInvalidNMin = errors.New("fska: N_min must be >= 1")

	// ErrInvalidEpsilon indicates eps <= 0.
	ErrInvalidEpsilon = errors.New("fska: eps must be > 0")

	// ErrInvalidThreadCount indicates n_threads < 1.
	ErrInvalidThreadCount = errors.New("fska: n_threads must be >= 1")

	// ErrEmptyInput indicates X or Y has zero columns.
	ErrEmptyInput = errors.New("fska: X and Y must both be non-empty")
)
