package workerpool

import "errors"

// Sentinel errors for workerpool operations.
var (
	// ErrInvalidThreadCount indicates New was called with threadCount < 1.
	ErrInvalidThreadCount = errors.New("workerpool: thread count must be >= 1")

	// ErrClosed indicates Submit was called after Close.
	ErrClosed = errors.New("workerpool: pool is closed")
)
