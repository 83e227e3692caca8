package engine

import "errors"

// Sentinel errors for engine configuration.
var (
	// ErrInvalidEpsilon indicates New was called with eps <= 0.
	ErrInvalidEpsilon = errors.New("engine: epsilon must be > 0")

	// ErrInvalidStopNElem indicates a WithStopNElem option of < 1.
	ErrInvalidStopNElem = errors.New("engine: stop_n_elem must be >= 1")

	// ErrInvalidMaxFutures indicates a WithMaxFutures option that would
	// make the throttle never fire or never drain.
	ErrInvalidMaxFutures = errors.New("engine: max_futures must be > max_futures_clear >= 1")
)
