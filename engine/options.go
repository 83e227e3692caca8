package engine

// Options configures the dual-tree descent thresholds. The zero value is
// never valid; use DefaultOptions and override with the With* functions.
//
// StopNElem       – once both sides of a pair shrink below this many points,
//
//	rule C forks the remaining work to the pool as a single sequential
//	task instead of continuing to recurse pair-by-pair (spec.md §4.5).
//
// MaxFutures      – once the calling goroutine has more than this many
//
//	outstanding, undrained futures, it pauses descent and waits on the
//	MaxFuturesClear oldest of them before continuing (spec.md §4.5,
//	throttling).
//
// MaxFuturesClear – see MaxFutures. Must be < MaxFutures.
type Options struct {
	StopNElem       int
	MaxFutures      int
	MaxFuturesClear int
}

// Defaults per spec.md §4.5 / §9, matched to the original implementation's
// constants.
const (
	DefaultStopNElem       = 50
	DefaultMaxFutures      = 30000
	DefaultMaxFuturesClear = 10000
)

// DefaultOptions returns the spec's default thresholds.
func DefaultOptions() Options {
	return Options{
		StopNElem:       DefaultStopNElem,
		MaxFutures:      DefaultMaxFutures,
		MaxFuturesClear: DefaultMaxFuturesClear,
	}
}

// Option is a functional option for New. WithStopNElem/WithMaxFutures
// exist mainly so tests can force small thresholds and
// exercise the fork and throttle paths without building huge point clouds.
type Option func(*Options)

// WithStopNElem overrides StopNElem. Panics if n < 1.
func WithStopNElem(n int) Option {
	if n < 1 {
		panic(ErrInvalidStopNElem.Error())
	}
	return func(o *Options) {
		o.StopNElem = n
	}
}

// WithMaxFutures overrides MaxFutures and MaxFuturesClear together, keeping
// the clear threshold at clear. Panics if max <= clear or clear < 1.
func WithMaxFutures(max, clear int) Option {
	if clear < 1 || max <= clear {
		panic(ErrInvalidMaxFutures.Error())
	}
	return func(o *Options) {
		o.MaxFutures = max
		o.MaxFuturesClear = clear
	}
}
