package fska

import "github.com/katalvlaran/fska/engine"

// options holds Run's optional configuration: profiling and, for tests
// that need to exercise the fork/throttle paths without building huge
// point clouds, overrides to the engine's descent thresholds.
type options struct {
	profilePath string
	engineOpts  []engine.Option
}

// Option is a functional option for Run.
type Option func(*options)

// WithProfile enables a CPU profile of the call, written to path on
// completion. Mirrors the original implementation's build-flag-gated
// profiler hook, realized here as an explicit opt-in rather than a build
// tag, since Go has no direct equivalent of a compile-time macro flag
// that the caller controls per invocation.
func WithProfile(path string) Option {
	return func(o *options) {
		o.profilePath = path
	}
}

// WithEngineOptions forwards engine.Option values (e.g. WithStopNElem,
// WithMaxFutures) to the underlying descent. Exists so tests can force
// small thresholds; production callers should not normally need this.
func WithEngineOptions(opts ...engine.Option) Option {
	return func(o *options) {
		o.engineOpts = append(o.engineOpts, opts...)
	}
}
