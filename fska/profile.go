package fska

import (
	"fmt"
	"os"
	"runtime/pprof"
)

// startProfile begins a CPU profile written to path, returning a stop
// function the caller must invoke (typically via defer) to flush and
// close the file. Any error starting the profile is returned rather than
// silently swallowed; Run then returns that error without computing.
func startProfile(path string) (stop func(), err error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("fska: creating profile file: %w", err)
	}

	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("fska: starting CPU profile: %w", err)
	}

	return func() {
		pprof.StopCPUProfile()
		_ = f.Close()
	}, nil
}
