// SPDX-License-Identifier: MIT

package degseq

import "time"

// RunStats summarizes one Generate call.
type RunStats struct {
	Method   Method
	Directed bool
	Vertices int
	Edges    int // edges of the returned graph; 0 on failure
	Restarts int // rejected attempts or full restarts of the sampler
	Elapsed  time.Duration
	Err      error // nil on success
}

// Observer receives a RunStats after every Generate call that names a
// valid method, including failed ones. Implementations must be safe for
// concurrent use when shared between goroutines.
type Observer interface {
	Observe(RunStats)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(RunStats)

// Observe calls f(s).
func (f ObserverFunc) Observe(s RunStats) { f(s) }

type nopObserver struct{}

func (nopObserver) Observe(RunStats) {}
