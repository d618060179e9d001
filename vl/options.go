// SPDX-License-Identifier: MIT

package vl

import "github.com/katalvlaran/degseq/interrupt"

// DefaultFactor is the number of switch attempts per edge.
const DefaultFactor = 10

// Option customizes Sample.
type Option func(*config)

type config struct {
	factor     int
	window     int
	checkEvery int
}

func newConfig(opts ...Option) config {
	cfg := config{factor: DefaultFactor, window: 1, checkEvery: interrupt.DefaultEvery}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithFactor sets the switch attempts per edge. Zero skips the shuffle and
// returns the merged realization. Panics if f < 0.
func WithFactor(f int) Option {
	if f < 0 {
		panic("vl: WithFactor(f<0)")
	}
	return func(c *config) { c.factor = f }
}

// WithInitialWindow sets the first window size K. Panics if k <= 0.
func WithInitialWindow(k int) Option {
	if k <= 0 {
		panic("vl: WithInitialWindow(k<=0)")
	}
	return func(c *config) { c.window = k }
}

// WithCheckInterval sets how many switch attempts run between two context
// checks. Panics if n <= 0.
func WithCheckInterval(n int) Option {
	if n <= 0 {
		panic("vl: WithCheckInterval(n<=0)")
	}
	return func(c *config) { c.checkEvery = n }
}
