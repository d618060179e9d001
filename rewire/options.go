// SPDX-License-Identifier: MIT

package rewire

import "github.com/katalvlaran/degseq/interrupt"

// Option customizes Rewire.
type Option func(*config)

type config struct {
	checkEvery int
}

func newConfig(opts ...Option) config {
	cfg := config{checkEvery: interrupt.DefaultEvery}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithCheckInterval sets how many trials run between two context checks.
// Panics if n <= 0.
func WithCheckInterval(n int) Option {
	if n <= 0 {
		panic("rewire: WithCheckInterval(n<=0)")
	}
	return func(c *config) { c.checkEvery = n }
}
