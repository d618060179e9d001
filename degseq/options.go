// SPDX-License-Identifier: MIT
// Package: degseq
//
// options.go - functional options for Generate.
//
// Contract:
//   • Options mutate a per-call config; no option touches global state.
//   • Option constructors validate and PANIC on meaningless inputs.
//     Generate itself never panics.
//   • Later options override earlier ones.

package degseq

import (
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/degseq/rng"
)

// Option customizes one Generate call.
type Option func(*config)

// WithSeed draws randomness from a fresh source seeded with seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.source = rng.New(seed)
	}
}

// WithRand draws randomness from r. Calls sharing the returned Option are
// serialized like calls sharing a Source; the caller must not use r
// directly while such a call runs. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("degseq: WithRand(nil)")
	}
	src := rng.NewFromRand(r)
	return func(c *config) {
		c.source = src
	}
}

// WithSource draws randomness from s. Concurrent calls sharing s are
// serialized for the duration of sampling. Panics on nil.
func WithSource(s *rng.Source) Option {
	if s == nil {
		panic("degseq: WithSource(nil)")
	}
	return func(c *config) {
		c.source = s
	}
}

// WithCheckInterval sets how many retry iterations run between two context
// checks. Panics if n <= 0.
func WithCheckInterval(n int) Option {
	if n <= 0 {
		panic("degseq: WithCheckInterval(n<=0)")
	}
	return func(c *config) {
		c.checkEvery = n
	}
}

// WithMaxAttempts bounds the number of restarts of the rejection and
// fast-heuristic samplers; exceeding it yields ErrAttemptsExhausted.
// Zero means unbounded (the default). Panics if n < 0.
func WithMaxAttempts(n int) Option {
	if n < 0 {
		panic("degseq: WithMaxAttempts(n<0)")
	}
	return func(c *config) {
		c.maxAttempts = n
	}
}

// WithDenseThreshold sets the largest vertex count for which the
// undirected rejection sampler uses a bitset accumulator; larger graphs use
// hash sets. Panics if n < 0.
func WithDenseThreshold(n int) Option {
	if n < 0 {
		panic("degseq: WithDenseThreshold(n<0)")
	}
	return func(c *config) {
		c.denseThreshold = n
	}
}

// WithRewireFactor sets the switch attempts per edge used by
// EdgeSwitchingSimple and VL. Panics if f < 0.
func WithRewireFactor(f int) Option {
	if f < 0 {
		panic("degseq: WithRewireFactor(f<0)")
	}
	return func(c *config) {
		c.rewireFactor = f
	}
}

// WithLogger routes the Debug-level generation summary to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("degseq: WithLogger(nil)")
	}
	return func(c *config) {
		c.log = l
	}
}

// WithObserver reports every Generate outcome to o. Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("degseq: WithObserver(nil)")
	}
	return func(c *config) {
		c.observer = o
	}
}
