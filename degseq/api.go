// SPDX-License-Identifier: MIT
// Package: degseq
//
// api.go - the Generate dispatcher.
//
// Design contract:
//   • One entry point. Each Method maps to one sampler in impl_*.go.
//   • Checks run in a fixed order: method, directedness, arguments,
//     feasibility, and only then randomness and allocation.
//   • Samplers draw from a single rng.Stream held for the whole call and
//     return either a complete graph or an error, never a partial graph.

package degseq

import (
	"context"
	"log/slog"
	"time"

	"github.com/katalvlaran/degseq/core"
	"github.com/katalvlaran/degseq/interrupt"
	"github.com/katalvlaran/degseq/rng"
)

// run carries the resolved inputs of one Generate call into a sampler.
type run struct {
	ctx      context.Context
	method   Method
	out, in  []int // in is nil when undirected
	directed bool
	stubs    int // Σout
	cfg      config
	st       *rng.Stream
	lim      *interrupt.Limiter
	restarts int
}

// sampler builds one graph from a validated, feasible run.
type sampler func(r *run) (*core.Graph, error)

var samplers = [...]sampler{
	Configuration:       sampleConfiguration,
	ConfigurationSimple: sampleConfigurationSimple,
	FastHeurSimple:      sampleFastHeur,
	EdgeSwitchingSimple: sampleEdgeSwitching,
	VL:                  sampleVL,
}

// Generate returns a random graph whose degrees equal outDeg (undirected)
// or whose out- and in-degrees equal outDeg and inDeg (directed).
//
// Directedness: a nil inDeg, or an empty inDeg with a non-empty outDeg,
// requests an undirected graph; anything else requests a directed one.
//
// Output: vertices 0..len(outDeg)-1. Configuration may produce self-loops
// and multi-edges and marks the graph accordingly; every other method
// returns a simple graph.
//
// Errors:
//   - ErrUnknownMethod, ErrNegativeDegree, ErrLengthMismatch,
//     ErrOddDegreeSum, ErrSumMismatch, ErrSumOverflow, ErrUnsupportedMode:
//     malformed input; all match ErrInvalidArgument.
//   - ErrNotGraphical: no realization exists under the method's policy
//     (for VL: no connected simple realization).
//   - ErrInterrupted: ctx ended during a retry or switching loop.
//   - ErrAttemptsExhausted: the WithMaxAttempts budget ran out.
//
// Concurrency: safe for concurrent use. Calls sharing a source are
// serialized while they sample.
func Generate(ctx context.Context, outDeg, inDeg []int, method Method, opts ...Option) (*core.Graph, error) {
	if !method.valid() {
		return nil, methodErrorf(method, "%w", ErrUnknownMethod)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := newConfig(opts...)
	r := &run{
		ctx:      ctx,
		method:   method,
		out:      outDeg,
		directed: isDirected(outDeg, inDeg),
		cfg:      cfg,
	}
	if r.directed {
		r.in = inDeg
	}

	start := time.Now()
	g, err := r.generate()
	stats := RunStats{
		Method:   method,
		Directed: r.directed,
		Vertices: len(outDeg),
		Restarts: r.restarts,
		Elapsed:  time.Since(start),
		Err:      err,
	}
	if err == nil {
		stats.Edges = g.EdgeCount()
	}
	cfg.observer.Observe(stats)
	cfg.log.LogAttrs(ctx, slog.LevelDebug, "degseq: generate", runAttrs(stats)...)

	if err != nil {
		return nil, err
	}

	return g, nil
}

// isDirected resolves the requested mode.
func isDirected(outDeg, inDeg []int) bool {
	return inDeg != nil && (len(inDeg) > 0 || len(outDeg) == 0)
}

func (r *run) generate() (*core.Graph, error) {
	var err error
	if r.stubs, err = validate(r.method, r.out, r.in); err != nil {
		return nil, err
	}
	if err = feasible(r.method, r.out, r.in); err != nil {
		return nil, err
	}

	r.st = r.cfg.source.Begin()
	defer r.st.End()
	r.lim = interrupt.NewLimiter(r.ctx, r.cfg.checkEvery, r.cfg.maxAttempts)

	return samplers[r.method](r)
}

// tick records one failed attempt or full restart.
func (r *run) tick() error {
	r.restarts++
	if err := r.lim.Tick(); err != nil {
		return limiterError(r.method, r.restarts, err)
	}

	return nil
}
