// SPDX-License-Identifier: MIT
//
// Package vl samples connected simple undirected graphs with a prescribed
// degree sequence, following the Viger–Latapy construction:
//
//  1. Realize one simple graph (Havel–Hakimi, largest-first).
//  2. Merge components: take an edge (a,b) lying on a cycle of one
//     component and any edge (c,d) of another, and replace them with (a,d)
//     and (c,b). Degrees are unchanged and the component count drops by one.
//  3. Shuffle with connectivity-preserving edge switches. Switches are
//     applied in windows of K; after each window a BFS checks connectivity.
//     A disconnected result undoes the whole window and halves K, a
//     connected one commits it and doubles K.
//
// The result is always connected and simple and has exactly the requested
// degrees; the chain mixes over connected realizations as the switch count
// grows.
package vl

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/degseq/core"
	"github.com/katalvlaran/degseq/graphical"
	"github.com/katalvlaran/degseq/interrupt"
	"github.com/katalvlaran/degseq/realize"
	"github.com/katalvlaran/degseq/rng"
)

// ErrNotConnectable indicates a graphical sequence with no connected
// realization: a zero degree among several vertices, or fewer than n-1 edges.
var ErrNotConnectable = errors.New("vl: degree sequence has no connected simple realization")

// Sample returns a connected simple graph with degree sequence deg, drawing
// all randomness from st.
//
// Errors:
//   - graphical.ErrNotGraphical: no simple realization at all.
//   - ErrNotConnectable: simple realizations exist but none is connected.
//   - interrupt.ErrInterrupted (joined with ctx.Err()).
//
// Complexity: O(k·(V+E)) for merging k components, then
// O(Factor·E·(V+E)/K̄) for the shuffle, where K̄ is the mean window.
func Sample(ctx context.Context, deg []int, st *rng.Stream, opts ...Option) (*core.Graph, error) {
	cfg := newConfig(opts...)
	n := len(deg)

	ok, err := graphical.IsGraphical(deg, nil, graphical.Simple)
	if err != nil {
		return nil, fmt.Errorf("vl: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("vl: %w", graphical.ErrNotGraphical)
	}
	if err = Connectable(deg); err != nil {
		return nil, err
	}

	g, err := realize.Realize(deg, nil, realize.Largest)
	if err != nil {
		return nil, fmt.Errorf("vl: %w", err)
	}
	if n <= 1 {
		return g, nil
	}

	lim := interrupt.NewLimiter(ctx, cfg.checkEvery, 0)
	if err = connect(ctx, g, st, lim); err != nil {
		return nil, err
	}
	if err = shuffle(ctx, g, st, lim, cfg); err != nil {
		return nil, err
	}

	return g, nil
}

// Connectable reports, for a graphical sequence deg, whether some simple
// realization is connected. It returns nil or an error wrapping
// ErrNotConnectable.
func Connectable(deg []int) error {
	n := len(deg)
	if n <= 1 {
		return nil
	}
	sum := 0
	for _, d := range deg {
		if d == 0 {
			return fmt.Errorf("%w: isolated vertex", ErrNotConnectable)
		}
		sum += d
	}
	if sum/2 < n-1 {
		return fmt.Errorf("%w: %d edges cannot connect %d vertices", ErrNotConnectable, sum/2, n)
	}

	return nil
}
