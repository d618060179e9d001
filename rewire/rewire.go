// SPDX-License-Identifier: MIT
//
// Package rewire implements degree-preserving edge switches on simple
// graphs, the move set of the edge-switching Markov chain.
//
// One switch picks two distinct edges (a,b) and (c,d) uniformly at random;
// for undirected graphs the second edge is read as (d,c) with probability
// 1/2. The switch proposes (a,d) and (c,b) and is rejected when either new
// edge would be a self-loop or already exists. Accepted switches keep every
// vertex degree (out- and in-degree when directed) unchanged.
//
// Edge IDs are stable: a switch rewrites the endpoints of the two chosen IDs
// in place via core.Graph.ReplaceEdge, so the edge catalog never grows.
package rewire

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/degseq/core"
	"github.com/katalvlaran/degseq/interrupt"
	"github.com/katalvlaran/degseq/rng"
)

// ErrNotSimpleMode indicates a graph that permits loops or multi-edges.
var ErrNotSimpleMode = errors.New("rewire: graph must forbid loops and multi-edges")

// move is one applied switch, kept so it can be undone.
type move struct {
	e1, e2     int
	a, b, c, d int // original endpoints: e1=(a,b), e2=(c,d)
}

// Switcher applies and undoes switches on one graph.
// It is owned by a single goroutine.
type Switcher struct {
	g        *core.Graph
	directed bool
	journal  []move
}

// NewSwitcher returns a Switcher over g.
//
// Errors:
//   - ErrNotSimpleMode: g permits loops or multi-edges.
func NewSwitcher(g *core.Graph) (*Switcher, error) {
	if g.Looped() || g.Multigraph() {
		return nil, ErrNotSimpleMode
	}

	return &Switcher{g: g, directed: g.Directed()}, nil
}

// Try attempts one switch and reports whether it was applied.
// Complexity: O(1) expected.
func (s *Switcher) Try(st *rng.Stream) bool {
	m := s.g.EdgeCount()
	if m < 2 {
		return false
	}
	e1 := st.Integer(0, m-1)
	e2 := st.Integer(0, m-2)
	if e2 >= e1 {
		e2++
	}

	x, _ := s.g.GetEdge(e1)
	y, _ := s.g.GetEdge(e2)
	a, b, c, d := x.From, x.To, y.From, y.To
	if !s.directed && st.Integer(0, 1) == 1 {
		c, d = d, c
	}

	if a == d || c == b {
		return false
	}
	if s.g.HasEdge(a, d) || s.g.HasEdge(c, b) {
		return false
	}

	if err := s.g.ReplaceEdge(e1, a, d); err != nil {
		return false
	}
	if err := s.g.ReplaceEdge(e2, c, b); err != nil {
		s.restore(e1, x.From, x.To, e2)
		return false
	}
	s.journal = append(s.journal, move{e1: e1, e2: e2, a: x.From, b: x.To, c: y.From, d: y.To})

	return true
}

// Undo reverts the most recent applied switch not yet undone or committed.
// It reports false when there is nothing to undo.
func (s *Switcher) Undo() bool {
	k := len(s.journal)
	if k == 0 {
		return false
	}
	mv := s.journal[k-1]
	s.journal = s.journal[:k-1]

	// Detach e2 first so that e1 can reclaim its endpoints.
	s.restore(mv.e2, mv.c, mv.d, mv.e1)
	s.restore(mv.e1, mv.a, mv.b, -1)

	return true
}

// restore puts edge eid back on (u,v). Reverting a switch in reverse order,
// or rolling back a half-applied one, always targets a currently absent
// pair, so a failure means the graph was modified behind the Switcher's back.
func (s *Switcher) restore(eid, u, v, other int) {
	if err := s.g.ReplaceEdge(eid, u, v); err != nil {
		panic(fmt.Sprintf("rewire: undo of edge %d (paired with %d) failed: %v", eid, other, err))
	}
}

// Pending returns the number of applied switches that can still be undone.
func (s *Switcher) Pending() int { return len(s.journal) }

// Commit forgets the undo journal.
func (s *Switcher) Commit() { s.journal = s.journal[:0] }

// Result reports the outcome of Rewire.
type Result struct {
	Trials   int // switches attempted
	Accepted int // switches applied
}

// Rewire performs trials switch attempts on g, checking ctx every
// CheckInterval attempts.
//
// Errors:
//   - ErrNotSimpleMode.
//   - interrupt.ErrInterrupted (joined with ctx.Err()); g then holds a valid
//     intermediate state with unchanged degrees.
//
// Complexity: O(trials) expected.
func Rewire(ctx context.Context, g *core.Graph, trials int, st *rng.Stream, opts ...Option) (Result, error) {
	cfg := newConfig(opts...)
	sw, err := NewSwitcher(g)
	if err != nil {
		return Result{}, err
	}

	var (
		res Result
		lim = interrupt.NewLimiter(ctx, cfg.checkEvery, 0)
	)
	for res.Trials < trials {
		if err = lim.Tick(); err != nil {
			return res, fmt.Errorf("rewire: after %d trials: %w", res.Trials, err)
		}
		res.Trials++
		if sw.Try(st) {
			res.Accepted++
			sw.Commit()
		}
	}

	return res, nil
}
