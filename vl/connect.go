// SPDX-License-Identifier: MIT

package vl

import (
	"context"
	"fmt"

	"github.com/katalvlaran/degseq/bfs"
	"github.com/katalvlaran/degseq/core"
	"github.com/katalvlaran/degseq/interrupt"
	"github.com/katalvlaran/degseq/rewire"
	"github.com/katalvlaran/degseq/rng"
)

// connect merges components until g is connected.
//
// With m ≥ n-1 edges, Σ_c (m_c - n_c + 1) = m - n + k ≥ k - 1 ≥ 1 while
// k > 1 components remain, so some component always holds a cycle. Every
// component has an edge because every degree is positive.
func connect(ctx context.Context, g *core.Graph, st *rng.Stream, lim *interrupt.Limiter) error {
	var (
		comps      *bfs.Components
		tree       *bfs.BFSResult
		edges      []core.Edge
		cyc, other []core.Edge
		e          core.Edge
		err        error
	)
	for {
		comps, err = bfs.ConnectedComponents(g)
		if err != nil {
			return fmt.Errorf("vl: %w", err)
		}
		k := comps.Count()
		if k == 1 {
			return nil
		}
		if err = lim.Tick(); err != nil {
			return fmt.Errorf("vl: merging %d components: %w", k, err)
		}

		edges = g.Edges()
		mc := make([]int, k)
		for _, e = range edges {
			mc[comps.Membership[e.From]]++
		}
		src := -1
		for c := range mc {
			if mc[c] >= comps.Sizes[c] {
				src = c
				break
			}
		}
		if src < 0 {
			return ErrNotConnectable
		}
		dst := st.Integer(0, k-2)
		if dst >= src {
			dst++
		}

		// A non-tree edge of a BFS tree lies on a cycle.
		tree, err = bfs.BFS(g, comps.Members(src)[0], bfs.WithContext(ctx))
		if err != nil {
			return fmt.Errorf("vl: merging %d components: %w", k, traversalError(lim, err))
		}
		cyc, other = cyc[:0], other[:0]
		for _, e = range edges {
			switch comps.Membership[e.From] {
			case src:
				if tree.Parent[e.To] != e.From && tree.Parent[e.From] != e.To {
					cyc = append(cyc, e)
				}
			case dst:
				other = append(other, e)
			}
		}

		x := cyc[st.Intn(len(cyc))]
		y := other[st.Intn(len(other))]
		if err = g.ReplaceEdge(x.ID, x.From, y.To); err != nil {
			return fmt.Errorf("vl: merge: %w", err)
		}
		if err = g.ReplaceEdge(y.ID, y.From, x.To); err != nil {
			return fmt.Errorf("vl: merge: %w", err)
		}
	}
}

// shuffle runs Factor·m switch attempts in adaptive windows, keeping g
// connected after every committed window.
func shuffle(ctx context.Context, g *core.Graph, st *rng.Stream, lim *interrupt.Limiter, cfg config) error {
	sw, err := rewire.NewSwitcher(g)
	if err != nil {
		return fmt.Errorf("vl: %w", err)
	}

	m := g.EdgeCount()
	total := cfg.factor * m
	k := cfg.window
	var (
		done, window, i int
		ok              bool
	)
	for done < total {
		window = k
		if window > total-done {
			window = total - done
		}
		for i = 0; i < window; i++ {
			if err = lim.Tick(); err != nil {
				return fmt.Errorf("vl: shuffling after %d attempts: %w", done+i, err)
			}
			sw.Try(st)
		}
		done += window
		if sw.Pending() == 0 {
			continue
		}

		if ok, err = connected(ctx, g); err != nil {
			return fmt.Errorf("vl: shuffling after %d attempts: %w", done, traversalError(lim, err))
		}
		if ok {
			sw.Commit()
			if k < m {
				k *= 2
			}
			continue
		}
		for sw.Undo() {
		}
		if k > 1 {
			k /= 2
		}
	}

	return nil
}

// connected reports whether a BFS from vertex 0 reaches every vertex.
// g has at least two vertices and every degree is positive.
func connected(ctx context.Context, g *core.Graph) (bool, error) {
	res, err := bfs.BFS(g, 0, bfs.WithContext(ctx))
	if err != nil {
		return false, err
	}

	return len(res.Order) == g.VertexCount(), nil
}

// traversalError reports a cancelled traversal the way the Limiter reports
// a cancelled loop.
func traversalError(lim *interrupt.Limiter, err error) error {
	if cerr := lim.Check(); cerr != nil {
		return cerr
	}

	return err
}
