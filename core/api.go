// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing constructors and read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.
//   - Every exported function documents complexity and locking strategy.

package core

import "fmt"

// FromEdgeList builds a Graph on n vertices from a flat endpoint list
// [u0, v0, u1, v1, ...], adding edges in list order so Edge.ID k is the
// pair (edges[2k], edges[2k+1]).
//
// Behavior highlights:
//   - The graph flags come from opts (WithDirected/WithLoops/WithMultiEdges);
//     a pair violating them aborts construction.
//   - The input slice is not retained.
//
// Errors:
//   - ErrNegativeVertexCount: n < 0.
//   - ErrOddEdgeList: len(edges) is odd.
//   - ErrVertexOutOfRange, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed from AddEdge,
//     wrapped with the failing pair index.
//
// Complexity:
//   - Time O(n + E), Space O(n + E).
func FromEdgeList(edges []int, n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeVertexCount
	}
	if len(edges)%2 != 0 {
		return nil, ErrOddEdgeList
	}

	g := NewGraph(n, opts...)
	g.edges = make([]Edge, 0, len(edges)/2) // exact capacity, avoids regrowth

	var (
		i   int
		err error
	)
	for i = 0; i < len(edges); i += 2 {
		if _, err = g.AddEdge(edges[i], edges[i+1]); err != nil {
			return nil, fmt.Errorf("core: FromEdgeList: pair %d (%d,%d): %w", i/2, edges[i], edges[i+1], err)
		}
	}

	return g, nil
}

// Directed reports whether edges are directed.
// Complexity: O(1).
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Looped reports whether self-loops (from==to) are permitted by policy.
// If false, AddEdge(v,v) rejects the operation with ErrLoopNotAllowed.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same endpoints are permitted by policy.
// If false, AddEdge(from,to) rejects duplicates with ErrMultiEdgeNotAllowed.
// Complexity: O(1).
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}

// GraphStats is a read-only snapshot of configuration flags and sizes.
type GraphStats struct {
	Directed   bool
	Looped     bool
	Multigraph bool

	VertexCount int
	EdgeCount   int

	// SelfLoops counts edges with From == To.
	SelfLoops int
	// ParallelEdges counts edges beyond the first between the same
	// (ordered when directed, unordered otherwise) endpoints.
	ParallelEdges int
}

// Stats produces a deterministic snapshot of flags, sizes, self-loops and
// parallel edges.
// Complexity: O(V+E).
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := &GraphStats{
		Directed:    g.directed,
		Looped:      g.allowLoops,
		Multigraph:  g.allowMulti,
		VertexCount: len(g.adj),
		EdgeCount:   len(g.edges),
	}

	var (
		u, v, mult int
		row        map[int]int
	)
	for u, row = range g.adj {
		for v, mult = range row {
			if u == v {
				st.SelfLoops += mult
				if mult > 1 {
					st.ParallelEdges += mult - 1
				}
				continue
			}
			// Undirected pairs are mirrored; count each unordered pair once.
			if !g.directed && v < u {
				continue
			}
			if mult > 1 {
				st.ParallelEdges += mult - 1
			}
		}
	}

	return st
}

// IsSimple reports whether the graph has no self-loops and no parallel edges.
// Complexity: O(V+E).
func (g *Graph) IsSimple() bool {
	st := g.Stats()
	return st.SelfLoops == 0 && st.ParallelEdges == 0
}
