// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/ReplaceEdge/HasEdge/Multiplicity/
//       GetEdge/Edges/EdgeCount/EdgeList.
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc (insertion order).
//   - ReplaceEdge keeps the edge ID.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

// AddEdge appends a new edge from→to and returns its ID.
//
// Steps:
//  1. Validate endpoints are in range.
//  2. Reject loops / parallel edges per graph flags.
//  3. Append to the edge catalog and link adjacency (mirrored when undirected).
//
// Complexity: O(1) amortized (slice append + map updates).
// Concurrency: write lock on mu.
func (g *Graph) AddEdge(from, to int) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.admit(from, to); err != nil {
		return -1, err
	}

	eid := len(g.edges)
	g.edges = append(g.edges, Edge{ID: eid, From: from, To: to})
	g.link(from, to)

	return eid, nil
}

// ReplaceEdge moves edge eid to the endpoints from→to, keeping its ID.
// On any constraint violation the graph is left unchanged.
//
// Errors:
//   - ErrEdgeNotFound: eid outside the catalog.
//   - ErrVertexOutOfRange, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1).
// Concurrency: write lock on mu.
func (g *Graph) ReplaceEdge(eid, from, to int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if eid < 0 || eid >= len(g.edges) {
		return ErrEdgeNotFound
	}
	old := g.edges[eid]

	// Detach first so that replacing an edge by itself is not a duplicate.
	g.unlink(old.From, old.To)
	if err := g.admit(from, to); err != nil {
		g.link(old.From, old.To) // restore
		return err
	}

	g.edges[eid] = Edge{ID: eid, From: from, To: to}
	g.link(from, to)

	return nil
}

// HasEdge reports whether at least one edge from→to exists.
// Undirected graphs answer symmetrically.
//
// Complexity: O(1).
// Concurrency: read lock on mu.
func (g *Graph) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(from) || !g.inRange(to) {
		return false
	}

	return g.adj[from][to] > 0
}

// Multiplicity returns the number of parallel edges from→to.
// Complexity: O(1).
func (g *Graph) Multiplicity(from, to int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(from) || !g.inRange(to) {
		return 0
	}

	return g.adj[from][to]
}

// GetEdge returns a copy of the edge with the given ID.
//
// Errors:
//   - ErrEdgeNotFound: eid outside the catalog.
//
// Complexity: O(1).
func (g *Graph) GetEdge(eid int) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if eid < 0 || eid >= len(g.edges) {
		return Edge{}, ErrEdgeNotFound
	}

	return g.edges[eid], nil
}

// Edges returns a copy of all edges sorted by Edge.ID asc.
// Complexity: O(E).
// Concurrency: read lock on mu.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeList returns the flat endpoint list [u0, v0, u1, v1, ...] in ID order,
// the inverse of FromEdgeList.
// Complexity: O(E).
func (g *Graph) EdgeList() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, 0, 2*len(g.edges))
	var e Edge
	for _, e = range g.edges {
		out = append(out, e.From, e.To)
	}

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// admit validates a prospective edge against range and mode flags.
// Caller must hold mu.
func (g *Graph) admit(from, to int) error {
	if !g.inRange(from) || !g.inRange(to) {
		return ErrVertexOutOfRange
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	if !g.allowMulti && g.adj[from][to] > 0 {
		return ErrMultiEdgeNotAllowed
	}

	return nil
}

// link records one from→to edge in adjacency and degree counters.
// Caller must hold mu.
func (g *Graph) link(from, to int) {
	bump(g.adj, from, to, 1)
	if g.directed {
		bump(g.inAdj, to, from, 1)
		g.outDeg[from]++
		g.inDeg[to]++
		return
	}
	if from != to {
		bump(g.adj, to, from, 1)
	}
	g.outDeg[from]++
	g.outDeg[to]++ // an undirected loop counts twice
}

// unlink removes one from→to edge from adjacency and degree counters.
// Caller must hold mu and guarantee the edge exists.
func (g *Graph) unlink(from, to int) {
	bump(g.adj, from, to, -1)
	if g.directed {
		bump(g.inAdj, to, from, -1)
		g.outDeg[from]--
		g.inDeg[to]--
		return
	}
	if from != to {
		bump(g.adj, to, from, -1)
	}
	g.outDeg[from]--
	g.outDeg[to]--
}

// bump adjusts the multiplicity rows[u][v] by delta, allocating the row
// lazily and dropping zero entries so map sizes track distinct neighbors.
func bump(rows []map[int]int, u, v, delta int) {
	row := rows[u]
	if row == nil {
		row = make(map[int]int)
		rows[u] = row
	}
	if m := row[v] + delta; m > 0 {
		row[v] = m
	} else {
		delete(row, v)
	}
}

// inRange reports whether v is a valid vertex index. Caller must hold mu.
func (g *Graph) inRange(v int) bool {
	return v >= 0 && v < len(g.adj)
}
