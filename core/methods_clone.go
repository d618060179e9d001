// File: methods_clone.go
// Role: Clone/CloneEmpty/Clear.

package core

// CloneEmpty returns a new Graph with the same flags and vertex count but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return NewGraph(len(g.adj), g.flagOptions()...)
}

// Clone returns a deep copy of the graph: flags, vertices, edges (same IDs)
// and adjacency. The clone shares no mutable state with g.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph(len(g.adj), g.flagOptions()...)
	c.edges = make([]Edge, len(g.edges))
	copy(c.edges, g.edges)
	var e Edge
	for _, e = range g.edges {
		c.link(e.From, e.To)
	}

	return c
}

// Clear removes every edge, keeping vertices and flags.
// Complexity: O(V).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.adj)
	g.edges = g.edges[:0]
	g.adj = make([]map[int]int, n)
	g.outDeg = make([]int, n)
	if g.directed {
		g.inAdj = make([]map[int]int, n)
		g.inDeg = make([]int, n)
	}
}

// flagOptions reproduces the construction flags as GraphOptions.
// Caller must hold mu.
func (g *Graph) flagOptions() []GraphOption {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}

	return opts
}
