// File: methods_vertices.go
// Role: Vertex catalog queries and degree accounting.
// Determinism:
//   - Degree slices are indexed by vertex, so their order is the vertex order.
// Concurrency:
//   - Read queries under mu read lock; AddVertices under the write lock.

package core

// VertexCount returns the current number of vertices in the graph.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// AddVertices appends k isolated vertices and returns the index of the first
// one. Non-positive k is a no-op that returns VertexCount().
// Complexity: O(k) amortized.
func (g *Graph) AddVertices(k int) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	first := len(g.adj)
	if k <= 0 {
		return first
	}
	g.adj = append(g.adj, make([]map[int]int, k)...)
	g.outDeg = append(g.outDeg, make([]int, k)...)
	if g.directed {
		g.inAdj = append(g.inAdj, make([]map[int]int, k)...)
		g.inDeg = append(g.inDeg, make([]int, k)...)
	}

	return first
}

// Degree returns the total degree of v.
//
// Policy:
//   - Undirected: number of incident edge ends; a self-loop contributes 2.
//   - Directed: out-degree + in-degree; a self-loop contributes 1 to each.
//
// Errors:
//   - ErrVertexOutOfRange.
//
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(v) {
		return 0, ErrVertexOutOfRange
	}
	if g.directed {
		return g.outDeg[v] + g.inDeg[v], nil
	}

	return g.outDeg[v], nil
}

// OutDegree returns the out-degree of v (the degree when undirected).
// Complexity: O(1).
func (g *Graph) OutDegree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(v) {
		return 0, ErrVertexOutOfRange
	}

	return g.outDeg[v], nil
}

// InDegree returns the in-degree of v (the degree when undirected).
// Complexity: O(1).
func (g *Graph) InDegree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(v) {
		return 0, ErrVertexOutOfRange
	}
	if g.directed {
		return g.inDeg[v], nil
	}

	return g.outDeg[v], nil
}

// OutDegrees returns a copy of the per-vertex out-degree sequence
// (the degree sequence when undirected).
// Complexity: O(V).
func (g *Graph) OutDegrees() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, len(g.outDeg))
	copy(out, g.outDeg)

	return out
}

// InDegrees returns a copy of the per-vertex in-degree sequence
// (the degree sequence when undirected).
// Complexity: O(V).
func (g *Graph) InDegrees() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	src := g.outDeg
	if g.directed {
		src = g.inDeg
	}
	out := make([]int, len(src))
	copy(out, src)

	return out
}
