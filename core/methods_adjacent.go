// File: methods_adjacent.go
// Role: Neighborhood queries over the adjacency maps.
// Determinism:
//   - NeighborIDs/InNeighborIDs return unique indices sorted ascending.
//   - AdjacencyList() rows are sorted ascending.

package core

import "sort"

// NeighborIDs returns the distinct out-neighbors of v (all neighbors when
// undirected), sorted ascending. A self-loop lists v itself once.
//
// Errors:
//   - ErrVertexOutOfRange.
//
// Complexity: O(d·log d).
// Concurrency: read lock on mu.
func (g *Graph) NeighborIDs(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(v) {
		return nil, ErrVertexOutOfRange
	}

	return sortedKeys(g.adj[v]), nil
}

// InNeighborIDs returns the distinct in-neighbors of v, sorted ascending.
// For undirected graphs it equals NeighborIDs.
// Complexity: O(d·log d).
func (g *Graph) InNeighborIDs(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(v) {
		return nil, ErrVertexOutOfRange
	}
	if g.directed {
		return sortedKeys(g.inAdj[v]), nil
	}

	return sortedKeys(g.adj[v]), nil
}

// AdjacencyList returns, for each vertex, its sorted distinct out-neighbors.
// Complexity: O(V + E·log d).
func (g *Graph) AdjacencyList() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][]int, len(g.adj))
	var (
		v   int
		row map[int]int
	)
	for v, row = range g.adj {
		out[v] = sortedKeys(row)
	}

	return out
}

// sortedKeys returns the keys of row in ascending order (empty, never nil).
func sortedKeys(row map[int]int) []int {
	keys := make([]int, 0, len(row))
	var k int
	for k = range row {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}
