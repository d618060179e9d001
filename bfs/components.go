package bfs

import "github.com/katalvlaran/degseq/core"

// Components labels the weakly connected components of g.
//
// Membership[v] is the component index of v; components are numbered in
// order of their smallest vertex. Sizes[c] is the vertex count of
// component c.
type Components struct {
	Membership []int
	Sizes      []int
}

// Count returns the number of components.
func (c *Components) Count() int { return len(c.Sizes) }

// Members returns the vertices of component c in ascending order.
func (c *Components) Members(comp int) []int {
	out := make([]int, 0, c.Sizes[comp])
	for v, m := range c.Membership {
		if m == comp {
			out = append(out, v)
		}
	}

	return out
}

// ConnectedComponents runs one BFS per unvisited vertex, ignoring arc
// direction.
//
// Complexity: O(V + E) time, O(V) memory.
func ConnectedComponents(g *core.Graph) (*Components, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	res := &Components{Membership: make([]int, n)}
	for v := range res.Membership {
		res.Membership[v] = -1
	}

	queue := make([]int, 0, n)
	var (
		first, v, size int
		nbrs, in       []int
	)
	directed := g.Directed()
	for first = 0; first < n; first++ {
		if res.Membership[first] >= 0 {
			continue
		}
		comp := len(res.Sizes)
		res.Membership[first] = comp
		size = 1
		queue = append(queue[:0], first)
		for len(queue) > 0 {
			v, queue = queue[0], queue[1:]
			nbrs, _ = g.NeighborIDs(v)
			if directed {
				in, _ = g.InNeighborIDs(v)
				nbrs = append(nbrs, in...)
			}
			for _, u := range nbrs {
				if res.Membership[u] >= 0 {
					continue
				}
				res.Membership[u] = comp
				size++
				queue = append(queue, u)
			}
		}
		res.Sizes = append(res.Sizes, size)
	}

	return res, nil
}

// IsConnected reports whether g is (weakly) connected.
//
// By convention the null graph is not connected and the singleton graph is.
// A graph with fewer than V-1 edges is rejected without traversal.
func IsConnected(g *core.Graph) bool {
	if g == nil {
		return false
	}
	n := g.VertexCount()
	switch {
	case n == 0:
		return false
	case n == 1:
		return true
	case g.EdgeCount() < n-1:
		return false
	}

	res, err := BFS(g, 0, WithWeak())
	if err != nil {
		return false
	}

	return len(res.Order) == n
}
