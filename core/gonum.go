// File: gonum.go
// Role: Interop with gonum graph types for callers that want gonum's
//       algorithm catalog (topo, network, path) on generated graphs.

package core

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// Gonum converts a simple graph into a gonum graph: *simple.UndirectedGraph
// or *simple.DirectedGraph depending on Directed(). Node IDs equal vertex
// indices; isolated vertices are kept.
//
// Errors:
//   - ErrNotSimple: g contains a self-loop or a parallel edge (gonum simple
//     graphs cannot represent either).
//
// Complexity: O(V+E).
func (g *Graph) Gonum() (graph.Graph, error) {
	if !g.IsSimple() {
		return nil, ErrNotSimple
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	var (
		v int
		e Edge
	)
	if g.directed {
		dg := simple.NewDirectedGraph()
		for v = range g.adj {
			dg.AddNode(simple.Node(int64(v)))
		}
		for _, e = range g.edges {
			dg.SetEdge(simple.Edge{F: simple.Node(int64(e.From)), T: simple.Node(int64(e.To))})
		}
		return dg, nil
	}

	ug := simple.NewUndirectedGraph()
	for v = range g.adj {
		ug.AddNode(simple.Node(int64(v)))
	}
	for _, e = range g.edges {
		ug.SetEdge(simple.Edge{F: simple.Node(int64(e.From)), T: simple.Node(int64(e.To))})
	}

	return ug, nil
}
