// Package core provides a thread-safe, int-indexed in-memory Graph used as
// the output container of every degree-sequence generator in this module.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via per-vertex multiplicity maps:
//     adj[from][to] = multiplicity
//   - Dense, stable edge IDs (0,1,2,…) that survive ReplaceEdge, which is
//     what degree-preserving rewiring needs
//   - O(1) degree queries via incrementally maintained degree counters
//
// Configuration Options (GraphOption):
//
//	– WithDirected(directed bool)
//	    Directed graphs store from→to plus a reverse index for in-neighbors.
//	    Undirected graphs mirror edges in adj[to][from].
//
//	– WithMultiEdges()
//	    Allows multiple parallel edges between the same endpoints.
//	    Otherwise a second AddEdge(from,to) → ErrMultiEdgeNotAllowed.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	// Construction
//	NewGraph(n int, opts ...GraphOption) *Graph            // O(n)
//	FromEdgeList(edges []int, n int, opts ...) (*Graph, error) // O(n+E)
//	AddVertices(k int) int                                 // O(k)
//
//	// Edge lifecycle
//	AddEdge(from, to int) (edgeID int, err error)          // O(1)
//	ReplaceEdge(edgeID, from, to int) error                // O(1)
//	HasEdge(from, to int) bool                             // O(1)
//	Multiplicity(from, to int) int                         // O(1)
//
//	// Query
//	NeighborIDs(v int) ([]int, error)                      // O(d·log d), unique, sorted
//	Edges() []Edge / EdgeList() []int                      // O(E), ID order
//	Degree / OutDegree / InDegree (v int) (int, error)     // O(1)
//	OutDegrees() / InDegrees() []int                       // O(V)
//	Stats() *GraphStats / IsSimple() bool                  // O(V+E)
//
//	// Cloning & interop
//	Clone() / CloneEmpty() *Graph                          // O(V+E) / O(V)
//	Gonum() (graph.Graph, error)                           // O(V+E), simple graphs only
//
// Concurrency:
//
//	A single sync.RWMutex guards all state. Generators in this module build a
//	graph privately and hand it to the caller only on success, so the lock is
//	uncontended during generation.
package core
