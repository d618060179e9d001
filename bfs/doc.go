// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, and visit order, plus the
// connectivity queries the connected-graph sampler relies on.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: per-vertex distance from start (-1 if unreached)
//   - Parent: per-vertex predecessor in the BFS tree (-1 for start/unreached)
//   - WithContext aborts a long traversal; WithWeak follows directed arcs
//     in both directions.
//   - ConnectedComponents labels weak components; IsConnected answers the
//     yes/no question with the usual null-graph convention.
//
// Determinism
//
//	core.NeighborIDs returns neighbors sorted ascending and BFS enqueues them
//	in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E·log d) (neighbor lists are sorted on retrieval)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0, bfs.WithContext(ctx))
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound or ctx.Err()
//	}
//
//	if !bfs.IsConnected(g) { ... }
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start index is out of range.
//   - ctx.Err()               if the context ends mid-traversal.
package bfs
