// SPDX-License-Identifier: MIT
//
// Package core defines the central Graph and Edge types used by every
// generator in this module, and provides thread-safe primitives for building,
// querying, rewiring and cloning graphs.
//
// Vertices are dense integer indices 0..n-1: a degree sequence names vertex i
// by its position, so the container never needs string identifiers.
//
// All core APIs take a single sync.RWMutex (mu): queries use the read lock,
// mutations use the write lock.
//
// Errors:
//
//	ErrVertexOutOfRange    - vertex index outside [0, VertexCount()).
//	ErrEdgeNotFound        - requested edge ID does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//	ErrOddEdgeList         - flat edge list with an odd number of endpoints.
//	ErrNegativeVertexCount - FromEdgeList called with n < 0.
//	ErrNotSimple           - conversion requires a simple graph.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates an operation referenced an index outside [0,n).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrOddEdgeList indicates a flat edge list whose length is not a multiple of two.
	ErrOddEdgeList = errors.New("core: edge list has odd length")

	// ErrNegativeVertexCount indicates a negative vertex count.
	ErrNegativeVertexCount = errors.New("core: negative vertex count")

	// ErrNotSimple indicates a conversion that requires a graph without loops or parallel edges.
	ErrNotSimple = errors.New("core: graph is not simple")
)

// Edge represents a connection between two vertices.
//
// ID is the position of the edge in insertion order and stays stable for the
// lifetime of the Graph, including across ReplaceEdge.
type Edge struct {
	// ID uniquely identifies this edge in the Graph (0-based, dense).
	ID int

	// From is the source vertex index (or first endpoint when undirected).
	From int

	// To is the destination vertex index (or second endpoint when undirected).
	To int
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of every edge in the Graph.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the core in-memory graph data structure.
//
// It supports directed vs. undirected edges, parallel edges (multi-edges)
// and self-loops. mu guards every field below it.
//
// Undirected edges are mirrored in adj (adj[u][v] and adj[v][u]); an
// undirected self-loop is recorded once in adj[v][v] and counts twice
// towards Degree(v), following the classic convention.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags (immutable after construction).
	directed   bool // all edges directed
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	edges  []Edge        // edge ID → Edge
	adj    []map[int]int // adj[from][to] = multiplicity
	inAdj  []map[int]int // inAdj[to][from] = multiplicity (directed only)
	outDeg []int         // out-degree (directed) or degree (undirected)
	inDeg  []int         // in-degree (directed only)
}

// NewGraph creates a Graph with n isolated vertices and the given options.
// By default, Graph is undirected, with no loops and no multi-edges.
// A negative n is treated as zero.
// Complexity: O(n)
func NewGraph(n int, opts ...GraphOption) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{
		edges:  make([]Edge, 0),
		adj:    make([]map[int]int, n),
		outDeg: make([]int, n),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}
	if g.directed {
		g.inAdj = make([]map[int]int, n)
		g.inDeg = make([]int, n)
	}

	return g
}
