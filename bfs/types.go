package bfs

import (
	"context"
	"errors"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start index is out of range.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds parameters to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Weak, when set on a directed graph, follows arcs in both directions.
	Weak bool
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - out-neighbors only on directed graphs
func DefaultOptions() BFSOptions {
	return BFSOptions{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWeak ignores arc direction on directed graphs.
func WithWeak() Option {
	return func(o *BFSOptions) { o.Weak = true }
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: distance (in edges) from the start, -1 when unreached.
//   - Parent: predecessor in the BFS tree, -1 for the start and unreached.
type BFSResult struct {
	Order  []int
	Depth  []int
	Parent []int
}
