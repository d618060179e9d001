package bfs

import (
	"context"

	"github.com/katalvlaran/degseq/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input and
// ctx.Err() on cancellation. The partial result is returned alongside a
// cancellation error.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, ErrStartVertexNotFound
	}

	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// enqueue marks v visited at depth d, records its parent, and adds it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until it is empty or ctx is done.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.v)
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors enqueues each unseen neighbor. Neighbor lists are
// sorted, so the visit order is deterministic.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1

	// item.v is in range, so the lookups cannot fail.
	nbrs, _ := w.graph.NeighborIDs(item.v)
	if w.opts.Weak && w.graph.Directed() {
		in, _ := w.graph.InNeighborIDs(item.v)
		nbrs = append(nbrs, in...)
	}
	for _, nbr := range nbrs {
		// first time seen?
		if w.res.Depth[nbr] < 0 {
			w.enqueue(nbr, nextDepth, item.v)
		}
	}
}
