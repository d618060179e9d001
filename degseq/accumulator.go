// SPDX-License-Identifier: MIT

package degseq

import (
	"sort"

	"github.com/soniakeys/bits"
)

// adjacency records the undirected edges accepted during one attempt.
type adjacency interface {
	// has reports whether {u,v} was added since the last clear.
	has(u, v int) bool
	// add records {u,v} in both directions.
	add(u, v int)
	// clear forgets every edge, keeping capacity.
	clear()
}

// newAdjacency picks the accumulator form for an undirected sequence.
func newAdjacency(deg []int, denseThreshold int) adjacency {
	if len(deg) <= denseThreshold {
		return newDenseAdjacency(len(deg))
	}

	return newSparseAdjacency(deg)
}

// denseAdjacency holds one n-bit row per vertex.
// Memory O(n²/64) words; clear O(n²/64).
type denseAdjacency struct {
	rows []bits.Bits
}

func newDenseAdjacency(n int) *denseAdjacency {
	a := &denseAdjacency{rows: make([]bits.Bits, n)}
	for i := range a.rows {
		a.rows[i] = bits.New(n)
	}

	return a
}

func (a *denseAdjacency) has(u, v int) bool { return a.rows[u].Bit(v) == 1 }

func (a *denseAdjacency) add(u, v int) {
	a.rows[u].SetBit(v, 1)
	a.rows[v].SetBit(u, 1)
}

func (a *denseAdjacency) clear() {
	for i := range a.rows {
		a.rows[i].ClearAll()
	}
}

// sparseAdjacency holds one hash set per vertex, presized to its degree.
// Memory O(n + Σdeg); clear O(n + edges added).
type sparseAdjacency struct {
	rows []map[int]struct{}
}

func newSparseAdjacency(deg []int) *sparseAdjacency {
	a := &sparseAdjacency{rows: make([]map[int]struct{}, len(deg))}
	for i, d := range deg {
		a.rows[i] = make(map[int]struct{}, d)
	}

	return a
}

func (a *sparseAdjacency) has(u, v int) bool {
	_, ok := a.rows[u][v]
	return ok
}

func (a *sparseAdjacency) add(u, v int) {
	a.rows[u][v] = struct{}{}
	a.rows[v][u] = struct{}{}
}

func (a *sparseAdjacency) clear() {
	for i := range a.rows {
		clear(a.rows[i])
	}
}

// sortedAdjacency keeps, per source vertex, the sorted list of targets.
// Undirected callers store each edge once under its smaller endpoint.
// Lookup O(log d); insertion O(d).
type sortedAdjacency struct {
	rows [][]int
}

func newSortedAdjacency(n int) *sortedAdjacency {
	return &sortedAdjacency{rows: make([][]int, n)}
}

// insert adds to into from's row and reports false if it was present.
func (a *sortedAdjacency) insert(from, to int) bool {
	row := a.rows[from]
	i := sort.SearchInts(row, to)
	if i < len(row) && row[i] == to {
		return false
	}
	row = append(row, 0)
	copy(row[i+1:], row[i:])
	row[i] = to
	a.rows[from] = row

	return true
}

func (a *sortedAdjacency) has(from, to int) bool {
	row := a.rows[from]
	i := sort.SearchInts(row, to)
	return i < len(row) && row[i] == to
}

func (a *sortedAdjacency) clear() {
	for i := range a.rows {
		a.rows[i] = a.rows[i][:0]
	}
}

// edgeList flattens the rows into from,to pairs in row order.
func (a *sortedAdjacency) edgeList(m int) []int {
	edges := make([]int, 0, 2*m)
	for from, row := range a.rows {
		for _, to := range row {
			edges = append(edges, from, to)
		}
	}

	return edges
}
