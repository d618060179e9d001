// SPDX-License-Identifier: MIT
// Package: degseq
//
// impl_fast_heur.go - greedy stub matching with partial retries.
//
// One pass shuffles the unplaced stubs and pairs them. Pairs that would
// form a loop or repeat an edge are not rejected wholesale: their stubs go
// back to the residual degrees and the endpoints become "incomplete". The
// next pass retries only the residual stubs. When no two incomplete vertices
// can still be joined the pass is stuck and the whole construction restarts
// from the original sequence.
//
// The output is always simple. Its distribution over realizations is not
// uniform.

package degseq

import (
	"github.com/katalvlaran/degseq/core"
)

func sampleFastHeur(r *run) (*core.Graph, error) {
	if r.directed {
		return sampleFastHeurDirected(r)
	}

	return sampleFastHeurUndirected(r)
}

func sampleFastHeurUndirected(r *run) (*core.Graph, error) {
	n := len(r.out)
	st := r.st
	adj := newSortedAdjacency(n)
	residual := make([]int, n)
	incomplete := newStampSet(n)
	stubs := make([]int, 0, r.stubs)

	var (
		i, j     int
		from, to int
		stuck    bool
		err      error
	)
	for {
		adj.clear()
		copy(residual, r.out)
		stuck = false

		for !stuck {
			stubs = fillStubs(stubs[:0], residual)
			clear(residual)
			incomplete.reset()
			st.Shuffle(stubs)

			for i = 0; i+1 < len(stubs); i += 2 {
				from, to = stubs[i], stubs[i+1]
				if from > to {
					from, to = to, from
				}
				if from == to || !adj.insert(from, to) {
					residual[from]++
					residual[to]++
					incomplete.insert(from)
					incomplete.insert(to)
				}
			}
			if incomplete.len() == 0 {
				return buildFromSorted(r, adj, false)
			}

			stuck = true
			for i = 0; i < incomplete.len() && stuck; i++ {
				for j = i + 1; j < incomplete.len(); j++ {
					from, to = incomplete.members[i], incomplete.members[j]
					if from > to {
						from, to = to, from
					}
					if !adj.has(from, to) {
						stuck = false
						break
					}
				}
			}
		}

		if err = r.tick(); err != nil {
			return nil, err
		}
	}
}

func sampleFastHeurDirected(r *run) (*core.Graph, error) {
	n := len(r.out)
	st := r.st
	adj := newSortedAdjacency(n)
	resOut := make([]int, n)
	resIn := make([]int, n)
	incOut := newStampSet(n)
	incIn := newStampSet(n)
	outStubs := make([]int, 0, r.stubs)
	inStubs := make([]int, 0, r.stubs)

	var (
		i, j     int
		from, to int
		stuck    bool
		err      error
	)
	for {
		adj.clear()
		copy(resOut, r.out)
		copy(resIn, r.in)
		stuck = false

		for !stuck {
			outStubs = fillStubs(outStubs[:0], resOut)
			inStubs = fillStubs(inStubs[:0], resIn)
			clear(resOut)
			clear(resIn)
			incOut.reset()
			incIn.reset()
			st.Shuffle(outStubs)

			for i = range outStubs {
				from, to = outStubs[i], inStubs[i]
				if from == to || !adj.insert(from, to) {
					resOut[from]++
					resIn[to]++
					incOut.insert(from)
					incIn.insert(to)
				}
			}
			if incOut.len() == 0 {
				return buildFromSorted(r, adj, true)
			}

			stuck = true
			for i = 0; i < incOut.len() && stuck; i++ {
				from = incOut.members[i]
				for j = 0; j < incIn.len(); j++ {
					to = incIn.members[j]
					if from != to && !adj.has(from, to) {
						stuck = false
						break
					}
				}
			}
		}

		if err = r.tick(); err != nil {
			return nil, err
		}
	}
}

func buildFromSorted(r *run, adj *sortedAdjacency, directed bool) (*core.Graph, error) {
	m := r.stubs
	if !directed {
		m /= 2
	}
	g, err := core.FromEdgeList(adj.edgeList(m), len(r.out), core.WithDirected(directed))
	if err != nil {
		return nil, methodErrorf(r.method, "%w", err)
	}

	return g, nil
}
