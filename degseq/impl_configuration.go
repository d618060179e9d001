// SPDX-License-Identifier: MIT
// Package: degseq
//
// impl_configuration.go - the raw configuration model.
//
// Every stub is drawn uniformly from the remaining bag and removed by
// swapping in the last element. Undirected: both endpoints come from one
// bag. Directed: the tail from the out-bag, the head from the in-bag.
// The sampler never rejects, so loops and multi-edges are allowed in the
// returned graph.
//
// Complexity: O(n + Σdeg) time and space.

package degseq

import (
	"github.com/katalvlaran/degseq/core"
)

func sampleConfiguration(r *run) (*core.Graph, error) {
	n := len(r.out)
	st := r.st

	var (
		edges    []int
		from, to int
		i        int
	)
	if r.directed {
		outBag := fillStubs(make([]int, 0, r.stubs), r.out)
		inBag := fillStubs(make([]int, 0, r.stubs), r.in)
		edges = make([]int, 0, 2*r.stubs)
		p1, p2 := len(outBag), len(inBag)
		for i = 0; i < r.stubs; i++ {
			from = st.Integer(0, p1-1)
			to = st.Integer(0, p2-1)
			edges = append(edges, outBag[from], inBag[to])
			outBag[from] = outBag[p1-1]
			inBag[to] = inBag[p2-1]
			p1--
			p2--
		}
	} else {
		bag := fillStubs(make([]int, 0, r.stubs), r.out)
		edges = make([]int, 0, r.stubs)
		p := len(bag)
		for i = 0; i < r.stubs/2; i++ {
			from = st.Integer(0, p-1)
			edges = append(edges, bag[from])
			bag[from] = bag[p-1]
			p--
			to = st.Integer(0, p-1)
			edges = append(edges, bag[to])
			bag[to] = bag[p-1]
			p--
		}
	}

	g, err := core.FromEdgeList(edges, n, core.WithDirected(r.directed), core.WithLoops(), core.WithMultiEdges())
	if err != nil {
		return nil, methodErrorf(r.method, "%w", err)
	}

	return g, nil
}
