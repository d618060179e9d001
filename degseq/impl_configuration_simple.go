// SPDX-License-Identifier: MIT
// Package: degseq
//
// impl_configuration_simple.go - rejection sampling of simple undirected
// graphs.
//
// Each attempt runs a Fisher–Yates shuffle of the stubs interleaved with
// pairing: slot 2i and then slot 2i+1 receive uniform draws from the stubs
// not yet placed, and the pair (stubs[2i], stubs[2i+1]) is checked at once.
// A loop or a repeated pair aborts the attempt, so a doomed matching is
// abandoned after its first conflict. Accepted samples are uniform over
// simple realizations because every full stub matching is equally likely
// and each simple graph corresponds to the same number of matchings.

package degseq

import (
	"github.com/katalvlaran/degseq/core"
)

func sampleConfigurationSimple(r *run) (*core.Graph, error) {
	if r.directed {
		return sampleConfigurationSimpleDirected(r)
	}

	n := len(r.out)
	st := r.st
	stubs := fillStubs(make([]int, 0, r.stubs), r.out)
	acc := newAdjacency(r.out, r.cfg.denseThreshold)
	s := len(stubs)
	m := s / 2

	var (
		i, k     int
		from, to int
		ok       bool
		err      error
	)
	for {
		ok = true
		for i = 0; i < m; i++ {
			k = st.Integer(2*i, s-1)
			stubs[2*i], stubs[k] = stubs[k], stubs[2*i]
			k = st.Integer(2*i+1, s-1)
			stubs[2*i+1], stubs[k] = stubs[k], stubs[2*i+1]

			from, to = stubs[2*i], stubs[2*i+1]
			if from == to || acc.has(from, to) {
				ok = false
				break
			}
			acc.add(from, to)
		}
		if ok {
			break
		}
		acc.clear()
		if err = r.tick(); err != nil {
			return nil, err
		}
	}

	g, err := core.FromEdgeList(stubs, n)
	if err != nil {
		return nil, methodErrorf(r.method, "%w", err)
	}

	return g, nil
}
