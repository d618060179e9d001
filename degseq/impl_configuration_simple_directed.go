// SPDX-License-Identifier: MIT

package degseq

import (
	"github.com/katalvlaran/degseq/core"
)

// sampleConfigurationSimpleDirected pairs a shuffled out-stub list with the
// in-stub list in vertex order and rejects on a loop or a repeated arc.
//
// In-stubs are grouped by head, so all arcs into one head are consecutive.
// A mark vector remembers, per tail, the last head group it was seen in;
// the group counter moves on whenever the head changes, which makes a
// repeated tail within a group a repeated arc without ever clearing marks.
func sampleConfigurationSimpleDirected(r *run) (*core.Graph, error) {
	n := len(r.out)
	st := r.st
	outStubs := fillStubs(make([]int, 0, r.stubs), r.out)
	inStubs := fillStubs(make([]int, 0, r.stubs), r.in)
	marks := newStampSet(n)

	var (
		i            int
		from, to, pt int
		ok           bool
		err          error
	)
	for {
		ok = true
		st.Shuffle(outStubs)

		pt = -1
		for i = 0; i < len(outStubs); i++ {
			from, to = outStubs[i], inStubs[i]
			if from == to {
				ok = false
				break
			}
			if to != pt {
				marks.reset()
				pt = to
			}
			if marks.contains(from) {
				ok = false
				break
			}
			marks.insert(from)
		}
		marks.reset()
		if ok {
			break
		}
		if err = r.tick(); err != nil {
			return nil, err
		}
	}

	edges := make([]int, 0, 2*len(outStubs))
	for i = range outStubs {
		edges = append(edges, outStubs[i], inStubs[i])
	}
	g, err := core.FromEdgeList(edges, n, core.WithDirected(true))
	if err != nil {
		return nil, methodErrorf(r.method, "%w", err)
	}

	return g, nil
}
