// SPDX-License-Identifier: MIT

package degseq

import (
	"github.com/katalvlaran/degseq/core"
	"github.com/katalvlaran/degseq/realize"
	"github.com/katalvlaran/degseq/rewire"
)

// sampleEdgeSwitching realizes the sequence deterministically in index
// order and then runs RewireFactor·m degree-preserving switch attempts.
func sampleEdgeSwitching(r *run) (*core.Graph, error) {
	g, err := realize.Realize(r.out, r.in, realize.Index)
	if err != nil {
		return nil, methodErrorf(r.method, "%w", err)
	}

	trials := r.cfg.rewireFactor * g.EdgeCount()
	res, err := rewire.Rewire(r.ctx, g, trials, r.st, rewire.WithCheckInterval(r.cfg.checkEvery))
	r.restarts = res.Trials - res.Accepted
	if err != nil {
		return nil, methodErrorf(r.method, "%w", err)
	}

	return g, nil
}
