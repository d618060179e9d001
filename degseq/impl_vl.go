// SPDX-License-Identifier: MIT

package degseq

import (
	"github.com/katalvlaran/degseq/core"
	"github.com/katalvlaran/degseq/vl"
)

// sampleVL returns a connected simple undirected graph. Directed input is
// rejected during validation.
func sampleVL(r *run) (*core.Graph, error) {
	g, err := vl.Sample(r.ctx, r.out, r.st,
		vl.WithFactor(r.cfg.rewireFactor),
		vl.WithCheckInterval(r.cfg.checkEvery),
	)
	if err != nil {
		return nil, methodErrorf(r.method, "%w", err)
	}

	return g, nil
}
