// SPDX-License-Identifier: MIT

package degseq

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/degseq/interrupt"
	"github.com/katalvlaran/degseq/rng"
)

// config is resolved once per Generate call and passed by value.
type config struct {
	source         *rng.Source
	checkEvery     int
	maxAttempts    int // 0: unbounded
	denseThreshold int
	rewireFactor   int
	log            *slog.Logger
	observer       Observer
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newConfig(opts ...Option) config {
	cfg := config{
		source:         rng.Default(),
		checkEvery:     interrupt.DefaultEvery,
		denseThreshold: DefaultDenseThreshold,
		rewireFactor:   DefaultRewireFactor,
		log:            discardLogger,
		observer:       nopObserver{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
