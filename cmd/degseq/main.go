// SPDX-License-Identifier: MIT

// Command degseq samples random graphs with a prescribed degree sequence.
//
// Usage:
//
//	degseq generate --deg 3,2,2,2,1 --method configuration_simple --samples 5
//	degseq generate --deg 2,1,1,0 --in 0,1,1,2 --method fast_heur_simple
//	degseq check --deg 3,3,1,1
//
// Configuration is read from degseq.yaml (or --config / DEGSEQ_CONFIG),
// then DEGSEQ_* environment variables, then flags.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
