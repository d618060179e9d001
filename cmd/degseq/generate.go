// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/degseq/core"
	"github.com/katalvlaran/degseq/degseq"
	"github.com/katalvlaran/degseq/metrics"
	"github.com/katalvlaran/degseq/rng"
)

func newGenerateCmd() *cobra.Command {
	var outDeg, inDeg []int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Sample graphs realizing a degree sequence",
		Long: `Sample one or more graphs whose degrees equal --deg (undirected) or whose
out- and in-degrees equal --deg and --in (directed). Samples are independent
and reproducible: sample i always uses the stream derived from the seed and i,
whatever the number of workers.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("in") {
				inDeg = nil
			} else if inDeg == nil {
				inDeg = []int{}
			}
			return runGenerate(cmd, outDeg, inDeg)
		},
	}

	f := cmd.Flags()
	f.IntSliceVar(&outDeg, "deg", nil, "degree sequence, or out-degrees when --in is set")
	f.IntSliceVar(&inDeg, "in", nil, "in-degree sequence (directed)")
	f.String("method", "", "configuration, configuration_simple, fast_heur_simple, edge_switching_simple, vl")
	f.Int64("seed", 0, "base seed")
	f.Int("samples", 0, "number of graphs")
	f.Int("workers", 0, "parallel workers")
	f.Duration("timeout", 0, "abort after this long (0: no limit)")
	f.Int("check-interval", 0, "retry iterations between cancellation checks")
	f.Int("max-attempts", 0, "restart budget for rejection samplers (0: unbounded)")
	f.Int("dense-threshold", 0, "largest vertex count using bitset duplicate detection")
	f.Int("rewire-factor", 0, "switch attempts per edge for edge_switching_simple and vl")
	f.String("format", "", "output format: yaml or edgelist")
	f.String("output", "", "write to this file instead of stdout")
	f.String("metrics-file", "", "write Prometheus metrics to this textfile")

	return cmd
}

func runGenerate(cmd *cobra.Command, outDeg, inDeg []int) error {
	s, err := setup(cmd)
	if err != nil {
		return err
	}
	defer s.closer.Close()

	gc := s.cfg.Generate
	method, err := s.cfg.Method()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if gc.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, gc.Timeout)
		defer cancel()
	}

	runID := uuid.NewString()
	log := s.log.With("run_id", runID)
	log.Info("generate started", "method", method.String(), "vertices", len(outDeg), "samples", gc.Samples, "workers", gc.Workers)

	var (
		reg       = prometheus.NewRegistry()
		collector *metrics.Collector
	)
	if s.cfg.Metrics.Enabled {
		collector = metrics.New(reg, s.cfg.Metrics.Namespace)
	}

	// Streams are derived up front so sample i is independent of scheduling.
	base := rng.New(gc.Seed)
	sources := make([]*rng.Source, gc.Samples)
	for i := range sources {
		sources[i] = base.Derive(uint64(i))
	}

	graphs := make([]*core.Graph, gc.Samples)
	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(gc.Workers)
	for i := range graphs {
		opts := []degseq.Option{
			degseq.WithSource(sources[i]),
			degseq.WithCheckInterval(gc.CheckInterval),
			degseq.WithMaxAttempts(gc.MaxAttempts),
			degseq.WithDenseThreshold(gc.DenseThreshold),
			degseq.WithRewireFactor(gc.RewireFactor),
			degseq.WithLogger(log.With("sample", i)),
		}
		if collector != nil {
			opts = append(opts, degseq.WithObserver(collector))
		}
		i := i
		eg.Go(func() error {
			g, err := degseq.Generate(egctx, outDeg, inDeg, method, opts...)
			if err != nil {
				return fmt.Errorf("sample %d: %w", i, err)
			}
			graphs[i] = g
			return nil
		})
	}
	err = eg.Wait()

	if collector != nil {
		if werr := prometheus.WriteToTextfile(s.cfg.Metrics.Textfile, reg); werr != nil {
			log.Warn("writing metrics failed", "path", s.cfg.Metrics.Textfile, "error", werr)
		}
	}
	if err != nil {
		log.Error("generate failed", "error", err)
		return err
	}

	w := cmd.OutOrStdout()
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		fh, ferr := os.Create(path)
		if ferr != nil {
			return ferr
		}
		defer fh.Close()
		w = fh
	}

	rep := newReport(runID, method, gc.Seed, graphs)
	if gc.Format == "edgelist" {
		err = writeEdgeList(w, rep, graphs)
	} else {
		err = writeYAML(w, rep)
	}
	if err != nil {
		return err
	}
	log.Info("generate finished", "samples", len(graphs))

	return nil
}
