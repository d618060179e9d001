// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/degseq/graphical"
	"github.com/katalvlaran/degseq/vl"
)

// checkReport lists, per edge policy, whether a realization exists.
type checkReport struct {
	Directed    bool            `yaml:"directed"`
	Vertices    int             `yaml:"vertices"`
	Sum         int             `yaml:"sum"`
	Graphical   map[string]bool `yaml:"graphical"`
	Connectable *bool           `yaml:"connectable,omitempty"`
}

func newCheckCmd() *cobra.Command {
	var outDeg, inDeg []int

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report which edge policies can realize a degree sequence",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := setup(cmd)
			if err != nil {
				return err
			}
			defer s.closer.Close()

			in := inDeg
			if !cmd.Flags().Changed("in") {
				in = nil
			}
			rep, err := check(outDeg, in)
			if err != nil {
				return err
			}
			s.log.Debug("check finished", "vertices", rep.Vertices, "graphical", rep.Graphical)

			return writeYAML(cmd.OutOrStdout(), rep)
		},
	}
	cmd.Flags().IntSliceVar(&outDeg, "deg", nil, "degree sequence, or out-degrees when --in is set")
	cmd.Flags().IntSliceVar(&inDeg, "in", nil, "in-degree sequence (directed)")

	return cmd
}

func check(out, in []int) (checkReport, error) {
	rep := checkReport{
		Directed:  in != nil,
		Vertices:  len(out),
		Graphical: map[string]bool{},
	}
	rep.Sum, _ = graphical.Sum(out)

	for _, t := range []graphical.EdgeTypes{graphical.Simple, graphical.AllowLoops, graphical.AllowMulti, graphical.LoopsMulti} {
		ok, err := graphical.IsGraphical(out, in, t)
		if err != nil {
			return rep, err
		}
		rep.Graphical[t.String()] = ok
	}
	if in == nil && rep.Graphical[graphical.Simple.String()] {
		ok := vl.Connectable(out) == nil
		rep.Connectable = &ok
	}

	return rep, nil
}
