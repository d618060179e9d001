// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"io"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/topo"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/degseq/bfs"
	"github.com/katalvlaran/degseq/core"
	"github.com/katalvlaran/degseq/degseq"
)

// report is the YAML document written by generate.
type report struct {
	RunID    string         `yaml:"run_id"`
	Method   string         `yaml:"method"`
	Seed     int64          `yaml:"seed"`
	Directed bool           `yaml:"directed"`
	Vertices int            `yaml:"vertices"`
	Samples  []sampleReport `yaml:"samples"`
}

type sampleReport struct {
	Index            int      `yaml:"index"`
	EdgeCount        int      `yaml:"edge_count"`
	SelfLoops        int      `yaml:"self_loops"`
	ParallelEdges    int      `yaml:"parallel_edges"`
	Components       int      `yaml:"components"`
	StrongComponents *int     `yaml:"strong_components,omitempty"`
	Edges            [][2]int `yaml:"edges,flow"`
}

func newReport(runID string, m degseq.Method, seed int64, graphs []*core.Graph) report {
	rep := report{RunID: runID, Method: m.String(), Seed: seed}
	if len(graphs) > 0 {
		rep.Directed = graphs[0].Directed()
		rep.Vertices = graphs[0].VertexCount()
	}
	for i, g := range graphs {
		st := g.Stats()
		sr := sampleReport{
			Index:         i,
			EdgeCount:     st.EdgeCount,
			SelfLoops:     st.SelfLoops,
			ParallelEdges: st.ParallelEdges,
			Edges:         make([][2]int, 0, st.EdgeCount),
		}
		sr.Components, sr.StrongComponents = components(g)
		for _, e := range g.Edges() {
			sr.Edges = append(sr.Edges, [2]int{e.From, e.To})
		}
		rep.Samples = append(rep.Samples, sr)
	}

	return rep
}

// components counts (weakly) connected components. Simple graphs go through
// gonum, which also yields strongly connected components when directed.
func components(g *core.Graph) (int, *int) {
	gg, err := g.Gonum()
	if err != nil {
		c, _ := bfs.ConnectedComponents(g)
		return c.Count(), nil
	}
	switch t := gg.(type) {
	case graph.Directed:
		strong := len(topo.TarjanSCC(t))
		c, _ := bfs.ConnectedComponents(g)
		return c.Count(), &strong
	case graph.Undirected:
		return len(topo.ConnectedComponents(t)), nil
	}

	return 0, nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

// writeEdgeList writes one "from to" line per edge; samples are separated
// by a comment header.
func writeEdgeList(w io.Writer, rep report, graphs []*core.Graph) error {
	bw := bufio.NewWriter(w)
	for i, g := range graphs {
		fmt.Fprintf(bw, "# run=%s method=%s sample=%d vertices=%d edges=%d\n",
			rep.RunID, rep.Method, i, g.VertexCount(), g.EdgeCount())
		for _, e := range g.Edges() {
			fmt.Fprintf(bw, "%d %d\n", e.From, e.To)
		}
	}

	return bw.Flush()
}
