// SPDX-License-Identifier: MIT

package degseq_test

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/degseq/bfs"
	"github.com/katalvlaran/degseq/degseq"
	"github.com/katalvlaran/degseq/graphical"
	"github.com/katalvlaran/degseq/interrupt"
	"github.com/katalvlaran/degseq/rng"
	"github.com/katalvlaran/degseq/vl"
)

var allMethods = []degseq.Method{
	degseq.Configuration,
	degseq.ConfigurationSimple,
	degseq.FastHeurSimple,
	degseq.EdgeSwitchingSimple,
	degseq.VL,
}

var simpleMethods = []degseq.Method{
	degseq.ConfigurationSimple,
	degseq.FastHeurSimple,
	degseq.EdgeSwitchingSimple,
}

func TestGenerate_UndirectedDegrees(t *testing.T) {
	seqs := [][]int{
		{2, 2, 2},
		{3, 3, 3, 3},
		{3, 2, 2, 2, 1},
		{4, 3, 3, 2, 2, 2, 1, 1},
		{5, 5, 4, 3, 3, 2, 2, 2, 1, 1},
	}
	for _, m := range allMethods {
		for _, deg := range seqs {
			for seed := int64(1); seed <= 5; seed++ {
				g, err := degseq.Generate(context.Background(), deg, nil, m, degseq.WithSeed(seed))
				require.NoError(t, err, "%s %v", m, deg)
				assert.False(t, g.Directed())
				assert.Equal(t, deg, g.OutDegrees(), "%s %v", m, deg)
				if m != degseq.Configuration {
					assert.True(t, g.IsSimple(), "%s %v", m, deg)
				}
				if m == degseq.VL {
					assert.True(t, bfs.IsConnected(g), "%v", deg)
				}
			}
		}
	}
}

func TestGenerate_DirectedDegrees(t *testing.T) {
	pairs := []struct{ out, in []int }{
		{[]int{1, 1}, []int{1, 1}},
		{[]int{2, 1, 1, 0}, []int{0, 1, 1, 2}},
		{[]int{2, 2, 2}, []int{2, 2, 2}},
		{[]int{3, 1, 2, 0, 1}, []int{1, 2, 1, 2, 1}},
	}
	for _, m := range allMethods[:4] {
		for _, p := range pairs {
			for seed := int64(1); seed <= 5; seed++ {
				g, err := degseq.Generate(context.Background(), p.out, p.in, m, degseq.WithSeed(seed))
				require.NoError(t, err, "%s %v/%v", m, p.out, p.in)
				assert.True(t, g.Directed())
				assert.Equal(t, p.out, g.OutDegrees())
				assert.Equal(t, p.in, g.InDegrees())
				if m != degseq.Configuration {
					assert.True(t, g.IsSimple(), "%s %v/%v", m, p.out, p.in)
				}
			}
		}
	}
}

func TestGenerate_UniqueRealizations(t *testing.T) {
	for _, m := range append(simpleMethods, degseq.VL) {
		g, err := degseq.Generate(context.Background(), []int{2, 2, 2}, nil, m, degseq.WithSeed(3))
		require.NoError(t, err)
		assert.Equal(t, [][]int{{1, 2}, {0, 2}, {0, 1}}, g.AdjacencyList(), "%s", m)
	}
	for _, m := range simpleMethods {
		g, err := degseq.Generate(context.Background(), []int{1, 1}, []int{1, 1}, m, degseq.WithSeed(3))
		require.NoError(t, err)
		assert.Equal(t, [][]int{{1}, {0}}, g.AdjacencyList(), "%s", m)
	}
}

func TestGenerate_ConfigurationEdgeCount(t *testing.T) {
	g, err := degseq.Generate(context.Background(), []int{3, 1}, nil, degseq.Configuration, degseq.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []int{3, 1}, g.OutDegrees())
	assert.True(t, g.Looped())
	assert.True(t, g.Multigraph())

	g, err = degseq.Generate(context.Background(), []int{1, 0}, []int{1, 0}, degseq.Configuration, degseq.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, g.EdgeList())
}

func TestGenerate_Directedness(t *testing.T) {
	ctx := context.Background()

	g, err := degseq.Generate(ctx, []int{2, 2, 2}, []int{}, degseq.ConfigurationSimple)
	require.NoError(t, err)
	assert.False(t, g.Directed())
	assert.Equal(t, 3, g.EdgeCount())

	g, err = degseq.Generate(ctx, []int{}, []int{}, degseq.FastHeurSimple)
	require.NoError(t, err)
	assert.True(t, g.Directed())
	assert.Equal(t, 0, g.VertexCount())

	for _, m := range allMethods {
		g, err = degseq.Generate(ctx, nil, nil, m)
		require.NoError(t, err, "%s", m)
		assert.False(t, g.Directed())
		assert.Equal(t, 0, g.VertexCount())

		g, err = degseq.Generate(ctx, []int{0}, nil, m)
		require.NoError(t, err, "%s", m)
		assert.Equal(t, 1, g.VertexCount())
		assert.Equal(t, 0, g.EdgeCount())
	}
}

func TestGenerate_Errors(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name    string
		out, in []int
		method  degseq.Method
		want    []error
	}{
		{"unknown method", []int{2, 2, 2}, nil, degseq.Method(99), []error{degseq.ErrUnknownMethod, degseq.ErrInvalidArgument}},
		{"method checked first", []int{-1}, nil, degseq.Method(-1), []error{degseq.ErrUnknownMethod}},
		{"negative", []int{1, -1}, nil, degseq.ConfigurationSimple, []error{degseq.ErrNegativeDegree, degseq.ErrInvalidArgument}},
		{"negative in", []int{1, 0}, []int{2, -1}, degseq.Configuration, []error{degseq.ErrNegativeDegree}},
		{"length", []int{1, 1}, []int{1}, degseq.Configuration, []error{degseq.ErrLengthMismatch, degseq.ErrInvalidArgument}},
		{"odd sum", []int{1, 1, 1}, nil, degseq.Configuration, []error{degseq.ErrOddDegreeSum}},
		{"sum mismatch", []int{1, 0}, []int{0, 0}, degseq.FastHeurSimple, []error{degseq.ErrSumMismatch}},
		{"overflow", []int{math.MaxInt, math.MaxInt}, nil, degseq.Configuration, []error{degseq.ErrSumOverflow}},
		{"vl directed", []int{1, 1}, []int{1, 1}, degseq.VL, []error{degseq.ErrUnsupportedMode, degseq.ErrInvalidArgument}},
		{"not graphical", []int{3, 1}, nil, degseq.ConfigurationSimple, []error{degseq.ErrNotGraphical, graphical.ErrNotGraphical}},
		{"not graphical heur", []int{3, 3, 1, 1}, nil, degseq.FastHeurSimple, []error{degseq.ErrNotGraphical}},
		{"directed loop only", []int{1, 0}, []int{1, 0}, degseq.EdgeSwitchingSimple, []error{degseq.ErrNotGraphical}},
		{"vl disconnected", []int{1, 1, 1, 1}, nil, degseq.VL, []error{degseq.ErrNotGraphical, vl.ErrNotConnectable}},
		{"vl isolated", []int{2, 2, 2, 0}, nil, degseq.VL, []error{degseq.ErrNotGraphical, vl.ErrNotConnectable}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := degseq.Generate(ctx, tc.out, tc.in, tc.method)
			require.Error(t, err)
			assert.Nil(t, g)
			for _, want := range tc.want {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestGenerate_Interrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A star almost never survives rejection, so the loop reaches the check.
	star := make([]int, 61)
	star[0] = 60
	for i := 1; i < len(star); i++ {
		star[i] = 1
	}
	_, err := degseq.Generate(ctx, star, nil, degseq.ConfigurationSimple, degseq.WithCheckInterval(1))
	assert.ErrorIs(t, err, degseq.ErrInterrupted)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = degseq.Generate(ctx, []int{3, 3, 3, 3, 3, 3}, nil, degseq.EdgeSwitchingSimple, degseq.WithCheckInterval(1))
	assert.ErrorIs(t, err, degseq.ErrInterrupted)

	_, err = degseq.Generate(ctx, []int{2, 2, 2, 2, 2, 2}, nil, degseq.VL, degseq.WithCheckInterval(1))
	assert.ErrorIs(t, err, degseq.ErrInterrupted)
}

// bistar returns the directed star where the hub and every one of k leaves
// are joined by arcs in both directions. Random pairing almost surely sends
// a hub stub to the hub or a leaf stub to another leaf.
func bistar(k int) (out, in []int) {
	out = make([]int, k+1)
	out[0] = k
	for i := 1; i <= k; i++ {
		out[i] = 1
	}

	return out, append([]int(nil), out...)
}

func TestGenerate_InterruptedRetryLoops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	star := make([]int, 41)
	star[0] = 40
	for i := 1; i < len(star); i++ {
		star[i] = 1
	}
	bOut, bIn := bistar(40)

	tests := []struct {
		name    string
		out, in []int
		method  degseq.Method
	}{
		{"fast heuristic undirected", star, nil, degseq.FastHeurSimple},
		{"fast heuristic directed", bOut, bIn, degseq.FastHeurSimple},
		{"rejection directed", bOut, bIn, degseq.ConfigurationSimple},
		{"rejection directed skewed", []int{2, 6, 4, 5, 0, 3, 3}, []int{2, 5, 3, 5, 3, 4, 1}, degseq.ConfigurationSimple},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := degseq.Generate(ctx, tc.out, tc.in, tc.method, degseq.WithSeed(3), degseq.WithCheckInterval(1))
			assert.ErrorIs(t, err, degseq.ErrInterrupted)
			assert.ErrorIs(t, err, context.Canceled)
		})
	}
}

func TestGenerate_AttemptsExhaustedRetryLoops(t *testing.T) {
	star := make([]int, 41)
	star[0] = 40
	for i := 1; i < len(star); i++ {
		star[i] = 1
	}
	bOut, bIn := bistar(40)

	tests := []struct {
		name    string
		out, in []int
		method  degseq.Method
	}{
		{"fast heuristic undirected", star, nil, degseq.FastHeurSimple},
		{"fast heuristic directed", bOut, bIn, degseq.FastHeurSimple},
		{"rejection directed", bOut, bIn, degseq.ConfigurationSimple},
		{"rejection directed skewed", []int{2, 6, 4, 5, 0, 3, 3}, []int{2, 5, 3, 5, 3, 4, 1}, degseq.ConfigurationSimple},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var stats degseq.RunStats
			obs := degseq.ObserverFunc(func(s degseq.RunStats) { stats = s })

			_, err := degseq.Generate(context.Background(), tc.out, tc.in, tc.method,
				degseq.WithSeed(3), degseq.WithMaxAttempts(4), degseq.WithObserver(obs))
			assert.ErrorIs(t, err, degseq.ErrAttemptsExhausted)
			assert.Equal(t, 5, stats.Restarts)
			assert.Equal(t, tc.in != nil, stats.Directed)
		})
	}
}

func TestGenerate_EdgeSwitchingInterruptedRestarts(t *testing.T) {
	// Every switch on a triangle is rejected, so the three trials run before
	// the fourth-tick context check all count as restarts.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var stats degseq.RunStats
	obs := degseq.ObserverFunc(func(s degseq.RunStats) { stats = s })

	_, err := degseq.Generate(ctx, []int{2, 2, 2}, nil, degseq.EdgeSwitchingSimple,
		degseq.WithCheckInterval(4), degseq.WithObserver(obs))
	assert.ErrorIs(t, err, degseq.ErrInterrupted)
	assert.Equal(t, 3, stats.Restarts)
}

func TestGenerate_AttemptsExhausted(t *testing.T) {
	star := []int{40}
	for i := 0; i < 40; i++ {
		star = append(star, 1)
	}
	var restarts int
	obs := degseq.ObserverFunc(func(s degseq.RunStats) { restarts = s.Restarts })

	_, err := degseq.Generate(context.Background(), star, nil, degseq.ConfigurationSimple,
		degseq.WithMaxAttempts(5), degseq.WithObserver(obs))
	assert.ErrorIs(t, err, degseq.ErrAttemptsExhausted)
	assert.ErrorIs(t, err, interrupt.ErrBudgetExhausted)
	assert.Equal(t, 6, restarts)
}

func TestGenerate_Deterministic(t *testing.T) {
	deg := []int{4, 3, 3, 3, 2, 2, 2, 2, 1, 1, 1}
	for _, m := range allMethods {
		a, err := degseq.Generate(context.Background(), deg, nil, m, degseq.WithSeed(42))
		require.NoError(t, err)
		b, err := degseq.Generate(context.Background(), deg, nil, m, degseq.WithSeed(42))
		require.NoError(t, err)
		assert.Equal(t, a.EdgeList(), b.EdgeList(), "%s", m)
	}
}

func TestGenerate_DeterministicDirected(t *testing.T) {
	out := []int{2, 2, 1, 1, 1}
	in := []int{1, 1, 2, 2, 1}
	for _, m := range allMethods[:4] {
		a, err := degseq.Generate(context.Background(), out, in, m, degseq.WithSeed(42))
		require.NoError(t, err, "%s", m)
		b, err := degseq.Generate(context.Background(), out, in, m, degseq.WithSeed(42))
		require.NoError(t, err, "%s", m)
		assert.Equal(t, a.EdgeList(), b.EdgeList(), "%s", m)
		assert.Equal(t, out, a.OutDegrees(), "%s", m)
		assert.Equal(t, in, a.InDegrees(), "%s", m)
	}
}

func TestGenerate_SparseAccumulator(t *testing.T) {
	deg := make([]int, 1100)
	for i := range deg {
		deg[i] = 2
	}
	g, err := degseq.Generate(context.Background(), deg, nil, degseq.ConfigurationSimple, degseq.WithSeed(5))
	require.NoError(t, err)
	assert.Equal(t, deg, g.OutDegrees())
	assert.True(t, g.IsSimple())

	g, err = degseq.Generate(context.Background(), []int{3, 3, 3, 3}, nil, degseq.ConfigurationSimple,
		degseq.WithDenseThreshold(0), degseq.WithSeed(5))
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount())
}

func TestGenerate_RegularLarge(t *testing.T) {
	deg := make([]int, 300)
	for i := range deg {
		deg[i] = 3
	}
	for _, m := range []degseq.Method{degseq.FastHeurSimple, degseq.EdgeSwitchingSimple, degseq.VL} {
		g, err := degseq.Generate(context.Background(), deg, nil, m, degseq.WithSeed(8))
		require.NoError(t, err, "%s", m)
		assert.Equal(t, deg, g.OutDegrees())
		assert.True(t, g.IsSimple())
	}
}

func TestGenerate_SharedSource(t *testing.T) {
	src := rng.New(11)
	var eg errgroup.Group
	for w := 0; w < 8; w++ {
		m := simpleMethods[w%len(simpleMethods)]
		eg.Go(func() error {
			for i := 0; i < 20; i++ {
				g, err := degseq.Generate(context.Background(), []int{3, 3, 2, 2, 2}, nil, m, degseq.WithSource(src))
				if err != nil {
					return err
				}
				if !g.IsSimple() {
					return fmt.Errorf("%s produced a non-simple graph", m)
				}
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())
}

func TestGenerate_SharedRandOption(t *testing.T) {
	opt := degseq.WithRand(rand.New(rand.NewSource(7)))
	var eg errgroup.Group
	for w := 0; w < 8; w++ {
		m := simpleMethods[w%len(simpleMethods)]
		eg.Go(func() error {
			for i := 0; i < 20; i++ {
				g, err := degseq.Generate(context.Background(), []int{3, 3, 2, 2, 2}, nil, m, opt)
				if err != nil {
					return err
				}
				if !g.IsSimple() {
					return fmt.Errorf("%s produced a non-simple graph", m)
				}
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())

	// Sequential calls sharing the option continue one stream.
	a := degseq.WithRand(rand.New(rand.NewSource(9)))
	b := rng.NewFromRand(rand.New(rand.NewSource(9)))
	for i := 0; i < 3; i++ {
		ga, err := degseq.Generate(context.Background(), []int{2, 2, 2, 2, 2}, nil, degseq.Configuration, a)
		require.NoError(t, err)
		gb, err := degseq.Generate(context.Background(), []int{2, 2, 2, 2, 2}, nil, degseq.Configuration, degseq.WithSource(b))
		require.NoError(t, err)
		assert.Equal(t, gb.EdgeList(), ga.EdgeList())
	}
}

func TestGenerate_Observer(t *testing.T) {
	var got []degseq.RunStats
	obs := degseq.ObserverFunc(func(s degseq.RunStats) { got = append(got, s) })

	_, err := degseq.Generate(context.Background(), []int{2, 2, 2}, nil, degseq.FastHeurSimple, degseq.WithObserver(obs))
	require.NoError(t, err)
	_, err = degseq.Generate(context.Background(), []int{1, 1, 1}, nil, degseq.FastHeurSimple, degseq.WithObserver(obs))
	require.Error(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, degseq.FastHeurSimple, got[0].Method)
	assert.Equal(t, 3, got[0].Vertices)
	assert.Equal(t, 3, got[0].Edges)
	assert.NoError(t, got[0].Err)
	assert.ErrorIs(t, got[1].Err, degseq.ErrOddDegreeSum)
	assert.Equal(t, 0, got[1].Edges)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { degseq.WithRand(nil) })
	assert.Panics(t, func() { degseq.WithSource(nil) })
	assert.Panics(t, func() { degseq.WithCheckInterval(0) })
	assert.Panics(t, func() { degseq.WithMaxAttempts(-1) })
	assert.Panics(t, func() { degseq.WithDenseThreshold(-1) })
	assert.Panics(t, func() { degseq.WithRewireFactor(-1) })
	assert.Panics(t, func() { degseq.WithLogger(nil) })
	assert.Panics(t, func() { degseq.WithObserver(nil) })
}
