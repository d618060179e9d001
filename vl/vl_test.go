// SPDX-License-Identifier: MIT

package vl_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/degseq/bfs"
	"github.com/katalvlaran/degseq/graphical"
	"github.com/katalvlaran/degseq/interrupt"
	"github.com/katalvlaran/degseq/rng"
	"github.com/katalvlaran/degseq/vl"
)

func TestSample_ConnectedSimpleExact(t *testing.T) {
	seqs := [][]int{
		{1, 1},
		{3, 1, 1, 1},
		{2, 2, 2, 2, 2, 2},
		{2, 2, 2, 2, 2, 2, 2, 2, 2},
		{4, 3, 3, 2, 2, 2, 1, 1},
		{5, 5, 4, 3, 3, 2, 2, 2, 1, 1},
	}
	src := rng.New(17)
	for _, deg := range seqs {
		for run := 0; run < 5; run++ {
			st := src.Begin()
			g, err := vl.Sample(context.Background(), deg, st)
			st.End()
			require.NoError(t, err, "deg=%v", deg)
			assert.Equal(t, deg, g.OutDegrees())
			assert.True(t, g.IsSimple())
			assert.True(t, bfs.IsConnected(g), "deg=%v edges=%v", deg, g.EdgeList())
		}
	}
}

func TestSample_MergesWithoutShuffle(t *testing.T) {
	// Largest-first Havel–Hakimi realizes twelve 2s as two disjoint
	// 6-cycles; a zero factor isolates the merge step.
	deg := []int{2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2}
	st := rng.New(1).Begin()
	defer st.End()

	g, err := vl.Sample(context.Background(), deg, st, vl.WithFactor(0))
	require.NoError(t, err)
	assert.True(t, bfs.IsConnected(g))
	assert.Equal(t, deg, g.OutDegrees())
}

func TestSample_Errors(t *testing.T) {
	st := rng.New(1).Begin()
	defer st.End()
	ctx := context.Background()

	_, err := vl.Sample(ctx, []int{3, 1}, st)
	assert.ErrorIs(t, err, graphical.ErrNotGraphical)

	_, err = vl.Sample(ctx, []int{1, 1, 0}, st)
	assert.ErrorIs(t, err, vl.ErrNotConnectable)

	_, err = vl.Sample(ctx, []int{1, 1, 1, 1}, st) // two edges, four vertices
	assert.ErrorIs(t, err, vl.ErrNotConnectable)

	g, err := vl.Sample(ctx, []int{0}, st)
	require.NoError(t, err)
	assert.Equal(t, 1, g.VertexCount())

	g, err = vl.Sample(ctx, []int{}, st)
	require.NoError(t, err)
	assert.Equal(t, 0, g.VertexCount())
}

func TestSample_Interrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	st := rng.New(1).Begin()
	defer st.End()

	_, err := vl.Sample(ctx, []int{3, 3, 3, 3, 3, 3}, st, vl.WithCheckInterval(1))
	assert.ErrorIs(t, err, interrupt.ErrInterrupted)
}

func TestSample_InterruptedDuringMerge(t *testing.T) {
	// Twelve 2s realize as two 6-cycles, so the merge traversal runs before
	// the Limiter's first check.
	deg := []int{2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	st := rng.New(1).Begin()
	defer st.End()

	_, err := vl.Sample(ctx, deg, st, vl.WithCheckInterval(1_000_000))
	assert.ErrorIs(t, err, interrupt.ErrInterrupted)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSample_InterruptedDuringShuffle(t *testing.T) {
	// A 6-cycle is already connected; the first window's connectivity
	// check sees the cancelled context.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	st := rng.New(4).Begin()
	defer st.End()

	_, err := vl.Sample(ctx, []int{2, 2, 2, 2, 2, 2}, st, vl.WithCheckInterval(1_000_000))
	assert.ErrorIs(t, err, interrupt.ErrInterrupted)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSample_VisitsAllCycles(t *testing.T) {
	// [2,2,2,2] has exactly three connected realizations: the three 4-cycles.
	seen := map[string]int{}
	src := rng.New(99)
	for i := 0; i < 300; i++ {
		st := src.Begin()
		g, err := vl.Sample(context.Background(), []int{2, 2, 2, 2}, st)
		st.End()
		require.NoError(t, err)
		seen[fmt.Sprint(g.AdjacencyList())]++
	}
	assert.Len(t, seen, 3)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { vl.WithFactor(-1) })
	assert.Panics(t, func() { vl.WithInitialWindow(0) })
	assert.Panics(t, func() { vl.WithCheckInterval(0) })
}
