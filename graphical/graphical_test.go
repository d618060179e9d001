// SPDX-License-Identifier: MIT

package graphical_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/degseq/graphical"
)

func TestIsGraphical_UndirectedTable(t *testing.T) {
	cases := []struct {
		deg   []int
		types graphical.EdgeTypes
		want  bool
	}{
		{nil, graphical.Simple, true},
		{[]int{0, 0}, graphical.Simple, true},
		{[]int{2, 2, 2}, graphical.Simple, true},
		{[]int{3, 3, 3, 3}, graphical.Simple, true},
		{[]int{3, 1}, graphical.Simple, false},
		{[]int{1, 1, 1}, graphical.Simple, false}, // odd sum
		{[]int{4, 1, 1, 1, 1}, graphical.Simple, true},
		{[]int{3, 3, 1, 1}, graphical.Simple, false},
		{[]int{-1, 1}, graphical.LoopsMulti, false},
		{[]int{2}, graphical.AllowLoops, true},
		{[]int{4}, graphical.AllowLoops, false},
		{[]int{4}, graphical.LoopsMulti, true},
		{[]int{4}, graphical.AllowMulti, false},
		{[]int{3, 1}, graphical.AllowMulti, false},
		{[]int{2, 2}, graphical.AllowMulti, true},
		{[]int{3, 1}, graphical.AllowLoops, true}, // loop at 0 + edge 0-1
	}
	for _, tc := range cases {
		got, err := graphical.IsGraphical(tc.deg, nil, tc.types)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "deg=%v types=%s", tc.deg, tc.types)
	}
}

func TestIsGraphical_DirectedTable(t *testing.T) {
	cases := []struct {
		out, in []int
		types   graphical.EdgeTypes
		want    bool
	}{
		{[]int{}, []int{}, graphical.Simple, true},
		{[]int{1, 1}, []int{1, 1}, graphical.Simple, true},
		{[]int{1}, []int{1}, graphical.Simple, false},
		{[]int{1}, []int{1}, graphical.AllowLoops, true},
		{[]int{2}, []int{2}, graphical.AllowLoops, false},
		{[]int{2}, []int{2}, graphical.LoopsMulti, true},
		{[]int{2, 0}, []int{0, 2}, graphical.AllowMulti, true},
		{[]int{2, 0}, []int{1, 1}, graphical.AllowMulti, false},
		{[]int{1, 0}, []int{0, 2}, graphical.LoopsMulti, false}, // sums differ
		{[]int{2, 2, 2}, []int{2, 2, 2}, graphical.Simple, true},
		{[]int{2, 1, 0}, []int{0, 1, 2}, graphical.Simple, true},
		{[]int{2, 0, 0}, []int{0, 2, 0}, graphical.Simple, false},
	}
	for _, tc := range cases {
		got, err := graphical.IsGraphical(tc.out, tc.in, tc.types)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "out=%v in=%v types=%s", tc.out, tc.in, tc.types)
	}
}

func TestIsGraphical_Errors(t *testing.T) {
	_, err := graphical.IsGraphical([]int{1, 1}, []int{1}, graphical.Simple)
	assert.ErrorIs(t, err, graphical.ErrLengthMismatch)

	_, err = graphical.IsGraphical([]int{math.MaxInt, math.MaxInt}, nil, graphical.LoopsMulti)
	assert.ErrorIs(t, err, graphical.ErrSumOverflow)
}

// undirectedRealizable enumerates every graph on n vertices with the given
// slots (pairs i<j, plus loops when allowed) and records its degree sequence.
func undirectedRealizable(n int, loops bool) map[string]bool {
	type slot struct{ u, v int }
	var slots []slot
	for u := 0; u < n; u++ {
		for v := u; v < n; v++ {
			if u == v && !loops {
				continue
			}
			slots = append(slots, slot{u, v})
		}
	}
	seen := make(map[string]bool)
	for mask := 0; mask < 1<<len(slots); mask++ {
		deg := make([]int, n)
		for b, s := range slots {
			if mask&(1<<b) != 0 {
				deg[s.u]++
				deg[s.v]++
			}
		}
		seen[fmt.Sprint(deg)] = true
	}

	return seen
}

func directedRealizable(n int, loops bool) map[string]bool {
	type arc struct{ u, v int }
	var arcs []arc
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v && !loops {
				continue
			}
			arcs = append(arcs, arc{u, v})
		}
	}
	seen := make(map[string]bool)
	for mask := 0; mask < 1<<len(arcs); mask++ {
		out := make([]int, n)
		in := make([]int, n)
		for b, a := range arcs {
			if mask&(1<<b) != 0 {
				out[a.u]++
				in[a.v]++
			}
		}
		seen[fmt.Sprint(out, in)] = true
	}

	return seen
}

// sequences calls fn for every sequence of length n with entries in [0, hi].
func sequences(n, hi int, fn func([]int)) {
	d := make([]int, n)
	var rec func(int)
	rec = func(i int) {
		if i == n {
			fn(d)
			return
		}
		for v := 0; v <= hi; v++ {
			d[i] = v
			rec(i + 1)
		}
	}
	rec(0)
}

func TestIsGraphical_UndirectedExhaustive(t *testing.T) {
	for _, loops := range []bool{false, true} {
		types := graphical.Simple
		if loops {
			types = graphical.AllowLoops
		}
		for n := 1; n <= 4; n++ {
			want := undirectedRealizable(n, loops)
			sequences(n, n+1, func(d []int) {
				got, err := graphical.IsGraphical(d, nil, types)
				require.NoError(t, err)
				require.Equal(t, want[fmt.Sprint(d)], got, "deg=%v types=%s", d, types)
			})
		}
	}
}

func TestIsGraphical_DirectedExhaustive(t *testing.T) {
	for _, loops := range []bool{false, true} {
		types := graphical.Simple
		if loops {
			types = graphical.AllowLoops
		}
		for n := 1; n <= 3; n++ {
			want := directedRealizable(n, loops)
			sequences(n, n, func(out []int) {
				sequences(n, n, func(in []int) {
					got, err := graphical.IsGraphical(out, in, types)
					require.NoError(t, err)
					require.Equal(t, want[fmt.Sprint(out, in)], got, "out=%v in=%v types=%s", out, in, types)
				})
			})
		}
	}
}

func TestEdgeTypes_String(t *testing.T) {
	assert.Equal(t, "simple", graphical.Simple.String())
	assert.Equal(t, "loops", graphical.AllowLoops.String())
	assert.Equal(t, "multi", graphical.AllowMulti.String())
	assert.Equal(t, "loops+multi", graphical.LoopsMulti.String())
	assert.True(t, graphical.LoopsMulti.Loops())
	assert.False(t, graphical.Simple.Multi())
}
