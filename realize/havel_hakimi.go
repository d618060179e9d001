// SPDX-License-Identifier: MIT

package realize

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/degseq/core"
	"github.com/katalvlaran/degseq/graphical"
)

// havelHakimi keeps the live vertices in vs sorted by residual degree
// descending. Connecting v to the d largest and decrementing them keeps vs
// sorted as long as, inside the tie group straddling position d-1, the LAST
// members of the group are the ones decremented; any member of a tie group
// is an equally valid Havel–Hakimi target.
func havelHakimi(deg []int, method Method) (*core.Graph, error) {
	n := len(deg)
	res := make([]int, n)
	copy(res, deg)

	vs := make([]int, n)
	var i int
	for i = range vs {
		vs[i] = i
	}
	sort.SliceStable(vs, func(a, b int) bool { return res[vs[a]] > res[vs[b]] })

	g := core.NewGraph(n)
	var (
		next, p, v, d, x, lo, hi, r int
	)
	for {
		for len(vs) > 0 && res[vs[len(vs)-1]] == 0 {
			vs = vs[:len(vs)-1]
		}
		if len(vs) == 0 {
			break
		}

		switch method {
		case Smallest:
			p = len(vs) - 1
		case Largest:
			p = 0
		default:
			for res[next] == 0 {
				next++
			}
			p = position(vs, res, next)
		}
		v = vs[p]
		d = res[v]
		vs = append(vs[:p], vs[p+1:]...)
		res[v] = 0

		if d > len(vs) || res[vs[d-1]] == 0 {
			return nil, fmt.Errorf("realize: %s: vertex %d cannot place %d edges: %w",
				method, v, d, graphical.ErrNotGraphical)
		}

		x = res[vs[d-1]]
		lo = sort.Search(len(vs), func(k int) bool { return res[vs[k]] <= x })
		hi = sort.Search(len(vs), func(k int) bool { return res[vs[k]] < x }) - 1
		r = d - lo // members of the tie group to decrement

		for i = 0; i < lo; i++ {
			connect(g, v, vs[i])
			res[vs[i]]--
		}
		for i = hi - r + 1; i <= hi; i++ {
			connect(g, v, vs[i])
			res[vs[i]]--
		}
	}

	return g, nil
}

// position locates v inside vs using the degree ordering and a scan of its
// tie group.
func position(vs, res []int, v int) int {
	x := res[v]
	k := sort.Search(len(vs), func(i int) bool { return res[vs[i]] <= x })
	for vs[k] != v {
		k++
	}

	return k
}

// connect adds an edge that the construction guarantees to be admissible.
func connect(g *core.Graph, u, v int) {
	if _, err := g.AddEdge(u, v); err != nil {
		panic(fmt.Sprintf("realize: invariant violated adding (%d,%d): %v", u, v, err))
	}
}
