// SPDX-License-Identifier: MIT

package realize

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/degseq/core"
	"github.com/katalvlaran/degseq/graphical"
)

func kleitmanWang(out, in []int, method Method) (*core.Graph, error) {
	n := len(out)
	a := make([]int, n)
	b := make([]int, n)
	copy(a, out)
	copy(b, in)

	g := core.NewGraph(n, core.WithDirected(true))
	cand := make([]int, 0, n)
	var (
		next, v, d, u, i int
	)
	for {
		v = -1
		switch method {
		case Index:
			for next < n && a[next] == 0 {
				next++
			}
			if next < n {
				v = next
			}
		default:
			for u = 0; u < n; u++ {
				if a[u] == 0 {
					continue
				}
				if v < 0 ||
					(method == Smallest && a[u] < a[v]) ||
					(method == Largest && a[u] > a[v]) {
					v = u
				}
			}
		}
		if v < 0 {
			break
		}
		d = a[v]
		a[v] = 0

		cand = cand[:0]
		for u = 0; u < n; u++ {
			if u != v && b[u] > 0 {
				cand = append(cand, u)
			}
		}
		if d > len(cand) {
			return nil, fmt.Errorf("realize: %s: vertex %d cannot place %d arcs: %w",
				method, v, d, graphical.ErrNotGraphical)
		}
		sort.SliceStable(cand, func(x, y int) bool {
			p, q := cand[x], cand[y]
			if b[p] != b[q] {
				return b[p] > b[q]
			}
			return a[p] > a[q]
		})
		for i = 0; i < d; i++ {
			connect(g, v, cand[i])
			b[cand[i]]--
		}
	}

	for u = 0; u < n; u++ {
		if b[u] != 0 {
			return nil, fmt.Errorf("realize: %s: in-degree of vertex %d left unmatched: %w",
				method, u, graphical.ErrNotGraphical)
		}
	}

	return g, nil
}
