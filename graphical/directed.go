// SPDX-License-Identifier: MIT

package graphical

import "sort"

func isGraphicalDirected(out, in []int, types EdgeTypes) (bool, error) {
	if hasNegative(out) || hasNegative(in) {
		return false, nil
	}
	sumOut, ok := Sum(out)
	if !ok {
		return false, ErrSumOverflow
	}
	sumIn, ok := Sum(in)
	if !ok {
		return false, ErrSumOverflow
	}
	if sumOut != sumIn {
		return false, nil
	}

	switch {
	case types.Loops() && types.Multi():
		return true, nil

	case types.Multi():
		// Vertex i can only pair its out-stubs with in-stubs of other vertices.
		for i := range out {
			if out[i] > sumIn-in[i] {
				return false, nil
			}
		}
		return true, nil

	case types.Loops():
		return galeRyser(out, in), nil

	default:
		return fulkersonChenAnstee(out, in), nil
	}
}

// galeRyser treats the pair as the two sides of a bipartite graph (vertex i
// on the out side may connect to vertex i on the in side, i.e. a self-loop):
//
//	Σ_{i≤k} a_i ≤ Σ_j min(b_j, k)   for k = 1..n, a sorted descending.
func galeRyser(out, in []int) bool {
	n := len(out)
	var i int
	for i = 0; i < n; i++ {
		if out[i] > n || in[i] > n {
			return false
		}
	}

	a := make([]int, n)
	copy(a, out)
	sort.Sort(sort.Reverse(sort.IntSlice(a)))

	hist := make([]int, n+1)
	for _, b := range in {
		hist[b]++
	}

	var (
		lhs, s, k int
		geq       = n // #{j : b_j ≥ k}
	)
	for k = 1; k <= n; k++ {
		geq -= hist[k-1]
		s += geq // s = Σ_j min(b_j, k)
		lhs += a[k-1]
		if lhs > s {
			return false
		}
	}

	return true
}

// fulkersonChenAnstee checks, with pairs sorted by (out, in) descending,
//
//	Σ_{i≤k} a_i ≤ Σ_{i≤k} min(b_i, k-1) + Σ_{i>k} min(b_i, k)   for k = 1..n.
//
// The right-hand side equals S(k) − c(k) with S(k) = Σ_j min(b_j, k) and
// c(k) = #{i ≤ k : b_i ≥ k}; both are maintained incrementally from
// histograms of b.
func fulkersonChenAnstee(out, in []int) bool {
	n := len(out)
	var i int
	for i = 0; i < n; i++ {
		if out[i] > n-1 || in[i] > n-1 {
			return false
		}
	}

	idx := make([]int, n)
	for i = range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(x, y int) bool {
		u, v := idx[x], idx[y]
		if out[u] != out[v] {
			return out[u] > out[v]
		}
		return in[u] > in[v]
	})

	hist := make([]int, n+1) // over all b
	pref := make([]int, n+1) // over the first k-1 sorted b
	for _, b := range in {
		hist[b]++
	}

	var (
		lhs, s, c, k, a, b int
		geq                = n
	)
	for k = 1; k <= n; k++ {
		geq -= hist[k-1]
		s += geq

		a, b = out[idx[k-1]], in[idx[k-1]]
		lhs += a

		c -= pref[k-1]
		if b >= k {
			c++
		}
		pref[b]++

		if lhs > s-c {
			return false
		}
	}

	return true
}
