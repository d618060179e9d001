// SPDX-License-Identifier: MIT

package graphical

import "sort"

func isGraphicalUndirected(deg []int, types EdgeTypes) (bool, error) {
	if hasNegative(deg) {
		return false, nil
	}
	sum, ok := Sum(deg)
	if !ok {
		return false, ErrSumOverflow
	}
	if sum%2 != 0 {
		return false, nil
	}

	switch {
	case types.Loops() && types.Multi():
		return true, nil

	case types.Multi():
		// Every stub of the largest vertex needs a partner elsewhere.
		var maxDeg, v int
		for _, v = range deg {
			if v > maxDeg {
				maxDeg = v
			}
		}
		return maxDeg <= sum-maxDeg, nil

	default:
		d := make([]int, len(deg))
		copy(d, deg)
		sort.Sort(sort.Reverse(sort.IntSlice(d)))
		return degreeInequalities(d, types.Loops()), nil
	}
}

// degreeInequalities checks, for k = 1..n on d sorted descending,
//
//	Σ_{i≤k} d_i ≤ k(k-1) + Σ_{i>k} min(k, d_i)   (Erdős–Gallai)
//	Σ_{i≤k} d_i ≤ k(k+1) + Σ_{i>k} min(k, d_i)   (Cairns–Mendan, loops)
//
// p tracks the length of the prefix with d_i ≥ k; it only shrinks as k
// grows, so the sweep is linear after sorting.
func degreeInequalities(d []int, loops bool) bool {
	n := len(d)
	suffix := make([]int, n+1)
	var i int
	for i = n - 1; i >= 0; i-- {
		suffix[i] = suffix[i+1] + d[i]
	}

	var (
		lhs, rhs, k, split int
		p                  = n
	)
	for k = 1; k <= n; k++ {
		lhs += d[k-1]
		for p > 0 && d[p-1] < k {
			p--
		}
		// Tail [k, n): entries ≥ k sit in [k, split) and contribute k each.
		split = p
		if split < k {
			split = k
		}
		rhs = k*(split-k) + suffix[split]
		if loops {
			rhs += k * (k + 1)
		} else {
			rhs += k * (k - 1)
		}
		if lhs > rhs {
			return false
		}
	}

	return true
}
