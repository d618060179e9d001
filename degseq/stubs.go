// SPDX-License-Identifier: MIT

package degseq

// fillStubs appends vertex i to dst exactly deg[i] times, in increasing
// vertex order, and returns the extended slice.
// Complexity: O(n + Σdeg).
func fillStubs(dst []int, deg []int) []int {
	var v, k int
	for v = range deg {
		for k = 0; k < deg[v]; k++ {
			dst = append(dst, v)
		}
	}

	return dst
}
