// SPDX-License-Identifier: MIT

package rng

import "math/rand"

// Stream is the scoped view of a Source returned by Source.Begin.
// All draws of one generation call go through a single Stream.
type Stream struct {
	src   *Source
	r     *rand.Rand
	ended bool
}

// End releases the Source. Calling End more than once is a no-op.
func (st *Stream) End() {
	if st.ended {
		return
	}
	st.ended = true
	st.r = nil
	st.src.mu.Unlock()
}

// Integer returns a uniform integer in the closed range [lo, hi].
// Requires lo <= hi; lo == hi returns lo without consuming randomness.
// Complexity: O(1).
func (st *Stream) Integer(lo, hi int) int {
	if hi <= lo {
		return lo
	}

	return lo + st.r.Intn(hi-lo+1)
}

// Intn returns a uniform integer in [0, n). Requires n > 0.
func (st *Stream) Intn(n int) int {
	return st.r.Intn(n)
}

// Float64 returns a uniform float in [0, 1).
func (st *Stream) Float64() float64 {
	return st.r.Float64()
}

// Shuffle performs an in-place Fisher–Yates shuffle of a.
// Position i (from the front) receives a uniform element of a[i:], so the
// draw pattern matches Integer(i, n-1) for i = 0..n-2.
//
// Complexity: O(n) time, O(1) extra space.
func (st *Stream) Shuffle(a []int) {
	n := len(a)
	if n <= 1 {
		return
	}

	var i, j int
	for i = 0; i < n-1; i++ {
		j = st.Integer(i, n-1)
		a[i], a[j] = a[j], a[i]
	}
}
