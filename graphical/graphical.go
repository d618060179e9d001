// SPDX-License-Identifier: MIT
//
// Package graphical decides whether a degree sequence (undirected) or an
// out/in-degree pair (directed) admits at least one realization under a
// given edge-multiplicity policy.
//
// Policies and tests:
//
//	Undirected
//	  LoopsMulti  sum even
//	  AllowMulti  sum even, 2·max ≤ sum
//	  AllowLoops  sum even, Cairns–Mendan inequalities
//	  Simple      sum even, Erdős–Gallai inequalities
//	Directed
//	  LoopsMulti  Σout = Σin
//	  AllowMulti  Σout = Σin, out_i + in_i ≤ Σout for every i
//	  AllowLoops  Σout = Σin, Gale–Ryser inequalities
//	  Simple      Σout = Σin, Fulkerson–Chen–Anstee inequalities
//
// A sequence containing a negative entry is never graphical. The inequality
// tests run in O(n log n): one sort plus a linear sweep.
package graphical

import (
	"errors"
	"math"
)

// EdgeTypes selects which non-simple edges a realization may contain.
type EdgeTypes uint8

const (
	// Simple forbids self-loops and parallel edges.
	Simple EdgeTypes = 0
	// AllowLoops permits self-loops (at most one per vertex when multi-edges are off).
	AllowLoops EdgeTypes = 1 << 0
	// AllowMulti permits parallel edges.
	AllowMulti EdgeTypes = 1 << 1
	// LoopsMulti permits both.
	LoopsMulti = AllowLoops | AllowMulti
)

// Loops reports whether self-loops are allowed.
func (t EdgeTypes) Loops() bool { return t&AllowLoops != 0 }

// Multi reports whether parallel edges are allowed.
func (t EdgeTypes) Multi() bool { return t&AllowMulti != 0 }

// String returns a stable name for logs and CLI output.
func (t EdgeTypes) String() string {
	switch t & LoopsMulti {
	case Simple:
		return "simple"
	case AllowLoops:
		return "loops"
	case AllowMulti:
		return "multi"
	default:
		return "loops+multi"
	}
}

var (
	// ErrLengthMismatch indicates out- and in-degree sequences of different length.
	ErrLengthMismatch = errors.New("graphical: out- and in-degree sequences differ in length")

	// ErrSumOverflow indicates a degree sum that does not fit in an int.
	ErrSumOverflow = errors.New("graphical: degree sum overflows int")

	// ErrNotGraphical is the sentinel callers wrap when a sequence fails IsGraphical.
	ErrNotGraphical = errors.New("graphical: degree sequence is not graphical")
)

// IsGraphical reports whether the sequence admits a realization under types.
// A nil in selects the undirected test on out; a non-nil in selects the
// directed test on the pair (out, in).
//
// Errors:
//   - ErrLengthMismatch: in != nil and len(in) != len(out).
//   - ErrSumOverflow: a degree sum does not fit in an int.
//
// Complexity: O(n log n) time, O(n) space.
func IsGraphical(out, in []int, types EdgeTypes) (bool, error) {
	if in == nil {
		return isGraphicalUndirected(out, types)
	}
	if len(in) != len(out) {
		return false, ErrLengthMismatch
	}

	return isGraphicalDirected(out, in, types)
}

// Sum returns Σd and reports whether it fits in an int.
// Negative entries are summed as given.
func Sum(d []int) (int, bool) {
	var (
		s, v int
	)
	for _, v = range d {
		if v > 0 && s > math.MaxInt-v {
			return 0, false
		}
		s += v
	}

	return s, true
}

func hasNegative(d []int) bool {
	for _, v := range d {
		if v < 0 {
			return true
		}
	}

	return false
}
