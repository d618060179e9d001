// SPDX-License-Identifier: MIT

package degseq

import (
	"errors"

	"github.com/katalvlaran/degseq/graphical"
	"github.com/katalvlaran/degseq/vl"
)

// validate checks the argument preconditions and returns Σout.
// in is nil for undirected input.
//
// Priority when several checks fail: negative degree, length mismatch,
// overflow, odd sum, sum mismatch, unsupported mode.
func validate(m Method, out, in []int) (int, error) {
	if i := firstNegative(out); i >= 0 {
		return 0, methodErrorf(m, "out-degree of vertex %d is %d: %w", i, out[i], ErrNegativeDegree)
	}
	if i := firstNegative(in); i >= 0 {
		return 0, methodErrorf(m, "in-degree of vertex %d is %d: %w", i, in[i], ErrNegativeDegree)
	}
	if in != nil && len(in) != len(out) {
		return 0, methodErrorf(m, "%d out-degrees, %d in-degrees: %w", len(out), len(in), ErrLengthMismatch)
	}

	sumOut, ok := graphical.Sum(out)
	if !ok {
		return 0, methodErrorf(m, "%w", ErrSumOverflow)
	}
	if in == nil {
		if sumOut%2 != 0 {
			return 0, methodErrorf(m, "sum %d: %w", sumOut, ErrOddDegreeSum)
		}
	} else {
		sumIn, ok := graphical.Sum(in)
		if !ok {
			return 0, methodErrorf(m, "%w", ErrSumOverflow)
		}
		if sumOut != sumIn {
			return 0, methodErrorf(m, "out %d, in %d: %w", sumOut, sumIn, ErrSumMismatch)
		}
	}
	if m == VL && in != nil {
		return 0, methodErrorf(m, "directed input: %w", ErrUnsupportedMode)
	}

	return sumOut, nil
}

// feasible asks the graphicality oracle under the method's policy. VL
// additionally requires a connected simple realization.
func feasible(m Method, out, in []int) error {
	types := m.edgeTypes()
	ok, err := graphical.IsGraphical(out, in, types)
	if err != nil {
		return methodErrorf(m, "%w", err)
	}
	if !ok {
		return methodErrorf(m, "no %s realization: %w", types, ErrNotGraphical)
	}
	if m == VL {
		if err = vl.Connectable(out); err != nil {
			return methodErrorf(m, "%w", errors.Join(ErrNotGraphical, err))
		}
	}

	return nil
}

func firstNegative(d []int) int {
	for i, v := range d {
		if v < 0 {
			return i
		}
	}

	return -1
}
