// SPDX-License-Identifier: MIT
//
// Package realize builds one simple graph with a prescribed degree sequence
// by explicit deterministic construction.
//
// Undirected sequences use Havel–Hakimi: pick a vertex v, remove it, and
// connect it to the deg(v) other vertices of largest residual degree.
// Directed pairs use Kleitman–Wang: pick a vertex v with positive residual
// out-degree and connect it to the out(v) other vertices of largest residual
// in-degree, ties broken by larger residual out-degree.
//
// Both constructions succeed for any choice of v exactly when the sequence is
// graphical, so infeasibility is detected during construction and no prior
// oracle call is needed. Method only selects which v is processed next and
// therefore which realization is produced.
//
// Errors:
//
//	ErrUnknownMethod             - Method outside Smallest/Largest/Index.
//	graphical.ErrLengthMismatch  - directed pair with unequal lengths.
//	graphical.ErrNotGraphical    - the sequence has no simple realization.
package realize

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/degseq/core"
	"github.com/katalvlaran/degseq/graphical"
)

// Method selects the vertex processed at each construction step.
type Method int

const (
	// Smallest processes the vertex with the smallest residual degree first.
	Smallest Method = iota
	// Largest processes the vertex with the largest residual degree first.
	Largest
	// Index processes vertices in the order of their index.
	Index
)

// String returns the lowercase method name.
func (m Method) String() string {
	switch m {
	case Smallest:
		return "smallest"
	case Largest:
		return "largest"
	case Index:
		return "index"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ErrUnknownMethod indicates a Method value outside the declared constants.
var ErrUnknownMethod = errors.New("realize: unknown method")

// Realize returns a simple graph whose degrees equal out (undirected, in ==
// nil) or whose out/in-degrees equal (out, in) (directed).
//
// Complexity: O(n² + E) undirected, O(n² log n) directed.
func Realize(out, in []int, method Method) (*core.Graph, error) {
	if method < Smallest || method > Index {
		return nil, ErrUnknownMethod
	}
	if in == nil {
		if hasNegative(out) {
			return nil, fmt.Errorf("realize: %s: negative degree: %w", method, graphical.ErrNotGraphical)
		}
		return havelHakimi(out, method)
	}
	if len(in) != len(out) {
		return nil, graphical.ErrLengthMismatch
	}
	if hasNegative(out) || hasNegative(in) {
		return nil, fmt.Errorf("realize: %s: negative degree: %w", method, graphical.ErrNotGraphical)
	}

	return kleitmanWang(out, in, method)
}

func hasNegative(d []int) bool {
	for _, v := range d {
		if v < 0 {
			return true
		}
	}

	return false
}
