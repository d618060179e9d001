// SPDX-License-Identifier: MIT

// Package degseq generates random graphs with a prescribed degree sequence.
//
// Undirected input is one sequence; directed input is an out-degree and an
// in-degree sequence of equal length. Vertices of the result are
// 0..n-1 and vertex i has exactly the requested degree(s).
//
// Methods:
//
//	Configuration        uniform stub matching; loops and multi-edges allowed
//	ConfigurationSimple  Configuration with rejection; uniform over simple graphs
//	FastHeurSimple       greedy matching with partial retries; simple, not uniform
//	EdgeSwitchingSimple  one realization shuffled by degree-preserving switches
//	VL                   connected simple undirected graphs
//
// Every call checks its arguments and asks the graphicality oracle before
// drawing any random number, so an impossible sequence fails fast instead of
// spinning in a retry loop. Retry loops poll the context periodically and
// can be bounded with WithMaxAttempts.
//
// Randomness comes from an rng.Source (rng.Default unless WithSeed,
// WithRand or WithSource is given). A call holds its source for the whole
// sampling phase, so results are reproducible for a fixed seed.
//
// Example:
//
//	g, err := degseq.Generate(ctx, []int{3, 2, 2, 2, 1}, nil,
//		degseq.ConfigurationSimple, degseq.WithSeed(7))
//	if err != nil {
//		return err
//	}
//	fmt.Println(g.OutDegrees()) // [3 2 2 2 1]
package degseq
