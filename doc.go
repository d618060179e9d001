// Package degseq is a toolkit for sampling random graphs with a prescribed
// degree sequence, from the raw configuration model to connected uniform
// samplers.
//
// 🚀 What is inside?
//
//	A thread-safe, reproducible set of packages that brings together:
//		• Core primitives: an int-indexed graph with loop/multi-edge policies
//		• Feasibility: Erdős–Gallai, Cairns–Mendan, Gale–Ryser, Fulkerson–Chen–Anstee
//		• Realization: Havel–Hakimi and Kleitman–Wang
//		• Samplers: configuration, rejection, fast heuristic, edge switching, VL
//		• Traversal: BFS, connected components
//
// ✨ Guarantees
//
//   - Exact degrees: every returned graph realizes the requested sequence
//   - Fail fast: impossible sequences are rejected before any sampling
//   - Reproducible: one seeded source drives every random draw
//   - Cancellable: retry loops poll the caller's context
//
// Layout:
//
//	core/       - Graph, Edge, FromEdgeList, degree queries, gonum interop
//	graphical/  - IsGraphical under simple / loops / multi / loops+multi
//	realize/    - deterministic realizations
//	rewire/     - degree-preserving edge switches
//	bfs/        - breadth-first search, components, connectivity
//	vl/         - connected simple sampler
//	degseq/     - Generate: the method dispatcher
//	rng/        - shared seeded source with scoped streams
//	interrupt/  - periodic cancellation checks and attempt budgets
//	metrics/    - Prometheus observer
//	config/     - koanf configuration loader
//	logger/     - slog + lumberjack
//	cmd/degseq/ - command-line front end
//
// Quick example:
//
//	deg = [2 2 2]  →  the triangle
//
//	    0
//	   / \
//	  1───2
//
//	go get github.com/katalvlaran/degseq/degseq
package degseq
