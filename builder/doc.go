// SPDX-License-Identifier: MIT
// Package builder generates deterministic core.Graph topologies for tests,
// benchmarks and examples.
//
// A Constructor adds nodes and edges to an existing store; BuildGraph creates
// the store and applies constructors in order:
//
//	g, err := builder.BuildGraph(
//	    []core.GraphOption{core.WithDirected(true)},
//	    []builder.Option{builder.WithIDScheme(builder.PrefixIDFn("N"))},
//	    builder.Path(1000),
//	)
//
// Determinism:
//   - Node ids come from the configured IDFn (decimal by default) and are
//     registered in index order.
//   - Edges are added in a fixed, documented order per constructor, so the
//     adjacency order seen by BFS and DFS is reproducible.
//   - RandomSparse draws from the configured *rand.Rand only; use WithSeed.
//
// Mode handling: Path, Cycle, Star and BinaryTree add one edge per pair from
// the lower to the higher index (the cycle's closing edge runs last→first).
// Grid and Complete add both orientations on directed stores.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource and
// ErrConstructFailed, always wrapped with the constructor name.
package builder
