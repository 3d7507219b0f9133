// Package dfs implements depth‑first forest traversal on a core.Graph that
// timestamps node discovery/finish and classifies every traversed edge.
//
// What:
//
//   - DFS(g, rootID, opts...) visits rootID first, then every still
//     undiscovered node in registration order, producing one forest that
//     covers the whole store.
//   - Discovery/Finish: a single clock starting at 0 supplies every
//     timestamp; finish[v] > discovery[v] and intervals are well nested.
//   - Kinds: every traversed (tail, head) pair is tagged tree, forward,
//     backward or cross. Untraversed registry edges are absent.
//   - Adjacency is taken from the store as is. Build the store directed
//     (core.NewGraph(core.WithDirected(true))) for single-direction edges.
//
// Classification:
//
//	An edge that discovers its head is a tree edge. For an edge into an
//	already discovered head the default (Observed) rule is:
//
//	  head still active                      → forward
//	  finish[head] < discovery[tail]         → cross
//	  otherwise                              → backward
//
//	This keys off "still active" rather than ancestor/descendant, so the
//	closing edge of a cycle (C→A in A→B→C→A) is reported as forward. It
//	differs from the textbook taxonomy, which WithClassification(Classical)
//	selects explicitly:
//
//	  head still active                      → backward
//	  discovery[head] > discovery[tail]      → forward
//	  otherwise                              → cross
//
// Implementation:
//
//	The traversal runs on an explicit stack of (node, parent, neighborCursor)
//	frames, so arbitrarily deep graphs cannot exhaust the goroutine stack.
//	Visit order and timestamps are identical to the recursive formulation.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the stack and timestamp maps, O(E) for Kinds.
//
// Options:
//
//   - WithMarkEdges()            decorate g's edge registry with the kinds.
//   - WithClassification(c)      Observed (default) or Classical.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - core.ErrUnknownNode       if rootID is not registered.
package dfs
