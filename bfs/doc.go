// Package bfs computes a breadth-first shortest-path tree over a core.Graph
// under unit edge weights.
//
// What
//
//   - BFS(g, rootID, opts...) returns a BFSResult containing:
//   - Distance: map from node → hop count from the root (root = 0)
//   - Parent: map from node → its predecessor in the BFS tree (root absent)
//   - Order: finalization sequence, root first
//   - Nodes unreachable from the root appear in none of these.
//   - Adjacency is taken from the store as is. Build the store undirected
//     (core.NewGraph()) to traverse every edge in both directions.
//
// How
//
//	The frontier maps each discovered, not yet finalized node to its best
//	(parent, tentative distance) offer. Extraction always takes the global
//	minimum; an offer replaces the stored one only if it is strictly shorter.
//	Ties are broken by the order in which nodes first entered the frontier,
//	so the result is fully determined by the store's neighbor order.
//
// Determinism
//
//	Two runs over an unmodified store yield identical results.
//
// Complexity (V = |Nodes|, E = |adjacency entries|)
//
//   - Time:   O((V + E) log V)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, root, bfs.WithMarkTree())
//	if err != nil {
//	    // ErrGraphNil or core.ErrUnknownNode
//	}
//	path, _ := res.PathTo("C")
//
// Options
//
//   - WithMarkTree():      decorate finalized edges of g with core.KindTree.
//   - WithOnFinalize(fn):  hook called as each non-root node is finalized.
//
// Errors
//
//   - ErrGraphNil           if the graph pointer is nil.
//   - core.ErrUnknownNode   if the root is not registered.
package bfs
