// SPDX-License-Identifier: MIT

// Package core provides the in-memory Graph Store consumed by the bfs and dfs
// traversal engines.
//
// A Graph holds three catalogs:
//
//   - nodes: identifier → Node{ID, Label, Root}, kept in registration order.
//   - adjacency: identifier → ordered neighbor identifiers, in edge insertion order.
//   - edges: (tail, head) → Edge{Tail, Head, Kind}, kept in registration order.
//
// Directedness is a construction-time policy:
//
//	– WithDirected(false) (default)
//	    AddEdge(t, h) makes both t→h and h→t traversable. This is the BFS context.
//
//	– WithDirected(true)
//	    AddEdge(t, h) makes only t→h traversable. This is the DFS context.
//
// Determinism:
//
//   - Nodes(), NodeIDs() and Edges() enumerate in registration order.
//   - Neighbors(id) returns neighbors exactly in insertion order, so the order of
//     input edges decides traversal tie-breaks downstream.
//   - FindByLabel returns the first registered node carrying the label.
//
// Decorations:
//
//	Traversal engines may annotate registered edges with an EdgeKind via Mark.
//	This is the only mutation performed during traversal and exists purely for
//	the render adapter. ClearMarks resets every annotation.
//
// Errors:
//
//	ErrEmptyNodeID   - node identifier is the empty string.
//	ErrDuplicateNode - node identifier already registered.
//	ErrUnknownNode   - operation references an unregistered node.
//	ErrNotFound      - label lookup had no match (an expected outcome).
//
// Concurrency:
//
//	All methods are safe for concurrent use; a single sync.RWMutex guards the
//	catalogs. Two traversals that decorate the same Graph concurrently will
//	overwrite each other's annotations; Clone the store first when that matters.
package core
