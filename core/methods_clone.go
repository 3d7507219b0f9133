// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copy of a Graph Store.
// Determinism:
//   - The clone preserves node, edge and neighbor order exactly.

package core

// Clone returns a deep copy of g: policy, nodes, adjacency, registry and
// decorations. Decorating the clone never affects g, which makes Clone the
// way to run traversals that mark edges concurrently over one dataset.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithDirected(g.directed))
	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		n := *pair.Value
		clone.nodes.Set(pair.Key, &n)
	}
	for id, nbrs := range g.adjacency {
		cp := make([]string, len(nbrs))
		copy(cp, nbrs)
		clone.adjacency[id] = cp
	}
	for label, id := range g.labels {
		clone.labels[label] = id
	}
	for pair := g.edges.Oldest(); pair != nil; pair = pair.Next() {
		e := *pair.Value
		clone.edges.Set(pair.Key, &e)
	}

	return clone
}
