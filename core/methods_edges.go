// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge registration, adjacency queries and the edge registry.
// Determinism:
//   - Neighbors(id) preserves insertion order (parallel edges repeat).
//   - Edges() enumerates the registry in registration order.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "fmt"

// AddEdge registers an adjacency relation from tail to head.
//
// Undirected graphs make head reachable from tail and tail reachable from head;
// directed graphs only the former. Inserting the same pair twice appends the
// neighbor again, while the registry keeps a single entry per (tail, head).
//
// Errors:
//   - ErrUnknownNode: tail or head is not registered.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(tail, head string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes.Get(tail); !ok {
		return fmt.Errorf("%w: tail %q", ErrUnknownNode, tail)
	}
	if _, ok := g.nodes.Get(head); !ok {
		return fmt.Errorf("%w: head %q", ErrUnknownNode, head)
	}

	g.adjacency[tail] = append(g.adjacency[tail], head)
	if !g.directed {
		g.adjacency[head] = append(g.adjacency[head], tail)
	}

	key := EdgeKey{Tail: tail, Head: head}
	if _, exists := g.edges.Get(key); !exists {
		g.edges.Set(key, &Edge{Tail: tail, Head: head})
	}

	return nil
}

// Neighbors returns the neighbors of id in insertion order.
// The returned slice is a copy.
//
// Errors:
//   - ErrUnknownNode: id is not registered.
//
// Complexity: O(d) where d is the number of adjacency entries of id.
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}
	out := make([]string, len(nbrs))
	copy(out, nbrs)

	return out, nil
}

// HasEdge reports whether (tail, head) is in the edge registry.
// For undirected graphs the reverse orientation also matches.
func (g *Graph) HasEdge(tail, head string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.lookupEdge(tail, head)

	return ok
}

// Edges returns copies of all registered edges in registration order,
// each carrying its current Kind.
// Complexity: O(E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edges.Len())
	for pair := g.edges.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, *pair.Value)
	}

	return out
}

// EdgeCount returns the number of registry entries.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges.Len()
}

// lookupEdge resolves (tail, head) against the registry. Undirected graphs
// fall back to (head, tail). Caller must hold mu.
func (g *Graph) lookupEdge(tail, head string) (*Edge, bool) {
	if e, ok := g.edges.Get(EdgeKey{Tail: tail, Head: head}); ok {
		return e, true
	}
	if !g.directed {
		if e, ok := g.edges.Get(EdgeKey{Tail: head, Head: tail}); ok {
			return e, true
		}
	}

	return nil, false
}
