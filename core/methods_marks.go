// SPDX-License-Identifier: MIT
//
// File: methods_marks.go
// Role: Edge decorations written by traversal engines for the renderer.

package core

import "fmt"

// Mark records kind on the registered edge (tail, head).
//
// Undirected graphs resolve (head, tail) to the registered orientation, so a
// BFS tree edge discovered "backwards" decorates the edge the caller inserted.
// A pair of registered nodes with no registry entry is added, so the renderer
// still draws it.
//
// Errors:
//   - ErrUnknownNode: tail or head is not registered.
func (g *Graph) Mark(tail, head string, kind EdgeKind) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if e, ok := g.lookupEdge(tail, head); ok {
		e.Kind = kind

		return nil
	}
	if _, ok := g.nodes.Get(tail); !ok {
		return fmt.Errorf("%w: tail %q", ErrUnknownNode, tail)
	}
	if _, ok := g.nodes.Get(head); !ok {
		return fmt.Errorf("%w: head %q", ErrUnknownNode, head)
	}
	g.edges.Set(EdgeKey{Tail: tail, Head: head}, &Edge{Tail: tail, Head: head, Kind: kind})

	return nil
}

// Kind returns the decoration of (tail, head) and whether the edge is registered.
func (g *Graph) Kind(tail, head string) (EdgeKind, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.lookupEdge(tail, head)
	if !ok {
		return KindPlain, false
	}

	return e.Kind, true
}

// ClearMarks resets every registered edge to KindPlain.
// Complexity: O(E)
func (g *Graph) ClearMarks() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for pair := g.edges.Oldest(); pair != nil; pair = pair.Next() {
		pair.Value.Kind = KindPlain
	}
}
