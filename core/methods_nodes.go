// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node registration, label lookup and node queries.
// Determinism:
//   - Nodes()/NodeIDs() enumerate in registration order.
//   - FindByLabel returns the first node registered with the label.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "fmt"

// AddNode registers a node with the given identifier and label.
//
// Steps:
//  1. Reject an empty id (ErrEmptyNodeID).
//  2. Under the write lock reject an existing id (ErrDuplicateNode).
//  3. Store the node, bootstrap its adjacency slot, index its label if unseen.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id, label string, opts ...NodeOption) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes.Get(id); exists {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, id)
	}

	n := &Node{ID: id, Label: label}
	for _, opt := range opts {
		opt(n)
	}
	g.nodes.Set(id, n)
	g.adjacency[id] = nil

	// first registration wins, matching an in-order scan
	if _, seen := g.labels[label]; !seen {
		g.labels[label] = id
	}

	return nil
}

// HasNode reports whether id is registered.
// Complexity: O(1)
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes.Get(id)

	return ok
}

// Node returns a copy of the node registered under id.
func (g *Graph) Node(id string) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes.Get(id)
	if !ok {
		return Node{}, false
	}

	return *n, true
}

// Nodes returns copies of all nodes in registration order.
// Complexity: O(V)
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, 0, g.nodes.Len())
	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, *pair.Value)
	}

	return out
}

// NodeIDs returns all node identifiers in registration order.
// Complexity: O(V)
func (g *Graph) NodeIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, g.nodes.Len())
	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}

	return out
}

// NodeCount returns the number of registered nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes.Len()
}

// FindByLabel returns the identifier of the first node registered with label.
// When several nodes share a label the earliest registration wins; callers
// should not rely on which one that is. ErrNotFound is returned when no node
// carries the label, including on an empty Graph.
//
// Complexity: O(1)
func (g *Graph) FindByLabel(label string) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.labels[label]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotFound, label)
	}

	return id, nil
}
