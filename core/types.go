// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge, EdgeKey, EdgeKind, Graph, options, sentinel errors, NewGraph.

package core

import (
	"errors"
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Sentinel errors for Graph Store operations.
var (
	// ErrEmptyNodeID indicates that the provided node identifier is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates re-registration of an existing node identifier.
	ErrDuplicateNode = errors.New("core: duplicate node")

	// ErrUnknownNode indicates an operation referenced an unregistered node.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrNotFound indicates that a label lookup had no match.
	ErrNotFound = errors.New("core: label not found")
)

// EdgeKind is the classification tag attached to a registered edge.
type EdgeKind string

// Edge kinds produced by the traversal engines.
const (
	KindPlain    EdgeKind = ""         // not traversed / not classified
	KindTree     EdgeKind = "tree"     // edge that discovered its head
	KindForward  EdgeKind = "forward"  // see dfs package for the exact rule
	KindBackward EdgeKind = "backward" // see dfs package for the exact rule
	KindCross    EdgeKind = "cross"    // head finished before tail was discovered
)

// String returns "plain" for KindPlain and the tag otherwise.
func (k EdgeKind) String() string {
	if k == KindPlain {
		return "plain"
	}

	return string(k)
}

// Node is a registered graph node.
type Node struct {
	// ID is the unique identifier of the node.
	ID string

	// Label is human-readable metadata; labels need not be unique.
	Label string

	// Root is a display hint for the renderer. It has no traversal semantics.
	Root bool
}

// EdgeKey identifies an edge by its ordered endpoints.
type EdgeKey struct {
	Tail string
	Head string
}

// Edge is an entry of the edge registry.
type Edge struct {
	Tail string
	Head string

	// Kind is the decoration last written by Mark (KindPlain when untouched).
	Kind EdgeKind
}

// Key returns the registry key of e.
func (e Edge) Key() EdgeKey { return EdgeKey{Tail: e.Tail, Head: e.Head} }

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithDirected sets whether AddEdge registers a single direction (true)
// or both directions (false, the default).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// NodeOption configures a node on registration.
type NodeOption func(n *Node)

// WithRoot flags the node as the display root.
func WithRoot() NodeOption {
	return func(n *Node) { n.Root = true }
}

// Graph is the in-memory Graph Store.
//
// mu guards every catalog. nodes and edges keep registration order;
// adjacency keeps per-node insertion order; labels maps a label to the
// first node registered with it.
type Graph struct {
	mu sync.RWMutex

	directed bool

	nodes     *orderedmap.OrderedMap[string, *Node]
	edges     *orderedmap.OrderedMap[EdgeKey, *Edge]
	adjacency map[string][]string
	labels    map[string]string
}

// NewGraph creates an empty Graph. By default the Graph is undirected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:     orderedmap.New[string, *Node](),
		edges:     orderedmap.New[EdgeKey, *Edge](),
		adjacency: make(map[string][]string),
		labels:    make(map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports the construction-time directedness policy.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}
