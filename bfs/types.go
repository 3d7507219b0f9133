// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"errors"
	"fmt"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("bfs: graph is nil")

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// MarkTree decorates every finalized (parent, node) edge of the graph
	// with core.KindTree for the renderer.
	MarkTree bool

	// OnFinalize is called when a node leaves the frontier with its final
	// parent and distance. It is not called for the root.
	OnFinalize func(id, parent string, distance int)
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - no graph decoration
//   - no-op OnFinalize hook
func DefaultOptions() BFSOptions {
	return BFSOptions{
		MarkTree:   false,
		OnFinalize: func(string, string, int) {},
	}
}

// WithMarkTree enables decoration of BFS tree edges on the input graph.
func WithMarkTree() Option {
	return func(o *BFSOptions) {
		o.MarkTree = true
	}
}

// WithOnFinalize registers a callback to run when a node is finalized.
func WithOnFinalize(fn func(id, parent string, distance int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnFinalize = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Distance: node ID → hop count from the root (root = 0).
//   - Parent: node ID → predecessor in the BFS tree (root absent).
//   - Order: nodes in finalization order, root first.
//
// Nodes unreachable from the root appear in none of these.
type BFSResult struct {
	Root     string
	Distance map[string]int
	Parent   map[string]string
	Order    []string
}

// Reached reports whether id was reached from the root.
func (r *BFSResult) Reached(id string) bool {
	_, ok := r.Distance[id]

	return ok
}

// PathTo reconstructs the path from the root to dest.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	if _, ok := r.Distance[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	// build reversed path
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get root → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
