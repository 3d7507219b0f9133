// Package dfs defines types and options for depth-first forest traversal
// with discovery/finish timestamps and edge classification.
package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphtrace/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrUnknownClassification is returned by ParseClassification for an unknown name.
	ErrUnknownClassification = errors.New("dfs: unknown classification")
)

// Classification selects the rule used for edges whose head was already
// discovered when the edge was traversed.
type Classification int

const (
	// Observed tags an edge into a node that is still active as forward,
	// an edge into a node finished before the tail was discovered as cross,
	// and any other edge into a finished node as backward. This is the
	// labeling the published results use and is the default.
	Observed Classification = iota

	// Classical applies the textbook taxonomy: an edge into an active node is
	// backward, into a finished node discovered after the tail is forward,
	// and into any other finished node is cross.
	Classical
)

// String returns the configuration name of c.
func (c Classification) String() string {
	switch c {
	case Observed:
		return "observed"
	case Classical:
		return "classical"
	default:
		return "unknown"
	}
}

// ParseClassification maps "observed" (or "") and "classical" to a Classification.
func ParseClassification(s string) (Classification, error) {
	switch s {
	case "", "observed":
		return Observed, nil
	case "classical":
		return Classical, nil
	default:
		return Observed, fmt.Errorf("%w: %q", ErrUnknownClassification, s)
	}
}

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, rootID, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// MarkEdges, if true, writes every classification onto the graph's edge
	// registry via core.Graph.Mark for the renderer.
	MarkEdges bool

	// Classification selects the non-tree edge rule. Default is Observed.
	Classification Classification
}

// DefaultOptions returns a DFSOptions struct with:
//   - No graph decoration
//   - Observed classification
func DefaultOptions() DFSOptions {
	return DFSOptions{
		MarkEdges:      false,
		Classification: Observed,
	}
}

// WithMarkEdges returns an Option that decorates the graph with edge kinds.
func WithMarkEdges() Option {
	return func(o *DFSOptions) {
		o.MarkEdges = true
	}
}

// WithClassification returns an Option that selects the non-tree edge rule.
func WithClassification(c Classification) Option {
	return func(o *DFSOptions) {
		o.Classification = c
	}
}

// DFSResult captures the outcome of a depth-first forest traversal.
type DFSResult struct {
	// Discovery maps every node to the clock value at which it was first visited.
	Discovery map[string]int

	// Finish maps every node to the clock value at which its subtree was done.
	Finish map[string]int

	// Kinds maps every traversed (tail, head) pair to its classification.
	Kinds map[core.EdgeKey]core.EdgeKind

	// Parent maps each non-root node to the node whose tree edge discovered it.
	Parent map[string]string

	// Roots lists the tree roots of the forest in the order they were started.
	Roots []string

	// Order records nodes in the sequence they finished (post-order).
	Order []string
}

// Kind returns the classification of (tail, head) and whether it was traversed.
func (r *DFSResult) Kind(tail, head string) (core.EdgeKind, bool) {
	k, ok := r.Kinds[core.EdgeKey{Tail: tail, Head: head}]

	return k, ok
}
