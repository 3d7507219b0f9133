// Package bfs provides breadth-first search over a core.Graph,
// returning unit-weight shortest-path distances, parent links and finalization order.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/graphtrace/core"
)

// walker encapsulates mutable BFS state for one invocation.
type walker struct {
	graph     *core.Graph
	opts      BFSOptions
	frontier  *frontier
	finalized map[string]bool
	res       *BFSResult
}

// BFS computes a shortest-path tree from rootID under unit edge weights.
//
// The frontier is a relaxation structure rather than a FIFO: it keeps the best
// (parent, distance) offer per node and always yields the global minimum, so
// nodes are finalized band by band exactly as a queue-based BFS would.
//
// Returns ErrGraphNil for a nil graph and core.ErrUnknownNode (wrapped) when
// rootID is not registered. Over a well-formed store the traversal is total.
func BFS(g *core.Graph, rootID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasNode(rootID) {
		return nil, fmt.Errorf("bfs: root %q: %w", rootID, core.ErrUnknownNode)
	}

	n := g.NodeCount()
	w := &walker{
		graph:     g,
		opts:      o,
		frontier:  newFrontier(n),
		finalized: make(map[string]bool, n),
		res: &BFSResult{
			Root:     rootID,
			Distance: make(map[string]int, n),
			Parent:   make(map[string]string, n),
			Order:    make([]string, 0, n),
		},
	}

	// The root is final at distance 0; relaxing it seeds its neighbors at 1.
	w.finalized[rootID] = true
	w.res.Distance[rootID] = 0
	w.res.Order = append(w.res.Order, rootID)
	if err := w.relax(rootID, 0); err != nil {
		return nil, err
	}

	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// loop finalizes frontier minima until the frontier is empty.
func (w *walker) loop() error {
	for !w.frontier.empty() {
		c := w.frontier.popMin()
		if err := w.finalize(c); err != nil {
			return err
		}
		if err := w.relax(c.id, c.distance); err != nil {
			return err
		}
	}

	return nil
}

// finalize records the candidate in the result maps and decorates its tree edge.
func (w *walker) finalize(c *candidate) error {
	w.finalized[c.id] = true
	w.res.Distance[c.id] = c.distance
	w.res.Parent[c.id] = c.parent
	w.res.Order = append(w.res.Order, c.id)

	if w.opts.MarkTree {
		if err := w.graph.Mark(c.parent, c.id, core.KindTree); err != nil {
			return fmt.Errorf("bfs: mark %q→%q: %w", c.parent, c.id, err)
		}
	}
	w.opts.OnFinalize(c.id, c.parent, c.distance)

	return nil
}

// relax offers (id, distance+1) to every neighbor of id not yet finalized.
func (w *walker) relax(id string, distance int) error {
	nbrs, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %q: %w", id, err)
	}
	for _, nbr := range nbrs {
		if w.finalized[nbr] {
			continue
		}
		w.frontier.offer(nbr, id, distance+1)
	}

	return nil
}
