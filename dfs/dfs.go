// Package dfs implements depth-first forest traversal on core.Graph with
// discovery/finish timestamps and tree/forward/backward/cross edge classification.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/graphtrace/core"
)

// clock hands out strictly increasing timestamps starting at 0.
// Each DFS invocation owns its own clock.
type clock struct{ now int }

// tick returns the current time and advances the clock.
func (c *clock) tick() int {
	t := c.now
	c.now++

	return t
}

// frame is one active node on the explicit work stack.
type frame struct {
	node      string
	parent    string
	hasParent bool
	nbrs      []string
	cursor    int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	clock clock
	stack []frame
	res   *DFSResult
}

// DFS performs a depth-first traversal of g starting at rootID, then restarts
// from every still-undiscovered node in registration order so the whole store
// is covered as one forest.
//
// Each discovery and each finish consumes one clock tick. Every traversed
// (tail, head) pair receives exactly one classification; when parallel edges
// traverse the same pair twice, the first classification is kept.
//
// Returns ErrGraphNil for a nil graph and core.ErrUnknownNode (wrapped) when
// rootID is not registered.
func DFS(g *core.Graph, rootID string, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Verify root
	if !g.HasNode(rootID) {
		return nil, fmt.Errorf("dfs: root %q: %w", rootID, core.ErrUnknownNode)
	}

	// 4. Initialize result with capacity hint
	ids := g.NodeIDs()
	n := len(ids)
	res := &DFSResult{
		Discovery: make(map[string]int, n),
		Finish:    make(map[string]int, n),
		Kinds:     make(map[core.EdgeKey]core.EdgeKind),
		Parent:    make(map[string]string, n),
		Order:     make([]string, 0, n),
	}
	w := &dfsWalker{graph: g, opts: dopts, res: res}

	// 5. Root first, then every node in registration order
	if err := w.traverse(rootID); err != nil {
		return nil, err
	}
	for _, id := range ids {
		if err := w.traverse(id); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// traverse runs one top-level visit (no incoming edge) to completion.
func (w *dfsWalker) traverse(id string) error {
	if err := w.visit(id, "", false); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]

		// Next neighbor of the active node
		if top.cursor < len(top.nbrs) {
			nbr := top.nbrs[top.cursor]
			top.cursor++
			if err := w.visit(nbr, top.node, true); err != nil {
				return err
			}
			continue
		}

		// All neighbors explored: finish and tag the incoming tree edge
		done := *top
		w.stack = w.stack[:len(w.stack)-1]
		w.res.Finish[done.node] = w.clock.tick()
		w.res.Order = append(w.res.Order, done.node)
		if done.hasParent {
			if err := w.record(done.parent, done.node, core.KindTree); err != nil {
				return err
			}
		}
	}

	return nil
}

// visit handles the traversal of (parent, node), or a top-level entry into node
// when hasParent is false. An already discovered node is classified and not
// expanded; a new one is discovered and pushed.
func (w *dfsWalker) visit(node, parent string, hasParent bool) error {
	if _, seen := w.res.Discovery[node]; seen {
		if !hasParent {
			return nil
		}

		return w.record(parent, node, w.classify(parent, node))
	}

	nbrs, err := w.graph.Neighbors(node)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", node, err)
	}

	w.res.Discovery[node] = w.clock.tick()
	if hasParent {
		w.res.Parent[node] = parent
	} else {
		w.res.Roots = append(w.res.Roots, node)
	}
	w.stack = append(w.stack, frame{node: node, parent: parent, hasParent: hasParent, nbrs: nbrs})

	return nil
}

// classify tags an edge whose head is already discovered.
func (w *dfsWalker) classify(tail, head string) core.EdgeKind {
	finish, finished := w.res.Finish[head]

	if w.opts.Classification == Classical {
		switch {
		case !finished:
			return core.KindBackward
		case w.res.Discovery[head] > w.res.Discovery[tail]:
			return core.KindForward
		default:
			return core.KindCross
		}
	}

	switch {
	case !finished:
		return core.KindForward
	case finish < w.res.Discovery[tail]:
		return core.KindCross
	default:
		return core.KindBackward
	}
}

// record stores the first classification of (tail, head) and mirrors it onto
// the graph when MarkEdges is set.
func (w *dfsWalker) record(tail, head string, kind core.EdgeKind) error {
	key := core.EdgeKey{Tail: tail, Head: head}
	if _, ok := w.res.Kinds[key]; ok {
		return nil
	}
	w.res.Kinds[key] = kind

	if w.opts.MarkEdges {
		if err := w.graph.Mark(tail, head, kind); err != nil {
			return fmt.Errorf("dfs: mark %q→%q: %w", tail, head, err)
		}
	}

	return nil
}
