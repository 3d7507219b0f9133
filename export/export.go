// SPDX-License-Identifier: MIT

package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/graphtrace/bfs"
	"github.com/katalvlaran/graphtrace/core"
	"github.com/katalvlaran/graphtrace/dfs"
)

// Unreached is written in place of a distance for nodes BFS never finalized.
const Unreached = "inf"

var (
	// ErrGraphNil is returned when a writer receives a nil store.
	ErrGraphNil = errors.New("export: graph is nil")

	// ErrResultNil is returned when a writer receives a nil result.
	ErrResultNil = errors.New("export: result is nil")
)

// WriteBFS writes one record per node: label, id, parent, distance.
func WriteBFS(w io.Writer, g *core.Graph, res *bfs.BFSResult) error {
	if err := check(g, res == nil); err != nil {
		return err
	}

	return writeAll(w, func(emit func(...string) error) error {
		for _, n := range g.Nodes() {
			dist := Unreached
			if d, ok := res.Distance[n.ID]; ok {
				dist = strconv.Itoa(d)
			}
			if err := emit(n.Label, n.ID, res.Parent[n.ID], dist); err != nil {
				return err
			}
		}

		return nil
	})
}

// WriteDFSNodes writes one record per node: label, id, discovery, finish.
func WriteDFSNodes(w io.Writer, g *core.Graph, res *dfs.DFSResult) error {
	if err := check(g, res == nil); err != nil {
		return err
	}

	return writeAll(w, func(emit func(...string) error) error {
		for _, n := range g.Nodes() {
			d, ok := res.Discovery[n.ID]
			if !ok {
				return fmt.Errorf("export: node %q has no discovery time", n.ID)
			}
			if err := emit(n.Label, n.ID, strconv.Itoa(d), strconv.Itoa(res.Finish[n.ID])); err != nil {
				return err
			}
		}

		return nil
	})
}

// WriteDFSEdges writes one record per classified pair: tail, head, kind.
// Pairs follow the edge registry order; in an undirected store the reverse
// orientation of a registered edge follows it when it was classified too.
func WriteDFSEdges(w io.Writer, g *core.Graph, res *dfs.DFSResult) error {
	if err := check(g, res == nil); err != nil {
		return err
	}

	return writeAll(w, func(emit func(...string) error) error {
		for _, e := range g.Edges() {
			pairs := []core.EdgeKey{e.Key()}
			if !g.Directed() && e.Tail != e.Head {
				pairs = append(pairs, core.EdgeKey{Tail: e.Head, Head: e.Tail})
			}
			for _, p := range pairs {
				kind, ok := res.Kinds[p]
				if !ok {
					continue
				}
				if err := emit(p.Tail, p.Head, kind.String()); err != nil {
					return err
				}
			}
		}

		return nil
	})
}

func check(g *core.Graph, resNil bool) error {
	if g == nil {
		return ErrGraphNil
	}
	if resNil {
		return ErrResultNil
	}

	return nil
}

// writeAll runs body with a record emitter and flushes the CSV writer.
func writeAll(w io.Writer, body func(emit func(...string) error) error) error {
	cw := csv.NewWriter(w)
	emit := func(fields ...string) error {
		return cw.Write(fields)
	}
	if err := body(emit); err != nil {
		return err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	return nil
}
