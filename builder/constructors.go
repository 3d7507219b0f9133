// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/katalvlaran/graphtrace/core"
)

// Constructor mutates g according to cfg. Implementations must not panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a store with gopts and applies cons in order.
func BuildGraph(gopts []core.GraphOption, bopts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, builderErrorf("BuildGraph", "nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, builderErrorf("BuildGraph", "%w", err)
		}
	}

	return g, nil
}

// Path adds n nodes and the edges 0→1→…→n-1.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		ids, err := addNodes(g, cfg, "Path", n, 1)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, "Path", ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle adds a Path of n nodes plus the closing edge n-1→0.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 3 {
			return builderErrorf("Cycle", "n=%d < 3: %w", n, ErrTooFewVertices)
		}
		if err := Path(n)(g, cfg); err != nil {
			return err
		}

		return addEdge(g, "Cycle", cfg.idFn(n-1), cfg.idFn(0))
	}
}

// Star adds a center (index 0) and n-1 leaves, edges center→leaf in index order.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		ids, err := addNodes(g, cfg, "Star", n, 2)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, "Star", ids[0], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete adds n nodes and an edge for every pair i<j in (i, j) ascending
// order; directed stores also get j→i right after i→j.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		ids, err := addNodes(g, cfg, "Complete", n, 1)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addPair(g, "Complete", ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// BinaryTree adds a complete binary tree of the given depth (2^depth-1
// nodes); node i has children 2i+1 and 2i+2.
func BinaryTree(depth int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if depth < 1 {
			return builderErrorf("BinaryTree", "depth=%d < 1: %w", depth, ErrTooFewVertices)
		}
		n := (1 << depth) - 1
		ids, err := addNodes(g, cfg, "BinaryTree", n, 1)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, "BinaryTree", ids[(i-1)/2], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Grid adds rows×cols nodes with ids GridIDFn(r, c) in row-major order.
// For each cell the right neighbor edge comes before the bottom one;
// directed stores get both orientations.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < 1 || cols < 1 {
			return builderErrorf("Grid", "rows=%d, cols=%d (each must be ≥ 1): %w", rows, cols, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := GridIDFn(r, c)
				if err := g.AddNode(id, id); err != nil {
					return builderErrorf("Grid", "AddNode(%s): %w", id, err)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridIDFn(r, c)
				if c+1 < cols {
					if err := addPair(g, "Grid", u, GridIDFn(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addPair(g, "Grid", u, GridIDFn(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// RandomSparse adds n nodes and, for every ordered pair (directed) or
// unordered pair i<j (undirected) without self-loops, an edge with
// probability p. p of 0 or 1 needs no RNG.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if p < 0 || p > 1 {
			return builderErrorf("RandomSparse", "p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return builderErrorf("RandomSparse", "%w", ErrNeedRandSource)
		}
		ids, err := addNodes(g, cfg, "RandomSparse", n, 1)
		if err != nil {
			return err
		}

		keep := func() bool {
			switch p {
			case 0:
				return false
			case 1:
				return true
			default:
				return cfg.rng.Float64() < p
			}
		}
		for i := 0; i < n; i++ {
			start := i + 1
			if g.Directed() {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j || !keep() {
					continue
				}
				if err := addEdge(g, "RandomSparse", ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// addNodes registers n nodes with cfg's id and label schemes.
func addNodes(g *core.Graph, cfg builderConfig, method string, n, min int) ([]string, error) {
	if n < min {
		return nil, builderErrorf(method, "n=%d < min=%d: %w", n, min, ErrTooFewVertices)
	}
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddNode(ids[i], cfg.labelFn(i)); err != nil {
			return nil, builderErrorf(method, "AddNode(%s): %w", ids[i], err)
		}
	}

	return ids, nil
}

func addEdge(g *core.Graph, method, u, v string) error {
	if err := g.AddEdge(u, v); err != nil {
		return builderErrorf(method, "AddEdge(%s→%s): %w: %w", u, v, ErrConstructFailed, err)
	}

	return nil
}

// addPair adds u→v, plus v→u on directed stores.
func addPair(g *core.Graph, method, u, v string) error {
	if err := addEdge(g, method, u, v); err != nil {
		return err
	}
	if g.Directed() {
		return addEdge(g, method, v, u)
	}

	return nil
}
