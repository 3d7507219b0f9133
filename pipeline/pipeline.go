// SPDX-License-Identifier: MIT
// Package pipeline runs one graphtrace analysis end to end: load the CSV
// dataset, resolve the root by label, traverse, export results and
// optionally render the decorated graph.
//
// Outputs written to Config.OutDir:
//
//	bfs: nodes.csv (label,id,parent,distance), links.csv (input copied verbatim)
//	dfs: nodes.csv (label,id,discovery,finish), links.csv (tail,head,kind)
//	both, when Config.Render: graph.gv
//
// BFS loads the store undirected and DFS loads it directed. The context is
// checked between stages; the traversal itself is not interruptible.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/katalvlaran/graphtrace/bfs"
	"github.com/katalvlaran/graphtrace/config"
	"github.com/katalvlaran/graphtrace/core"
	"github.com/katalvlaran/graphtrace/dataset"
	"github.com/katalvlaran/graphtrace/dfs"
	"github.com/katalvlaran/graphtrace/export"
	"github.com/katalvlaran/graphtrace/render"
)

// Output file names.
const (
	NodesFile = "nodes.csv"
	LinksFile = "links.csv"
	GraphFile = "graph.gv"
)

// ErrRootLabelNotFound is returned when no node carries the configured root label.
var ErrRootLabelNotFound = errors.New("pipeline: root label not found")

// Report summarizes one run.
type Report struct {
	Mode    string
	Root    string // resolved root node id
	Nodes   int
	Edges   int
	Reached int            // nodes with a distance (bfs) or a discovery time (dfs)
	Kinds   map[string]int // dfs only: classified pairs per kind
	Files   []string       // written paths, in write order
}

// Run executes cfg. cfg is validated first; log may be nil.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Report, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// 1. Load
	g, err := dataset.Load(cfg.Nodes, cfg.Links,
		dataset.WithDirected(cfg.Mode == config.ModeDFS),
		dataset.WithRootLabel(cfg.Root))
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	log.Info("dataset loaded",
		zap.String("nodes", cfg.Nodes),
		zap.String("links", cfg.Links),
		zap.Int("node_count", g.NodeCount()),
		zap.Int("edge_count", g.EdgeCount()),
		zap.Bool("directed", g.Directed()))

	// 2. Resolve root
	rootID, err := g.FindByLabel(cfg.Root)
	if errors.Is(err, core.ErrNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrRootLabelNotFound, cfg.Root)
	}
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	rep := &Report{
		Mode:  cfg.Mode,
		Root:  rootID,
		Nodes: g.NodeCount(),
		Edges: g.EdgeCount(),
	}
	r := &runner{cfg: cfg, log: log, graph: g, rep: rep}

	// 3. Traverse and export
	switch cfg.Mode {
	case config.ModeBFS:
		err = r.runBFS(rootID)
	case config.ModeDFS:
		err = r.runDFS(rootID)
	}
	if err != nil {
		return nil, err
	}

	// 4. Render
	if cfg.Render {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ropts := []render.Option{render.WithName(render.DefaultName)}
		if cfg.MarkedOnly {
			ropts = append(ropts, render.WithMarkedOnly())
		}
		if err := r.write(GraphFile, func(w io.Writer) error {
			return render.Render(w, g, ropts...)
		}); err != nil {
			return nil, err
		}
	}

	log.Info("run complete",
		zap.String("mode", rep.Mode),
		zap.String("root", rep.Root),
		zap.Int("reached", rep.Reached),
		zap.Strings("files", rep.Files))

	return rep, nil
}

type runner struct {
	cfg   *config.Config
	log   *zap.Logger
	graph *core.Graph
	rep   *Report
}

func (r *runner) runBFS(rootID string) error {
	res, err := bfs.BFS(r.graph, rootID,
		bfs.WithMarkTree(),
		bfs.WithOnFinalize(func(id, parent string, distance int) {
			r.log.Debug("finalized",
				zap.String("node", id),
				zap.String("parent", parent),
				zap.Int("distance", distance))
		}))
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	r.rep.Reached = len(res.Distance)

	if err := r.write(NodesFile, func(w io.Writer) error {
		return export.WriteBFS(w, r.graph, res)
	}); err != nil {
		return err
	}

	dst := filepath.Join(r.cfg.OutDir, LinksFile)
	if samePath(dst, r.cfg.Links) {
		r.rep.Files = append(r.rep.Files, dst)

		return nil
	}

	return r.write(LinksFile, func(w io.Writer) error {
		return copyFile(w, r.cfg.Links)
	})
}

func (r *runner) runDFS(rootID string) error {
	policy, err := dfs.ParseClassification(r.cfg.Classification)
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	res, err := dfs.DFS(r.graph, rootID, dfs.WithMarkEdges(), dfs.WithClassification(policy))
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	r.rep.Reached = len(res.Discovery)
	r.rep.Kinds = make(map[string]int, 4)
	for _, kind := range res.Kinds {
		r.rep.Kinds[kind.String()]++
	}
	r.log.Info("edges classified",
		zap.String("classification", policy.String()),
		zap.Int("trees", len(res.Roots)),
		zap.Any("kinds", r.rep.Kinds))

	if err := r.write(NodesFile, func(w io.Writer) error {
		return export.WriteDFSNodes(w, r.graph, res)
	}); err != nil {
		return err
	}

	return r.write(LinksFile, func(w io.Writer) error {
		return export.WriteDFSEdges(w, r.graph, res)
	})
}

// write creates name under OutDir, fills it with fn and records the path.
func (r *runner) write(name string, fn func(io.Writer) error) (err error) {
	path := filepath.Join(r.cfg.OutDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("pipeline: close %s: %w", path, cerr)
		}
	}()

	if err := fn(f); err != nil {
		return fmt.Errorf("pipeline: write %s: %w", path, err)
	}
	r.rep.Files = append(r.rep.Files, path)
	r.log.Debug("wrote file", zap.String("path", path))

	return nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)

	return errA == nil && errB == nil && absA == absB
}

func copyFile(w io.Writer, path string) error {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()
	_, err = io.Copy(w, src)

	return err
}
