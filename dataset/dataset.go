// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/graphtrace/core"
)

// Load reads nodesPath then linksPath into a fresh store.
// Options: WithDirected, WithRootLabel.
func Load(nodesPath, linksPath string, opts ...Option) (*core.Graph, error) {
	var cfg loadConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	g := core.NewGraph(core.WithDirected(cfg.directed))

	if err := readFile(nodesPath, func(r io.Reader) error {
		return readNodes(nodesPath, r, g, cfg.rootLabel)
	}); err != nil {
		return nil, err
	}
	if err := readFile(linksPath, func(r io.Reader) error {
		return readEdges(linksPath, r, g)
	}); err != nil {
		return nil, err
	}

	return g, nil
}

// ReadNodes registers one node per record of r. A node whose label equals
// rootLabel gets the root display hint; an empty rootLabel marks nothing.
func ReadNodes(r io.Reader, g *core.Graph, rootLabel string) error {
	return readNodes("nodes", r, g, rootLabel)
}

// ReadEdges registers one edge per record of r, in record order.
// Every endpoint must already be registered in g.
func ReadEdges(r io.Reader, g *core.Graph) error {
	return readEdges("links", r, g)
}

func readFile(path string, fn func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	return fn(f)
}

func readNodes(source string, r io.Reader, g *core.Graph, rootLabel string) error {
	if g == nil {
		return ErrNilGraph
	}

	return eachRecord(source, r, func(rec []string) error {
		label, id := rec[0], rec[1]
		if id == "" {
			return fmt.Errorf("%w: empty node id", ErrMalformedRecord)
		}
		var opts []core.NodeOption
		if rootLabel != "" && label == rootLabel {
			opts = append(opts, core.WithRoot())
		}

		return g.AddNode(id, label, opts...)
	})
}

func readEdges(source string, r io.Reader, g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}

	return eachRecord(source, r, func(rec []string) error {
		tail, head := rec[0], rec[1]
		if tail == "" || head == "" {
			return fmt.Errorf("%w: empty endpoint", ErrMalformedRecord)
		}

		return g.AddEdge(tail, head)
	})
}

// eachRecord feeds every non-blank, trimmed record with at least two fields
// to fn. Errors carry the source name and the record's line number.
func eachRecord(source string, r io.Reader, fn func([]string) error) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: %w: %w", source, ErrMalformedRecord, err)
		}
		line, _ := cr.FieldPos(0)

		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		if len(rec) == 1 && rec[0] == "" {
			continue
		}
		if len(rec) < 2 {
			return recordErrorf(source, line, rec, fmt.Errorf("%w: want at least 2 fields, got %d", ErrMalformedRecord, len(rec)))
		}

		if err := fn(rec); err != nil {
			return recordErrorf(source, line, rec, err)
		}
	}
}
