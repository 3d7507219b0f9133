// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/emicklei/dot"

	"github.com/katalvlaran/graphtrace/core"
)

// ErrGraphNil is returned when Render receives a nil store.
var ErrGraphNil = errors.New("render: graph is nil")

// DefaultName is the DOT graph name used when WithName is not given.
const DefaultName = "graphtrace"

// Option customizes Render.
type Option func(*options)

type options struct {
	name       string
	markedOnly bool
}

// WithName sets the DOT graph name.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithMarkedOnly skips edges whose kind is core.KindPlain.
func WithMarkedOnly() Option {
	return func(o *options) {
		o.markedOnly = true
	}
}

// Color returns the DOT color for kind, or "" for core.KindPlain.
func Color(kind core.EdgeKind) string {
	switch kind {
	case core.KindTree:
		return "black"
	case core.KindBackward:
		return "blue"
	case core.KindForward:
		return "green"
	case core.KindCross:
		return "red"
	default:
		return ""
	}
}

// Render writes g to w as DOT.
func Render(w io.Writer, g *core.Graph, opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	o := options{name: DefaultName}
	for _, fn := range opts {
		fn(&o)
	}

	out := build(g, o)
	if _, err := io.WriteString(w, out.String()); err != nil {
		return fmt.Errorf("render: write: %w", err)
	}

	return nil
}

// build converts the store into a dot.Graph, nodes first in registration order.
func build(g *core.Graph, o options) *dot.Graph {
	kind := dot.Undirected
	if g.Directed() {
		kind = dot.Directed
	}
	out := dot.NewGraph(kind)
	out.ID(o.name)

	nodes := make(map[string]dot.Node, g.NodeCount())
	for _, n := range g.Nodes() {
		dn := out.Node(n.ID).Label(fmt.Sprintf("%s(%s)", n.Label, n.ID))
		if n.Root {
			dn.Attr("color", "darkgray").Attr("style", "filled")
		}
		nodes[n.ID] = dn
	}

	for _, e := range g.Edges() {
		if o.markedOnly && e.Kind == core.KindPlain {
			continue
		}
		de := out.Edge(nodes[e.Tail], nodes[e.Head])
		if c := Color(e.Kind); c != "" {
			de.Attr("color", c)
		}
	}

	return out
}
