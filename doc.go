// SPDX-License-Identifier: MIT
// Package graphtrace computes two classical traversal analyses over a
// labeled node/edge dataset.
//
//	bfs/  shortest-path tree from a root under unit weights: distance and
//	      parent per reachable node, finalized band by band.
//	dfs/  depth-first forest: discovery/finish timestamps per node and a
//	      tree/forward/backward/cross tag per traversed edge.
//
// Both engines run over core.Graph, an ordered store whose node and
// adjacency order fix every tie-break, so results are reproducible.
//
// Around the engines:
//
//	core/      graph store: nodes, ordered adjacency, edge registry, marks
//	builder/   deterministic topologies for tests and benchmarks
//	dataset/   nodes.csv (label,id,...) and links.csv (tail,head,...) loader
//	export/    CSV result writers
//	render/    Graphviz DOT drawing colored by edge kind
//	config/    YAML + .env + GRAPHTRACE_* settings
//	logging/   zap logger construction
//	pipeline/  load → traverse → export → render
//	cmd/graphtrace  cobra CLI: `graphtrace bfs`, `graphtrace dfs`
//
// Quick example:
//
//	g := core.NewGraph(core.WithDirected(true))
//	_ = g.AddNode("A", "A")
//	_ = g.AddNode("B", "B")
//	_ = g.AddEdge("A", "B")
//	res, _ := dfs.DFS(g, "A")
//	kind, _ := res.Kind("A", "B") // core.KindTree
//
//	go install github.com/katalvlaran/graphtrace/cmd/graphtrace@latest
package graphtrace
