// SPDX-License-Identifier: MIT
// Package render draws a core.Graph as Graphviz DOT.
//
// Every node is drawn with the label "label(id)"; nodes carrying the root
// hint are filled dark gray. Edges are colored by their decoration:
//
//	tree     black
//	backward blue
//	forward  green
//	cross    red
//	plain    Graphviz default
//
// A directed store renders as a digraph, an undirected one as a graph.
// WithMarkedOnly restricts the drawing to decorated edges, which turns a BFS
// run with bfs.WithMarkTree into a picture of the shortest-path tree alone.
//
// The output is plain DOT text; feed it to `dot -Tsvg` or any other
// Graphviz front end.
package render
