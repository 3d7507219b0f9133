// SPDX-License-Identifier: MIT
// Package dataset loads a core.Graph from the two-file CSV layout used by
// graphtrace: a node file and a link file.
//
// Formats:
//
//	nodes file: label,id[,ignored...]   one node per record
//	links file: tail,head[,ignored...]  one edge per record, in file order
//
// Fields are whitespace-trimmed and blank lines are skipped. Records with
// fewer than two fields, or with an empty id/endpoint, are rejected with
// ErrMalformedRecord. Store errors (duplicate node, unknown endpoint) are
// returned wrapped with the file name and line, so errors.Is keeps working:
//
//	g, err := dataset.Load("nodes.csv", "links.csv",
//	    dataset.WithDirected(true), dataset.WithRootLabel("Ti"))
//	if errors.Is(err, core.ErrUnknownNode) { ... }
//
// Node registration order equals record order in the nodes file, and
// adjacency order equals record order in the links file. Both orders are
// observable through the traversal engines.
package dataset
