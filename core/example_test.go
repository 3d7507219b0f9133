package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphtrace/core"
)

// ExampleGraph demonstrates building a store and reading it back.
func ExampleGraph() {
	// 1) Undirected store (the BFS context):
	g := core.NewGraph()

	// 2) Register nodes, then edges between them:
	_ = g.AddNode("1", "Ti", core.WithRoot())
	_ = g.AddNode("2", "Fe")
	_ = g.AddNode("3", "Cu")
	_ = g.AddEdge("1", "2")
	_ = g.AddEdge("3", "1")

	// 3) Inspect:
	nb, _ := g.Neighbors("1")
	fmt.Println("Nodes:", g.NodeIDs())
	fmt.Println("Neighbors of 1:", nb)

	id, _ := g.FindByLabel("Cu")
	fmt.Println("Cu is node", id)

	// Output:
	// Nodes: [1 2 3]
	// Neighbors of 1: [2 3]
	// Cu is node 3
}

// ExampleGraph_directed shows single-direction adjacency (the DFS context).
func ExampleGraph_directed() {
	g := core.NewGraph(core.WithDirected(true))
	_ = g.AddNode("A", "a")
	_ = g.AddNode("B", "b")
	_ = g.AddEdge("A", "B")

	fromA, _ := g.Neighbors("A")
	fromB, _ := g.Neighbors("B")
	fmt.Println(fromA, fromB)

	// Output:
	// [B] []
}

// ExampleGraph_FindByLabel shows the explicit NotFound check callers make
// before starting a traversal.
func ExampleGraph_FindByLabel() {
	g := core.NewGraph()
	_, err := g.FindByLabel("Ti")
	fmt.Println(errors.Is(err, core.ErrNotFound))

	// Output:
	// true
}
