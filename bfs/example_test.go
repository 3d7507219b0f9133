package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/graphtrace/bfs"
	"github.com/katalvlaran/graphtrace/builder"
	"github.com/katalvlaran/graphtrace/core"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid (9 nodes).
// Finalization follows non-decreasing Manhattan distance from the corner.
func ExampleBFS_gridTraversal() {
	// 3×3 undirected grid: nodes "r_c" for 0 ≤ r,c < 3
	g, err := builder.BuildGraph(nil, nil, builder.Grid(3, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bfs.BFS(g, "0_0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println(res.Distance["2_2"])
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
	// 4
}

// ExampleBFS_shortestPathNetwork finds the fewest-hop path in a network of 11 nodes.
// Two competing routes exist from "A" to "K": one of length 4, another length 3.
func ExampleBFS_shortestPathNetwork() {
	g := core.NewGraph()
	for _, u := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K"} {
		_ = g.AddNode(u, u)
	}
	// Route1: A–B–C–D–K (4 hops)
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("C", "D")
	_ = g.AddEdge("D", "K")
	// Route2: A–E–F–K (3 hops)
	_ = g.AddEdge("A", "E")
	_ = g.AddEdge("E", "F")
	_ = g.AddEdge("F", "K")
	// Some extra branches
	_ = g.AddEdge("C", "G")
	_ = g.AddEdge("G", "H")
	_ = g.AddEdge("D", "I")
	_ = g.AddEdge("I", "J")

	res, err := bfs.BFS(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, err := res.PathTo("K")
	if err != nil {
		fmt.Println("no path:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [A E F K]
}

// ExampleWithMarkTree decorates the store for the renderer.
func ExampleWithMarkTree() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		_ = g.AddNode(id, id)
	}
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("C", "A")

	if _, err := bfs.BFS(g, "A", bfs.WithMarkTree()); err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range g.Edges() {
		fmt.Println(e.Tail, e.Head, e.Kind)
	}
	// Output:
	// A B tree
	// B C plain
	// C A tree
}
