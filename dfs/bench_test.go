package dfs_test

import (
	"testing"

	"github.com/katalvlaran/graphtrace/builder"
	"github.com/katalvlaran/graphtrace/core"
	"github.com/katalvlaran/graphtrace/dfs"
)

// BenchmarkDFS_Chain measures DFS on a linear chain of 10k nodes.
func BenchmarkDFS_Chain(b *testing.B) {
	g := buildChain(b, 10000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, "N0")
	}
}

// BenchmarkDFS_BinaryTree measures DFS on a complete binary tree of depth 12.
func BenchmarkDFS_BinaryTree(b *testing.B) {
	g := buildBinaryTree(b, 12)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, "T-1")
	}
}

// BenchmarkDFS_RandomSparse measures DFS with classification on a sparse random digraph.
func BenchmarkDFS_RandomSparse(b *testing.B) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true)},
		[]builder.Option{builder.WithSeed(7)},
		builder.RandomSparse(3000, 0.002))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, "0")
	}
}
