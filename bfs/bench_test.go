package bfs_test

import (
	"testing"

	"github.com/katalvlaran/graphtrace/bfs"
	"github.com/katalvlaran/graphtrace/builder"
	"github.com/katalvlaran/graphtrace/core"
)

func mustBuild(b *testing.B, gopts []core.GraphOption, bopts []builder.Option, cons builder.Constructor) *core.Graph {
	b.Helper()
	g, err := builder.BuildGraph(gopts, bopts, cons)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkBFS_Chain measures BFS on a linear chain graph of 10k nodes.
func BenchmarkBFS_Chain(b *testing.B) {
	g := mustBuild(b, nil, nil, builder.Path(10001))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "0")
	}
}

// BenchmarkBFS_Grid measures BFS on a 100×100 grid.
func BenchmarkBFS_Grid(b *testing.B) {
	g := mustBuild(b, nil, nil, builder.Grid(100, 100))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "0_0")
	}
}

// BenchmarkBFS_RandomSparse measures BFS on a sparse random graph.
func BenchmarkBFS_RandomSparse(b *testing.B) {
	g := mustBuild(b, nil, []builder.Option{builder.WithSeed(42)}, builder.RandomSparse(2000, 0.002))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "0")
	}
}
