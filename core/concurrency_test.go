// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphtrace/core"
)

// TestConcurrentAddNodeAndEdge registers nodes and edges from many goroutines.
func TestConcurrentAddNodeAndEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("X", "hub"))

	const num = 200
	var wg sync.WaitGroup
	errs := make(chan error, 2*num)
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("V%d", i)
			if err := g.AddNode(id, "leaf"); err != nil {
				errs <- err
				return
			}
			errs <- g.AddEdge("X", id)
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	nb, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nb, num)
	require.Equal(t, num+1, g.NodeCount())
}

// TestConcurrentReadersAndMarks mixes readers with decorations.
func TestConcurrentReadersAndMarks(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		require.NoError(t, g.AddNode(fmt.Sprintf("N%d", i), "n"))
	}
	for i := 0; i < 49; i++ {
		require.NoError(t, g.AddEdge(fmt.Sprintf("N%d", i), fmt.Sprintf("N%d", i+1)))
	}

	var wg sync.WaitGroup
	for r := 0; r < 20; r++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = g.Edges()
			_, _ = g.Neighbors("N10")
			_, _ = g.FindByLabel("n")
		}()
		go func(r int) {
			defer wg.Done()
			_ = g.Mark(fmt.Sprintf("N%d", r), fmt.Sprintf("N%d", r+1), core.KindTree)
		}(r)
	}
	wg.Wait()

	kind, ok := g.Kind("N0", "N1")
	require.True(t, ok)
	require.Equal(t, core.KindTree, kind)
}
