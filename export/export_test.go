package export_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphtrace/bfs"
	"github.com/katalvlaran/graphtrace/core"
	"github.com/katalvlaran/graphtrace/dfs"
	"github.com/katalvlaran/graphtrace/export"
)

func build(t *testing.T, directed bool, nodes [][2]string, edges [][2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed))
	for _, n := range nodes {
		require.NoError(t, g.AddNode(n[0], n[1]))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

func TestWriteBFS(t *testing.T) {
	g := build(t, false,
		[][2]string{{"1", "Ti"}, {"2", "Fe"}, {"3", "Cu"}, {"4", "Zn"}},
		[][2]string{{"1", "2"}, {"2", "3"}})
	res, err := bfs.BFS(g, "1")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, export.WriteBFS(&buf, g, res))
	assert.Equal(t, "Ti,1,,0\nFe,2,1,1\nCu,3,2,2\nZn,4,,inf\n", buf.String())
}

func TestWriteDFS_Directed(t *testing.T) {
	g := build(t, true,
		[][2]string{{"A", "A"}, {"B", "B"}, {"C", "C"}},
		[][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}})
	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)

	var nodes, links bytes.Buffer
	require.NoError(t, export.WriteDFSNodes(&nodes, g, res))
	require.NoError(t, export.WriteDFSEdges(&links, g, res))
	assert.Equal(t, "A,A,0,5\nB,B,1,4\nC,C,2,3\n", nodes.String())
	assert.Equal(t, "A,B,tree\nB,C,tree\nC,A,forward\n", links.String())
}

func TestWriteDFSEdges_UndirectedBothOrientations(t *testing.T) {
	g := build(t, false, [][2]string{{"A", "x"}, {"B", "y"}}, [][2]string{{"A", "B"}})
	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, export.WriteDFSEdges(&buf, g, res))
	assert.Equal(t, "A,B,tree\nB,A,forward\n", buf.String())
}

func TestWriteErrors(t *testing.T) {
	g := build(t, true, [][2]string{{"A", "A"}}, nil)
	var buf bytes.Buffer

	assert.ErrorIs(t, export.WriteBFS(&buf, nil, &bfs.BFSResult{}), export.ErrGraphNil)
	assert.ErrorIs(t, export.WriteBFS(&buf, g, nil), export.ErrResultNil)
	assert.ErrorIs(t, export.WriteDFSNodes(&buf, g, nil), export.ErrResultNil)
	assert.ErrorIs(t, export.WriteDFSEdges(&buf, nil, &dfs.DFSResult{}), export.ErrGraphNil)
	assert.ErrorContains(t, export.WriteDFSNodes(&buf, g, &dfs.DFSResult{}), `"A"`)
}
