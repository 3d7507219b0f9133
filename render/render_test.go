package render_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphtrace/bfs"
	"github.com/katalvlaran/graphtrace/core"
	"github.com/katalvlaran/graphtrace/dfs"
	"github.com/katalvlaran/graphtrace/render"
)

func sample(t *testing.T, directed bool) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed))
	require.NoError(t, g.AddNode("1", "Ti", core.WithRoot()))
	require.NoError(t, g.AddNode("2", "Fe"))
	require.NoError(t, g.AddNode("3", "Cu"))
	require.NoError(t, g.AddEdge("1", "2"))
	require.NoError(t, g.AddEdge("2", "3"))
	require.NoError(t, g.AddEdge("3", "1"))

	return g
}

func TestColor(t *testing.T) {
	assert.Equal(t, "black", render.Color(core.KindTree))
	assert.Equal(t, "blue", render.Color(core.KindBackward))
	assert.Equal(t, "green", render.Color(core.KindForward))
	assert.Equal(t, "red", render.Color(core.KindCross))
	assert.Equal(t, "", render.Color(core.KindPlain))
}

func TestRender_NodesAndGraphKind(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Render(&buf, sample(t, false), render.WithName("MO412")))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "graph"), out)
	assert.Contains(t, out, "MO412")
	assert.Contains(t, out, `Ti(1)`)
	assert.Contains(t, out, `Fe(2)`)
	assert.Contains(t, out, `Cu(3)`)
	assert.Contains(t, out, "darkgray")
	assert.Contains(t, out, "filled")
	assert.Equal(t, 3, strings.Count(out, "--"))

	buf.Reset()
	require.NoError(t, render.Render(&buf, sample(t, true)))
	out = buf.String()
	assert.True(t, strings.HasPrefix(out, "digraph"), out)
	assert.Contains(t, out, render.DefaultName)
	assert.Equal(t, 3, strings.Count(out, "->"))
}

func TestRender_DFSColors(t *testing.T) {
	g := sample(t, true)
	_, err := dfs.DFS(g, "1", dfs.WithMarkEdges())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Render(&buf, g))
	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "black"))
	assert.Equal(t, 1, strings.Count(out, "green"))
}

func TestRender_MarkedOnly(t *testing.T) {
	g := sample(t, false)
	_, err := bfs.BFS(g, "1", bfs.WithMarkTree())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Render(&buf, g, render.WithMarkedOnly()))
	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "--"), "only the two tree edges")
	assert.Contains(t, out, `Cu(3)`, "nodes are always drawn")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRender_Errors(t *testing.T) {
	assert.ErrorIs(t, render.Render(&bytes.Buffer{}, nil), render.ErrGraphNil)
	assert.ErrorContains(t, render.Render(failingWriter{}, sample(t, false)), "disk full")
}
