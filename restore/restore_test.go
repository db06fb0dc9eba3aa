package restore_test

import (
	"testing"

	"github.com/katalvlaran/lgraphlayout/graph"
	"github.com/katalvlaran/lgraphlayout/restore"
	"github.com/stretchr/testify/require"
)

func newGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(graph.DefaultConfig())
	require.NoError(t, err)
	return g
}

func TestProcessRestoresReversedEdgeDirection(t *testing.T) {
	g := newGraph(t)
	a, b := g.AddNode(nil), g.AddNode(nil)
	aOut, _ := g.AddPort(a, graph.East, graph.Output)
	bIn, _ := g.AddPort(b, graph.West, graph.Input)
	e, err := g.Connect(aOut, bIn, 1, 0)
	require.NoError(t, err)

	require.NoError(t, g.Reverse(e))
	require.True(t, g.Edge(e).Reversed)
	require.Equal(t, b, g.Edge(e).SourceNode)

	require.NoError(t, restore.Process(g))

	edge := g.Edge(e)
	require.False(t, edge.Reversed)
	require.Equal(t, a, edge.SourceNode)
	require.Equal(t, b, edge.TargetNode)
}

func TestProcessLeavesUnreversedEdgesUntouched(t *testing.T) {
	g := newGraph(t)
	a, b := g.AddNode(nil), g.AddNode(nil)
	aOut, _ := g.AddPort(a, graph.East, graph.Output)
	bIn, _ := g.AddPort(b, graph.West, graph.Input)
	e, err := g.Connect(aOut, bIn, 1, 0)
	require.NoError(t, err)

	require.NoError(t, restore.Process(g))

	edge := g.Edge(e)
	require.False(t, edge.Reversed)
	require.Equal(t, a, edge.SourceNode)
	require.Equal(t, b, edge.TargetNode)
}

func TestProcessPreservesBendPoints(t *testing.T) {
	g := newGraph(t)
	a, b := g.AddNode(nil), g.AddNode(nil)
	aOut, _ := g.AddPort(a, graph.East, graph.Output)
	bIn, _ := g.AddPort(b, graph.West, graph.Input)
	e, err := g.Connect(aOut, bIn, 1, 0)
	require.NoError(t, err)

	edge := g.Edge(e)
	edge.Bends = []graph.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}
	require.NoError(t, g.Reverse(e))

	require.NoError(t, restore.Process(g))

	require.Equal(t, []graph.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}, g.Edge(e).Bends)
}
