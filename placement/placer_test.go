package placement_test

import (
	"testing"

	"github.com/katalvlaran/lgraphlayout/graph"
	"github.com/katalvlaran/lgraphlayout/placement"
	"github.com/stretchr/testify/require"
)

func newGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(graph.DefaultConfig())
	require.NoError(t, err)
	return g
}

func TestProcessAssignsIncreasingXPerLayer(t *testing.T) {
	g := newGraph(t)
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	g.Node(a).Size = graph.Size{W: 10, H: 10}
	g.Node(b).Size = graph.Size{W: 10, H: 10}

	_, err := g.AppendLayer([]graph.NodeID{a})
	require.NoError(t, err)
	_, err = g.AppendLayer([]graph.NodeID{b})
	require.NoError(t, err)

	aOut, _ := g.AddPort(a, graph.East, graph.Output)
	bIn, _ := g.AddPort(b, graph.West, graph.Input)
	_, err = g.Connect(aOut, bIn, 1, 0)
	require.NoError(t, err)

	require.NoError(t, placement.Process(g))

	require.Less(t, g.Node(a).Position.X, g.Node(b).Position.X)
}

func TestProcessKeepsSameLayerNodesSeparated(t *testing.T) {
	g := newGraph(t)
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	g.Node(a).Size = graph.Size{W: 10, H: 20}
	g.Node(b).Size = graph.Size{W: 10, H: 20}
	_, err := g.AppendLayer([]graph.NodeID{a, b})
	require.NoError(t, err)

	require.NoError(t, placement.Process(g))

	ya, yb := g.Node(a).Position.Y, g.Node(b).Position.Y
	require.GreaterOrEqual(t, yb-ya, 20.0)
}
