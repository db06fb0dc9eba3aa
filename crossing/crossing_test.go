package crossing_test

import (
	"testing"

	"github.com/katalvlaran/lgraphlayout/crossing"
	"github.com/katalvlaran/lgraphlayout/graph"
	"github.com/stretchr/testify/require"
)

func newGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(graph.DefaultConfig())
	require.NoError(t, err)
	return g
}

// buildCrossedPair wires a1->b2 and a2->b1 across two layers of two nodes
// each: drawn in initial order, these two edges cross exactly once.
func buildCrossedPair(t *testing.T, g *graph.Graph) (layerA, layerB graph.LayerID) {
	t.Helper()
	a1, a2 := g.AddNode(nil), g.AddNode(nil)
	b1, b2 := g.AddNode(nil), g.AddNode(nil)

	layerA, err := g.AppendLayer([]graph.NodeID{a1, a2})
	require.NoError(t, err)
	layerB, err = g.AppendLayer([]graph.NodeID{b1, b2})
	require.NoError(t, err)

	a1Out, _ := g.AddPort(a1, graph.East, graph.Output)
	a2Out, _ := g.AddPort(a2, graph.East, graph.Output)
	b1In, _ := g.AddPort(b1, graph.West, graph.Input)
	b2In, _ := g.AddPort(b2, graph.West, graph.Input)

	_, err = g.Connect(a1Out, b2In, 1, 0)
	require.NoError(t, err)
	_, err = g.Connect(a2Out, b1In, 1, 0)
	require.NoError(t, err)

	return layerA, layerB
}

func TestCountBetweenLayersFindsOneCrossing(t *testing.T) {
	g := newGraph(t)
	buildCrossedPair(t, g)

	layers := g.Layers()
	count := crossing.CountBetweenLayers(g, layers[0].Nodes, layers[1].Nodes)
	require.Equal(t, 1, count)
}

func TestProcessEliminatesTheCrossing(t *testing.T) {
	g := newGraph(t)
	buildCrossedPair(t, g)

	require.NoError(t, crossing.Process(g))

	total, err := crossing.CountAllCrossings(g)
	require.NoError(t, err)
	require.Equal(t, 0, total)
}

func TestResolveInLayerConstraintsOrdersTopAndBottom(t *testing.T) {
	g := newGraph(t)
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	c := g.AddNode(nil)
	g.Node(b).InLayerConstraint = graph.BottomOfLayer
	g.Node(c).InLayerConstraint = graph.TopOfLayer

	layerID, err := g.AppendLayer([]graph.NodeID{a, b, c})
	require.NoError(t, err)

	require.NoError(t, crossing.ResolveInLayerConstraints(g))

	order := g.Layer(layerID).Nodes
	require.Equal(t, c, order[0])
	require.Equal(t, b, order[len(order)-1])
}
