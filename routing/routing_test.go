package routing_test

import (
	"testing"

	"github.com/katalvlaran/lgraphlayout/graph"
	"github.com/katalvlaran/lgraphlayout/routing"
	"github.com/stretchr/testify/require"
)

func newGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(graph.DefaultConfig())
	require.NoError(t, err)
	return g
}

func TestProcessAssignsBendPointsForCrossingEdges(t *testing.T) {
	g := newGraph(t)

	a1, a2 := g.AddNode(nil), g.AddNode(nil)
	b1, b2 := g.AddNode(nil), g.AddNode(nil)
	for _, n := range []graph.NodeID{a1, a2, b1, b2} {
		g.Node(n).Size = graph.Size{W: 10, H: 10}
	}
	g.Node(a1).Position = graph.Point{X: 0, Y: 0}
	g.Node(a2).Position = graph.Point{X: 0, Y: 100}
	g.Node(b1).Position = graph.Point{X: 50, Y: 0}
	g.Node(b2).Position = graph.Point{X: 50, Y: 100}

	_, err := g.AppendLayer([]graph.NodeID{a1, a2})
	require.NoError(t, err)
	_, err = g.AppendLayer([]graph.NodeID{b1, b2})
	require.NoError(t, err)

	a1Out, _ := g.AddPort(a1, graph.East, graph.Output)
	a2Out, _ := g.AddPort(a2, graph.East, graph.Output)
	b1In, _ := g.AddPort(b1, graph.West, graph.Input)
	b2In, _ := g.AddPort(b2, graph.West, graph.Input)

	e1, err := g.Connect(a1Out, b2In, 1, 0)
	require.NoError(t, err)
	e2, err := g.Connect(a2Out, b1In, 1, 0)
	require.NoError(t, err)

	require.NoError(t, routing.Process(g))

	require.NotEmpty(t, g.Edge(e1).Bends)
	require.NotEmpty(t, g.Edge(e2).Bends)
}

func TestStraightEdgeGetsNoBendPoints(t *testing.T) {
	g := newGraph(t)

	a := g.AddNode(nil)
	b := g.AddNode(nil)
	g.Node(a).Size = graph.Size{W: 10, H: 10}
	g.Node(b).Size = graph.Size{W: 10, H: 10}
	g.Node(a).Position = graph.Point{X: 0, Y: 0}
	g.Node(b).Position = graph.Point{X: 50, Y: 0}

	_, err := g.AppendLayer([]graph.NodeID{a})
	require.NoError(t, err)
	_, err = g.AppendLayer([]graph.NodeID{b})
	require.NoError(t, err)

	aOut, _ := g.AddPort(a, graph.East, graph.Output)
	bIn, _ := g.AddPort(b, graph.West, graph.Input)
	e, err := g.Connect(aOut, bIn, 1, 0)
	require.NoError(t, err)

	require.NoError(t, routing.Process(g))

	require.Empty(t, g.Edge(e).Bends)
}

func TestGapSlotCountReflectsHypernodeRanks(t *testing.T) {
	g := newGraph(t)

	a1, a2 := g.AddNode(nil), g.AddNode(nil)
	b1, b2 := g.AddNode(nil), g.AddNode(nil)
	for _, n := range []graph.NodeID{a1, a2, b1, b2} {
		g.Node(n).Size = graph.Size{W: 10, H: 10}
	}
	g.Node(a1).Position = graph.Point{X: 0, Y: 0}
	g.Node(a2).Position = graph.Point{X: 0, Y: 100}
	g.Node(b1).Position = graph.Point{X: 50, Y: 0}
	g.Node(b2).Position = graph.Point{X: 50, Y: 100}

	a1Out, _ := g.AddPort(a1, graph.East, graph.Output)
	a2Out, _ := g.AddPort(a2, graph.East, graph.Output)
	b1In, _ := g.AddPort(b1, graph.West, graph.Input)
	b2In, _ := g.AddPort(b2, graph.West, graph.Input)

	_, err := g.Connect(a1Out, b2In, 1, 0)
	require.NoError(t, err)
	_, err = g.Connect(a2Out, b1In, 1, 0)
	require.NoError(t, err)

	slots := routing.GapSlotCount(g, []graph.NodeID{a1, a2}, []graph.NodeID{b1, b2}, 10)
	require.GreaterOrEqual(t, slots, 2)

	single := routing.GapSlotCount(g, []graph.NodeID{a1}, []graph.NodeID{}, 10)
	require.Equal(t, 1, single)
}

func TestGapSlotCountIsStableAcrossRepeatedCalls(t *testing.T) {
	g := newGraph(t)

	a1, a2, a3 := g.AddNode(nil), g.AddNode(nil), g.AddNode(nil)
	b1, b2, b3 := g.AddNode(nil), g.AddNode(nil), g.AddNode(nil)
	for _, n := range []graph.NodeID{a1, a2, a3, b1, b2, b3} {
		g.Node(n).Size = graph.Size{W: 10, H: 10}
	}
	g.Node(a1).Position = graph.Point{X: 0, Y: 0}
	g.Node(a2).Position = graph.Point{X: 0, Y: 50}
	g.Node(a3).Position = graph.Point{X: 0, Y: 100}
	g.Node(b1).Position = graph.Point{X: 50, Y: 0}
	g.Node(b2).Position = graph.Point{X: 50, Y: 50}
	g.Node(b3).Position = graph.Point{X: 50, Y: 100}

	a1Out, _ := g.AddPort(a1, graph.East, graph.Output)
	a2Out, _ := g.AddPort(a2, graph.East, graph.Output)
	a3Out, _ := g.AddPort(a3, graph.East, graph.Output)
	b1In, _ := g.AddPort(b1, graph.West, graph.Input)
	b2In, _ := g.AddPort(b2, graph.West, graph.Input)
	b3In, _ := g.AddPort(b3, graph.West, graph.Input)

	_, err := g.Connect(a1Out, b3In, 1, 0)
	require.NoError(t, err)
	_, err = g.Connect(a2Out, b2In, 1, 0)
	require.NoError(t, err)
	_, err = g.Connect(a3Out, b1In, 1, 0)
	require.NoError(t, err)

	left := []graph.NodeID{a1, a2, a3}
	right := []graph.NodeID{b1, b2, b3}

	first := routing.GapSlotCount(g, left, right, 10)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, routing.GapSlotCount(g, left, right, 10),
			"GapSlotCount must be deterministic across repeated calls, since placement calls it before routing.Process computes ranks for the same gap")
	}
}

func TestRouteInLayerEdgesAddsDetourForSameLayerEdge(t *testing.T) {
	g := newGraph(t)

	a := g.AddNode(nil)
	b := g.AddNode(nil)
	g.Node(a).Size = graph.Size{W: 10, H: 10}
	g.Node(b).Size = graph.Size{W: 10, H: 30}
	g.Node(a).Position = graph.Point{X: 0, Y: 0}
	g.Node(b).Position = graph.Point{X: 0, Y: 50}

	_, err := g.AppendLayer([]graph.NodeID{a, b})
	require.NoError(t, err)

	aOut, _ := g.AddPort(a, graph.West, graph.Output)
	bIn, _ := g.AddPort(b, graph.West, graph.Input)
	e, err := g.Connect(aOut, bIn, 1, 0)
	require.NoError(t, err)

	require.NoError(t, routing.RouteInLayerEdges(g))

	require.Len(t, g.Edge(e).Bends, 2)
}
