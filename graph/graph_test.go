package graph_test

import (
	"testing"

	"github.com/katalvlaran/lgraphlayout/graph"
	"github.com/stretchr/testify/require"
)

func newTestGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(graph.DefaultConfig())
	require.NoError(t, err)
	return g
}

func TestConnectAndReverseIsIdempotentTwice(t *testing.T) {
	g := newTestGraph(t)
	a := g.AddNode("a")
	b := g.AddNode("b")
	pa, err := g.AddPort(a, graph.East, graph.Output)
	require.NoError(t, err)
	pb, err := g.AddPort(b, graph.West, graph.Input)
	require.NoError(t, err)

	eid, err := g.Connect(pa, pb, 1, 0)
	require.NoError(t, err)

	before := *g.Edge(eid)

	require.NoError(t, g.Reverse(eid))
	require.True(t, g.Edge(eid).Reversed)
	require.NoError(t, g.Reverse(eid))

	after := g.Edge(eid)
	require.Equal(t, before.Source, after.Source)
	require.Equal(t, before.Target, after.Target)
	require.False(t, after.Reversed)

	// Membership in outgoing/incoming lists is exactly one each (I3).
	require.Len(t, g.Port(pa).Outgoing, 1)
	require.Len(t, g.Port(pb).Incoming, 1)
}

func TestConnectRejectsNonPositiveThickness(t *testing.T) {
	g := newTestGraph(t)
	a := g.AddNode(nil)
	pa, _ := g.AddPort(a, graph.East, graph.Output)
	pb, _ := g.AddPort(a, graph.West, graph.Input)

	_, err := g.Connect(pa, pb, 0, 0)
	require.Error(t, err)
	var cfgErr *graph.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestSelfLoopDetection(t *testing.T) {
	g := newTestGraph(t)
	a := g.AddNode(nil)
	pa, _ := g.AddPort(a, graph.East, graph.Output)
	pb, _ := g.AddPort(a, graph.West, graph.Input)

	eid, err := g.Connect(pa, pb, 1, 0)
	require.NoError(t, err)
	require.True(t, g.Edge(eid).SelfLoop)
	require.True(t, g.Properties.HasSelfLoops)
}

func TestLayerPlacementMaintainsBackpointer(t *testing.T) {
	g := newTestGraph(t)
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	lid, err := g.AppendLayer([]graph.NodeID{a, b})
	require.NoError(t, err)

	require.Equal(t, lid, g.Node(a).Layer)
	require.Equal(t, lid, g.Node(b).Layer)
	require.NoError(t, g.CheckInvariants())

	g.RemoveNodeFromLayer(a)
	require.Equal(t, graph.NoLayer, g.Node(a).Layer)
	require.Equal(t, []graph.NodeID{b}, g.Layer(lid).Nodes)
}

func TestPortIterationOrderIsClockwiseNESW(t *testing.T) {
	g := newTestGraph(t)
	n := g.AddNode(nil)
	pn, _ := g.AddPort(n, graph.North, graph.Output)
	pe, _ := g.AddPort(n, graph.East, graph.Output)
	ps, _ := g.AddPort(n, graph.South, graph.Output)
	pw, _ := g.AddPort(n, graph.West, graph.Output)

	require.Equal(t, []graph.PortID{pn, pe, ps, pw}, g.Node(n).Ports())
}

func TestInsertLayerAfterReindexes(t *testing.T) {
	g := newTestGraph(t)
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	l0, _ := g.AppendLayer([]graph.NodeID{a})
	l2, _ := g.AppendLayer([]graph.NodeID{b})

	l1 := g.InsertLayerAfter(l0)
	layers := g.Layers()
	require.Len(t, layers, 3)
	require.Equal(t, l0, layers[0].ID)
	require.Equal(t, l1, layers[1].ID)
	require.Equal(t, l2, layers[2].ID)
	require.Equal(t, 1, g.Layer(l1).Index)
}
