package crossing_test

import (
	"testing"

	"github.com/katalvlaran/lgraphlayout/crossing"
	"github.com/katalvlaran/lgraphlayout/graph"
	"github.com/stretchr/testify/require"
)

// buildHyperedgeCrossing builds scenario S6: one left port (l's) has
// out-degree 3, and one right port (r3's west port, the shared target of
// e1/e2/e3's single edges) has in-degree 3 — r3 is placed so its incoming
// hyperedge nests inside l's three-way fan-out's vertical span,
// producing one overlap crossing neither fan-out/fan-in alone would have.
func buildHyperedgeCrossing(t *testing.T, g *graph.Graph) (left, right []graph.NodeID) {
	t.Helper()

	l := g.AddNode(nil)
	e1, e2, e3 := g.AddNode(nil), g.AddNode(nil), g.AddNode(nil)
	r0, r1, r2, r3 := g.AddNode(nil), g.AddNode(nil), g.AddNode(nil), g.AddNode(nil)

	_, err := g.AppendLayer([]graph.NodeID{l, e1, e2, e3})
	require.NoError(t, err)
	_, err = g.AppendLayer([]graph.NodeID{r0, r3, r1, r2})
	require.NoError(t, err)

	lOut, _ := g.AddPort(l, graph.East, graph.Output)
	e1Out, _ := g.AddPort(e1, graph.East, graph.Output)
	e2Out, _ := g.AddPort(e2, graph.East, graph.Output)
	e3Out, _ := g.AddPort(e3, graph.East, graph.Output)

	r0In, _ := g.AddPort(r0, graph.West, graph.Input)
	r1In, _ := g.AddPort(r1, graph.West, graph.Input)
	r2In, _ := g.AddPort(r2, graph.West, graph.Input)
	r3In, _ := g.AddPort(r3, graph.West, graph.Input)

	for _, target := range []graph.PortID{r0In, r1In, r2In} {
		_, err := g.Connect(lOut, target, 1, 0)
		require.NoError(t, err)
	}
	for _, source := range []graph.PortID{e1Out, e2Out, e3Out} {
		_, err := g.Connect(source, r3In, 1, 0)
		require.NoError(t, err)
	}

	layers := g.Layers()
	return layers[0].Nodes, layers[1].Nodes
}

func TestHasHyperedgesDetectsOutAndInDegreeThreePorts(t *testing.T) {
	g := newGraph(t)
	left, right := buildHyperedgeCrossing(t, g)

	require.True(t, crossing.CountGapCrossings(g, left, right) >= 0)
	require.Equal(t,
		crossing.CountHyperedgeCrossings(g, left, right),
		crossing.CountGapCrossings(g, left, right),
		"a gap with an out-degree-3 or in-degree-3 port must dispatch to the hyperedge counter")
}

func TestCountHyperedgeCrossingsFindsNestedFanInOverlap(t *testing.T) {
	g := newGraph(t)
	left, right := buildHyperedgeCrossing(t, g)

	require.Equal(t, 1, crossing.CountHyperedgeCrossings(g, left, right))
}

func TestCountHyperedgeCrossingsIsZeroWithNoHyperedges(t *testing.T) {
	g := newGraph(t)
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	_, err := g.AppendLayer([]graph.NodeID{a})
	require.NoError(t, err)
	_, err = g.AppendLayer([]graph.NodeID{b})
	require.NoError(t, err)

	aOut, _ := g.AddPort(a, graph.East, graph.Output)
	bIn, _ := g.AddPort(b, graph.West, graph.Input)
	_, err = g.Connect(aOut, bIn, 1, 0)
	require.NoError(t, err)

	layers := g.Layers()
	require.Equal(t, 0, crossing.CountHyperedgeCrossings(g, layers[0].Nodes, layers[1].Nodes))
}
