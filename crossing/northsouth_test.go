package crossing_test

import (
	"testing"

	"github.com/katalvlaran/lgraphlayout/crossing"
	"github.com/katalvlaran/lgraphlayout/graph"
	"github.com/stretchr/testify/require"
)

func TestNorthSouthPortPreprocessorInsertsDummy(t *testing.T) {
	g := newGraph(t)
	a := g.AddNode(nil)
	b := g.AddNode(nil)

	layerA, err := g.AppendLayer([]graph.NodeID{a})
	require.NoError(t, err)
	_, err = g.AppendLayer([]graph.NodeID{b})
	require.NoError(t, err)

	aSouth, _ := g.AddPort(a, graph.South, graph.Output)
	bIn, _ := g.AddPort(b, graph.West, graph.Input)
	_, err = g.Connect(aSouth, bIn, 1, 0)
	require.NoError(t, err)

	require.NoError(t, crossing.NorthSouthPortPreprocessor(g))

	layer := g.Layer(layerA)
	require.Len(t, layer.Nodes, 2)

	var dummyID graph.NodeID
	for _, id := range layer.Nodes {
		if g.Node(id).Type == graph.NorthSouthPortDummy {
			dummyID = id
		}
	}
	require.NotEqual(t, graph.NoNode, dummyID)

	dummy := g.Node(dummyID)
	eastPorts := dummy.PortsOnSide(graph.East)
	require.Len(t, eastPorts, 1)
	require.Len(t, g.Port(eastPorts[0]).Outgoing, 1)

	require.Empty(t, g.Port(aSouth).Outgoing)
}
