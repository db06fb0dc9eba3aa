package crossing_test

import (
	"testing"

	"github.com/katalvlaran/lgraphlayout/crossing"
	"github.com/katalvlaran/lgraphlayout/graph"
	"github.com/stretchr/testify/require"
)

// buildDualPortCross builds scenario S5: node n has two EAST ports, p0
// (added first, so initially on top) wired to m1 and p1 wired to m0, while
// the right layer's current order is [m0, m1] — p0 and p1 cross m0/m1.
func buildDualPortCross(t *testing.T, g *graph.Graph) (n graph.NodeID, p0, p1 graph.PortID, m0, m1 graph.NodeID) {
	t.Helper()
	n = g.AddNode(nil)
	m0, m1 = g.AddNode(nil), g.AddNode(nil)

	_, err := g.AppendLayer([]graph.NodeID{n})
	require.NoError(t, err)
	_, err = g.AppendLayer([]graph.NodeID{m0, m1})
	require.NoError(t, err)

	p0, _ = g.AddPort(n, graph.East, graph.Output)
	p1, _ = g.AddPort(n, graph.East, graph.Output)
	m0In, _ := g.AddPort(m0, graph.West, graph.Input)
	m1In, _ := g.AddPort(m1, graph.West, graph.Input)

	_, err = g.Connect(p0, m1In, 1, 0)
	require.NoError(t, err)
	_, err = g.Connect(p1, m0In, 1, 0)
	require.NoError(t, err)

	return n, p0, p1, m0, m1
}

func TestDistributePortsSwapsFreeOrderPortsToMatchRightLayer(t *testing.T) {
	g := newGraph(t)
	n, p0, p1, m0, m1 := buildDualPortCross(t, g)
	g.Node(n).PortConstraints = graph.PortConstraintsFree

	crossing.DistributePorts(g, []graph.NodeID{n}, graph.East, []graph.NodeID{m0, m1})

	require.Equal(t, []graph.PortID{p1, p0}, g.Node(n).PortsOnSide(graph.East))
}

func TestDistributePortsLeavesFixedOrderPortsUntouched(t *testing.T) {
	g := newGraph(t)
	n, p0, p1, m0, m1 := buildDualPortCross(t, g)
	g.Node(n).PortConstraints = graph.PortConstraintsFixedOrder

	crossing.DistributePorts(g, []graph.NodeID{n}, graph.East, []graph.NodeID{m0, m1})

	require.Equal(t, []graph.PortID{p0, p1}, g.Node(n).PortsOnSide(graph.East))
}
