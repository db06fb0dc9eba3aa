package routing

import (
	"math"
	"sort"

	"github.com/katalvlaran/lgraphlayout/graph"
)

// tolerance is the minimum vertical difference treated as non-zero when
// comparing hypernode extents and bend-point positions (routingGenerator.py
// TOLERANCE).
const tolerance = 1e-3

// hyperNode is a routing slot shared by every edge segment that runs
// through the same vertical channel between two layers (routingGenerator.py
// HyperNode).
type hyperNode struct {
	ports []graph.PortID

	mark int
	rank int

	start, end float64 // vertical extent; NaN until the first port is added

	sourcePosis []float64 // positions of segments arriving from the left layer, sorted
	targetPosis []float64 // positions of segments departing to the right layer, sorted

	outgoing []*dependency
	incoming []*dependency

	outweight int
	inweight  int
}

func newHyperNode() *hyperNode {
	return &hyperNode{start: math.NaN(), end: math.NaN()}
}

// addPortPositions adds port and every port transitively connected to it to
// this hypernode, tracking the visited set in portToNode so each port is
// assigned to exactly one hypernode (routingGenerator.py
// HyperNode.addPortPositions).
func (h *hyperNode) addPortPositions(g *graph.Graph, port graph.PortID, sourceSide graph.PortSide, portToNode map[graph.PortID]*hyperNode) {
	portToNode[port] = h
	h.ports = append(h.ports, port)

	pos := portPositionY(g, port)
	if math.IsNaN(h.start) || pos < h.start {
		h.start = pos
	}
	if math.IsNaN(h.end) || pos > h.end {
		h.end = pos
	}

	p := g.Port(port)
	if p.Side == sourceSide {
		h.sourcePosis = insertSorted(h.sourcePosis, pos)
	} else {
		h.targetPosis = insertSorted(h.targetPosis, pos)
	}

	for _, eid := range p.Incoming {
		other := g.Edge(eid).Source
		if _, seen := portToNode[other]; !seen {
			h.addPortPositions(g, other, sourceSide, portToNode)
		}
	}
	for _, eid := range p.Outgoing {
		other := g.Edge(eid).Target
		if _, seen := portToNode[other]; !seen {
			h.addPortPositions(g, other, sourceSide, portToNode)
		}
	}
}

// portPositionY is the west-to-east strategy's getPortPositionOnHyperNode:
// a port's absolute vertical anchor.
func portPositionY(g *graph.Graph, id graph.PortID) float64 {
	p := g.Port(id)
	n := g.Node(p.Node)
	return n.Position.Y + p.Position.Y + p.Anchor.Y
}

func insertSorted(s []float64, v float64) []float64 {
	i := sort.SearchFloat64s(s, v)
	if i < len(s) && s[i] == v {
		return s
	}
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

// isStraight reports whether this hypernode spans zero vertical distance,
// meaning it needs no bend points and occupies no routing slot.
func (h *hyperNode) isStraight() bool {
	return math.Abs(h.start-h.end) < tolerance
}

// createHyperNodes builds one hypernode per maximal connected group of
// ports on side of every node in layer, recording the port->node
// mapping so createDependency can be run pairwise afterward
// (routingGenerator.py OrthogonalRoutingGenerator.createHyperNodes).
func createHyperNodes(g *graph.Graph, layer []graph.NodeID, side graph.PortSide, sourceSide graph.PortSide, portToNode map[graph.PortID]*hyperNode) []*hyperNode {
	var nodes []*hyperNode
	for _, nid := range layer {
		for _, pid := range g.Node(nid).PortsOnSide(side) {
			if _, ok := portToNode[pid]; ok {
				continue
			}
			h := newHyperNode()
			nodes = append(nodes, h)
			h.addPortPositions(g, pid, sourceSide, portToNode)
		}
	}
	return nodes
}
