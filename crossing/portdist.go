package crossing

import (
	"sort"

	"github.com/katalvlaran/lgraphlayout/graph"
)

// DistributePorts is the port distributor (C6, spec.md §4.6.3). Once layer's
// node order is fixed relative to opposite (the adjacent layer the sweep
// just used as its barycenter reference), it resorts the ports on side for
// every node in layer whose port order is not fixed, by the mean index
// (within opposite's current order) of the port(s) each one connects to
// across the gap. Ports with no cross-gap neighbor keep their existing
// relative position.
//
// Before sorting, any North/South port whose node allows free port sides
// is relocated (graph.MovePortToSide) onto whichever of side or side's
// opposite has the larger share of that node's cross-gap edges, so it
// takes part in the same sort as the node's East/West ports. In this
// module's pipeline, NorthSouthPortPreprocessor already drains every
// Normal node's North/South ports into dedicated dummy nodes before the
// sweep runs, so this relocation is ordinarily a no-op; it exists for any
// node type the preprocessor doesn't touch (see DESIGN.md).
func DistributePorts(g *graph.Graph, layer []graph.NodeID, side graph.PortSide, opposite []graph.NodeID) {
	oppositePos := portPositions(g, opposite, side.Opposite())

	for _, nid := range layer {
		node := g.Node(nid)
		relocateVerticalPorts(g, node, side, oppositePos)

		if node.PortConstraints.OrderFixed() {
			continue
		}
		sortPortsBySide(g, node, side, oppositePos)
	}
}

// portPositions assigns each port on opposite's nodes, on the opposite
// side, its index within that side's ordering across opposite as a whole
// (top to bottom), used as the sort key's target coordinate.
func portPositions(g *graph.Graph, opposite []graph.NodeID, oppositeSide graph.PortSide) map[graph.PortID]int {
	out := make(map[graph.PortID]int)
	pos := 0
	for _, nid := range opposite {
		for _, pid := range g.Node(nid).PortsOnSide(oppositeSide) {
			out[pid] = pos
			pos++
		}
	}
	return out
}

func sortPortsBySide(g *graph.Graph, node *graph.Node, side graph.PortSide, oppositePos map[graph.PortID]int) {
	ports := append([]graph.PortID(nil), node.PortsOnSide(side)...)
	if len(ports) < 2 {
		return
	}

	key := make(map[graph.PortID]float64, len(ports))
	for i, pid := range ports {
		key[pid] = meanConnectedIndex(g, pid, oppositePos, float64(i))
	}
	sort.SliceStable(ports, func(i, j int) bool { return key[ports[i]] < key[ports[j]] })

	copy(node.PortsOnSide(side), ports)
}

// meanConnectedIndex returns the mean oppositePos value of the ports pid
// connects to across the gap, or fallback (its current index) if it has
// none — the "unknown barycenter keeps its place" rule mirrored from the
// node-level heuristic (spec.md §4.6.1) applied at port granularity.
func meanConnectedIndex(g *graph.Graph, pid graph.PortID, oppositePos map[graph.PortID]int, fallback float64) float64 {
	p := g.Port(pid)
	var sum float64
	var count int
	for _, eid := range p.Outgoing {
		e := g.Edge(eid)
		if pos, ok := oppositePos[e.Target]; ok {
			sum += float64(pos)
			count++
		}
	}
	for _, eid := range p.Incoming {
		e := g.Edge(eid)
		if pos, ok := oppositePos[e.Source]; ok {
			sum += float64(pos)
			count++
		}
	}
	if count == 0 {
		return fallback
	}
	return sum / float64(count)
}

// relocateVerticalPorts moves every North/South port of node whose node
// allows free port sides onto side or side.Opposite(), whichever carries
// the larger share of that port's cross-gap edges (spec.md §4.6.3 "North
// south ports are placed on whichever side yields fewer crossings").
func relocateVerticalPorts(g *graph.Graph, node *graph.Node, side graph.PortSide, oppositePos map[graph.PortID]int) {
	if node.PortConstraints.SideFixed() {
		return
	}
	for _, vertical := range [...]graph.PortSide{graph.North, graph.South} {
		for _, pid := range append([]graph.PortID(nil), node.PortsOnSide(vertical)...) {
			_ = g.MovePortToSide(pid, preferredHorizontalSide(g, pid, side, oppositePos))
		}
	}
}

// preferredHorizontalSide reports whether pid's cross-gap edges skew
// toward side or its opposite, defaulting to side on a tie or when pid has
// no cross-gap edge at all.
func preferredHorizontalSide(g *graph.Graph, pid graph.PortID, side graph.PortSide, oppositePos map[graph.PortID]int) graph.PortSide {
	p := g.Port(pid)
	toSide, toOpposite := 0, 0
	for _, eid := range p.Outgoing {
		if _, ok := oppositePos[g.Edge(eid).Target]; ok {
			toSide++
		}
	}
	for _, eid := range p.Incoming {
		if _, ok := oppositePos[g.Edge(eid).Source]; ok {
			toOpposite++
		}
	}
	if toOpposite > toSide {
		return side.Opposite()
	}
	return side
}
