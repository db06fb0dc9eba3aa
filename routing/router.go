package routing

import (
	"github.com/katalvlaran/lgraphlayout/graph"
)

// conflictThresholdFactor scales edge spacing into the minimum separation
// below which two horizontal segments are considered in conflict
// (routingGenerator.py CONFL_THRESH_FACTOR).
const conflictThresholdFactor = 0.2

// Process routes every edge in g, walking each gap between adjacent
// layers and assigning Bends/Junctions per hypernode channel; there is no
// routing pass before the first or after the last layer. It also runs
// RouteInLayerEdges first, since edges it resolves never need a hypernode.
func Process(g *graph.Graph) error {
	if err := RouteInLayerEdges(g); err != nil {
		return err
	}

	layers := g.Layers()
	if len(layers) == 0 {
		return nil
	}

	edgeSpacing := g.Spacings.EdgeEdge()
	if edgeSpacing <= 0 {
		edgeSpacing = 1
	}

	for i := 0; i < len(layers)-1; i++ {
		left := layers[i]
		right := layers[i+1]
		startPos := gapStart(g, left)
		routeGap(g, left.Nodes, right.Nodes, startPos, edgeSpacing)
	}
	return nil
}

// gapStart is the rightmost edge of a layer's widest node, the leftmost x
// routing bend points in the following gap may use.
func gapStart(g *graph.Graph, l *graph.Layer) float64 {
	maxRight := 0.0
	for _, id := range l.Nodes {
		n := g.Node(id)
		right := n.Position.X + n.Size.W
		if right > maxRight {
			maxRight = right
		}
	}
	return maxRight
}

// routeGap is OrthogonalRoutingGenerator.routeEdges specialized to the
// west-to-east direction: build hypernodes for the gap's east-facing and
// west-facing ports, break cycles in their dependency graph, rank them,
// then assign bend points.
func routeGap(g *graph.Graph, left, right []graph.NodeID, startPos, edgeSpacing float64) {
	nodes := buildRankedHyperNodes(g, left, right, edgeSpacing)
	if len(nodes) == 0 {
		return
	}

	created := make(map[graph.Point]bool)
	for _, n := range nodes {
		if n.isStraight() {
			continue
		}
		calculateBendPoints(g, n, startPos, edgeSpacing, created)
	}
}

// buildRankedHyperNodes builds the gap's hypernodes from the left layer's
// east-facing ports and the right layer's west-facing ports, breaks
// cycles in their dependency graph, and assigns each a rank. Shared by
// routeGap (which goes on to emit bend points) and GapSlotCount (which
// only needs the resulting rank spread).
func buildRankedHyperNodes(g *graph.Graph, left, right []graph.NodeID, edgeSpacing float64) []*hyperNode {
	portToNode := make(map[graph.PortID]*hyperNode)

	var nodes []*hyperNode
	nodes = append(nodes, createHyperNodes(g, left, graph.East, graph.East, portToNode)...)
	nodes = append(nodes, createHyperNodes(g, right, graph.West, graph.East, portToNode)...)

	if len(nodes) == 0 {
		return nil
	}

	createDependencies(nodes, conflictThresholdFactor*edgeSpacing)
	breakCycles(nodes)
	topologicalNumbering(nodes)

	return nodes
}

// GapSlotCount returns the number of routing channel "slots" the gap
// between left and right will need once Process routes it: one more than
// the highest rank any of the gap's hypernodes is assigned. Spec.md §4.9
// ties the layer-to-layer horizontal gap directly to this count, since a
// gap that is narrower than its slot count forces bend points past the
// next layer's nodes. Callers (placement, sizing layer gaps before
// routing has run) pass the same edgeSpacing Process itself would use.
func GapSlotCount(g *graph.Graph, left, right []graph.NodeID, edgeSpacing float64) int {
	if edgeSpacing <= 0 {
		edgeSpacing = 1
	}
	nodes := buildRankedHyperNodes(g, left, right, edgeSpacing)

	slots := 0
	for _, n := range nodes {
		if n.isStraight() {
			continue
		}
		if n.rank+1 > slots {
			slots = n.rank + 1
		}
	}
	return slots
}
