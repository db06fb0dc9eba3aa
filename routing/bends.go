package routing

import "github.com/katalvlaran/lgraphlayout/graph"

// calculateBendPoints assigns bend points to every edge routed through
// node's channel: a vertical run at x = startPos + node.rank*edgeSpacing
// connecting each port's own y to its edge's target y
// (routingGenerator.py WestToEastRoutingStrategy.calculateBendPoints).
func calculateBendPoints(g *graph.Graph, node *hyperNode, startPos, edgeSpacing float64, created map[graph.Point]bool) {
	x := startPos + float64(node.rank)*edgeSpacing

	for _, pid := range node.ports {
		port := g.Port(pid)
		sourceY := portPositionY(g, pid)

		for _, eid := range port.Outgoing {
			edge := g.Edge(eid)
			targetY := portPositionY(g, edge.Target)
			if abs(sourceY-targetY) <= tolerance {
				continue
			}

			p1 := graph.Point{X: x, Y: sourceY}
			edge.Bends = append(edge.Bends, p1)
			addJunctionIfNecessary(g, edge, node, p1, created)

			p2 := graph.Point{X: x, Y: targetY}
			edge.Bends = append(edge.Bends, p2)
			addJunctionIfNecessary(g, edge, node, p2, created)
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// addJunctionIfNecessary records a junction point on edge at pos if pos
// falls strictly inside node's vertical span, or sits at a shared endpoint
// where a source and a target segment meet at the same position
// (routingGenerator.py addJunctionPointIfNecessary).
func addJunctionIfNecessary(g *graph.Graph, edge *graph.Edge, node *hyperNode, pos graph.Point, created map[graph.Point]bool) {
	p := pos.Y

	interior := p > node.start && p < node.end
	sharedEnd := len(node.sourcePosis) > 0 && len(node.targetPosis) > 0 &&
		((abs(p-node.sourcePosis[0]) < tolerance && abs(p-node.targetPosis[0]) < tolerance) ||
			(abs(p-node.sourcePosis[len(node.sourcePosis)-1]) < tolerance && abs(p-node.targetPosis[len(node.targetPosis)-1]) < tolerance))

	if !interior && !sharedEnd {
		return
	}
	if created[pos] {
		return
	}
	created[pos] = true
	edge.Junctions = append(edge.Junctions, pos)
}
