package routing

import "github.com/katalvlaran/lgraphlayout/graph"

// RouteInLayerEdges gives every in-layer edge (both endpoints in the same
// layer — crossing.NorthSouthPortPreprocessor's stub edges between a node
// and its north/south dummy are of this kind) a short detour around the
// west side of the layer's nodes, bypassing hypernode routing entirely
// (SPEC_FULL.md supplemented feature 4). Unlike invertedPortProcessor.py,
// which splits an edge through a same-layer dummy, this router has no such
// dummy to split through by the time C9 runs, so it draws the detour as
// bend points directly; see DESIGN.md for the grounding note.
//
// routeGap (router.go) only ever looks at edges whose endpoints are in
// different layers, so an in-layer edge left unrouted here would never
// receive bend points at all.
func RouteInLayerEdges(g *graph.Graph) error {
	for _, l := range g.Layers() {
		inLayer := make(map[graph.NodeID]bool, len(l.Nodes))
		for _, id := range l.Nodes {
			inLayer[id] = true
		}

		for _, id := range l.Nodes {
			for _, e := range g.OutgoingEdges(id) {
				if e.SelfLoop || !inLayer[e.TargetNode] {
					continue
				}
				routeInLayerEdge(g, e)
			}
		}
	}
	return nil
}

// routeInLayerEdge draws a simple three-segment detour: out the west side
// of the source, down (or up) past the nodes between source and target in
// the layer's order, then into the west side of the target.
func routeInLayerEdge(g *graph.Graph, e *graph.Edge) {
	src := g.Node(e.SourceNode)
	dst := g.Node(e.TargetNode)

	detour := src.Position.X
	if dst.Position.X < detour {
		detour = dst.Position.X
	}
	detour -= g.Spacings.EdgeEdge()

	sourceY := portPositionY(g, e.Source)
	targetY := portPositionY(g, e.Target)

	e.Bends = append(e.Bends,
		graph.Point{X: detour, Y: sourceY},
		graph.Point{X: detour, Y: targetY},
	)
}
