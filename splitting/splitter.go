package splitting

import "github.com/katalvlaran/lgraphlayout/graph"

// Split rewrites every edge that skips at least one layer into a chain of
// edges through LongEdgeDummy nodes, one per intermediate layer, so every
// edge in g spans exactly one layer gap afterward.
func Split(g *graph.Graph) error {
	layers := g.Layers()
	if len(layers) <= 2 {
		return nil
	}

	for i := 0; i < len(layers)-1; i++ {
		layer := layers[i]
		next := layers[i+1]

		for _, nid := range append([]graph.NodeID(nil), layer.Nodes...) {
			node := g.Node(nid)
			for _, pid := range node.Ports() {
				p := g.Port(pid)
				for _, eid := range append([]graph.EdgeID(nil), p.Outgoing...) {
					e := g.Edge(eid)
					if e == nil {
						continue
					}
					targetLayer := g.Node(e.TargetNode).Layer
					if targetLayer != layer.ID && targetLayer != next.ID {
						if err := splitEdge(g, e, next.ID); err != nil {
							return err
						}
					}
				}
			}
		}
	}
	return nil
}

// splitEdge creates a LongEdgeDummy node in targetLayer, retargets e to the
// dummy's input port, and creates a new edge from the dummy's output port to
// e's former target, carrying over e's head labels.
func splitEdge(g *graph.Graph, e *graph.Edge, targetLayer graph.LayerID) error {
	if e.Thickness < 0 {
		return &graph.ConfigError{Reason: "negative edge thickness"}
	}
	oldTarget := e.Target

	dummy := g.AddDummyNode(graph.LongEdgeDummy)
	g.Node(dummy).PortConstraints = graph.PortConstraintsFixedPos
	g.Node(dummy).Size = graph.Size{H: e.Thickness}
	if err := g.PlaceNodeInLayer(dummy, targetLayer); err != nil {
		return err
	}

	dummyIn, err := g.AddPort(dummy, graph.West, graph.Input)
	if err != nil {
		return err
	}
	dummyOut, err := g.AddPort(dummy, graph.East, graph.Output)
	if err != nil {
		return err
	}

	if err := g.SetTargetAtIndex(e.ID, dummyIn, -1); err != nil {
		return err
	}

	dummyEdgeID, err := g.Connect(dummyOut, oldTarget, e.Thickness, e.Priority)
	if err != nil {
		return err
	}
	dummyEdge := g.Edge(dummyEdgeID)

	setLongEdgeProperties(g, g.Node(dummy), e, dummyEdge)
	moveHeadLabels(e, dummyEdge)

	return nil
}

// setLongEdgeProperties records, on the dummy node, the ultimate endpoints
// of the original long edge it is a link of — copying them forward from an
// upstream long-edge or label dummy when e already passed through one.
func setLongEdgeProperties(g *graph.Graph, dummy *graph.Node, inEdge, outEdge *graph.Edge) {
	inSource := g.Node(inEdge.SourceNode)
	outTarget := g.Node(outEdge.TargetNode)

	switch {
	case inSource.Type == graph.LongEdgeDummy:
		dummy.LongEdgeSource = inSource.LongEdgeSource
		dummy.LongEdgeTarget = inSource.LongEdgeTarget
		dummy.LongEdgeHasLabelDummies = inSource.LongEdgeHasLabelDummies
	case inSource.Type == graph.LabelDummy:
		dummy.LongEdgeSource = inSource.LongEdgeSource
		dummy.LongEdgeTarget = inSource.LongEdgeTarget
		dummy.LongEdgeHasLabelDummies = true
	case outTarget.Type == graph.LabelDummy:
		dummy.LongEdgeSource = outTarget.LongEdgeSource
		dummy.LongEdgeTarget = outTarget.LongEdgeTarget
		dummy.LongEdgeHasLabelDummies = true
	default:
		dummy.LongEdgeSource = inEdge.SourceNode
		dummy.LongEdgeTarget = outEdge.TargetNode
	}
}

// moveHeadLabels relocates every HEAD-placed label from oldEdge to newEdge;
// head labels belong with the segment nearest the (possibly now further
// away) real target.
func moveHeadLabels(oldEdge, newEdge *graph.Edge) {
	kept := oldEdge.Labels[:0]
	for _, l := range oldEdge.Labels {
		if l.Placement == graph.LabelHead {
			newEdge.Labels = append(newEdge.Labels, l)
		} else {
			kept = append(kept, l)
		}
	}
	oldEdge.Labels = kept
}
