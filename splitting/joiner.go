package splitting

import "github.com/katalvlaran/lgraphlayout/graph"

// Join splices every LongEdgeDummy node's incoming and outgoing edges back
// into single edges and removes the now-empty dummy nodes from their
// layers. addUnnecessaryBendpoints, when true, inserts a bend point at each
// dummy's former position so the joined edge still visibly bends there
// (spec.md §6 UnnecessaryBendpoints).
func Join(g *graph.Graph, addUnnecessaryBendpoints bool) error {
	for _, layer := range g.Layers() {
		var dummies []graph.NodeID
		for _, nid := range layer.Nodes {
			if g.Node(nid).Type == graph.LongEdgeDummy {
				dummies = append(dummies, nid)
			}
		}
		for _, nid := range dummies {
			if err := joinAt(g, nid, addUnnecessaryBendpoints); err != nil {
				return err
			}
			g.RemoveNodeFromLayer(nid)
		}
	}
	return nil
}

// joinAt merges the single incoming and single outgoing edge of a
// LongEdgeDummy, assuming (as Split guarantees) exactly one west input port
// and one east output port, each carrying the edges of one original long
// edge at matching indices.
func joinAt(g *graph.Graph, dummyID graph.NodeID, addUnnecessaryBendpoints bool) error {
	dummy := g.Node(dummyID)
	westPorts := dummy.PortsOnSide(graph.West)
	eastPorts := dummy.PortsOnSide(graph.East)
	if len(westPorts) == 0 || len(eastPorts) == 0 {
		return nil
	}
	inPort := g.Port(westPorts[0])
	outPort := g.Port(eastPorts[0])

	bendpoint := dummy.Position

	inEdges := append([]graph.EdgeID(nil), inPort.Incoming...)
	outEdges := append([]graph.EdgeID(nil), outPort.Outgoing...)
	count := len(inEdges)
	if len(outEdges) < count {
		count = len(outEdges)
	}

	for i := 0; i < count; i++ {
		surviving := g.Edge(inEdges[i])
		dropped := g.Edge(outEdges[i])
		if surviving == nil || dropped == nil {
			continue
		}

		dstPort := g.Port(dropped.Target)
		idx := indexOfEdge(dstPort.Incoming, dropped.ID)

		if err := g.SetTargetAtIndex(surviving.ID, dropped.Target, idx); err != nil {
			return err
		}

		if addUnnecessaryBendpoints {
			surviving.Bends = append(surviving.Bends, bendpoint)
		}
		surviving.Bends = append(surviving.Bends, dropped.Bends...)
		surviving.Labels = append(surviving.Labels, dropped.Labels...)
		surviving.Junctions = append(surviving.Junctions, dropped.Junctions...)

		if err := g.DeleteEdge(dropped.ID); err != nil {
			return err
		}
	}
	return nil
}

func indexOfEdge(s []graph.EdgeID, id graph.EdgeID) int {
	for i, v := range s {
		if v == id {
			return i
		}
	}
	return -1
}
