package cyclebreak

import "github.com/katalvlaran/lgraphlayout/graph"

// Process runs the greedy cycle breaker (C3) over g's layerless nodes,
// reversing edges as needed so the non-reversed subgraph is acyclic
// (invariant I5, property P2).
func Process(g *graph.Graph) error {
	nodes := g.LayerlessNodes()
	initialOrder := make(map[graph.NodeID]int, len(nodes))
	for i, n := range nodes {
		initialOrder[n.ID] = i
	}

	var sinks, sources []graph.NodeID
	unresolved := make(map[graph.NodeID]bool, len(nodes))

	for _, n := range nodes {
		in, out := g.Degree(n.ID)
		n.InDegree, n.OutDegree = in, out
		n.Mark = 0
		switch {
		case in > 0 && out == 0:
			sinks = append(sinks, n.ID)
		case in == 0 && out > 0:
			sources = append(sources, n.ID)
		default:
			unresolved[n.ID] = true
		}
	}

	nextRight := -1
	nextLeft := 1

	for len(sinks) > 0 || len(sources) > 0 || len(unresolved) > 0 {
		for len(sinks) > 0 {
			id := pop(&sinks)
			g.Node(id).Mark = nextRight
			nextRight--
			updateNeighbors(g, id, &sinks, &sources, unresolved)
		}
		for len(sources) > 0 {
			id := pop(&sources)
			g.Node(id).Mark = nextLeft
			nextLeft++
			updateNeighbors(g, id, &sinks, &sources, unresolved)
		}
		if len(sinks) == 0 && len(sources) == 0 && len(unresolved) > 0 {
			best, ok := pickMaxOutflow(g, unresolved, initialOrder)
			if !ok {
				break
			}
			delete(unresolved, best)
			g.Node(best).Mark = nextLeft
			nextLeft++
			updateNeighbors(g, best, &sinks, &sources, unresolved)
		}
	}

	shiftBase := len(nodes) + 1
	for _, n := range nodes {
		if n.Mark < 0 {
			n.Mark += shiftBase
		}
	}

	for _, n := range nodes {
		for _, e := range g.OutgoingEdges(n.ID) {
			if g.Node(e.SourceNode).Mark > g.Node(e.TargetNode).Mark {
				if err := g.Reverse(e.ID); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func pop(s *[]graph.NodeID) graph.NodeID {
	last := len(*s) - 1
	v := (*s)[last]
	*s = (*s)[:last]
	return v
}

// pickMaxOutflow selects the unresolved node maximizing (outdeg - indeg),
// ties broken by the largest original insertion order (spec.md §4.3).
func pickMaxOutflow(g *graph.Graph, unresolved map[graph.NodeID]bool, order map[graph.NodeID]int) (graph.NodeID, bool) {
	var best graph.NodeID
	var bestDiff, bestOrder int
	found := false
	for id := range unresolved {
		n := g.Node(id)
		diff := n.OutDegree - n.InDegree
		o := order[id]
		if !found || diff > bestDiff || (diff == bestDiff && o > bestOrder) {
			best, bestDiff, bestOrder, found = id, diff, o, true
		}
	}
	return best, found
}

// updateNeighbors simulates removing id from the graph, adjusting its
// unresolved neighbors' degrees and promoting them to sinks/sources as they
// cross the threshold (spec.md §4.3).
func updateNeighbors(g *graph.Graph, id graph.NodeID, sinks, sources *[]graph.NodeID, unresolved map[graph.NodeID]bool) {
	node := g.Node(id)
	for _, pid := range node.Ports() {
		p := g.Port(pid)
		isOutput := len(p.Outgoing) > 0
		edges := make([]graph.EdgeID, 0, len(p.Incoming)+len(p.Outgoing))
		edges = append(edges, p.Incoming...)
		edges = append(edges, p.Outgoing...)

		for _, eid := range edges {
			e := g.Edge(eid)
			if e == nil || e.SelfLoop {
				continue
			}
			other := e.TargetNode
			if e.SourceNode != id {
				other = e.SourceNode
			}
			otherNode := g.Node(other)
			if otherNode.Mark != 0 {
				continue
			}
			if isOutput {
				otherNode.InDegree--
				if otherNode.InDegree <= 0 && otherNode.OutDegree > 0 && unresolved[other] {
					delete(unresolved, other)
					*sources = append(*sources, other)
				}
			} else {
				otherNode.OutDegree--
				if otherNode.OutDegree <= 0 && otherNode.InDegree > 0 && unresolved[other] {
					delete(unresolved, other)
					*sinks = append(*sinks, other)
				}
			}
		}
	}
}
