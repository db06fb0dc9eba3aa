package placement

import "github.com/katalvlaran/lgraphlayout/graph"

// blockMembers returns every node belonging to root's block, in chain order
// starting at root (following Align until it returns to root).
func blockMembers(bal *alignedLayout, root graph.NodeID) []graph.NodeID {
	members := []graph.NodeID{root}
	for cur := bal.Align[root]; cur != root; cur = bal.Align[cur] {
		members = append(members, cur)
	}
	return members
}

// compactY assigns every node a Y coordinate for this alignment: each
// block is first pulled toward the mean Y of its neighbors already
// placed in the direction opposite vdir's traversal, then every layer is
// swept in node order to push down (or, for VUp, push up) any node that
// would otherwise overlap its predecessor, preserving minimum spacing.
func compactY(g *graph.Graph, ni *neighborInfo, bal *alignedLayout) map[graph.NodeID]float64 {
	y := make(map[graph.NodeID]float64, len(bal.Root))

	layers := g.Layers()
	order := make([]*graph.Layer, len(layers))
	copy(order, layers)
	if bal.VDir == VUp {
		reverseLayersForCompaction(order)
	}

	placed := make(map[graph.NodeID]bool)
	for _, l := range order {
		nodes := append([]graph.NodeID(nil), l.Nodes...)
		if bal.VDir == VUp {
			reverseNodes(nodes)
		}

		for _, id := range nodes {
			root := bal.Root[id]
			if placed[root] {
				continue
			}
			placed[root] = true
			y[root] = desiredY(g, ni, bal, root, y)
		}
	}

	fixOverlaps(g, bal, order, y)

	out := make(map[graph.NodeID]float64, len(bal.Root))
	for id := range bal.Root {
		out[id] = y[bal.Root[id]]
	}
	return out
}

// desiredY estimates a block's preferred position from the already-placed
// neighbors of its members on the side opposite the alignment's traversal.
func desiredY(g *graph.Graph, ni *neighborInfo, bal *alignedLayout, root graph.NodeID, y map[graph.NodeID]float64) float64 {
	var sum float64
	var count int
	for _, member := range blockMembers(bal, root) {
		neighbors := ni.left[member]
		if bal.HDir == HLeft {
			neighbors = ni.right[member]
		}
		for _, nb := range neighbors {
			if ny, ok := y[bal.Root[nb]]; ok {
				sum += ny
				count++
			}
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// fixOverlaps walks every layer in drawing order (respecting vdir) and
// pushes each node's block far enough from its predecessor to satisfy the
// minimum spacing for their node types, propagating the push through the
// rest of the block chain.
func fixOverlaps(g *graph.Graph, bal *alignedLayout, order []*graph.Layer, y map[graph.NodeID]float64) {
	for _, l := range order {
		nodes := append([]graph.NodeID(nil), l.Nodes...)
		if bal.VDir == VUp {
			reverseNodes(nodes)
		}
		var prev graph.NodeID
		havePrev := false
		for _, id := range nodes {
			root := bal.Root[id]
			if havePrev {
				prevRoot := bal.Root[prev]
				_, minGap := g.Spacings.InterType(g.Node(prev).Type, g.Node(id).Type)
				need := g.Node(prev).Size.H/2 + g.Node(id).Size.H/2 + minGap
				if bal.VDir == VUp {
					if y[prevRoot]-y[root] < need {
						y[root] = y[prevRoot] - need
					}
				} else {
					if y[root]-y[prevRoot] < need {
						y[root] = y[prevRoot] + need
					}
				}
			}
			prev, havePrev = id, true
		}
	}
}

func reverseLayersForCompaction(s []*graph.Layer) { reverseLayers(s) }
