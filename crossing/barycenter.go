package crossing

import (
	"sort"

	"github.com/katalvlaran/lgraphlayout/graph"
)

// ComputeBarycenters returns, for every node in free, the mean position
// (within fixed's current order) of its neighbors that lie in fixed. A node
// with no such neighbor keeps its own current index in free as its
// barycenter, so it does not move (spec.md §4.6.2).
func ComputeBarycenters(g *graph.Graph, free, fixed []graph.NodeID) map[graph.NodeID]float64 {
	fixedPos := make(map[graph.NodeID]int, len(fixed))
	for i, id := range fixed {
		fixedPos[id] = i
	}

	out := make(map[graph.NodeID]float64, len(free))
	for i, id := range free {
		var sum float64
		var count int
		for _, e := range g.ConnectedEdges(id) {
			other := e.TargetNode
			if other == id {
				other = e.SourceNode
			}
			if pos, ok := fixedPos[other]; ok {
				sum += float64(pos)
				count++
			}
		}
		if count == 0 {
			out[id] = float64(i)
		} else {
			out[id] = sum / float64(count)
		}
	}
	return out
}

// Reorder returns free's nodes sorted by ascending barycenter value,
// holding InLayerConstraint TopOfLayer nodes first and BottomOfLayer nodes
// last (spec.md §4.7), each group keeping its own relative order on ties.
func Reorder(g *graph.Graph, free []graph.NodeID, bary map[graph.NodeID]float64) []graph.NodeID {
	var top, mid, bottom []graph.NodeID
	for _, id := range free {
		switch g.Node(id).InLayerConstraint {
		case graph.TopOfLayer:
			top = append(top, id)
		case graph.BottomOfLayer:
			bottom = append(bottom, id)
		default:
			mid = append(mid, id)
		}
	}

	sort.SliceStable(mid, func(i, j int) bool { return bary[mid[i]] < bary[mid[j]] })

	out := make([]graph.NodeID, 0, len(free))
	out = append(out, top...)
	out = append(out, mid...)
	out = append(out, bottom...)
	return out
}
