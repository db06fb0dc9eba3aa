package placement

import "github.com/katalvlaran/lgraphlayout/graph"

// neighborInfo precomputes, for every node, its distinct neighbors in the
// adjacent layer to either side (ordered by the neighbor's position within
// its own layer) and the node's own position within its layer —
// neighborhoodInformation.py's role.
type neighborInfo struct {
	left, right map[graph.NodeID][]graph.NodeID
	nodeIndex   map[graph.NodeID]int
}

func buildNeighborInfo(g *graph.Graph) *neighborInfo {
	layers := g.Layers()
	ni := &neighborInfo{
		left:      make(map[graph.NodeID][]graph.NodeID),
		right:     make(map[graph.NodeID][]graph.NodeID),
		nodeIndex: make(map[graph.NodeID]int),
	}
	for _, l := range layers {
		for i, id := range l.Nodes {
			ni.nodeIndex[id] = i
		}
	}
	for li, l := range layers {
		var prevOrder, nextOrder map[graph.NodeID]int
		if li > 0 {
			prevOrder = indexMap(layers[li-1].Nodes)
		}
		if li+1 < len(layers) {
			nextOrder = indexMap(layers[li+1].Nodes)
		}
		for _, id := range l.Nodes {
			if prevOrder != nil {
				ni.left[id] = neighborsInLayer(g, id, prevOrder)
			}
			if nextOrder != nil {
				ni.right[id] = neighborsInLayer(g, id, nextOrder)
			}
		}
	}
	return ni
}

func indexMap(nodes []graph.NodeID) map[graph.NodeID]int {
	out := make(map[graph.NodeID]int, len(nodes))
	for i, id := range nodes {
		out[id] = i
	}
	return out
}

// neighborsInLayer returns id's distinct neighbors that lie in the layer
// described by order, sorted by their position in that layer.
func neighborsInLayer(g *graph.Graph, id graph.NodeID, order map[graph.NodeID]int) []graph.NodeID {
	seen := make(map[graph.NodeID]bool)
	var out []graph.NodeID
	for _, e := range g.ConnectedEdges(id) {
		other := e.TargetNode
		if other == id {
			other = e.SourceNode
		}
		if _, ok := order[other]; ok && !seen[other] {
			seen[other] = true
			out = append(out, other)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && order[out[j-1]] > order[out[j]]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
