package layering

import (
	"math"

	"github.com/katalvlaran/lgraphlayout/graph"
)

// Process assigns every layerless node in g to a new layer using the
// MinWidth heuristic and opts' search range, appending the resulting
// layers to g in top-down drawing order.
func Process(g *graph.Graph, opts Options) error {
	nodes := g.LayerlessNodes()
	if len(nodes) == 0 {
		return nil
	}

	minSize := nodes[0].Size.H
	for _, n := range nodes {
		if n.Size.H < minSize {
			minSize = n.Size.H
		}
	}
	if minSize < 1 {
		minSize = 1
	}

	var avgSize float64
	for _, n := range nodes {
		in, out := g.Degree(n.ID)
		n.InDegree, n.OutDegree = in, out
		n.NormHeight = n.Size.H / minSize
		avgSize += n.NormHeight
	}
	avgSize /= float64(len(nodes))

	dummySize := g.Spacings.EdgeEdge() / minSize

	order := append([]*graph.Node(nil), nodes...)
	sortByOutDegreeAsc(order)

	successors := precalcSuccessors(g, order)

	ubwStart, ubwEnd := opts.widthRange()
	cStart, cEnd := opts.compensatorRange()

	minWidth := math.Inf(1)
	minLayers := math.MaxInt
	var best [][]graph.NodeID

	for ubw := ubwStart; ubw <= ubwEnd; ubw++ {
		for c := cStart; c <= cEnd; c++ {
			width, layers := computeLayering(order, successors, float64(ubw), float64(c), avgSize, dummySize)
			if width < minWidth || (width == minWidth && len(layers) < minLayers) {
				minWidth, minLayers, best = width, len(layers), layers
			}
		}
	}

	for i := len(best) - 1; i >= 0; i-- {
		if _, err := g.AppendLayer(best[i]); err != nil {
			return err
		}
	}
	return nil
}

func sortByOutDegreeAsc(nodes []*graph.Node) {
	for i := 1; i < len(nodes); i++ {
		for j := i; j > 0 && nodes[j-1].OutDegree > nodes[j].OutDegree; j-- {
			nodes[j-1], nodes[j] = nodes[j], nodes[j-1]
		}
	}
}

// precalcSuccessors maps every node to its non-self-loop successors. By the
// time layering runs, cyclebreak has already physically reoriented every
// reversed edge, so a plain outgoing scan is sufficient.
func precalcSuccessors(g *graph.Graph, nodes []*graph.Node) map[graph.NodeID][]graph.NodeID {
	out := make(map[graph.NodeID][]graph.NodeID, len(nodes))
	for _, n := range nodes {
		var succ []graph.NodeID
		seen := make(map[graph.NodeID]bool)
		for _, e := range g.OutgoingEdges(n.ID) {
			if e.SelfLoop || seen[e.TargetNode] {
				continue
			}
			seen[e.TargetNode] = true
			succ = append(succ, e.TargetNode)
		}
		out[n.ID] = succ
	}
	return out
}

// computeLayering builds one candidate bottom-up layering for a given
// (upperBoundOnWidth, compensator) pair and returns its estimated maximum
// width alongside the layering itself, in bottom-up construction order;
// callers reverse it themselves.
func computeLayering(order []*graph.Node, successors map[graph.NodeID][]graph.NodeID, ubw, compensator, avgSize, dummySize float64) (float64, [][]graph.NodeID) {
	ubwConsiderSize := ubw * avgSize

	unplaced := append([]*graph.Node(nil), order...)
	placedOther := make(map[graph.NodeID]bool, len(order))

	var layers [][]graph.NodeID
	var currentLayer []graph.NodeID

	var widthCurrent, widthUp, maxWidth, realWidth, spanningEdges, goingOut float64

	for len(unplaced) > 0 {
		idx, n := selectNode(unplaced, successors, placedOther)

		var outDeg float64
		if n != nil {
			unplaced = append(unplaced[:idx], unplaced[idx+1:]...)
			currentLayer = append(currentLayer, n.ID)

			outDeg = float64(n.OutDegree)
			widthCurrent += n.NormHeight - outDeg*dummySize

			inDeg := float64(n.InDegree)
			widthUp += inDeg * dummySize
			goingOut += outDeg * dummySize
			realWidth += n.NormHeight
		}

		if n == nil || len(unplaced) == 0 ||
			(widthCurrent >= ubwConsiderSize && n != nil && n.NormHeight > outDeg*dummySize) ||
			widthUp >= compensator*ubwConsiderSize {
			layers = append(layers, currentLayer)
			for _, id := range currentLayer {
				placedOther[id] = true
			}
			currentLayer = nil

			spanningEdges -= goingOut
			if w := spanningEdges*dummySize + realWidth; w > maxWidth {
				maxWidth = w
			}
			spanningEdges += widthUp

			widthCurrent = widthUp
			widthUp = 0
			goingOut = 0
			realWidth = 0
		}
	}

	return maxWidth, layers
}

// selectNode returns the first unplaced node (in order) all of whose
// successors already lie in placedOther, or nil if no such node exists.
func selectNode(unplaced []*graph.Node, successors map[graph.NodeID][]graph.NodeID, placedOther map[graph.NodeID]bool) (int, *graph.Node) {
	for i, n := range unplaced {
		ok := true
		for _, s := range successors[n.ID] {
			if !placedOther[s] {
				ok = false
				break
			}
		}
		if ok {
			return i, n
		}
	}
	return -1, nil
}
