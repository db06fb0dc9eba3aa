package crossing

import "github.com/katalvlaran/lgraphlayout/graph"

// Process minimizes crossings in g by repeated forward/backward barycenter
// sweeps, keeping the best node ordering found across g.Config.Thoroughness
// randomized restarts (spec.md §4.6). A restart whose first sweep direction
// (chosen via g.Rand) reaches zero crossings stops immediately.
func Process(g *graph.Graph) error {
	layers := g.Layers()
	if len(layers) < 2 {
		return nil
	}

	thoroughness := g.Config.Thoroughness
	if thoroughness < 1 {
		thoroughness = 1
	}

	bestCrossings := -1
	var bestOrders [][]graph.NodeID

	for attempt := 0; attempt < thoroughness; attempt++ {
		orders := currentOrders(g)
		forward := g.Rand.Intn(2) == 0

		crossings, err := sweepToFixpoint(g, orders, forward)
		if err != nil {
			return err
		}

		if bestCrossings < 0 || crossings < bestCrossings {
			bestCrossings = crossings
			bestOrders = cloneOrders(orders)
		}
		if bestCrossings == 0 {
			break
		}
	}

	for i, layer := range g.Layers() {
		if err := g.SetLayerOrder(layer.ID, bestOrders[i]); err != nil {
			return err
		}
	}
	return nil
}

func currentOrders(g *graph.Graph) [][]graph.NodeID {
	layers := g.Layers()
	out := make([][]graph.NodeID, len(layers))
	for i, l := range layers {
		out[i] = append([]graph.NodeID(nil), l.Nodes...)
	}
	return out
}

func cloneOrders(orders [][]graph.NodeID) [][]graph.NodeID {
	out := make([][]graph.NodeID, len(orders))
	for i, o := range orders {
		out[i] = append([]graph.NodeID(nil), o...)
	}
	return out
}

// sweepToFixpoint alternates full forward/backward sweeps over orders
// in-place until a sweep fails to reduce crossings, then restores the node
// orders from before that sweep and returns their crossing count.
func sweepToFixpoint(g *graph.Graph, orders [][]graph.NodeID, forward bool) (int, error) {
	best := countOrders(g, orders)
	for {
		prev := cloneOrders(orders)
		sweepOnce(g, orders, forward)
		count := countOrders(g, orders)
		if count >= best {
			copy(orders, prev)
			return countOrders(g, orders), nil
		}
		best = count
		if best == 0 {
			return 0, nil
		}
		forward = !forward
	}
}

// sweepOnce reorders every free layer once in the given direction, each
// layer's barycenter computed against the layer just fixed before it, then
// redistributes that layer's ports facing the direction of travel (§4.6.3):
// EAST-facing ports sweeping forward, WEST-facing sweeping backward.
func sweepOnce(g *graph.Graph, orders [][]graph.NodeID, forward bool) {
	n := len(orders)
	if forward {
		if n > 0 {
			DistributePorts(g, orders[0], graph.East, neighborLayer(orders, 1))
		}
		for i := 1; i < n; i++ {
			bary := ComputeBarycenters(g, orders[i], orders[i-1])
			orders[i] = Reorder(g, orders[i], bary)
			DistributePorts(g, orders[i], graph.East, neighborLayer(orders, i+1))
		}
	} else {
		if n > 0 {
			DistributePorts(g, orders[n-1], graph.West, neighborLayer(orders, n-2))
		}
		for i := n - 2; i >= 0; i-- {
			bary := ComputeBarycenters(g, orders[i], orders[i+1])
			orders[i] = Reorder(g, orders[i], bary)
			DistributePorts(g, orders[i], graph.West, neighborLayer(orders, i-1))
		}
	}
}

// neighborLayer returns orders[i], or nil if i is out of range — the gap
// beyond the first/last layer has no opposite side to distribute against.
func neighborLayer(orders [][]graph.NodeID, i int) []graph.NodeID {
	if i < 0 || i >= len(orders) {
		return nil
	}
	return orders[i]
}

// countOrders counts total crossings for a candidate ordering without
// mutating g: it passes each adjacent pair of orders straight to
// CountGapCrossings, and is always called with orders already reflecting
// the graph's live layer contents
// (orders values are a permutation of each layer's current node set).
func countOrders(g *graph.Graph, orders [][]graph.NodeID) int {
	total := 0
	for i := 0; i+1 < len(orders); i++ {
		total += CountGapCrossings(g, orders[i], orders[i+1])
	}
	return total
}
