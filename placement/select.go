package placement

import (
	"math"
	"sort"

	"github.com/katalvlaran/lgraphlayout/graph"
)

// epsilon is spec.md §4.8 "Numeric semantics" EPSILON: the tolerance
// applied to space-availability / order-check comparisons.
const epsilon = 1e-4

// combos lists the four alignments in the fixed order their corresponding
// graph.FixedAlignment constants (excluding AlignNone/AlignBalanced) name
// them.
var combos = []struct {
	hdir  HDirection
	vdir  VDirection
	align graph.FixedAlignment
}{
	{HLeft, VUp, graph.AlignLeftUp},
	{HLeft, VDown, graph.AlignLeftDown},
	{HRight, VUp, graph.AlignRightUp},
	{HRight, VDown, graph.AlignRightDown},
}

// fixedOrder is combos' alignments alone, in the same fixed order, used
// wherever the four results need a stable iteration order (median shift,
// order-check search).
var fixedOrder = []graph.FixedAlignment{
	graph.AlignLeftUp, graph.AlignLeftDown, graph.AlignRightUp, graph.AlignRightDown,
}

// selectY computes all four alignments' Y coordinates and combines them
// per spec.md §4.8 "Selection":
//
//   - A specific single alignment (LEFT_UP/LEFT_DOWN/RIGHT_UP/RIGHT_DOWN)
//     is returned directly — there is only one candidate, so neither the
//     order check nor the median applies.
//   - BALANCED, or NONE with favorStraightEdges=false, takes the median of
//     all four layouts' y-coordinates per node, after shifting each layout
//     to align with the smallest-height ("reference") layout.
//   - NONE with favorStraightEdges=true (layout.DefaultOptions()'s actual
//     default) picks the smallest-height layout that passes the order
//     check (no two nodes in the same layer overlap), falling back to the
//     RIGHT-DOWN layout — logged through g.Logger — if all four fail it.
func selectY(g *graph.Graph, ni *neighborInfo, fixed graph.FixedAlignment, favorStraightEdges bool) map[graph.NodeID]float64 {
	results := make(map[graph.FixedAlignment]map[graph.NodeID]float64, 4)
	for _, c := range combos {
		bal := verticalAlignment(g, ni, c.hdir, c.vdir)
		results[c.align] = compactY(g, ni, bal)
	}

	if fixed != graph.AlignNone && fixed != graph.AlignBalanced {
		if r, ok := results[fixed]; ok {
			return r
		}
	}

	if fixed == graph.AlignBalanced || !favorStraightEdges {
		return balancedMedian(g, results)
	}

	if y, ok := smallestPassingOrderCheck(g, results); ok {
		return y
	}

	g.Logger.Debugf("placement: all four Brandes-Koepf alignments failed the order check, falling back to RIGHT-DOWN")
	return results[graph.AlignRightDown]
}

// layoutBounds returns one layout's vertical extent across every node it
// positions, margins included — its "layout size" per spec.md §4.8.
func layoutBounds(g *graph.Graph, y map[graph.NodeID]float64) (lo, hi float64) {
	first := true
	for id, v := range y {
		n := g.Node(id)
		top := v - n.Margin.Top
		bottom := v + n.Size.H + n.Margin.Bottom
		if first || top < lo {
			lo = top
		}
		if first || bottom > hi {
			hi = bottom
		}
		first = false
	}
	return lo, hi
}

func layoutHeight(g *graph.Graph, y map[graph.NodeID]float64) float64 {
	lo, hi := layoutBounds(g, y)
	return hi - lo
}

// balancedMedian picks the smallest-height layout as reference, shifts
// every layout so its top aligns with the reference's top, then returns
// each node's median y across the four shifted layouts (spec.md §4.8).
func balancedMedian(g *graph.Graph, results map[graph.FixedAlignment]map[graph.NodeID]float64) map[graph.NodeID]float64 {
	tops := make(map[graph.FixedAlignment]float64, len(fixedOrder))
	heights := make(map[graph.FixedAlignment]float64, len(fixedOrder))
	for _, a := range fixedOrder {
		lo, hi := layoutBounds(g, results[a])
		tops[a] = lo
		heights[a] = hi - lo
	}

	reference := fixedOrder[0]
	for _, a := range fixedOrder[1:] {
		if heights[a] < heights[reference] {
			reference = a
		}
	}

	out := make(map[graph.NodeID]float64, len(results[reference]))
	for id := range results[reference] {
		vals := make([]float64, 0, len(fixedOrder))
		for _, a := range fixedOrder {
			if v, ok := results[a][id]; ok {
				vals = append(vals, v+(tops[reference]-tops[a]))
			}
		}
		out[id] = median(vals)
	}
	return out
}

func median(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sort.Float64s(vals)
	n := len(vals)
	if n%2 == 1 {
		return vals[n/2]
	}
	return (vals[n/2-1] + vals[n/2]) / 2
}

// smallestPassingOrderCheck returns the smallest-height layout, among the
// four, whose per-layer node order matches the layer's existing node
// order with no two nodes overlapping (spec.md §4.8 "order check").
func smallestPassingOrderCheck(g *graph.Graph, results map[graph.FixedAlignment]map[graph.NodeID]float64) (map[graph.NodeID]float64, bool) {
	var best map[graph.NodeID]float64
	bestHeight := math.Inf(1)
	for _, a := range fixedOrder {
		y := results[a]
		if !passesOrderCheck(g, y) {
			continue
		}
		if h := layoutHeight(g, y); h < bestHeight {
			bestHeight = h
			best = y
		}
	}
	return best, best != nil
}

// passesOrderCheck reports whether, for every layer, consecutive nodes
// (in the layer's existing order) have non-overlapping vertical extents.
func passesOrderCheck(g *graph.Graph, y map[graph.NodeID]float64) bool {
	for _, l := range g.Layers() {
		for i := 1; i < len(l.Nodes); i++ {
			prev, cur := l.Nodes[i-1], l.Nodes[i]
			prevNode, curNode := g.Node(prev), g.Node(cur)
			prevBottom := y[prev] + prevNode.Size.H + prevNode.Margin.Bottom
			curTop := y[cur] - curNode.Margin.Top
			if curTop < prevBottom-epsilon {
				return false
			}
		}
	}
	return true
}

// sortedNodeIDs returns m's keys in ascending order, for deterministic
// iteration over a node-ID-keyed map. Nothing in this module calls it.
func sortedNodeIDs(m map[graph.NodeID]float64) []graph.NodeID {
	out := make([]graph.NodeID, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
