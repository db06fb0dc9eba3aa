package crossing

import (
	"sort"

	"github.com/katalvlaran/lgraphlayout/graph"
)

// CountGapCrossings counts crossings between adjacent layers left and
// right, picking between-layer (ordinary) or hyperedge counting per
// spec.md §4.6.4: a gap where some port crossing it carries more than one
// edge (an "effective hyperedge") uses CountHyperedgeCrossings; otherwise
// the cheaper CountBetweenLayers inversion count is exact and sufficient.
func CountGapCrossings(g *graph.Graph, left, right []graph.NodeID) int {
	if hasHyperedges(g, left, right) {
		return CountHyperedgeCrossings(g, left, right)
	}
	return CountBetweenLayers(g, left, right)
}

// hasHyperedges reports whether the gap between left and right has a port
// shared by more than one cross-gap edge on either side.
func hasHyperedges(g *graph.Graph, left, right []graph.NodeID) bool {
	rightSet := nodeSet(right)
	for _, nid := range left {
		for _, pid := range g.Node(nid).Ports() {
			if countCrossing(g.Port(pid).Outgoing, g, func(e *graph.Edge) bool { return rightSet[e.TargetNode] }) > 1 {
				return true
			}
		}
	}
	leftSet := nodeSet(left)
	for _, nid := range right {
		for _, pid := range g.Node(nid).Ports() {
			if countCrossing(g.Port(pid).Incoming, g, func(e *graph.Edge) bool { return leftSet[e.SourceNode] }) > 1 {
				return true
			}
		}
	}
	return false
}

func countCrossing(edges []graph.EdgeID, g *graph.Graph, keep func(*graph.Edge) bool) int {
	n := 0
	for _, eid := range edges {
		if e := g.Edge(eid); e != nil && !e.SelfLoop && keep(e) {
			n++
		}
	}
	return n
}

func nodeSet(ids []graph.NodeID) map[graph.NodeID]bool {
	out := make(map[graph.NodeID]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out
}

// hyperedge is one union-find-merged group of cross-gap edges sharing a
// port on either side, with the vertical extent it spans on each side
// (spec.md §4.6.4).
type hyperedge struct {
	ports                  []graph.PortID
	upperLeft, lowerLeft   int
	upperRight, lowerRight int
}

// CountHyperedgeCrossings estimates crossings between left and right
// following the Sponemann-2014 formulation (spec.md §4.6.4, scenario S6):
// cross-gap edges are grouped into hyperedges by the ports they share,
// each hyperedge's extent on both sides is computed, the hyperedges'
// right-side anchors are inversion-counted for the straight-edge estimate,
// and a corner sweep on each side adds the crossings contributed by
// overlapping hyperedge spans.
func CountHyperedgeCrossings(g *graph.Graph, left, right []graph.NodeID) int {
	rightSet := nodeSet(right)
	leftSet := nodeSet(left)

	sourcePos := make(map[graph.PortID]int)
	for _, nid := range left {
		for _, pid := range g.Node(nid).Ports() {
			if countCrossing(g.Port(pid).Outgoing, g, func(e *graph.Edge) bool { return rightSet[e.TargetNode] }) > 0 {
				sourcePos[pid] = len(sourcePos)
			}
		}
	}

	targetPos := make(map[graph.PortID]int)
	for _, nid := range right {
		for _, pid := range g.Node(nid).Ports() {
			if countCrossing(g.Port(pid).Incoming, g, func(e *graph.Edge) bool { return leftSet[e.SourceNode] }) > 0 {
				targetPos[pid] = len(targetPos)
			}
		}
	}

	parent := make(map[graph.PortID]graph.PortID)
	var find func(graph.PortID) graph.PortID
	find = func(x graph.PortID) graph.PortID {
		if p, ok := parent[x]; !ok || p == x {
			parent[x] = x
			return x
		}
		parent[x] = find(parent[x])
		return parent[x]
	}
	union := func(a, b graph.PortID) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}

	var crossEdges []graph.EdgeID
	for _, nid := range left {
		for _, pid := range g.Node(nid).Ports() {
			if _, ok := sourcePos[pid]; !ok {
				continue
			}
			for _, eid := range g.Port(pid).Outgoing {
				e := g.Edge(eid)
				if e == nil || e.SelfLoop || !rightSet[e.TargetNode] {
					continue
				}
				union(pid, e.Target)
				crossEdges = append(crossEdges, eid)
			}
		}
	}

	groups := make(map[graph.PortID]*hyperedge)
	for _, eid := range crossEdges {
		e := g.Edge(eid)
		root := find(e.Source)
		he, ok := groups[root]
		if !ok {
			he = &hyperedge{}
			groups[root] = he
		}
		he.ports = append(he.ports, e.Source, e.Target)
	}
	if len(groups) == 0 {
		return 0
	}

	hyperedges := make([]*hyperedge, 0, len(groups))
	for _, he := range groups {
		hyperedges = append(hyperedges, he)
	}

	for _, he := range hyperedges {
		hasLeft, hasRight := false, false
		for _, pid := range he.ports {
			if pos, ok := sourcePos[pid]; ok {
				if !hasLeft || pos < he.upperLeft {
					he.upperLeft = pos
				}
				if !hasLeft || pos > he.lowerLeft {
					he.lowerLeft = pos
				}
				hasLeft = true
			}
			if pos, ok := targetPos[pid]; ok {
				if !hasRight || pos < he.upperRight {
					he.upperRight = pos
				}
				if !hasRight || pos > he.lowerRight {
					he.lowerRight = pos
				}
				hasRight = true
			}
		}
	}

	sort.Slice(hyperedges, func(i, j int) bool {
		a, b := hyperedges[i], hyperedges[j]
		if a.upperLeft != b.upperLeft {
			return a.upperLeft < b.upperLeft
		}
		return a.upperRight < b.upperRight
	})

	pairs := make([]endpointPair, len(hyperedges))
	for i, he := range hyperedges {
		pairs[i] = endpointPair{left: i, right: he.upperRight}
	}
	crossings := countInversions(pairs)
	crossings += sweepOverlaps(hyperedges, true)
	crossings += sweepOverlaps(hyperedges, false)
	return crossings
}

// hyperedgeCorner is the upper or lower boundary of a hyperedge's span on
// one side (spec.md §4.6.4).
type hyperedgeCorner struct {
	position, opposite int
	upper              bool
}

// sweepOverlaps sweeps the upper/lower corners of every hyperedge's span
// on one side, counting the number of other hyperedges still open each
// time a lower corner closes one — the number of overlapping hyperedge
// areas on that side, each an additional crossing (spec.md §4.6.4).
func sweepOverlaps(hyperedges []*hyperedge, leftSide bool) int {
	corners := make([]hyperedgeCorner, 0, len(hyperedges)*2)
	for _, he := range hyperedges {
		upperPos, lowerPos := he.upperRight, he.lowerRight
		if leftSide {
			upperPos, lowerPos = he.upperLeft, he.lowerLeft
		}
		corners = append(corners,
			hyperedgeCorner{position: upperPos, opposite: lowerPos, upper: true},
			hyperedgeCorner{position: lowerPos, opposite: upperPos, upper: false},
		)
	}
	sort.Slice(corners, func(i, j int) bool {
		a, b := corners[i], corners[j]
		if a.position != b.position {
			return a.position < b.position
		}
		if a.opposite != b.opposite {
			return a.opposite < b.opposite
		}
		return a.upper && !b.upper
	})

	open, crossings := 0, 0
	for _, c := range corners {
		if c.upper {
			open++
		} else {
			open--
			crossings += open
		}
	}
	return crossings
}
