package crossing

import (
	"sort"

	"github.com/katalvlaran/lgraphlayout/graph"
	"golang.org/x/sync/errgroup"
)

// portPosition orders a node's ports top-to-bottom within one side as
// index*width + portIndex, giving a stable total order cheap to compare.
func portPosition(g *graph.Graph, layerOrder []graph.NodeID, nodeID graph.NodeID, pid graph.PortID, side graph.PortSide) int {
	nodeIdx := indexOf(layerOrder, nodeID)
	ports := g.Node(nodeID).PortsOnSide(side)
	portIdx := 0
	for i, p := range ports {
		if p == pid {
			portIdx = i
			break
		}
	}
	const fanout = 64
	return nodeIdx*fanout + portIdx
}

func indexOf(order []graph.NodeID, id graph.NodeID) int {
	for i, v := range order {
		if v == id {
			return i
		}
	}
	return -1
}

// endpointPair is one edge's (left, right) position key used for inversion
// counting between two adjacent layers.
type endpointPair struct {
	left, right int
}

// CountBetweenLayers counts edge crossings between left and right, two
// adjacent layers in their current node order, by sorting edges on their
// left-side position and counting inversions in the right-side sequence.
func CountBetweenLayers(g *graph.Graph, left, right []graph.NodeID) int {
	leftSet := make(map[graph.NodeID]bool, len(left))
	for _, id := range left {
		leftSet[id] = true
	}
	rightSet := make(map[graph.NodeID]bool, len(right))
	for _, id := range right {
		rightSet[id] = true
	}

	var pairs []endpointPair
	for _, nid := range left {
		node := g.Node(nid)
		for _, pid := range node.PortsOnSide(graph.East) {
			p := g.Port(pid)
			for _, eid := range p.Outgoing {
				e := g.Edge(eid)
				if e == nil || e.SelfLoop || !rightSet[e.TargetNode] {
					continue
				}
				lp := portPosition(g, left, nid, pid, graph.East)
				rp := portPosition(g, right, e.TargetNode, e.Target, graph.West)
				pairs = append(pairs, endpointPair{lp, rp})
			}
		}
	}

	return countInversions(pairs)
}

// countInversions counts, over edges sorted by their left endpoint, the
// number of pairs whose right endpoints are out of order — exactly the
// number of pairwise edge crossings between two layers.
func countInversions(pairs []endpointPair) int {
	if len(pairs) < 2 {
		return 0
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].left < pairs[j].left })

	rights := make([]int, len(pairs))
	for i, p := range pairs {
		rights[i] = p.right
	}
	sorted := append([]int(nil), rights...)
	sort.Ints(sorted)
	rank := make(map[int]int, len(sorted))
	for i, v := range sorted {
		if _, ok := rank[v]; !ok {
			rank[v] = i + 1
		}
	}

	bit := make([]int, len(sorted)+2)
	add := func(i int) {
		for ; i < len(bit); i += i & -i {
			bit[i]++
		}
	}
	sum := func(i int) int {
		s := 0
		for ; i > 0; i -= i & -i {
			s += bit[i]
		}
		return s
	}

	crossings := 0
	for i := len(rights) - 1; i >= 0; i-- {
		r := rank[rights[i]]
		crossings += sum(r - 1)
		add(r)
	}
	return crossings
}

// CountAllCrossings sums the crossing count over every adjacent layer gap
// of g, computing independent gaps concurrently (spec.md §5 sanctions this
// as the one internal use of goroutines). Each gap is counted by
// CountGapCrossings, which selects the ordinary or hyperedge-aware counter
// per gap.
func CountAllCrossings(g *graph.Graph) (int, error) {
	layers := g.Layers()
	if len(layers) < 2 {
		return 0, nil
	}
	counts := make([]int, len(layers)-1)

	var eg errgroup.Group
	for i := 0; i < len(layers)-1; i++ {
		i := i
		eg.Go(func() error {
			counts[i] = CountGapCrossings(g, layers[i].Nodes, layers[i+1].Nodes)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	return total, nil
}
