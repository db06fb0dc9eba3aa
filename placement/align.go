package placement

import "github.com/katalvlaran/lgraphlayout/graph"

// HDirection selects which side of a node its fixed-layer neighbors are
// read from during alignment.
type HDirection int

const (
	HLeft HDirection = iota
	HRight
)

// VDirection selects the traversal order within each layer during
// alignment.
type VDirection int

const (
	VUp VDirection = iota
	VDown
)

// alignedLayout is one (HDirection, VDirection) alignment's result: a
// union-find of nodes into straight-line blocks, root v's block reachable
// by following Align until it cycles back to the root.
type alignedLayout struct {
	HDir  HDirection
	VDir  VDirection
	Root  map[graph.NodeID]graph.NodeID
	Align map[graph.NodeID]graph.NodeID
}

// verticalAlignment runs one alignment pass (aligner.py's
// BKAligner.verticalAlignment, without type-1 conflict marking).
func verticalAlignment(g *graph.Graph, ni *neighborInfo, hdir HDirection, vdir VDirection) *alignedLayout {
	bal := &alignedLayout{
		HDir:  hdir,
		VDir:  vdir,
		Root:  make(map[graph.NodeID]graph.NodeID),
		Align: make(map[graph.NodeID]graph.NodeID),
	}
	layers := g.Layers()
	for _, l := range layers {
		for _, id := range l.Nodes {
			bal.Root[id] = id
			bal.Align[id] = id
		}
	}

	order := make([]*graph.Layer, len(layers))
	copy(order, layers)
	if hdir == HLeft {
		reverseLayers(order)
	}

	const noBound = -1
	for _, l := range order {
		r := noBound
		nodes := append([]graph.NodeID(nil), l.Nodes...)
		if vdir == VUp {
			reverseNodes(nodes)
			r = 1 << 30
		}

		for _, v := range nodes {
			var neighbors []graph.NodeID
			if hdir == HLeft {
				neighbors = ni.right[v]
			} else {
				neighbors = ni.left[v]
			}
			if len(neighbors) == 0 {
				continue
			}
			d := len(neighbors)
			low := (d+1)/2 - 1
			high := (d+2)/2 - 1

			if vdir == VUp {
				for m := high; m >= low; m-- {
					if bal.Align[v] != v {
						break
					}
					u := neighbors[m]
					if r > ni.nodeIndex[u] {
						bal.Align[u] = v
						bal.Root[v] = bal.Root[u]
						bal.Align[v] = bal.Root[v]
						r = ni.nodeIndex[u]
					}
				}
			} else {
				for m := low; m <= high; m++ {
					if bal.Align[v] != v {
						break
					}
					u := neighbors[m]
					if r < ni.nodeIndex[u] {
						bal.Align[u] = v
						bal.Root[v] = bal.Root[u]
						bal.Align[v] = bal.Root[v]
						r = ni.nodeIndex[u]
					}
				}
			}
		}
	}
	return bal
}

func reverseLayers(s []*graph.Layer) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseNodes(s []graph.NodeID) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
