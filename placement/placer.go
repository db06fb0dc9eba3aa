package placement

import (
	"github.com/katalvlaran/lgraphlayout/graph"
	"github.com/katalvlaran/lgraphlayout/routing"
)

// Process assigns every node in g a Position: Y from the four-alignment
// Brandes–Köpf placement combined per g.Config.FixedAlignment and
// g.Config.FavorStraightEdges (spec.md §4.8), and X from each layer's
// widest node plus the wider of the configured between-layers spacing and
// the horizontal gap C9's router will need for that layer gap's
// hypernode channels (spec.md §4.9: "the number of slots ... sets the
// layer-to-layer horizontal gap"). Node Y must be final before this last
// step runs, since a hypernode's rank search reads port positions derived
// from it.
func Process(g *graph.Graph) error {
	layers := g.Layers()
	if len(layers) == 0 {
		return nil
	}

	ni := buildNeighborInfo(g)
	y := selectY(g, ni, g.Config.FixedAlignment, g.Config.FavorStraightEdges)

	for _, l := range layers {
		for _, id := range l.Nodes {
			g.Node(id).Position.Y = y[id]
		}
	}

	edgeSpacing := g.Spacings.EdgeEdge()
	x := 0.0
	for i, l := range layers {
		width := 0.0
		for _, id := range l.Nodes {
			node := g.Node(id)
			if node.Size.W > width {
				width = node.Size.W
			}
			node.Position.X = x
		}
		if width == 0 {
			width = edgeSpacing
		}

		gap, _ := g.Spacings.IntraType(graph.Normal)
		if i+1 < len(layers) {
			if slots := routing.GapSlotCount(g, l.Nodes, layers[i+1].Nodes, edgeSpacing); slots > 0 {
				if needed := float64(slots) * edgeSpacing; needed > gap {
					gap = needed
				}
			}
		}
		x += width + gap
	}
	return nil
}
