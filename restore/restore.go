package restore

import "github.com/katalvlaran/lgraphlayout/graph"

// Process restores every edge g.Reverse flipped during cycle breaking
// (C3) or layer-constraint resolution (C2) to its original direction
// (reversedEdgeRestorer.py ReversedEdgeRestorer.process), preserving its
// routed bend points exactly as C9 left them (spec.md §4.10).
func Process(g *graph.Graph) error {
	for _, e := range g.Edges() {
		if !e.Reversed {
			continue
		}
		if err := g.Reverse(e.ID); err != nil {
			return err
		}
	}
	return nil
}
