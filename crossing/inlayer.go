package crossing

import "github.com/katalvlaran/lgraphlayout/graph"

// ResolveInLayerConstraints is the in-layer constraint processor (C7,
// spec.md §4.7): it runs once, before the sweep, moving every TopOfLayer
// node to the front and every BottomOfLayer node to the back of its layer,
// so the sweep's barycenter reordering (which already preserves this
// grouping via Reorder) starts from a conforming order.
func ResolveInLayerConstraints(g *graph.Graph) error {
	for _, l := range g.Layers() {
		reordered := Reorder(g, l.Nodes, identityBarycenters(l.Nodes))
		if err := g.SetLayerOrder(l.ID, reordered); err != nil {
			return err
		}
	}
	return nil
}

func identityBarycenters(nodes []graph.NodeID) map[graph.NodeID]float64 {
	out := make(map[graph.NodeID]float64, len(nodes))
	for i, id := range nodes {
		out[id] = float64(i)
	}
	return out
}
