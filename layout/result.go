package layout

import "github.com/katalvlaran/lgraphlayout/graph"

// PortResult is a port's solved position, in the same coordinate space as
// its owning node (spec.md §6 "Core output").
type PortResult struct {
	ID       graph.PortID
	Position graph.Point
	Side     graph.PortSide
}

// NodeResult is a node's solved box plus its ports' solved offsets.
type NodeResult struct {
	ID       graph.NodeID
	Position graph.Point
	Size     graph.Size
	Ports    []PortResult
}

// EdgeResult is an edge's solved orthogonal route: the polyline a renderer
// draws from Source to Target, plus any junction points where hyperedge
// branches meet (spec.md §6 "Core output").
type EdgeResult struct {
	ID        graph.EdgeID
	Source    graph.PortID
	Target    graph.PortID
	Bends     []graph.Point
	Junctions []graph.Point
}

// Result is everything a renderer needs after Run has laid out a graph.
type Result struct {
	Nodes []NodeResult
	Edges []EdgeResult
}

// BuildResult reads the solved geometry off g into a Result. Called by Run
// after the pipeline has finished; exported separately so a caller that
// drives the pipeline directly (e.g. to inspect intermediate state) can
// still get a Result snapshot.
func BuildResult(g *graph.Graph) Result {
	nodes := g.Nodes()
	result := Result{
		Nodes: make([]NodeResult, 0, len(nodes)),
	}
	for _, n := range nodes {
		nr := NodeResult{
			ID:       n.ID,
			Position: n.Position,
			Size:     n.Size,
		}
		for _, side := range []graph.PortSide{graph.North, graph.East, graph.South, graph.West} {
			for _, pid := range n.PortsOnSide(side) {
				p := g.Port(pid)
				nr.Ports = append(nr.Ports, PortResult{
					ID:       p.ID,
					Position: p.Position,
					Side:     p.Side,
				})
			}
		}
		result.Nodes = append(result.Nodes, nr)
	}

	edges := g.Edges()
	result.Edges = make([]EdgeResult, 0, len(edges))
	for _, e := range edges {
		result.Edges = append(result.Edges, EdgeResult{
			ID:        e.ID,
			Source:    e.Source,
			Target:    e.Target,
			Bends:     e.Bends,
			Junctions: e.Junctions,
		})
	}

	return result
}
