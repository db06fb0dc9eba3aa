package constraint

import "github.com/katalvlaran/lgraphlayout/graph"

// Process runs the edge & layer-constraint reverser (C2) over g in place.
func Process(g *graph.Graph) error {
	for _, n := range g.Nodes() {
		switch n.LayeringConstraint {
		case graph.FirstLayer, graph.FirstLayerSeparate:
			if err := enforce(g, n, graph.Output); err != nil {
				return err
			}
		case graph.LastLayer, graph.LastLayerSeparate:
			if err := enforce(g, n, graph.Input); err != nil {
				return err
			}
		}
	}

	for _, n := range g.Nodes() {
		if n.PortConstraints.SideFixed() && isFeedbackOriented(g, n) {
			if err := reverseAllIncident(g, n); err != nil {
				return err
			}
		}
	}

	return nil
}

// enforce makes every non-self-loop edge incident to n flow in the required
// direction: want=Output means n must be every incident edge's source,
// want=Input means n must be every incident edge's target. Violating edges
// are reversed, except that an edge whose other endpoint is a
// FIRST_SEPARATE or LAST_SEPARATE node or a LABEL dummy is accepted as-is
// (spec.md §4.2). If a reversal leaves the edge breaking a hard FIRST/LAST
// constraint on the other endpoint, enforce returns a ConfigError; the
// reversal is not undone.
func enforce(g *graph.Graph, n *graph.Node, want graph.PortDirection) error {
	for _, e := range g.ConnectedEdges(n.ID) {
		if e.SelfLoop {
			continue
		}
		isSourceHere := e.SourceNode == n.ID
		satisfied := (want == graph.Output && isSourceHere) || (want == graph.Input && !isSourceHere)
		if satisfied {
			continue
		}

		other := e.TargetNode
		if !isSourceHere {
			other = e.SourceNode
		}
		otherNode := g.Node(other)
		if exempt(otherNode) {
			continue
		}
		if err := g.Reverse(e.ID); err != nil {
			return err
		}
		if violatesHardConstraint(e, otherNode) {
			return &graph.ConfigError{Node: n.ID, Reason: "incident edge cannot be normalised to satisfy layer constraint"}
		}
	}
	return nil
}

// reverseAllIncident reverses every non-self-loop edge touching n,
// respecting the same other-endpoint exemption as enforce. Used for nodes
// whose fixed-side ports collectively indicate a feedback orientation.
func reverseAllIncident(g *graph.Graph, n *graph.Node) error {
	for _, e := range g.ConnectedEdges(n.ID) {
		if e.SelfLoop {
			continue
		}
		isSourceHere := e.SourceNode == n.ID
		other := e.TargetNode
		if !isSourceHere {
			other = e.SourceNode
		}
		otherNode := g.Node(other)
		if exempt(otherNode) {
			continue
		}
		if err := g.Reverse(e.ID); err != nil {
			return err
		}
		if violatesHardConstraint(e, otherNode) {
			return &graph.ConfigError{Node: n.ID, Reason: "incident edge cannot be normalised for feedback orientation"}
		}
	}
	return nil
}

func exempt(other *graph.Node) bool {
	return other.LayeringConstraint == graph.FirstLayerSeparate ||
		other.LayeringConstraint == graph.LastLayerSeparate ||
		other.Type == graph.LabelDummy
}

// violatesHardConstraint reports whether e, as it now stands, breaks a hard
// (non-separate) FIRST/LAST constraint on other.
func violatesHardConstraint(e *graph.Edge, other *graph.Node) bool {
	switch other.LayeringConstraint {
	case graph.FirstLayer:
		return e.TargetNode == other.ID
	case graph.LastLayer:
		return e.SourceNode == other.ID
	default:
		return false
	}
}

// isFeedbackOriented reports whether every port of n with fixed side and
// nonzero degree shows a feedback net-flow sign: EAST ports with positive
// net flow (more incoming than outgoing) and WEST ports with negative net
// flow (spec.md §4.2).
func isFeedbackOriented(g *graph.Graph, n *graph.Node) bool {
	seen := false
	for _, pid := range n.Ports() {
		p := g.Port(pid)
		if p.Degree() == 0 {
			continue
		}
		switch p.Side {
		case graph.East:
			if p.NetFlow() <= 0 {
				return false
			}
			seen = true
		case graph.West:
			if p.NetFlow() >= 0 {
				return false
			}
			seen = true
		}
	}
	return seen
}
