package graph

// Connect creates a new edge from the src port to the dst port with the
// given thickness and priority, appending it to both ports' edge lists
// (invariant I3) and caching its endpoint nodes (invariant I1).
func (g *Graph) Connect(src, dst PortID, thickness float64, priority int) (EdgeID, error) {
	if thickness <= 0 {
		return NoEdge, &ConfigError{Reason: errBadThickness.Error()}
	}
	sp := g.Port(src)
	dp := g.Port(dst)
	if sp == nil || dp == nil {
		return NoEdge, ErrPortNotFound
	}
	id := EdgeID(len(g.edges))
	e := &Edge{
		ID:         id,
		Source:     src,
		Target:     dst,
		SourceNode: sp.Node,
		TargetNode: dp.Node,
		SelfLoop:   sp.Node == dp.Node,
		Priority:   priority,
		Thickness:  thickness,
	}
	g.edges = append(g.edges, e)
	sp.Outgoing = append(sp.Outgoing, id)
	dp.Incoming = append(dp.Incoming, id)
	if e.SelfLoop {
		g.Properties.HasSelfLoops = true
	}
	return id, nil
}

// DeleteEdge removes e from both of its ports' edge lists and nils its
// arena slot. Used by the long-edge joiner (C10) to drop the trailing half
// of a spliced long edge.
func (g *Graph) DeleteEdge(id EdgeID) error {
	e := g.Edge(id)
	if e == nil {
		return ErrEdgeNotFound
	}
	if sp := g.Port(e.Source); sp != nil {
		sp.Outgoing = removeEdgeID(sp.Outgoing, id)
	}
	if dp := g.Port(e.Target); dp != nil {
		dp.Incoming = removeEdgeID(dp.Incoming, id)
	}
	g.edges[id] = nil
	return nil
}

func removeEdgeID(s []EdgeID, id EdgeID) []EdgeID {
	for i, v := range s {
		if v == id {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

func indexOfEdgeID(s []EdgeID, id EdgeID) int {
	for i, v := range s {
		if v == id {
			return i
		}
	}
	return -1
}

// Reverse swaps e's source and target ports in place (spec.md §4.1),
// moving the edge between the corresponding incoming/outgoing lists of both
// old and new endpoints, flipping e.Reversed, and swapping HEAD/TAIL label
// placement. reverseTwice(e) is the identity (property P1).
func (g *Graph) Reverse(id EdgeID) error {
	e := g.Edge(id)
	if e == nil {
		return ErrEdgeNotFound
	}
	oldSrc, oldDst := g.Port(e.Source), g.Port(e.Target)
	oldSrc.Outgoing = removeEdgeID(oldSrc.Outgoing, id)
	oldDst.Incoming = removeEdgeID(oldDst.Incoming, id)

	e.Source, e.Target = e.Target, e.Source
	e.SourceNode, e.TargetNode = e.TargetNode, e.SourceNode

	newSrc, newDst := g.Port(e.Source), g.Port(e.Target)
	newSrc.Outgoing = append(newSrc.Outgoing, id)
	newDst.Incoming = append(newDst.Incoming, id)

	e.Reversed = !e.Reversed
	for i := range e.Labels {
		e.Labels[i].Placement = e.Labels[i].Placement.Opposite()
	}
	return nil
}

// SetTargetAtIndex retargets e to dst, inserting it at position idx of
// dst's incoming list rather than appending it. The long-edge joiner (C10)
// needs this to keep a spliced edge's position aligned with the dropped
// edge it replaces, preserving the correspondence of parallel edges
// through a long-edge dummy (spec.md §4.1).
func (g *Graph) SetTargetAtIndex(id EdgeID, dst PortID, idx int) error {
	e := g.Edge(id)
	if e == nil {
		return ErrEdgeNotFound
	}
	dp := g.Port(dst)
	if dp == nil {
		return ErrPortNotFound
	}
	if oldDst := g.Port(e.Target); oldDst != nil {
		oldDst.Incoming = removeEdgeID(oldDst.Incoming, id)
	}
	if idx < 0 || idx > len(dp.Incoming) {
		idx = len(dp.Incoming)
	}
	dp.Incoming = append(dp.Incoming, NoEdge)
	copy(dp.Incoming[idx+1:], dp.Incoming[idx:])
	dp.Incoming[idx] = id

	e.Target = dst
	e.TargetNode = dp.Node
	e.SelfLoop = e.SourceNode == e.TargetNode
	return nil
}
