package graph

import "fmt"

// CheckInvariants runs the structural invariant checks I1–I4 that must hold
// at any point after input binding; pipeline.Run calls it after every phase
// when Config.DebugAssertions is set (spec.md §7 "Invariant violation").
// The phase-specific invariants I5..I9 are not checked, here or elsewhere.
func (g *Graph) CheckInvariants() error {
	for _, e := range g.edges {
		if e == nil {
			continue
		}
		sp, dp := g.Port(e.Source), g.Port(e.Target)
		if sp == nil || dp == nil {
			return &InvariantError{Invariant: "I3", Detail: fmt.Sprintf("edge %d has a dangling port", e.ID)}
		}
		if sp.Node != e.SourceNode || dp.Node != e.TargetNode {
			return &InvariantError{Invariant: "I1", Detail: fmt.Sprintf("edge %d cached endpoints stale", e.ID)}
		}
		if e.SelfLoop != (e.SourceNode == e.TargetNode) {
			return &InvariantError{Invariant: "I2", Detail: fmt.Sprintf("edge %d selfLoop flag inconsistent", e.ID)}
		}
		if indexOfEdgeID(sp.Outgoing, e.ID) < 0 {
			return &InvariantError{Invariant: "I3", Detail: fmt.Sprintf("edge %d missing from source port's outgoing list", e.ID)}
		}
		if indexOfEdgeID(dp.Incoming, e.ID) < 0 {
			return &InvariantError{Invariant: "I3", Detail: fmt.Sprintf("edge %d missing from target port's incoming list", e.ID)}
		}
	}
	for _, l := range g.layers {
		for _, nid := range l.Nodes {
			n := g.Node(nid)
			if n == nil || n.Layer != l.ID {
				return &InvariantError{Invariant: "I4", Detail: fmt.Sprintf("node %d does not report layer %d", nid, l.ID)}
			}
		}
	}
	return nil
}

// Degree returns the number of incoming and of outgoing non-self-loop edges
// touching n, each summed across all ports, used by cyclebreak and layering.
func (g *Graph) Degree(n NodeID) (in, out int) {
	node := g.Node(n)
	if node == nil {
		return 0, 0
	}
	for _, pid := range node.Ports() {
		p := g.Port(pid)
		for _, eid := range p.Incoming {
			if e := g.Edge(eid); e != nil && !e.SelfLoop {
				in++
			}
		}
		for _, eid := range p.Outgoing {
			if e := g.Edge(eid); e != nil && !e.SelfLoop {
				out++
			}
		}
	}
	return in, out
}

// OutgoingEdges returns every non-deleted edge outgoing from any port of n.
func (g *Graph) OutgoingEdges(n NodeID) []*Edge {
	node := g.Node(n)
	var out []*Edge
	for _, pid := range node.Ports() {
		p := g.Port(pid)
		for _, eid := range p.Outgoing {
			if e := g.Edge(eid); e != nil {
				out = append(out, e)
			}
		}
	}
	return out
}

// IncomingEdges returns every non-deleted edge incoming to any port of n.
func (g *Graph) IncomingEdges(n NodeID) []*Edge {
	node := g.Node(n)
	var out []*Edge
	for _, pid := range node.Ports() {
		p := g.Port(pid)
		for _, eid := range p.Incoming {
			if e := g.Edge(eid); e != nil {
				out = append(out, e)
			}
		}
	}
	return out
}

// ConnectedEdges returns every non-deleted edge touching any port of n.
func (g *Graph) ConnectedEdges(n NodeID) []*Edge {
	out := g.OutgoingEdges(n)
	return append(out, g.IncomingEdges(n)...)
}
