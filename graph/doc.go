// Package graph implements the immutable-shape, mutable-attribute data
// model (C1 of the layout pipeline): graphs, layers, nodes, ports, and
// edges, plus the invariant-preserving mutators every later phase relies on.
//
// A Graph owns every Node, Port, Edge, and Layer it contains. Entities hold
// stable integer IDs into the graph's own arenas rather than pointers to one
// another (Design Note, "Cyclic references"); this keeps back-pointers
// (node→layer, port→node, edge→ports, edge→cached nodes) cheap to maintain
// and cheap to compare by identity.
//
// Mutation goes through Graph methods (AddNode, AddPort, Connect, Reverse,
// ...) which keep the structural invariants I1–I4 of spec.md §3 intact:
// every edge's cached endpoint nodes track its ports' owners, every edge
// appears exactly once in each endpoint port's incoming/outgoing list, and
// every node in a layer reports that layer as its own. Later phases (C2–C10)
// borrow the graph for the duration of one processor call and must not
// reach around these mutators — see package pipeline for how a full run is
// composed.
//
// Port iteration follows the clockwise N→E→S→W convention of spec.md §4.1
// via Node.Ports and Node.PortsReversed.
//
// Unlike the teacher library's core.Graph, this Graph is not safe for
// concurrent mutation: spec.md §5 specifies a single-threaded cooperative
// pipeline where exactly one processor touches the graph at a time, so no
// locking is carried (see DESIGN.md).
package graph
