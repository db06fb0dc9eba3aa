// Package routing implements the orthogonal edge router (C9, spec.md
// §4.9), grounded on routingGenerator.py of the original
// Nic30/layeredGraphLayouter, itself a port of ELK's
// OrthogonalRoutingGenerator (Sander, GD'03; di Battista et al. §9.4 for
// the segment-graph cycle breaking).
//
// For each gap between two adjacent layers, east-facing ports of the left
// layer and west-facing ports of the right layer are
// grouped into hypernodes (one hypernode per maximal connected run of
// ports that share a vertical routing channel). Hypernodes that would
// cross or conflict are linked by weighted Dependency edges; the
// dependency graph is made acyclic by the same greedy sinks-and-sources
// mark assignment cyclebreak.Process uses on the node graph, then given a
// topological rank. Each hypernode's rank picks the vertical routing
// channel (a multiple of the edge-edge spacing) its bend points fall on.
//
// This port only implements the west-to-east routing direction (every
// layer gap in this engine runs left to right); the original's
// NorthToSouthRoutingStrategy and SouthToNorthRoutingStrategy exist to
// route a compound node's north/south external ports and have no
// counterpart here since NORTH_SOUTH_PORT dummies are always resolved
// down to east/west-facing ports before C9 runs (SPEC_FULL.md
// supplemented feature 3). Junction point deduplication
// (createdJunctionPoints) is scoped to one layer gap (a fresh set per
// routeGap call) rather than carried across the whole pipeline, since each
// gap's bend points lie in that gap's own x range.
package routing
