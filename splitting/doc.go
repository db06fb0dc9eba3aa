// Package splitting implements the long-edge splitter (C5 of the layout
// pipeline, spec.md §4.5) and the long-edge joiner that later restores it
// (part of C10), grounded on longEdgeSplitter.py and longEdgeJoiner.py of
// the original Nic30/layeredGraphLayouter.
//
// Split walks the layered graph layer by layer and, for every edge that
// skips over at least one intermediate layer, inserts a LongEdgeDummy node
// into the next layer and reroutes the edge through it. Repeating this
// layer by layer leaves every edge spanning exactly one layer gap (the
// "properly layered" postcondition crossing minimization, placement, and
// routing all depend on).
//
// Join is the inverse, run after routing: every LongEdgeDummy's single
// incoming and single outgoing edge are spliced back into one edge per
// original long edge, carrying along that edge's accumulated bend points,
// junction points, and labels, and the now-empty dummy nodes are removed
// from their layers' node lists (spec.md §4.10 notes the layer itself is
// not touched, only its node list).
package splitting
