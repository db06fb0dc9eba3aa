// Package cyclebreak implements the greedy sinks-and-sources cycle breaker
// (C3 of the layout pipeline, spec.md §4.3), grounded on
// greedyCycleBreaker.py of the original Nic30/layeredGraphLayouter.
//
// Every layerless node is assigned an integer rank ("mark"): sinks drain
// from the right with descending negative ranks, sources drain from the
// left with ascending positive ranks, and when both pools are empty but
// nodes remain, the node with the largest out-degree minus in-degree (ties
// broken by original insertion order) is peeled off to the left. Negative
// ranks are then shifted positive, and every edge whose source rank exceeds
// its target rank is reversed, leaving the non-reversed subgraph acyclic
// (invariant I5, property P2).
package cyclebreak
