// Package constraint implements the edge & layer-constraint reverser (C2 of
// the layout pipeline, spec.md §4.2).
//
// It runs before cycle breaking (package cyclebreak) as a pre-processor:
// nodes pinned to the FIRST/FIRST_SEPARATE layer must have every incident
// edge outgoing, and nodes pinned to LAST/LAST_SEPARATE must have every
// incident edge incoming. Offending edges are reversed via graph.Reverse,
// except where the other endpoint is FIRST_SEPARATE, LAST_SEPARATE or a
// LABEL dummy; a reversal that leaves a hard FIRST/LAST constraint on the
// other endpoint broken makes the reverser return a graph.ConfigError.
// Nodes with fixed port sides whose every port's net flow indicates a
// feedback orientation (EAST ports flowing in, WEST ports flowing out) have
// every incident edge reversed too, subject to the same check.
package constraint
