// Package layering implements the MinWidth layer assigner (C4 of the layout
// pipeline, spec.md §4.4), grounded on minWidthLayerer.py of the original
// Nic30/layeredGraphLayouter, itself a Go-side port of ELK's MinWidthLayerer.
//
// MinWidth is a longest-path-style heuristic for the NP-hard minimum-width
// layering problem, adjusted to account for the width dummy nodes will add
// once long edges are split (C5). Node sizes are normalized against the
// smallest real node so the width estimate reflects actual geometry rather
// than raw node counts. The heuristic is run once per (upperBoundOnWidth,
// compensator) pair in a small configured search space and the narrowest
// resulting layering — fewest layers breaking ties — is kept.
//
// Precondition: g has no cycles among non-reversed edges (post C3).
// Postcondition: every layerless node has been placed into a layer such
// that every edge connects a node in an earlier layer to a node in a later
// one.
package layering
