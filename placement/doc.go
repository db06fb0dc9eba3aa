// Package placement implements the Brandes–Köpf node placer (C8 of the
// layout pipeline, spec.md §4.8), grounded on aligner.py and compactor.py
// of the original Nic30/layeredGraphLayouter's p4NodePlacerBK, itself a
// port of ELK's BKNodePlacer.
//
// Four alignments are computed — one per (horizontal, vertical) direction
// pair — each grouping nodes into blocks along straight-line chains formed
// with their median neighbor in the fixed layer, then compacting each
// block's vertical position so no two nodes in the same layer overlap.
// The four resulting coordinate assignments are combined (FixedAlignment,
// spec.md §6) by picking one directly or, for a balanced result, taking
// each node's median across all four after shifting them onto the
// smallest layout, matching the original's BALANCED combination.
//
// This port keeps the four-alignment/compaction shape of the original but
// does not mark type-1 conflicts (long-edge-dummy chains that cross a real
// node's incident edge) before aligning, nor build the original's
// block-dependency graph for compaction; see DESIGN.md for the scoped-down
// rationale. Horizontal position is layer-index based and is not part of
// the alignment step.
package placement
