// Package restore implements the reversed-edge restorer (C10, spec.md
// §4.10), grounded on reversedEdgeRestorer.py of the original
// Nic30/layeredGraphLayouter. It runs after routing (C9): every edge
// cyclebreak or constraint reversed to make the graph acyclic is flipped
// back to its caller-facing direction, so the Source/Target the caller
// sees again match what they originally connected — only the drawn
// geometry (Position, Bends) still reflects the left-to-right layering
// that made the layout acyclic.
package restore
