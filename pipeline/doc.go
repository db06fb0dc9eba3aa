// Package pipeline implements the layout pipeline controller (C11, spec.md
// §4.11), grounded on the original Nic30/layeredGraphLayouter's top-level
// `layeredGraphLayouter.py` phase driver and ELK's
// `IntermediateProcessingConfiguration` pattern it mirrors: each of the
// five named phases (cycle-breaking, layering, node-ordering,
// node-placement, edge-routing) runs a before/main/after list of
// Processors in order, and any Processor may contribute its own nested
// Config (additional before/after entries on phases other than its own)
// which the controller merges in before the run starts.
//
// DefaultConfig wires this module's own C2–C10 packages into the five
// phases (constraint+cyclebreak as cycle-breaking, layering as
// layering, crossing as node-ordering, placement as node-placement,
// splitting.Split/routing/splitting.Join/restore split across layering,
// edge-routing and its after-list) so calling Run(ctx, g, cfg, logger)
// with that Config reproduces the phase order spec.md §4 describes without
// any further caller configuration.
package pipeline
