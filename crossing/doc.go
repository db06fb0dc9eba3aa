// Package crossing implements the layer-sweep crossing minimizer (C6) and
// the in-layer constraint processor (C7) of the layout pipeline (spec.md
// §4.6, §4.7), grounded on layerSweepCrossingMinimizer.py and
// allCrossingsCounter.py of the original Nic30/layeredGraphLayouter,
// itself a port of ELK's LayerSweepCrossingMinimizer.
//
// The minimizer repeatedly sweeps forward and backward across the layered
// graph, at each layer gap recomputing a barycenter value per node from its
// neighbors in the fixed layer and reordering the free layer by that value,
// then recounts total crossings; the best node order seen across
// Config.Thoroughness randomized sweeps is kept (spec.md P9 determinism:
// replaying the same Seed reproduces the same result).
//
// Crossing counting combines two counters, chosen per layer gap
// (allCrossingsCounter.py's AllCrossingsCounter): CountBetweenLayers' plain
// Fenwick-tree inversion count for the common one-edge-per-port-pair case,
// and CountHyperedgeCrossings' union-find-plus-corner-sweep estimate
// (hyperedgeCrossingsCounter.py) once a gap has a port carrying more than
// one cross-gap edge. Port distribution (nodeRelativePortDistributor.py)
// re-sorts each layer's ports by the mean index of their cross-gap
// neighbors as the sweep fixes each layer in turn.
package crossing
