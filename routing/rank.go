package routing

// breakCycles makes the hypernode dependency graph acyclic by greedily
// peeling sinks from the right and sources from the left, the same
// mark-assignment strategy cyclebreak.Process runs on the node graph
// (routingGenerator.py breakCycles). Dependencies of zero weight are
// assumed to be exactly the two-cycles created by createDependency's tie
// case and are dropped rather than reversed.
//
// Ties in the remaining max-outflow peel (below) are broken by original
// hypernode order, not randomly: GapSlotCount runs this same function
// ahead of Process to size a layer gap before routing proper assigns bend
// points, and the two runs must agree on every hypernode's rank bit for
// bit, which a random tie-break could not guarantee run to run.
func breakCycles(nodes []*hyperNode) {
	var sources, sinks []*hyperNode
	nextMark := -1
	for _, n := range nodes {
		n.mark = nextMark
		nextMark--

		var inweight, outweight int
		for _, d := range n.outgoing {
			outweight += d.weight
		}
		for _, d := range n.incoming {
			inweight += d.weight
		}
		n.inweight = inweight
		n.outweight = outweight

		switch {
		case outweight == 0:
			sinks = append(sinks, n)
		case inweight == 0:
			sources = append(sources, n)
		}
	}

	unprocessed := make(map[*hyperNode]bool, len(nodes))
	for _, n := range nodes {
		unprocessed[n] = true
	}
	markBase := len(nodes)
	nextRight := markBase - 1
	nextLeft := markBase + 1

	for len(unprocessed) > 0 {
		for len(sinks) > 0 {
			sink := sinks[0]
			sinks = sinks[1:]
			if !unprocessed[sink] {
				continue
			}
			delete(unprocessed, sink)
			sink.mark = nextRight
			nextRight--
			updateNeighbors(sink, &sources, &sinks)
		}

		for len(sources) > 0 {
			source := sources[0]
			sources = sources[1:]
			if !unprocessed[source] {
				continue
			}
			delete(unprocessed, source)
			source.mark = nextLeft
			nextLeft++
			updateNeighbors(source, &sources, &sinks)
		}

		if len(unprocessed) == 0 {
			break
		}

		// Walk nodes in original hypernode order (not unprocessed's map
		// iteration, which Go randomizes) so the max-outflow tie-break is
		// the first such hypernode by that order, deterministically.
		maxOutflow := minInt
		var pick *hyperNode
		for _, n := range nodes {
			if !unprocessed[n] {
				continue
			}
			outflow := n.outweight - n.inweight
			if outflow > maxOutflow {
				maxOutflow = outflow
				pick = n
			}
		}

		if pick != nil {
			delete(unprocessed, pick)
			pick.mark = nextLeft
			nextLeft++
			updateNeighbors(pick, &sources, &sinks)
		}
	}

	shiftBase := len(nodes) + 1
	for _, n := range nodes {
		if n.mark < markBase {
			n.mark += shiftBase
		}
	}

	for _, source := range nodes {
		kept := source.outgoing[:0]
		for _, d := range source.outgoing {
			target := d.target
			if source.mark > target.mark {
				target.incoming = removeDependency(target.incoming, d)
				if d.weight > 0 {
					d.source, d.target = target, source
					target.outgoing = append(target.outgoing, d)
					source.incoming = append(source.incoming, d)
				}
				continue
			}
			kept = append(kept, d)
		}
		source.outgoing = kept
	}
}

const minInt = -int(^uint(0)>>1) - 1

func removeDependency(deps []*dependency, target *dependency) []*dependency {
	for i, d := range deps {
		if d == target {
			return append(deps[:i], deps[i+1:]...)
		}
	}
	return deps
}

// updateNeighbors simulates node's removal from the dependency graph,
// promoting any neighbor whose remaining weight drops to zero into the
// sources/sinks worklists (routingGenerator.py updateNeighbors).
func updateNeighbors(n *hyperNode, sources, sinks *[]*hyperNode) {
	for _, d := range n.outgoing {
		if d.target.mark < 0 && d.weight > 0 {
			d.target.inweight -= d.weight
			if d.target.inweight <= 0 && d.target.outweight > 0 {
				*sources = append(*sources, d.target)
			}
		}
	}
	for _, d := range n.incoming {
		if d.source.mark < 0 && d.weight > 0 {
			d.source.outweight -= d.weight
			if d.source.outweight <= 0 && d.source.inweight > 0 {
				*sinks = append(*sinks, d.source)
			}
		}
	}
}

// topologicalNumbering assigns every hypernode a rank: the length of the
// longest dependency path ending at it, then pushes hypernodes whose
// dependencies only point leftward (no sourcePosis) as far right as
// possible so back-edges don't detour through unrelated channels
// (routingGenerator.py topologicalNumbering).
func topologicalNumbering(nodes []*hyperNode) {
	var sources []*hyperNode
	var rightwardTargets []*hyperNode
	for _, n := range nodes {
		n.rank = 0
		n.inweight = len(n.incoming)
		n.outweight = len(n.outgoing)

		if n.inweight == 0 {
			sources = append(sources, n)
		}
		if n.outweight == 0 && len(n.sourcePosis) == 0 {
			rightwardTargets = append(rightwardTargets, n)
		}
	}

	maxRank := -1
	for len(sources) > 0 {
		n := sources[0]
		sources = sources[1:]
		for _, d := range n.outgoing {
			target := d.target
			if n.rank+1 > target.rank {
				target.rank = n.rank + 1
			}
			if target.rank > maxRank {
				maxRank = target.rank
			}
			target.inweight--
			if target.inweight == 0 {
				sources = append(sources, target)
			}
		}
	}

	if maxRank == -1 {
		return
	}

	for _, n := range rightwardTargets {
		n.rank = maxRank
	}
	for len(rightwardTargets) > 0 {
		n := rightwardTargets[0]
		rightwardTargets = rightwardTargets[1:]
		for _, d := range n.incoming {
			source := d.source
			if len(source.sourcePosis) > 0 {
				continue
			}
			if n.rank-1 < source.rank {
				source.rank = n.rank - 1
			}
			source.outweight--
			if source.outweight == 0 {
				rightwardTargets = append(rightwardTargets, source)
			}
		}
	}
}
