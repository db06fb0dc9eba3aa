package routing

// dependency is a weighted ordering constraint between two hypernodes: the
// router tries to give source a smaller rank (a channel further from the
// layer boundary) than target (routingGenerator.py Dependency).
type dependency struct {
	source, target *hyperNode
	weight         int
}

func newDependency(source, target *hyperNode, weight int) *dependency {
	d := &dependency{source: source, target: target, weight: weight}
	source.outgoing = append(source.outgoing, d)
	target.incoming = append(target.incoming, d)
	return d
}

// conflictPenalty weighs a horizontal-segment conflict far more heavily
// than a mere crossing, since two segments sharing a channel must be
// spread across ranks while a crossing is just visually less clean
// (routingGenerator.py CONFLICT_PENALTY).
const conflictPenalty = 16

// createDependencies links every pair of hypernodes in nodes with zero or
// more dependency edges, picking whichever relative order produces fewer
// conflicts+crossings, and linking both ways with zero weight when the
// two orders are exactly tied and nonzero (routingGenerator.py
// createDependency, called pairwise over all hypernodes).
func createDependencies(nodes []*hyperNode, conflictThreshold float64) {
	for i, hn1 := range nodes {
		for _, hn2 := range nodes[i+1:] {
			createDependency(hn1, hn2, conflictThreshold)
		}
	}
}

func createDependency(hn1, hn2 *hyperNode, minDiff float64) {
	if hn1.isStraight() || hn2.isStraight() {
		return
	}

	conflicts1 := countConflicts(hn1.targetPosis, hn2.sourcePosis, minDiff)
	conflicts2 := countConflicts(hn2.targetPosis, hn1.sourcePosis, minDiff)

	crossings1 := countCrossings(hn1.targetPosis, hn2.start, hn2.end) +
		countCrossings(hn2.sourcePosis, hn1.start, hn1.end)
	crossings2 := countCrossings(hn2.targetPosis, hn1.start, hn1.end) +
		countCrossings(hn1.sourcePosis, hn2.start, hn2.end)

	value1 := conflictPenalty*conflicts1 + crossings1
	value2 := conflictPenalty*conflicts2 + crossings2

	switch {
	case value1 < value2:
		newDependency(hn1, hn2, value2-value1)
	case value1 > value2:
		newDependency(hn2, hn1, value1-value2)
	case value1 > 0:
		newDependency(hn1, hn2, 0)
		newDependency(hn2, hn1, 0)
	}
}

// countConflicts counts positions in the two sorted lists that fall within
// minDiff of each other, walking both lists in lockstep
// (routingGenerator.py countConflicts).
func countConflicts(posis1, posis2 []float64, minDiff float64) int {
	if len(posis1) == 0 || len(posis2) == 0 {
		return 0
	}
	i, j := 0, 0
	conflicts := 0
	for {
		p1, p2 := posis1[i], posis2[j]
		if p1 > p2-minDiff && p1 < p2+minDiff {
			conflicts++
		}
		switch {
		case p1 <= p2 && i+1 < len(posis1):
			i++
		case p2 <= p1 && j+1 < len(posis2):
			j++
		default:
			return conflicts
		}
	}
}

// countCrossings counts the positions in posis that fall within [start,
// end] (routingGenerator.py countCrossings).
func countCrossings(posis []float64, start, end float64) int {
	crossings := 0
	for _, pos := range posis {
		if pos > end {
			break
		}
		if pos >= start {
			crossings++
		}
	}
	return crossings
}
