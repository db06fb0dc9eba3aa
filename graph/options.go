package graph

import (
	"math/rand"

	"github.com/katalvlaran/lgraphlayout/spacing"
)

// Properties flags presence of graph-wide features that later phases must
// check before assuming the simple case (spec.md §3 "Graph (G)").
type Properties struct {
	HasExternalPorts   bool
	HasHyperedges      bool
	HasHypernodes      bool
	HasNonFreePorts    bool
	HasNorthSouthPorts bool
	HasSelfLoops       bool
	HasComments        bool
	HasCenterLabels    bool
	HasEndLabels       bool
	HasPartitions      bool
}

// Config holds the tuning knobs of spec.md §6.
type Config struct {
	EdgeRouting EdgeRouting
	Hierarchy   HierarchyHandling

	// Seed initializes the graph's random source. Two runs with the same
	// Seed and the same input must produce bit-identical coordinates
	// (spec.md P9).
	Seed int64

	// Thoroughness is the repeat count for randomized crossing
	// minimization; must be >= 1.
	Thoroughness int

	// HierarchicalSweepiness lies in [-inf, 1] and, per spec.md §4.6.5,
	// would bias a sweep-type decider toward hierarchical (higher) or
	// bottom-up (lower) sweeps of nested compound graphs; retained as a
	// configuration knob since spec.md §6 lists it, but unconsumed by this
	// module's flat (non-hierarchical) sweep — see DESIGN.md's crossing/
	// entry "Dropped: sweep-type decider".
	HierarchicalSweepiness float64

	FixedAlignment        FixedAlignment
	FavorStraightEdges    bool
	UnnecessaryBendpoints bool

	// DebugAssertions makes pipeline.Run check the structural invariants
	// I1..I4 (Graph.CheckInvariants) after every phase (spec.md §7); off
	// by default for production use, matching "In release builds the
	// checks may be disabled". The invariants I5..I9 are not checked.
	DebugAssertions bool

	// Spacings seeds the graph's spacing.Table; if the zero value is
	// passed, spacing.DefaultDefaults() is used.
	Spacings spacing.Defaults
	// TypeSpacings overrides Spacings per node type.
	TypeSpacings map[NodeType]spacing.Defaults
}

// DefaultConfig returns the configuration used when a caller does not need
// to customize tuning knobs.
func DefaultConfig() Config {
	return Config{
		EdgeRouting:            EdgeRoutingOrthogonal,
		Hierarchy:              HierarchyInherit,
		Seed:                   1,
		Thoroughness:           1,
		HierarchicalSweepiness: 1,
		FixedAlignment:         AlignNone,
		FavorStraightEdges:     true,
		UnnecessaryBendpoints:  false,
		Spacings:               spacing.DefaultDefaults(),
	}
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
