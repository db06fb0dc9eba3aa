package layout

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/katalvlaran/lgraphlayout/graph"
	"github.com/katalvlaran/lgraphlayout/layering"
	"github.com/katalvlaran/lgraphlayout/spacing"
)

// Options is the layout engine's tuning-knob bag (spec.md §6 "Tuning
// knobs"), constructed with DefaultOptions and mutated directly — a
// passive data bag with no invariants to protect at construction time,
// unlike graph.Graph (SPEC_FULL.md "Configuration").
type Options struct {
	Seed int64

	Thoroughness           int
	HierarchicalSweepiness float64
	FixedAlignment         graph.FixedAlignment
	FavorStraightEdges     bool
	UnnecessaryBendpoints  bool

	// UpperBoundOnWidth and Compensator bound the MinWidth layerer's
	// search (spec.md §6); negative values mean "try the whole range".
	UpperBoundOnWidth int
	Compensator       int

	Hierarchy       graph.HierarchyHandling
	DebugAssertions bool

	Spacings     spacing.Defaults
	TypeSpacings map[graph.NodeType]spacing.Defaults

	Logger Logger
}

// DefaultOptions returns the tuning used when a caller does not need to
// customize anything (spec.md §6 defaults).
func DefaultOptions() Options {
	return Options{
		Seed:                   1,
		Thoroughness:           1,
		HierarchicalSweepiness: 1,
		FixedAlignment:         graph.AlignNone,
		FavorStraightEdges:     true,
		UnnecessaryBendpoints:  false,
		UpperBoundOnWidth:      -1,
		Compensator:            -1,
		Hierarchy:              graph.HierarchyInherit,
		Spacings:               spacing.DefaultDefaults(),
	}
}

func (o Options) validate() error {
	if o.Thoroughness < 1 {
		return ErrBadTuning
	}
	switch o.FixedAlignment {
	case graph.AlignNone, graph.AlignLeftUp, graph.AlignLeftDown,
		graph.AlignRightUp, graph.AlignRightDown, graph.AlignBalanced:
	default:
		return ErrBadTuning
	}
	return nil
}

// graphConfig translates o into the graph.Config NewGraph builds the
// Graph's Spacings table from.
func (o Options) graphConfig() graph.Config {
	return graph.Config{
		Hierarchy:              o.Hierarchy,
		Seed:                   o.Seed,
		Thoroughness:           o.Thoroughness,
		HierarchicalSweepiness: o.HierarchicalSweepiness,
		FixedAlignment:         o.FixedAlignment,
		FavorStraightEdges:     o.FavorStraightEdges,
		UnnecessaryBendpoints:  o.UnnecessaryBendpoints,
		DebugAssertions:        o.DebugAssertions,
		Spacings:               o.Spacings,
		TypeSpacings:           o.TypeSpacings,
	}
}

// layeringOptions translates o's layerer bounds into layering.Options.
func (o Options) layeringOptions() layering.Options {
	return layering.Options{
		UpperBoundOnWidth: o.UpperBoundOnWidth,
		Compensator:       o.Compensator,
	}
}

// tomlOptions is the TOML-file shape LoadOptionsTOML reads, using plain
// field names so a hand-written config file stays readable; it is
// translated into Options (which carries richer Go-only types like
// graph.FixedAlignment) after decoding.
type tomlOptions struct {
	Seed                   int64   `toml:"seed"`
	Thoroughness           int     `toml:"thoroughness"`
	HierarchicalSweepiness float64 `toml:"hierarchical_sweepiness"`
	FavorStraightEdges     bool    `toml:"favor_straight_edges"`
	UnnecessaryBendpoints  bool    `toml:"unnecessary_bendpoints"`
	UpperBoundOnWidth      int     `toml:"upper_bound_on_width"`
	Compensator            int     `toml:"compensator"`
	DebugAssertions        bool    `toml:"debug_assertions"`

	Spacing struct {
		NodeNode              float64 `toml:"node_node"`
		NodeNodeBetweenLayers float64 `toml:"node_node_between_layers"`
		EdgeEdge              float64 `toml:"edge_edge"`
		EdgeEdgeBetweenLayers float64 `toml:"edge_edge_between_layers"`
		EdgeNode              float64 `toml:"edge_node"`
		EdgeNodeBetweenLayers float64 `toml:"edge_node_between_layers"`
		LabelNode             float64 `toml:"label_node"`
		LabelPort             float64 `toml:"label_port"`
		PortPort              float64 `toml:"port_port"`
	} `toml:"spacing"`
}

// LoadOptionsTOML reads a TOML file and returns the Options it describes,
// starting from DefaultOptions so an omitted field keeps its default
// (SPEC_FULL.md DOMAIN STACK: BurntSushi/toml lets the CLI and tests
// express spacings/tuning knobs as a file instead of Go literals).
func LoadOptionsTOML(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}

	var raw tomlOptions
	opts := DefaultOptions()
	raw.Seed = opts.Seed
	raw.Thoroughness = opts.Thoroughness
	raw.HierarchicalSweepiness = opts.HierarchicalSweepiness
	raw.FavorStraightEdges = opts.FavorStraightEdges
	raw.UnnecessaryBendpoints = opts.UnnecessaryBendpoints
	raw.UpperBoundOnWidth = opts.UpperBoundOnWidth
	raw.Compensator = opts.Compensator
	raw.DebugAssertions = opts.DebugAssertions
	raw.Spacing.NodeNode = opts.Spacings.NodeNode
	raw.Spacing.NodeNodeBetweenLayers = opts.Spacings.NodeNodeBetweenLayers
	raw.Spacing.EdgeEdge = opts.Spacings.EdgeEdge
	raw.Spacing.EdgeEdgeBetweenLayers = opts.Spacings.EdgeEdgeBetweenLayers
	raw.Spacing.EdgeNode = opts.Spacings.EdgeNode
	raw.Spacing.EdgeNodeBetweenLayers = opts.Spacings.EdgeNodeBetweenLayers
	raw.Spacing.LabelNode = opts.Spacings.LabelNode
	raw.Spacing.LabelPort = opts.Spacings.LabelPort
	raw.Spacing.PortPort = opts.Spacings.PortPort

	if err := toml.Unmarshal(data, &raw); err != nil {
		return Options{}, err
	}

	opts.Seed = raw.Seed
	opts.Thoroughness = raw.Thoroughness
	opts.HierarchicalSweepiness = raw.HierarchicalSweepiness
	opts.FavorStraightEdges = raw.FavorStraightEdges
	opts.UnnecessaryBendpoints = raw.UnnecessaryBendpoints
	opts.UpperBoundOnWidth = raw.UpperBoundOnWidth
	opts.Compensator = raw.Compensator
	opts.DebugAssertions = raw.DebugAssertions
	opts.Spacings = spacing.Defaults{
		NodeNode:              raw.Spacing.NodeNode,
		NodeNodeBetweenLayers: raw.Spacing.NodeNodeBetweenLayers,
		EdgeEdge:              raw.Spacing.EdgeEdge,
		EdgeEdgeBetweenLayers: raw.Spacing.EdgeEdgeBetweenLayers,
		EdgeNode:              raw.Spacing.EdgeNode,
		EdgeNodeBetweenLayers: raw.Spacing.EdgeNodeBetweenLayers,
		LabelNode:             raw.Spacing.LabelNode,
		LabelPort:             raw.Spacing.LabelPort,
		PortPort:              raw.Spacing.PortPort,
	}

	return opts, nil
}
