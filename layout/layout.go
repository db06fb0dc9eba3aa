package layout

import (
	"context"

	"github.com/katalvlaran/lgraphlayout/graph"
	"github.com/katalvlaran/lgraphlayout/pipeline"
)

// NewGraph allocates a graph.Graph tuned by opts. Callers populate it
// through the graph package's own API (AddNode, AddPort, Connect, ...)
// before handing it to Run.
func NewGraph(opts Options) (*graph.Graph, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	g, err := graph.New(opts.graphConfig())
	if err != nil {
		return nil, err
	}
	if opts.Logger != nil {
		g.Logger = opts.Logger
	}
	return g, nil
}

// Run drives the full layout pipeline over g and returns the solved
// geometry. g must already be populated (nodes, ports, edges); Run
// performs cycle breaking, layering, crossing minimization, node
// placement, and edge routing in that order, then restores any
// user-edges the cycle breaker reversed (spec.md §4 phase order).
//
// Run honors ctx cancellation between phases (spec.md §5 "cooperative
// budget exhausted check"); a long-running layout can be aborted without
// corrupting g, though a partially-run pipeline leaves g in whatever
// intermediate state the completed phases produced.
func Run(ctx context.Context, g *graph.Graph, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = noopLogger{}
	}

	cfg := pipeline.DefaultConfig(opts.layeringOptions(), opts.UnnecessaryBendpoints)
	if err := pipeline.Run(ctx, g, cfg, logger); err != nil {
		return Result{}, err
	}

	return BuildResult(g), nil
}
