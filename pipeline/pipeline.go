package pipeline

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lgraphlayout/constraint"
	"github.com/katalvlaran/lgraphlayout/crossing"
	"github.com/katalvlaran/lgraphlayout/cyclebreak"
	"github.com/katalvlaran/lgraphlayout/graph"
	"github.com/katalvlaran/lgraphlayout/layering"
	"github.com/katalvlaran/lgraphlayout/placement"
	"github.com/katalvlaran/lgraphlayout/restore"
	"github.com/katalvlaran/lgraphlayout/routing"
	"github.com/katalvlaran/lgraphlayout/splitting"
)

// Logger receives phase/processor tracing during Run; it matches
// layout.Logger structurally so callers can pass that value straight
// through without this package importing layout (which imports pipeline).
type Logger interface {
	Debugf(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any) {}

// Run loads cfg's nested configurations (idempotently) and executes every
// phase in order — cycle-breaking, layering, node-ordering,
// node-placement, edge-routing — running each phase's before, main, and
// after processors in turn, checking ctx at every phase boundary (spec.md
// §5 "cooperative budget exhausted check"). When g.Config.DebugAssertions
// is set, g.CheckInvariants runs after every phase and its error ends the
// run. If logger is nil, tracing is silent.
func Run(ctx context.Context, g *graph.Graph, cfg *Config, logger Logger) error {
	if logger == nil {
		logger = noopLogger{}
	}
	cfg.load(g)

	for ph := Phase(0); ph < phaseCount; ph++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		logger.Debugf("pipeline: entering phase %s", ph)
		for _, p := range cfg.slots[ph].processors() {
			logger.Debugf("pipeline: running %s/%s", ph, p.Name())
			if err := p.Process(g); err != nil {
				return fmt.Errorf("pipeline: phase %s processor %s: %w", ph, p.Name(), err)
			}
		}
		if g.Config.DebugAssertions {
			if err := g.CheckInvariants(); err != nil {
				return fmt.Errorf("pipeline: after phase %s: %w", ph, err)
			}
		}
		logger.Debugf("pipeline: leaving phase %s", ph)
	}
	return nil
}

// DefaultConfig returns the Config that reproduces spec.md §4's phase
// order using this module's own C2–C10 packages: constraint+cyclebreak in
// cycle-breaking, layering+splitting.Split in layering,
// northSouthPreprocessor+crossing+in-layer-constraints in node-ordering,
// placement in node-placement, and routing+splitting.Join+restore in
// edge-routing.
func DefaultConfig(layerOpts layering.Options, unnecessaryBendpoints bool) *Config {
	cfg := NewConfig()

	cfg.AddBefore(PhaseCycleBreaking, ProcessorFunc{"constraint-reverser", constraint.Process})
	cfg.AddMain(PhaseCycleBreaking, ProcessorFunc{"cycle-breaker", cyclebreak.Process})

	cfg.AddMain(PhaseLayering, ProcessorFunc{"min-width-layerer", func(g *graph.Graph) error {
		return layering.Process(g, layerOpts)
	}})
	cfg.AddAfter(PhaseLayering, ProcessorFunc{"long-edge-splitter", splitting.Split})

	cfg.AddBefore(PhaseNodeOrdering, ProcessorFunc{"north-south-port-preprocessor", crossing.NorthSouthPortPreprocessor})
	cfg.AddMain(PhaseNodeOrdering, ProcessorFunc{"crossing-minimizer", crossing.Process})
	cfg.AddAfter(PhaseNodeOrdering, ProcessorFunc{"in-layer-constraint-resolver", crossing.ResolveInLayerConstraints})

	cfg.AddMain(PhaseNodePlacement, ProcessorFunc{"brandes-kopf-placer", placement.Process})

	cfg.AddMain(PhaseEdgeRouting, ProcessorFunc{"orthogonal-router", routing.Process})
	cfg.AddAfter(PhaseEdgeRouting, ProcessorFunc{"long-edge-joiner", func(g *graph.Graph) error {
		return splitting.Join(g, unnecessaryBendpoints)
	}})
	cfg.AddAfter(PhaseEdgeRouting, ProcessorFunc{"reversed-edge-restorer", restore.Process})

	return cfg
}
