// Command lgraphdot is a tiny front-end over the layout engine: it reads a
// TOML tuning file, lays out a fixture graph, and writes the solved
// geometry as Graphviz DOT — grounded on cmd/stacktower's cobra root
// command/context-cancellation shape, but out of the core's scope (spec.md
// §1 "out of scope... described only by interfaces").
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lgraphlayout/graph"
	"github.com/katalvlaran/lgraphlayout/internal/testgraphs"
	"github.com/katalvlaran/lgraphlayout/layout"
	"github.com/katalvlaran/lgraphlayout/layoutexport"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		configPath string
		scenario   string
		output     string
	)

	root := &cobra.Command{
		Use:   "lgraphdot",
		Short: "Render a built-in layout scenario as Graphviz DOT",
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderScenario(cmd.Context(), scenario, configPath, output)
		},
	}
	root.Flags().StringVar(&configPath, "config", "", "path to a TOML options file (optional)")
	root.Flags().StringVar(&scenario, "scenario", "long-edge", "scenario to render: direct-cycle, simple-cross, long-edge")
	root.Flags().StringVar(&output, "out", "", "output file path (defaults to stdout)")

	return root.ExecuteContext(ctx)
}

func renderScenario(ctx context.Context, scenario, configPath, output string) error {
	opts := layout.DefaultOptions()
	if configPath != "" {
		loaded, err := layout.LoadOptionsTOML(configPath)
		if err != nil {
			return fmt.Errorf("lgraphdot: %w", err)
		}
		opts = loaded
	}

	g, err := buildScenario(scenario)
	if err != nil {
		return fmt.Errorf("lgraphdot: %w", err)
	}

	result, err := layout.Run(ctx, g, opts)
	if err != nil {
		return fmt.Errorf("lgraphdot: %w", err)
	}

	dot := layoutexport.ToDOT(result)

	if output == "" {
		fmt.Print(dot)
		return nil
	}
	return os.WriteFile(output, []byte(dot), 0o644)
}

func buildScenario(name string) (*graph.Graph, error) {
	switch name {
	case "direct-cycle":
		g, _, _, _, _, err := testgraphs.DirectCycle()
		return g, err
	case "simple-cross":
		g, _, _, _, _, err := testgraphs.SimpleCross()
		return g, err
	case "long-edge":
		g, _, _, _, err := testgraphs.LongEdge()
		return g, err
	default:
		return nil, fmt.Errorf("unknown scenario %q", name)
	}
}
