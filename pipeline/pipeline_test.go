package pipeline_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lgraphlayout/graph"
	"github.com/katalvlaran/lgraphlayout/layering"
	"github.com/katalvlaran/lgraphlayout/pipeline"
	"github.com/stretchr/testify/require"
)

func newGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(graph.DefaultConfig())
	require.NoError(t, err)
	return g
}

// buildChain wires a -> b -> c with no layers assigned yet, as a caller
// would hand the graph to the pipeline straight after binding input.
func buildChain(t *testing.T, g *graph.Graph) (a, b, c graph.NodeID) {
	t.Helper()
	a, b, c = g.AddNode(nil), g.AddNode(nil), g.AddNode(nil)
	for _, n := range []graph.NodeID{a, b, c} {
		g.Node(n).Size = graph.Size{W: 10, H: 10}
	}
	aOut, _ := g.AddPort(a, graph.East, graph.Output)
	bIn, _ := g.AddPort(b, graph.West, graph.Input)
	bOut, _ := g.AddPort(b, graph.East, graph.Output)
	cIn, _ := g.AddPort(c, graph.West, graph.Input)
	_, err := g.Connect(aOut, bIn, 1, 0)
	require.NoError(t, err)
	_, err = g.Connect(bOut, cIn, 1, 0)
	require.NoError(t, err)
	return a, b, c
}

func TestRunLayersAndPlacesAChain(t *testing.T) {
	g := newGraph(t)
	a, b, c := buildChain(t, g)

	cfg := pipeline.DefaultConfig(layering.DefaultOptions(), false)
	require.NoError(t, pipeline.Run(context.Background(), g, cfg, nil))

	require.NotEqual(t, graph.NoLayer, g.Node(a).Layer)
	require.NotEqual(t, graph.NoLayer, g.Node(b).Layer)
	require.NotEqual(t, graph.NoLayer, g.Node(c).Layer)
	require.Less(t, g.Node(a).Position.X, g.Node(b).Position.X)
	require.Less(t, g.Node(b).Position.X, g.Node(c).Position.X)
}

func TestRunBreaksACycleAndRestoresDirection(t *testing.T) {
	g := newGraph(t)
	a, b := g.AddNode(nil), g.AddNode(nil)
	g.Node(a).Size = graph.Size{W: 10, H: 10}
	g.Node(b).Size = graph.Size{W: 10, H: 10}

	aOut, _ := g.AddPort(a, graph.East, graph.Output)
	bIn, _ := g.AddPort(b, graph.West, graph.Input)
	bOut, _ := g.AddPort(b, graph.East, graph.Output)
	aIn, _ := g.AddPort(a, graph.West, graph.Input)
	e1, err := g.Connect(aOut, bIn, 1, 0)
	require.NoError(t, err)
	_, err = g.Connect(bOut, aIn, 1, 0)
	require.NoError(t, err)

	cfg := pipeline.DefaultConfig(layering.DefaultOptions(), false)
	require.NoError(t, pipeline.Run(context.Background(), g, cfg, nil))

	require.False(t, g.Edge(e1).Reversed)
	require.Equal(t, a, g.Edge(e1).SourceNode)
	require.Equal(t, b, g.Edge(e1).TargetNode)
}

func TestRunHonorsCancelledContext(t *testing.T) {
	g := newGraph(t)
	buildChain(t, g)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := pipeline.DefaultConfig(layering.DefaultOptions(), false)
	require.Error(t, pipeline.Run(ctx, g, cfg, nil))
}
