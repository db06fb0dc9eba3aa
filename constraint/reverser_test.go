package constraint_test

import (
	"testing"

	"github.com/katalvlaran/lgraphlayout/constraint"
	"github.com/katalvlaran/lgraphlayout/graph"
	"github.com/stretchr/testify/require"
)

func newGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(graph.DefaultConfig())
	require.NoError(t, err)
	return g
}

func TestIncomingEdgeToFirstNodeIsReversed(t *testing.T) {
	g := newGraph(t)
	first := g.AddNode(nil)
	g.Node(first).LayeringConstraint = graph.FirstLayer
	other := g.AddNode(nil)

	pOut, _ := g.AddPort(other, graph.East, graph.Output)
	pIn, _ := g.AddPort(first, graph.West, graph.Input)
	eid, err := g.Connect(pOut, pIn, 1, 0)
	require.NoError(t, err)

	require.NoError(t, constraint.Process(g))

	e := g.Edge(eid)
	require.Equal(t, first, e.SourceNode)
	require.True(t, e.Reversed)
}

func TestFirstSeparateSourceIsExempt(t *testing.T) {
	g := newGraph(t)
	first := g.AddNode(nil)
	g.Node(first).LayeringConstraint = graph.FirstLayer
	sep := g.AddNode(nil)
	g.Node(sep).LayeringConstraint = graph.FirstLayerSeparate

	pOut, _ := g.AddPort(sep, graph.East, graph.Output)
	pIn, _ := g.AddPort(first, graph.West, graph.Input)
	eid, err := g.Connect(pOut, pIn, 1, 0)
	require.NoError(t, err)

	require.NoError(t, constraint.Process(g))

	e := g.Edge(eid)
	require.False(t, e.Reversed)
	require.Equal(t, sep, e.SourceNode)
}

func TestFeedbackOrientedNodeReversesAllIncident(t *testing.T) {
	g := newGraph(t)
	n := g.AddNode(nil)
	g.Node(n).PortConstraints = graph.PortConstraintsFixedSide
	a := g.AddNode(nil)
	b := g.AddNode(nil)

	eastIn, _ := g.AddPort(n, graph.East, graph.Input)
	westOut, _ := g.AddPort(n, graph.West, graph.Output)
	aOut, _ := g.AddPort(a, graph.West, graph.Output)
	bIn, _ := g.AddPort(b, graph.East, graph.Input)

	e1, err := g.Connect(aOut, eastIn, 1, 0)
	require.NoError(t, err)
	e2, err := g.Connect(westOut, bIn, 1, 0)
	require.NoError(t, err)

	require.NoError(t, constraint.Process(g))

	require.True(t, g.Edge(e1).Reversed)
	require.True(t, g.Edge(e2).Reversed)
}
