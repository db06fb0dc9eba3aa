package cyclebreak_test

import (
	"testing"

	"github.com/katalvlaran/lgraphlayout/cyclebreak"
	"github.com/katalvlaran/lgraphlayout/graph"
	"github.com/stretchr/testify/require"
)

func newGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(graph.DefaultConfig())
	require.NoError(t, err)
	return g
}

// TestDirectCycleReversesOneEdge covers the "direct cycle" scenario: two
// nodes A, B with edges A->B and B->A. Exactly one of the two edges must be
// reversed, and the resulting subgraph (ignoring reversed edges) is acyclic.
func TestDirectCycleReversesOneEdge(t *testing.T) {
	g := newGraph(t)
	a := g.AddNode(nil)
	b := g.AddNode(nil)

	aOut, _ := g.AddPort(a, graph.East, graph.Output)
	bIn, _ := g.AddPort(b, graph.West, graph.Input)
	bOut, _ := g.AddPort(b, graph.East, graph.Output)
	aIn, _ := g.AddPort(a, graph.West, graph.Input)

	e1, err := g.Connect(aOut, bIn, 1, 0)
	require.NoError(t, err)
	e2, err := g.Connect(bOut, aIn, 1, 0)
	require.NoError(t, err)

	require.NoError(t, cyclebreak.Process(g))

	reversedCount := 0
	if g.Edge(e1).Reversed {
		reversedCount++
	}
	if g.Edge(e2).Reversed {
		reversedCount++
	}
	require.Equal(t, 1, reversedCount)

	for _, e := range g.Edges() {
		require.NotEqual(t, g.Node(e.SourceNode).Mark > g.Node(e.TargetNode).Mark, true)
	}
}

// TestAcyclicChainIsUntouched verifies a simple three-node chain A->B->C has
// no edges reversed: it is already acyclic.
func TestAcyclicChainIsUntouched(t *testing.T) {
	g := newGraph(t)
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	c := g.AddNode(nil)

	aOut, _ := g.AddPort(a, graph.East, graph.Output)
	bIn, _ := g.AddPort(b, graph.West, graph.Input)
	bOut, _ := g.AddPort(b, graph.East, graph.Output)
	cIn, _ := g.AddPort(c, graph.West, graph.Input)

	e1, err := g.Connect(aOut, bIn, 1, 0)
	require.NoError(t, err)
	e2, err := g.Connect(bOut, cIn, 1, 0)
	require.NoError(t, err)

	require.NoError(t, cyclebreak.Process(g))

	require.False(t, g.Edge(e1).Reversed)
	require.False(t, g.Edge(e2).Reversed)
}

// TestSelfLoopIsIgnored ensures a self-loop never gets reversed and never
// derails rank assignment for the rest of the graph.
func TestSelfLoopIsIgnored(t *testing.T) {
	g := newGraph(t)
	a := g.AddNode(nil)

	out, _ := g.AddPort(a, graph.East, graph.Output)
	in, _ := g.AddPort(a, graph.West, graph.Input)
	loop, err := g.Connect(out, in, 1, 0)
	require.NoError(t, err)
	g.Edge(loop).SelfLoop = true

	require.NoError(t, cyclebreak.Process(g))
	require.False(t, g.Edge(loop).Reversed)
}
