package layoutexport_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lgraphlayout/graph"
	"github.com/katalvlaran/lgraphlayout/layout"
	"github.com/katalvlaran/lgraphlayout/layoutexport"
	"github.com/stretchr/testify/require"
)

func TestToDOTEmitsPinnedNodesAndEdges(t *testing.T) {
	result := layout.Result{
		Nodes: []layout.NodeResult{
			{ID: 1, Position: graph.Point{X: 0, Y: 0}, Size: graph.Size{W: 20, H: 20}},
			{ID: 2, Position: graph.Point{X: 100, Y: 0}, Size: graph.Size{W: 20, H: 20}},
		},
		Edges: []layout.EdgeResult{
			{ID: 1, Source: 10, Target: 20, Bends: []graph.Point{{X: 20, Y: 10}, {X: 100, Y: 10}}},
		},
	}

	dot := layoutexport.ToDOT(result)

	require.True(t, strings.HasPrefix(dot, "digraph G {"))
	require.Contains(t, dot, `pos="0.00,0.00!"`)
	require.Contains(t, dot, `pos="100.00,0.00!"`)
	require.Contains(t, dot, "p10")
	require.Contains(t, dot, "p20")
	require.Contains(t, dot, "20.00,10.00 100.00,10.00")
}
