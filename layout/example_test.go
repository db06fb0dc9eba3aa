package layout_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lgraphlayout/graph"
	"github.com/katalvlaran/lgraphlayout/layout"
)

// Example lays out a two-node chain and prints the solved node ordering.
func Example() {
	opts := layout.DefaultOptions()
	g, err := layout.NewGraph(opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	a := g.AddNode(nil)
	b := g.AddNode(nil)
	g.Node(a).Size = graph.Size{W: 20, H: 20}
	g.Node(b).Size = graph.Size{W: 20, H: 20}
	aOut, _ := g.AddPort(a, graph.East, graph.Output)
	bIn, _ := g.AddPort(b, graph.West, graph.Input)
	if _, err := g.Connect(aOut, bIn, 1, 0); err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := layout.Run(context.Background(), g, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	left := g.Node(a).Position.X < g.Node(b).Position.X
	fmt.Println("nodes placed left to right:", left)
	fmt.Println("node count:", len(result.Nodes))
	fmt.Println("edge count:", len(result.Edges))
	// Output:
	// nodes placed left to right: true
	// node count: 2
	// edge count: 1
}
