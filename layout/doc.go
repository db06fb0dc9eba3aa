// Package layout is the public facade gluing the layout engine's internal
// phases (graph, constraint, cyclebreak, layering, splitting, crossing,
// placement, routing, restore, pipeline) into a single call: build a
// graph.Graph with NewGraph, populate it through the graph package's own
// API the way an input binder would, then call Run to execute the full
// pipeline and obtain a Result — the node positions, port offsets, and
// orthogonal edge routes a renderer needs (spec.md §6 "Core output").
//
// A minimal round trip:
//
//	opts := layout.DefaultOptions()
//	g, _ := layout.NewGraph(opts)
//	a := g.AddNode(nil)
//	b := g.AddNode(nil)
//	aOut, _ := g.AddPort(a, graph.East, graph.Output)
//	bIn, _ := g.AddPort(b, graph.West, graph.Input)
//	g.Connect(aOut, bIn, 1, 0)
//	result, _ := layout.Run(context.Background(), g, opts)
//
// result.Nodes now carries every node's solved position and size, and
// result.Edges carries every edge's orthogonal bend points.
package layout
