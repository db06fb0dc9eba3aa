package testgraphs

import "github.com/katalvlaran/lgraphlayout/graph"

func newGraph() (*graph.Graph, error) {
	return graph.New(graph.DefaultConfig())
}

func sized(g *graph.Graph, n graph.NodeID) {
	g.Node(n).Size = graph.Size{W: 20, H: 20}
}

// DirectCycle builds spec.md S1: two nodes A, B with edges A->B and B->A.
func DirectCycle() (g *graph.Graph, a, b graph.NodeID, ab, ba graph.EdgeID, err error) {
	g, err = newGraph()
	if err != nil {
		return nil, 0, 0, 0, 0, err
	}
	a, b = g.AddNode(nil), g.AddNode(nil)
	sized(g, a)
	sized(g, b)

	aOut, err := g.AddPort(a, graph.East, graph.Output)
	if err != nil {
		return nil, 0, 0, 0, 0, err
	}
	aIn, err := g.AddPort(a, graph.West, graph.Input)
	if err != nil {
		return nil, 0, 0, 0, 0, err
	}
	bIn, err := g.AddPort(b, graph.West, graph.Input)
	if err != nil {
		return nil, 0, 0, 0, 0, err
	}
	bOut, err := g.AddPort(b, graph.East, graph.Output)
	if err != nil {
		return nil, 0, 0, 0, 0, err
	}

	ab, err = g.Connect(aOut, bIn, 1, 0)
	if err != nil {
		return nil, 0, 0, 0, 0, err
	}
	ba, err = g.Connect(bOut, aIn, 1, 0)
	if err != nil {
		return nil, 0, 0, 0, 0, err
	}

	return g, a, b, ab, ba, nil
}

// SimpleCross builds spec.md S2: {a0, a1} -> {b0, b1} with edges a0->b1 and
// a1->b0, both layers already assigned (layer 0 and layer 1).
func SimpleCross() (g *graph.Graph, a0, a1, b0, b1 graph.NodeID, err error) {
	g, err = newGraph()
	if err != nil {
		return nil, 0, 0, 0, 0, err
	}
	a0, a1 = g.AddNode(nil), g.AddNode(nil)
	b0, b1 = g.AddNode(nil), g.AddNode(nil)
	for _, n := range []graph.NodeID{a0, a1, b0, b1} {
		sized(g, n)
	}

	a0Out, _ := g.AddPort(a0, graph.East, graph.Output)
	a1Out, _ := g.AddPort(a1, graph.East, graph.Output)
	b0In, _ := g.AddPort(b0, graph.West, graph.Input)
	b1In, _ := g.AddPort(b1, graph.West, graph.Input)

	if _, err = g.Connect(a0Out, b1In, 1, 0); err != nil {
		return nil, 0, 0, 0, 0, err
	}
	if _, err = g.Connect(a1Out, b0In, 1, 0); err != nil {
		return nil, 0, 0, 0, 0, err
	}

	left, err := g.AppendLayer([]graph.NodeID{a0, a1})
	if err != nil {
		return nil, 0, 0, 0, 0, err
	}
	right := g.InsertLayerAfter(left)
	for _, n := range []graph.NodeID{b0, b1} {
		if err = g.PlaceNodeInLayer(n, right); err != nil {
			return nil, 0, 0, 0, 0, err
		}
	}

	return g, a0, a1, b0, b1, nil
}

// LongEdge builds spec.md S3: three layers, one edge from layer 0's node to
// layer 2's node; layer 1 starts empty.
func LongEdge() (g *graph.Graph, src, dst graph.NodeID, edge graph.EdgeID, err error) {
	g, err = newGraph()
	if err != nil {
		return nil, 0, 0, 0, err
	}
	src, dst = g.AddNode(nil), g.AddNode(nil)
	sized(g, src)
	sized(g, dst)

	srcOut, _ := g.AddPort(src, graph.East, graph.Output)
	dstIn, _ := g.AddPort(dst, graph.West, graph.Input)
	edge, err = g.Connect(srcOut, dstIn, 1, 0)
	if err != nil {
		return nil, 0, 0, 0, err
	}

	l0, err := g.AppendLayer([]graph.NodeID{src})
	if err != nil {
		return nil, 0, 0, 0, err
	}
	l1 := g.InsertLayerAfter(l0)
	l2 := g.InsertLayerAfter(l1)
	if err = g.PlaceNodeInLayer(dst, l2); err != nil {
		return nil, 0, 0, 0, err
	}
	_ = l1

	return g, src, dst, edge, nil
}

// InLayerConstraintTriple builds spec.md S4: layer [u, v, w] with
// v.InLayerConstraint = TopOfLayer.
func InLayerConstraintTriple() (g *graph.Graph, u, v, w graph.NodeID, err error) {
	g, err = newGraph()
	if err != nil {
		return nil, 0, 0, 0, err
	}
	u, v, w = g.AddNode(nil), g.AddNode(nil), g.AddNode(nil)
	for _, n := range []graph.NodeID{u, v, w} {
		sized(g, n)
	}
	g.Node(v).InLayerConstraint = graph.TopOfLayer

	if _, err = g.AppendLayer([]graph.NodeID{u, v, w}); err != nil {
		return nil, 0, 0, 0, err
	}

	return g, u, v, w, nil
}
