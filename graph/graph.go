package graph

import (
	"math/rand"

	"github.com/katalvlaran/lgraphlayout/spacing"
)

// Graph owns every Node, Port, Edge, and Layer it contains (spec.md §3
// "Graph (G)"). Nodes, ports, and user edges are created by the input
// binder via New*; dummy nodes and edges are created by pipeline phases and
// owned the same way.
type Graph struct {
	nodes  []*Node
	ports  []*Port
	edges  []*Edge
	layers []*Layer

	// layerOrder is the drawing order of layer IDs; distinct from the
	// layers arena's creation order once phases reorder or splice layers.
	layerOrder []LayerID

	// originIndex maps an input binder's original-object identity to the
	// interior node it was bound to; used only during input binding.
	originIndex map[any]NodeID

	Properties Properties
	Config     Config
	Spacings   spacing.Table[NodeType]
	Rand       *rand.Rand

	// Logger receives debug tracing from processors that run against this
	// graph; defaults to a no-op so callers that don't care never need to
	// check it for nil.
	Logger Logger
}

// New creates an empty Graph configured by cfg.
func New(cfg Config) (*Graph, error) {
	spacings := cfg.Spacings
	if (spacings == spacing.Defaults{}) {
		spacings = spacing.DefaultDefaults()
	}
	table, err := spacing.NewTable(spacings, cfg.TypeSpacings)
	if err != nil {
		return nil, err
	}

	return &Graph{
		originIndex: make(map[any]NodeID),
		Config:      cfg,
		Spacings:    table,
		Rand:        newRand(cfg.Seed),
		Logger:      noopLogger{},
	}, nil
}

// ReseedRandom resets the graph's random source to its configured seed, so
// a full randomized minimization pass (spec.md §4.6) can be replayed
// deterministically. Nothing in this module calls it.
func (g *Graph) ReseedRandom() {
	g.Rand = newRand(g.Config.Seed)
}

// AddNode creates a new Normal node with no ports and no layer.
func (g *Graph) AddNode(origin any) NodeID {
	return g.addNode(Normal, origin)
}

// AddDummyNode creates a new node of the given dummy type.
func (g *Graph) AddDummyNode(t NodeType) NodeID {
	return g.addNode(t, nil)
}

func (g *Graph) addNode(t NodeType, origin any) NodeID {
	id := NodeID(len(g.nodes))
	n := &Node{
		ID:                id,
		Type:              t,
		Layer:             NoLayer,
		Origin:            origin,
		InLayerLayoutUnit: id,
		LongEdgeSource:    NoNode,
		LongEdgeTarget:    NoNode,
	}
	g.nodes = append(g.nodes, n)
	if origin != nil {
		g.originIndex[origin] = id
	}
	return id
}

// BindOrigin returns the node bound to origin during input binding, if any.
func (g *Graph) BindOrigin(origin any) (NodeID, bool) {
	id, ok := g.originIndex[origin]
	return id, ok
}

// Node returns the node with the given ID.
func (g *Graph) Node(id NodeID) *Node {
	if int(id) < 0 || int(id) >= len(g.nodes) {
		return nil
	}
	return g.nodes[id]
}

// NodeCount returns the number of nodes ever created in this graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// Nodes returns every node owned by the graph, in creation order.
func (g *Graph) Nodes() []*Node { return g.nodes }

// AddPort creates a new port on side of node, with the given direction, and
// appends it to that side's ordered list.
func (g *Graph) AddPort(node NodeID, side PortSide, dir PortDirection) (PortID, error) {
	n := g.Node(node)
	if n == nil {
		return NoPort, ErrNodeNotFound
	}
	id := PortID(len(g.ports))
	p := &Port{ID: id, Node: node, Side: side, Direction: dir, ExternalDummy: NoNode}
	g.ports = append(g.ports, p)
	n.ports[side] = append(n.ports[side], id)
	return id, nil
}

// Port returns the port with the given ID.
func (g *Graph) Port(id PortID) *Port {
	if int(id) < 0 || int(id) >= len(g.ports) {
		return nil
	}
	return g.ports[id]
}

// Ports returns every port owned by the graph, in creation order.
func (g *Graph) Ports() []*Port { return g.ports }

// MovePortToSide relocates p from its current side bucket to newSide,
// appending it at the end of the new bucket. Used by the port distributor
// (C6) when a north/south port is reassigned to east/west.
func (g *Graph) MovePortToSide(id PortID, newSide PortSide) error {
	p := g.Port(id)
	if p == nil {
		return ErrPortNotFound
	}
	n := g.Node(p.Node)
	old := p.Side
	n.ports[old] = removePortID(n.ports[old], id)
	p.Side = newSide
	n.ports[newSide] = append(n.ports[newSide], id)
	return nil
}

func removePortID(s []PortID, id PortID) []PortID {
	for i, v := range s {
		if v == id {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// Edge returns the edge with the given ID.
func (g *Graph) Edge(id EdgeID) *Edge {
	if int(id) < 0 || int(id) >= len(g.edges) {
		return nil
	}
	return g.edges[id]
}

// Edges returns every edge owned by the graph, in creation order. Deleted
// edges (see splitting.Join / restore) are represented by a nil slot, which
// this method skips.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}

// Layer returns the layer with the given ID.
func (g *Graph) Layer(id LayerID) *Layer {
	if int(id) < 0 || int(id) >= len(g.layers) {
		return nil
	}
	return g.layers[id]
}

// Layers returns the graph's layers in drawing order (left to right).
func (g *Graph) Layers() []*Layer {
	out := make([]*Layer, 0, len(g.layerOrder))
	for _, id := range g.layerOrder {
		out = append(out, g.layers[id])
	}
	return out
}

// LayerlessNodes returns every node not currently assigned to a layer, in
// creation order; the layerer (C4) and cycle breaker (C3) operate on this
// set.
func (g *Graph) LayerlessNodes() []*Node {
	out := make([]*Node, 0)
	for _, n := range g.nodes {
		if n.Layer == NoLayer {
			out = append(out, n)
		}
	}
	return out
}

// AppendLayer creates a new layer at the end of the drawing order
// containing nodes, in the given order, and assigns each node's Layer
// field. Nodes must currently be layerless.
func (g *Graph) AppendLayer(nodes []NodeID) (LayerID, error) {
	for _, nid := range nodes {
		n := g.Node(nid)
		if n == nil {
			return NoLayer, ErrNodeNotFound
		}
	}
	id := LayerID(len(g.layers))
	l := &Layer{ID: id, Index: len(g.layerOrder), Nodes: append([]NodeID(nil), nodes...)}
	g.layers = append(g.layers, l)
	g.layerOrder = append(g.layerOrder, id)
	for _, nid := range nodes {
		g.Node(nid).Layer = id
	}
	return id, nil
}

// InsertLayerAfter creates a new empty layer immediately after after in the
// drawing order (used by the long-edge splitter, C5, to insert dummy
// layers) and returns its ID. Subsequent layer Index values are updated.
func (g *Graph) InsertLayerAfter(after LayerID) LayerID {
	id := LayerID(len(g.layers))
	l := &Layer{ID: id}
	g.layers = append(g.layers, l)

	pos := len(g.layerOrder)
	for i, lid := range g.layerOrder {
		if lid == after {
			pos = i + 1
			break
		}
	}
	g.layerOrder = append(g.layerOrder, NoLayer)
	copy(g.layerOrder[pos+1:], g.layerOrder[pos:])
	g.layerOrder[pos] = id
	g.reindexLayers()
	return id
}

func (g *Graph) reindexLayers() {
	for i, lid := range g.layerOrder {
		g.layers[lid].Index = i
	}
}

// RemoveLayer deletes an empty layer from the drawing order; a layer that
// still holds nodes is refused with a ConfigError. No pipeline phase calls
// it: splitting.Join leaves layers it empties in place.
func (g *Graph) RemoveLayer(id LayerID) error {
	l := g.Layer(id)
	if l == nil {
		return ErrLayerNotFound
	}
	if len(l.Nodes) != 0 {
		return &ConfigError{Reason: "cannot remove a non-empty layer"}
	}
	for i, lid := range g.layerOrder {
		if lid == id {
			g.layerOrder = append(g.layerOrder[:i], g.layerOrder[i+1:]...)
			break
		}
	}
	g.reindexLayers()
	return nil
}

// PlaceNodeInLayer appends n to the end of layer l's node order and sets
// n.Layer, removing it from any previous layer first (invariant I4).
func (g *Graph) PlaceNodeInLayer(n NodeID, l LayerID) error {
	node := g.Node(n)
	layer := g.Layer(l)
	if node == nil {
		return ErrNodeNotFound
	}
	if layer == nil {
		return ErrLayerNotFound
	}
	g.RemoveNodeFromLayer(n)
	layer.Nodes = append(layer.Nodes, n)
	node.Layer = l
	return nil
}

// InsertNodeInLayerAt inserts n into layer l's node order at position idx.
func (g *Graph) InsertNodeInLayerAt(n NodeID, l LayerID, idx int) error {
	node := g.Node(n)
	layer := g.Layer(l)
	if node == nil {
		return ErrNodeNotFound
	}
	if layer == nil {
		return ErrLayerNotFound
	}
	g.RemoveNodeFromLayer(n)
	if idx < 0 || idx > len(layer.Nodes) {
		idx = len(layer.Nodes)
	}
	layer.Nodes = append(layer.Nodes, NoNode)
	copy(layer.Nodes[idx+1:], layer.Nodes[idx:])
	layer.Nodes[idx] = n
	node.Layer = l
	return nil
}

// RemoveNodeFromLayer removes n from its current layer's node order, if
// any, and clears n.Layer.
func (g *Graph) RemoveNodeFromLayer(n NodeID) {
	node := g.Node(n)
	if node == nil || node.Layer == NoLayer {
		return
	}
	layer := g.Layer(node.Layer)
	for i, id := range layer.Nodes {
		if id == n {
			layer.Nodes = append(layer.Nodes[:i], layer.Nodes[i+1:]...)
			break
		}
	}
	node.Layer = NoLayer
}

// SetLayerOrder replaces layer l's node order wholesale; used by the
// crossing minimizer (C6) after computing a new permutation. The caller is
// responsible for ensuring order is a permutation of l's current nodes.
func (g *Graph) SetLayerOrder(l LayerID, order []NodeID) error {
	layer := g.Layer(l)
	if layer == nil {
		return ErrLayerNotFound
	}
	layer.Nodes = append([]NodeID(nil), order...)
	return nil
}
