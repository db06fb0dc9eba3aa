package spacing

// Defaults holds the global minimum-separation values from which a Table is
// built. Every field corresponds to one of the SPACING_* configuration knobs
// of spec.md §6.
type Defaults struct {
	// NodeNode is the minimum vertical gap between two node bounding boxes
	// within the same layer.
	NodeNode float64
	// NodeNodeBetweenLayers is the minimum horizontal gap between node
	// bounding boxes in adjacent layers.
	NodeNodeBetweenLayers float64

	// EdgeEdge is the minimum vertical gap kept between two parallel edge
	// segments within a layer gap.
	EdgeEdge float64
	// EdgeEdgeBetweenLayers is the minimum horizontal gap between edge
	// segments routed through adjacent layer gaps.
	EdgeEdgeBetweenLayers float64

	// EdgeNode is the minimum vertical gap between an edge segment and a
	// node it passes.
	EdgeNode float64
	// EdgeNodeBetweenLayers is the horizontal counterpart of EdgeNode.
	EdgeNodeBetweenLayers float64

	// LabelNode is the minimum gap between an edge label and a node.
	LabelNode float64
	// LabelPort is the minimum gap between an edge label and a port.
	LabelPort float64
	// PortPort is the minimum gap between two ports on the same side of a
	// node.
	PortPort float64
}

// DefaultDefaults returns the spacing values used when a graph is built
// without explicit overrides.
func DefaultDefaults() Defaults {
	return Defaults{
		NodeNode:              20,
		NodeNodeBetweenLayers: 20,
		EdgeEdge:              10,
		EdgeEdgeBetweenLayers: 10,
		EdgeNode:              10,
		EdgeNodeBetweenLayers: 10,
		LabelNode:             5,
		LabelPort:             2,
		PortPort:              10,
	}
}

func (d Defaults) validate() error {
	vals := []float64{
		d.NodeNode, d.NodeNodeBetweenLayers,
		d.EdgeEdge, d.EdgeEdgeBetweenLayers,
		d.EdgeNode, d.EdgeNodeBetweenLayers,
		d.LabelNode, d.LabelPort, d.PortPort,
	}
	for _, v := range vals {
		if v < 0 {
			return ErrNegativeSpacing
		}
	}
	return nil
}

// Table is a precomputed, per-node-type spacing lookup built once at graph
// construction (Design Note §9, "Mutable global configuration").
type Table[K comparable] struct {
	defaults  Defaults
	overrides map[K]Defaults
}

// NewTable builds a Table from global defaults and a set of optional
// per-type overrides. An override need not set every field; callers build
// it starting from DefaultDefaults() or from a copy of the table's own
// defaults and mutate only the fields they need to override.
func NewTable[K comparable](defaults Defaults, overrides map[K]Defaults) (Table[K], error) {
	if err := defaults.validate(); err != nil {
		return Table[K]{}, err
	}
	for _, ov := range overrides {
		if err := ov.validate(); err != nil {
			return Table[K]{}, err
		}
	}
	cloned := make(map[K]Defaults, len(overrides))
	for k, v := range overrides {
		cloned[k] = v
	}
	return Table[K]{defaults: defaults, overrides: cloned}, nil
}

func (t Table[K]) pick(k K, sel func(Defaults) float64) float64 {
	if d, ok := t.overrides[k]; ok {
		return sel(d)
	}
	return sel(t.defaults)
}

// IntraTypeVertical returns the minimum within-layer vertical separation
// between two nodes of the same type t.
func (t Table[K]) IntraTypeVertical(k K) float64 {
	return t.pick(k, func(d Defaults) float64 { return d.NodeNode })
}

// IntraType returns both the horizontal (between-layers) and vertical
// (within-layer) minimum separation for two nodes of the same type k.
func (t Table[K]) IntraType(k K) (horizontal, vertical float64) {
	return t.pick(k, func(d Defaults) float64 { return d.NodeNodeBetweenLayers }),
		t.pick(k, func(d Defaults) float64 { return d.NodeNode })
}

// InterTypeVertical returns the minimum within-layer vertical separation
// between a node of type a and a node of type b: max(spacing(a), spacing(b)).
func (t Table[K]) InterTypeVertical(a, b K) float64 {
	return max(t.IntraTypeVertical(a), t.IntraTypeVertical(b))
}

// InterType returns both axes of minimum separation between a node of type a
// and a node of type b, each axis taken as max(spacing(a), spacing(b)).
func (t Table[K]) InterType(a, b K) (horizontal, vertical float64) {
	ah, av := t.IntraType(a)
	bh, bv := t.IntraType(b)

	return max(ah, bh), max(av, bv)
}

// EdgeEdge returns the minimum within-layer-gap separation between two
// parallel edge segments.
func (t Table[K]) EdgeEdge() float64 { return t.defaults.EdgeEdge }

// EdgeEdgeBetweenLayers returns the minimum horizontal separation between
// edge segments routed through adjacent layer gaps.
func (t Table[K]) EdgeEdgeBetweenLayers() float64 { return t.defaults.EdgeEdgeBetweenLayers }

// EdgeNode returns the minimum vertical separation between an edge segment
// and a node of type k.
func (t Table[K]) EdgeNode(k K) float64 {
	return t.pick(k, func(d Defaults) float64 { return d.EdgeNode })
}

// EdgeNodeBetweenLayers returns the horizontal counterpart of EdgeNode.
func (t Table[K]) EdgeNodeBetweenLayers(k K) float64 {
	return t.pick(k, func(d Defaults) float64 { return d.EdgeNodeBetweenLayers })
}

// LabelNode returns the minimum separation between a label and a node.
func (t Table[K]) LabelNode() float64 { return t.defaults.LabelNode }

// LabelPort returns the minimum separation between a label and a port.
func (t Table[K]) LabelPort() float64 { return t.defaults.LabelPort }

// PortPort returns the minimum separation between two ports on the same
// side of a node.
func (t Table[K]) PortPort() float64 { return t.defaults.PortPort }
