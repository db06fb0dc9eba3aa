package graph

// NodeID is a stable index into a Graph's node arena. The zero value is a
// valid node index (the first node ever created); NoNode is the explicit
// "absent" sentinel and must be used (never the zero value) to mean "none".
type NodeID int

// PortID is a stable index into a Graph's port arena.
type PortID int

// EdgeID is a stable index into a Graph's edge arena.
type EdgeID int

// LayerID is a stable index into a Graph's layer arena. Layer identity is
// distinct from layer contents: reordering the nodes within a layer never
// changes its LayerID, and the graph's Layers() order is the drawing order.
type LayerID int

// NoNode, NoPort, NoEdge, and NoLayer are sentinel "absent" values, used in
// fields such as Node.Layer (not yet layered) or Port.ExternalDummy (no
// external-port dummy attached).
const (
	NoNode  NodeID  = -1
	NoPort  PortID  = -1
	NoEdge  EdgeID  = -1
	NoLayer LayerID = -1
)

// PortSide is the side of a node a port is attached to. Iteration order
// (spec.md §4.1) is clockwise starting North: N, E, S, W.
type PortSide int

const (
	North PortSide = iota
	East
	South
	West
)

func (s PortSide) String() string {
	switch s {
	case North:
		return "NORTH"
	case East:
		return "EAST"
	case South:
		return "SOUTH"
	case West:
		return "WEST"
	default:
		return "UNKNOWN_SIDE"
	}
}

// Opposite returns the side directly across the node from s.
func (s PortSide) Opposite() PortSide {
	switch s {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return s
	}
}

// PortDirection classifies a port as a sink (Input) or a source (Output) of
// flow through the node.
type PortDirection int

const (
	Input PortDirection = iota
	Output
)

// Opposite returns the flipped direction.
func (d PortDirection) Opposite() PortDirection {
	if d == Input {
		return Output
	}
	return Input
}

// NodeType classifies a node's origin and role within the pipeline.
type NodeType int

const (
	// Normal nodes come directly from the input binder.
	Normal NodeType = iota
	// LongEdgeDummy nodes are inserted by the long-edge splitter (C5) so
	// every edge spans exactly one layer gap.
	LongEdgeDummy
	// ExternalPortDummy nodes anchor a hierarchical sub-graph's external
	// interface port at a layer's edge.
	ExternalPortDummy
	// NorthSouthPortDummy nodes route edges attached to a north- or
	// south-facing port.
	NorthSouthPortDummy
	// LabelDummy nodes carry a mid-edge label along a long edge.
	LabelDummy
	// BigNodeDummy nodes represent a slice of a node spanning multiple
	// layers.
	BigNodeDummy
	// BreakingPointDummy nodes mark a wrap point used to fold long
	// drawings.
	BreakingPointDummy
)

func (t NodeType) String() string {
	switch t {
	case Normal:
		return "NORMAL"
	case LongEdgeDummy:
		return "LONG_EDGE"
	case ExternalPortDummy:
		return "EXTERNAL_PORT"
	case NorthSouthPortDummy:
		return "NORTH_SOUTH_PORT"
	case LabelDummy:
		return "LABEL"
	case BigNodeDummy:
		return "BIG_NODE"
	case BreakingPointDummy:
		return "BREAKING_POINT"
	default:
		return "UNKNOWN_TYPE"
	}
}

// LayerConstraint pins a node to the first or last layer of the drawing.
type LayerConstraint int

const (
	NoLayerConstraint LayerConstraint = iota
	FirstLayer
	FirstLayerSeparate
	LastLayer
	LastLayerSeparate
)

// InLayerConstraint pins a node to the top or bottom of its layer's order.
type InLayerConstraint int

const (
	NoInLayerConstraint InLayerConstraint = iota
	TopOfLayer
	BottomOfLayer
)

// PortConstraints describes how much freedom later phases have to move a
// node's ports.
type PortConstraints int

const (
	PortConstraintsUndefined PortConstraints = iota
	PortConstraintsFree
	PortConstraintsFixedSide
	PortConstraintsFixedOrder
	PortConstraintsFixedRatio
	PortConstraintsFixedPos
)

// SideFixed reports whether port sides must not be changed.
func (c PortConstraints) SideFixed() bool {
	return c != PortConstraintsUndefined
}

// OrderFixed reports whether port order within a side must not be changed.
func (c PortConstraints) OrderFixed() bool {
	return c == PortConstraintsFixedOrder || c == PortConstraintsFixedRatio || c == PortConstraintsFixedPos
}

// RatioFixed reports whether a port's relative position along its side must
// be preserved under resizing.
func (c PortConstraints) RatioFixed() bool {
	return c == PortConstraintsFixedRatio
}

// PosFixed reports whether a port's exact position is fixed.
func (c PortConstraints) PosFixed() bool {
	return c == PortConstraintsFixedPos
}

// EdgeRouting selects the geometric style later applied to edges. Only
// Orthogonal is implemented by package routing; the others are recognized
// for configuration compatibility (spec.md §1 Non-goals excludes
// implementing spline/polyline routing).
type EdgeRouting int

const (
	EdgeRoutingUndefined EdgeRouting = iota
	EdgeRoutingPolyline
	EdgeRoutingOrthogonal
	EdgeRoutingSplines
)

// HierarchyHandling controls whether a compound node's children are laid
// out together with their parent or independently.
type HierarchyHandling int

const (
	HierarchyInherit HierarchyHandling = iota
	HierarchyIncludeChildren
	HierarchySeparateChildren
)

// FixedAlignment pins the Brandes–Köpf placer (C8) to one of its four
// candidate alignments, or lets it pick automatically.
type FixedAlignment int

const (
	AlignNone FixedAlignment = iota
	AlignLeftUp
	AlignLeftDown
	AlignRightUp
	AlignRightDown
	AlignBalanced
)

// Point is a 2D coordinate in drawing space.
type Point struct {
	X, Y float64
}

// Size is a 2D extent.
type Size struct {
	W, H float64
}

// Margin is the extra clearance reserved around a node on each side, used by
// the placer (C8) when checking for overlap (I8).
type Margin struct {
	Top, Bottom, Left, Right float64
}

// Label is a text annotation attached to an edge.
type Label struct {
	Text string
	Pos  Point
	Size Size
	// Placement classifies a label relative to the edge it is attached to
	// (head, tail, or center); used by the reversal logic of spec.md §4.1.
	Placement LabelPlacement
}

// LabelPlacement classifies where along an edge a Label sits.
type LabelPlacement int

const (
	LabelCenter LabelPlacement = iota
	LabelHead
	LabelTail
)

// Opposite swaps Head and Tail, leaving Center unchanged; used when an edge
// is reversed (spec.md §4.1).
func (p LabelPlacement) Opposite() LabelPlacement {
	switch p {
	case LabelHead:
		return LabelTail
	case LabelTail:
		return LabelHead
	default:
		return p
	}
}
