// Package spacing provides the minimum-separation lookup table used by the
// layout engine to keep nodes, edges, labels, and ports apart.
//
// A Table is built once per graph from a set of global defaults
// (SpacingNodeNode, SpacingEdgeEdge, ...) and an optional set of per-node-type
// overrides, then queried throughout the pipeline: the MinWidth layerer
// (layering) uses EdgeEdge spacing to estimate dummy-node width, the
// orthogonal router (routing) uses EdgeEdge spacing to compute hypernode
// x-offsets, and the Brandes–Köpf placer (placement) uses
// NodeNode spacing for block separation.
//
// The table is generic over the key type so it has no dependency on the
// graph package's NodeType; this avoids an import cycle (graph.Config holds
// a spacing.Table[graph.NodeType]) while keeping the table reusable for any
// enumerable node classification.
//
// Historical note: an earlier revision of this table (see DESIGN.md, Open
// Question O2) defined three same-named methods with different arities that
// silently shadowed one another depending on declaration order. This
// version instead exposes four explicitly-named methods so no overload can
// shadow another: IntraTypeVertical, IntraType, InterTypeVertical, InterType.
package spacing
