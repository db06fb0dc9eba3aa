package graph

import (
	"errors"
	"fmt"
)

var (
	errNodeNotFound  = errors.New("node not found")
	errPortNotFound  = errors.New("port not found")
	errEdgeNotFound  = errors.New("edge not found")
	errLayerNotFound = errors.New("layer not found")
	errBadThickness  = errors.New("edge thickness must be positive")
	errWrongPort     = errors.New("port does not belong to this node")
)

// ErrNodeNotFound is returned when an operation references a NodeID the
// graph does not own.
var ErrNodeNotFound = fmt.Errorf("graph: %w", errNodeNotFound)

// ErrPortNotFound is returned when an operation references a PortID the
// graph does not own.
var ErrPortNotFound = fmt.Errorf("graph: %w", errPortNotFound)

// ErrEdgeNotFound is returned when an operation references an EdgeID the
// graph does not own.
var ErrEdgeNotFound = fmt.Errorf("graph: %w", errEdgeNotFound)

// ErrLayerNotFound is returned when an operation references a LayerID the
// graph does not own.
var ErrLayerNotFound = fmt.Errorf("graph: %w", errLayerNotFound)

// ConfigError reports a configuration error (spec.md §7): a value supplied
// by the caller is structurally invalid, such as a negative edge thickness
// or port constraints that conflict with the operation a later phase must
// perform. The pipeline aborts non-recoverably on this error.
type ConfigError struct {
	Node   NodeID
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("graph: configuration error on node %d: %s", e.Node, e.Reason)
}

// InvariantError reports a failed post-condition check (I1..I9 of spec.md
// §3). Produced by Graph.CheckInvariants (I1..I4 only), which the pipeline
// runs only when Options.DebugAssertions is enabled; see SPEC_FULL.md
// "Error handling".
type InvariantError struct {
	Invariant string
	Detail    string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("graph: invariant %s violated: %s", e.Invariant, e.Detail)
}
