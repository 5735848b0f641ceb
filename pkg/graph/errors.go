package graph

import "errors"

var (
	// ErrDuplicateID is returned by [Graph.AddNode] when a node with the
	// same ID already exists. Node IDs must be unique within a graph.
	ErrDuplicateID = errors.New("duplicate node ID")

	// ErrNodeNotFound is returned when an operation references a node ID
	// that does not exist in the graph: a missing edge endpoint, an unknown
	// lookup ID, or an unknown traversal root or target.
	ErrNodeNotFound = errors.New("node not found")

	// ErrInvalidParameter is returned when a caller-supplied bound is
	// unusable, such as a zero maximum walk length or a minimum length
	// exceeding the maximum.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnreachable is returned by [Graph.ShortestPathBFS] when the target
	// exists but cannot be reached from the root within the depth bound.
	ErrUnreachable = errors.New("target not reachable")
)
