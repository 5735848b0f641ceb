package graph

import "github.com/p-sodmann/ironweaver/pkg/value"

// Node is a vertex in the graph. Nodes are created through [Graph.AddNode]
// (or reconstituted by the codec) and are never removed.
//
// Every edge in the outgoing list starts at this node, and every edge in the
// incoming list ends at it; [Graph.AddEdge] maintains both sides.
type Node struct {
	id      string
	attr    map[string]value.Value
	meta    map[string]value.Value
	edges   []*Edge
	inverse []*Edge

	// graph is a non-owning back-reference to the graph that created the
	// node. It is passed to update callbacks and may be nil for nodes held
	// by algorithm result graphs.
	graph   *Graph
	updates *callbackList[NodeUpdateFunc]
}

// ID returns the node's unique identifier.
func (n *Node) ID() string { return n.id }

// Edges returns the outgoing edges in insertion order.
// The slice is a read-only view; do not modify it.
func (n *Node) Edges() []*Edge { return n.edges }

// InverseEdges returns the incoming edges in insertion order.
// The slice is a read-only view; do not modify it.
func (n *Node) InverseEdges() []*Edge { return n.inverse }

// Meta returns the node's metadata map. The map is live and may be modified
// freely; unlike attributes, metadata writes fire no callbacks.
func (n *Node) Meta() map[string]value.Value { return n.meta }

// AttrGet returns the attribute stored under key.
func (n *Node) AttrGet(key string) (value.Value, bool) {
	v, ok := n.attr[key]
	return v, ok
}

// AttrKeys returns the attribute keys in unspecified order.
func (n *Node) AttrKeys() []string {
	keys := make([]string, 0, len(n.attr))
	for k := range n.attr {
		keys = append(keys, k)
	}
	return keys
}

// AttrSet stores v under key. The write always happens; update callbacks
// fire only when the new value differs structurally from the old one. A
// callback returning false halts the remaining callbacks for this change.
func (n *Node) AttrSet(key string, v value.Value) {
	old, had := n.attr[key]
	n.attr[key] = v
	if had && old.Equal(v) {
		return
	}
	if !had {
		old = value.NullVal()
	}
	for _, fn := range n.updates.fns {
		if !fn(n.graph, n, key, v, old) {
			break
		}
	}
}

// AttrListAppend appends v to the list attribute stored under key, creating
// a single-element list when the key is absent. It fires update callbacks
// like AttrSet, with the grown list as the new value.
func (n *Node) AttrListAppend(key string, v value.Value) error {
	grown, err := appendToListAttr(n.attr, key, v)
	if err != nil {
		return err
	}
	n.AttrSet(key, grown)
	return nil
}
