package graph

import "github.com/p-sodmann/ironweaver/pkg/value"

// Edge is a directed connection between two nodes of the same graph.
// Edges are created through [Graph.AddEdge] and are never removed.
type Edge struct {
	// id is empty for edges created by AddEdge; the codec assigns stable
	// identifiers when a graph is exported, and restores them on load.
	id   string
	from *Node
	to   *Node
	attr map[string]value.Value
	meta map[string]value.Value

	graph   *Graph
	updates *callbackList[EdgeUpdateFunc]
}

// ID returns the edge identifier, or "" when none has been assigned.
func (e *Edge) ID() string { return e.id }

// SetID assigns a stable identifier to the edge. The codec uses this to
// preserve edge identity across save/load round trips.
func (e *Edge) SetID(id string) { e.id = id }

// From returns the source node.
func (e *Edge) From() *Node { return e.from }

// To returns the target node.
func (e *Edge) To() *Node { return e.to }

// Meta returns the edge's metadata map. The map is live and may be modified
// freely; unlike attributes, metadata writes fire no callbacks.
func (e *Edge) Meta() map[string]value.Value { return e.meta }

// AttrGet returns the attribute stored under key.
func (e *Edge) AttrGet(key string) (value.Value, bool) {
	v, ok := e.attr[key]
	return v, ok
}

// AttrKeys returns the attribute keys in unspecified order.
func (e *Edge) AttrKeys() []string {
	keys := make([]string, 0, len(e.attr))
	for k := range e.attr {
		keys = append(keys, k)
	}
	return keys
}

// AttrSet stores v under key with the same change-detection and callback
// semantics as [Node.AttrSet].
func (e *Edge) AttrSet(key string, v value.Value) {
	old, had := e.attr[key]
	e.attr[key] = v
	if had && old.Equal(v) {
		return
	}
	if !had {
		old = value.NullVal()
	}
	for _, fn := range e.updates.fns {
		if !fn(e.graph, e, key, v, old) {
			break
		}
	}
}

// AttrListAppend appends v to the list attribute stored under key, creating
// a single-element list when the key is absent.
func (e *Edge) AttrListAppend(key string, v value.Value) error {
	grown, err := appendToListAttr(e.attr, key, v)
	if err != nil {
		return err
	}
	e.AttrSet(key, grown)
	return nil
}
