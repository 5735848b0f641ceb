package graph

import "fmt"

// Filter returns the induced subgraph over exactly the given node IDs: fresh
// copies of those nodes plus every edge of g whose both endpoints are in the
// set. Duplicate IDs are collapsed.
//
// All requested IDs are validated before anything is built; any missing ID
// fails the whole call with ErrNodeNotFound.
func (g *Graph) Filter(ids []string) (*Graph, error) {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	for id := range set {
		if _, ok := g.nodes[id]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
		}
	}
	return inducedSubgraph(g, set), nil
}

// FilterByAttr returns the induced subgraph over every node whose attributes
// contain all entries of attrs with structurally equal values. An empty
// attrs is ErrInvalidParameter; a match set may legitimately be empty.
func (g *Graph) FilterByAttr(attrs AttrFilter) (*Graph, error) {
	if len(attrs) == 0 {
		return nil, fmt.Errorf("%w: no filter criteria", ErrInvalidParameter)
	}
	set := make(map[string]struct{})
	for id, n := range g.nodes {
		match := true
		for key, want := range attrs {
			got, ok := n.attr[key]
			if !ok || !got.Equal(want) {
				match = false
				break
			}
		}
		if match {
			set[id] = struct{}{}
		}
	}
	return inducedSubgraph(g, set), nil
}
