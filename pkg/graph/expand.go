package graph

import "fmt"

// Expand grows the receiver's node set by breadth-first exploration inside
// source, which holds the full graph data. From every node of g that also
// exists in source, neighbors are discovered up to depth steps out; the
// result is the induced subgraph of source over the union of g's node IDs
// and everything discovered.
//
// A depth of 0 copies the receiver's node set without expansion; a negative
// depth is ErrInvalidParameter. Nodes of g absent from source contribute
// nothing beyond their ID.
func (g *Graph) Expand(source *Graph, depth int) (*Graph, error) {
	if depth < 0 {
		return nil, fmt.Errorf("%w: expand depth %d", ErrInvalidParameter, depth)
	}

	discovered := make(map[string]struct{}, len(g.nodes))
	for id := range g.nodes {
		discovered[id] = struct{}{}
	}

	for id := range g.nodes {
		start, ok := source.nodes[id]
		if !ok {
			continue
		}
		visited := map[string]struct{}{id: {}}

		queue := []queueItem{{node: start, depth: 0}}
		for len(queue) > 0 {
			item := queue[0]
			queue = queue[1:]

			if item.depth >= depth {
				continue
			}
			for _, e := range item.node.edges {
				to := e.to
				if _, seen := visited[to.id]; seen {
					continue
				}
				visited[to.id] = struct{}{}
				discovered[to.id] = struct{}{}
				queue = append(queue, queueItem{node: to, depth: item.depth + 1})
			}
		}
	}

	// Only IDs present in source can be materialized; stray receiver-only
	// IDs would make the induced rebuild dereference missing nodes.
	material := make(map[string]struct{}, len(discovered))
	for id := range discovered {
		if _, ok := source.nodes[id]; ok {
			material[id] = struct{}{}
		}
	}
	return inducedSubgraph(source, material), nil
}
