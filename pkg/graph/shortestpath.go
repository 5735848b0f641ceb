package graph

import "fmt"

// ShortestPathBFS finds the shortest path from rootID to targetID by
// breadth-first search with parent pointers, stopping at the first discovery
// of the target.
//
// The result is the induced subgraph over the path's node set: fresh node
// and edge instances, including every edge of the original graph whose both
// endpoints lie on the path, not only the tree edges the search followed.
// The path order from root to target is recorded in the result's meta under
// "nodelist". rootID == targetID yields a single isolated node.
//
// Returns ErrNodeNotFound when either endpoint is absent, and ErrUnreachable
// when the target exists but is not discovered within maxDepth ([NoLimit]
// for unbounded).
func (g *Graph) ShortestPathBFS(rootID, targetID string, maxDepth int) (*Graph, error) {
	root, ok := g.nodes[rootID]
	if !ok {
		return nil, fmt.Errorf("%w: root %q", ErrNodeNotFound, rootID)
	}
	if _, ok := g.nodes[targetID]; !ok {
		return nil, fmt.Errorf("%w: target %q", ErrNodeNotFound, targetID)
	}
	if rootID == targetID {
		sub := inducedSubgraph(g, map[string]struct{}{rootID: {}})
		setNodelist(sub, []string{rootID})
		return sub, nil
	}

	visited := map[string]struct{}{rootID: {}}
	parent := make(map[string]string)

	queue := []queueItem{{node: root, depth: 0}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		if maxDepth >= 0 && item.depth >= maxDepth {
			continue
		}
		for _, e := range item.node.edges {
			to := e.to
			if _, seen := visited[to.id]; seen {
				continue
			}
			visited[to.id] = struct{}{}
			parent[to.id] = item.node.id

			if to.id == targetID {
				ordered := []string{targetID}
				for cur := targetID; ; {
					p, ok := parent[cur]
					if !ok {
						break
					}
					ordered = append(ordered, p)
					cur = p
				}
				// parent chain runs target to root
				for i, j := 0, len(ordered)-1; i < j; i, j = i+1, j-1 {
					ordered[i], ordered[j] = ordered[j], ordered[i]
				}
				path := make(map[string]struct{}, len(ordered))
				for _, id := range ordered {
					path[id] = struct{}{}
				}
				sub := inducedSubgraph(g, path)
				setNodelist(sub, ordered)
				return sub, nil
			}
			queue = append(queue, queueItem{node: to, depth: item.depth + 1})
		}
	}

	return nil, fmt.Errorf("%w: %q from %q (max depth %d)", ErrUnreachable, targetID, rootID, maxDepth)
}
