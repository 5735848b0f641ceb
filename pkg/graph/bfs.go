package graph

// queueItem pairs a node with its distance from the traversal root.
type queueItem struct {
	node  *Node
	depth int
}

// BFS walks the graph breadth-first starting at n, following outgoing edges
// that satisfy filter, up to the given depth ([NoLimit] for unbounded). The
// depth bound and result shape match [Node.Traverse]; only the visitation
// order differs.
func (n *Node) BFS(depth int, filter AttrFilter) *Graph {
	found := map[string]*Node{n.id: n}
	visited := map[string]struct{}{n.id: {}}
	order := []string{n.id}

	queue := []queueItem{{node: n, depth: 0}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		if depth >= 0 && item.depth >= depth {
			continue
		}
		for _, e := range item.node.edges {
			if !filter.matches(e) {
				continue
			}
			to := e.to
			if _, seen := visited[to.id]; seen {
				continue
			}
			visited[to.id] = struct{}{}
			found[to.id] = to
			order = append(order, to.id)
			queue = append(queue, queueItem{node: to, depth: item.depth + 1})
		}
	}
	return newResult(found, order)
}

// BFSSearch looks for targetID breadth-first from n, following edges that
// satisfy filter, up to the given depth. It returns as soon as the target is
// seen as a neighbor, without materializing the reachable set, and returns
// nil when the target is not found. Searching for the start node's own ID
// returns the start node.
func (n *Node) BFSSearch(targetID string, depth int, filter AttrFilter) *Node {
	if n.id == targetID {
		return n
	}
	visited := map[string]struct{}{n.id: {}}

	queue := []queueItem{{node: n, depth: 0}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		if depth >= 0 && item.depth >= depth {
			continue
		}
		for _, e := range item.node.edges {
			if !filter.matches(e) {
				continue
			}
			to := e.to
			if to.id == targetID {
				return to
			}
			if _, seen := visited[to.id]; seen {
				continue
			}
			visited[to.id] = struct{}{}
			queue = append(queue, queueItem{node: to, depth: item.depth + 1})
		}
	}
	return nil
}
