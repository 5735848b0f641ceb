package graph

import "github.com/p-sodmann/ironweaver/pkg/value"

// NoLimit disables the depth bound of a traversal. Any negative depth is
// treated the same way.
const NoLimit = -1

// Depth semantics shared by every traversal: a node discovered at distance
// depth from the root is included in the result, but its own outgoing edges
// are not expanded.

// AttrFilter matches entities by attribute content: an entity qualifies only
// if every filter key is present in its attributes with a structurally equal
// value; a missing key disqualifies it. Traversals use an AttrFilter to
// restrict which edges may be followed, and [Graph.FilterByAttr] uses one to
// select nodes. A nil filter admits everything.
type AttrFilter map[string]value.Value

// matches reports whether e satisfies every filter entry.
func (f AttrFilter) matches(e *Edge) bool {
	for key, want := range f {
		got, ok := e.attr[key]
		if !ok || !got.Equal(want) {
			return false
		}
	}
	return true
}

// Traverse walks the graph depth-first in pre-order starting at n, following
// outgoing edges that satisfy filter, up to the given depth ([NoLimit] for
// unbounded). Cycles are cut by a visited set keyed on node ID; the first
// visit wins.
//
// The result graph holds the visited node instances (shared with the
// original graph, not copies) and records the visitation order in its
// metadata under "nodelist".
func (n *Node) Traverse(depth int, filter AttrFilter) *Graph {
	found := make(map[string]*Node)
	visited := make(map[string]struct{})
	var order []string
	traverseRecursive(n, depth, 0, found, visited, &order, filter)
	return newResult(found, order)
}

func traverseRecursive(n *Node, depth, current int, found map[string]*Node, visited map[string]struct{}, order *[]string, filter AttrFilter) {
	if _, seen := visited[n.id]; seen {
		return
	}
	visited[n.id] = struct{}{}
	found[n.id] = n
	*order = append(*order, n.id)

	if depth >= 0 && current >= depth {
		return
	}
	for _, e := range n.edges {
		if filter.matches(e) {
			traverseRecursive(e.to, depth, current+1, found, visited, order, filter)
		}
	}
}
