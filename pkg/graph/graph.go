package graph

import (
	"fmt"
	"sort"

	"github.com/p-sodmann/ironweaver/pkg/value"
)

// Graph is an append-only, in-memory directed property graph. It owns the
// node table and the four callback registries; nodes and edges reference
// each other and their graph freely, which the garbage collector handles
// without any arena or reference-counting scheme.
//
// Graphs are created empty with [New] or reconstituted wholesale by the
// codec package. Nodes and edges are never removed.
//
// A Graph is not safe for concurrent mutation. Algorithms only read the
// graph they run on; mutating a graph while an algorithm reads it is
// undefined. [Graph.ParallelBFS] is internally synchronized and safe to run
// concurrently with other readers.
type Graph struct {
	nodes map[string]*Node
	meta  map[string]value.Value

	onNodeAdd   []NodeAddFunc
	onEdgeAdd   []EdgeAddFunc
	nodeUpdates *callbackList[NodeUpdateFunc]
	edgeUpdates *callbackList[EdgeUpdateFunc]
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes:       make(map[string]*Node),
		meta:        make(map[string]value.Value),
		nodeUpdates: &callbackList[NodeUpdateFunc]{},
		edgeUpdates: &callbackList[EdgeUpdateFunc]{},
	}
}

// Meta returns the graph-level metadata map. The map is live and never nil.
// Traversal results store their visitation order here under "nodelist".
func (g *Graph) Meta() map[string]value.Value { return g.meta }

// AddNode creates a node with the given unique ID and optional attributes
// (attr may be nil) and adds it to the graph.
//
// The new node shares the graph's node-update callback list, so graph-level
// OnNodeUpdate registrations observe its future attribute changes. After the
// node is wired in, OnNodeAdd callbacks run in registration order; a
// callback returning false stops the remaining ones but does not undo the
// add. Returns ErrDuplicateID if the ID is already present.
func (g *Graph) AddNode(id string, attr map[string]value.Value) (*Node, error) {
	if _, exists := g.nodes[id]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	n := &Node{
		id:      id,
		attr:    cloneAttrs(attr),
		meta:    make(map[string]value.Value),
		graph:   g,
		updates: g.nodeUpdates,
	}
	g.nodes[id] = n
	fireNodeAdd(g.onNodeAdd, g, n)
	return n, nil
}

// AddEdge creates a directed edge between two existing nodes with optional
// attributes (attr may be nil).
//
// Creation is all-or-nothing: when either endpoint is missing the graph is
// left untouched and ErrNodeNotFound is returned. On success the edge is
// appended to the source's outgoing list and the target's incoming list,
// wired to the graph's edge-update callback list, and OnEdgeAdd callbacks
// run with the same chain semantics as node adds.
func (g *Graph) AddEdge(fromID, toID string, attr map[string]value.Value) (*Edge, error) {
	from, ok := g.nodes[fromID]
	if !ok {
		return nil, fmt.Errorf("%w: edge source %q", ErrNodeNotFound, fromID)
	}
	to, ok := g.nodes[toID]
	if !ok {
		return nil, fmt.Errorf("%w: edge target %q", ErrNodeNotFound, toID)
	}
	e := &Edge{
		from:    from,
		to:      to,
		attr:    cloneAttrs(attr),
		meta:    make(map[string]value.Value),
		graph:   g,
		updates: g.edgeUpdates,
	}
	from.edges = append(from.edges, e)
	to.inverse = append(to.inverse, e)
	fireEdgeAdd(g.onEdgeAdd, g, e)
	return e, nil
}

// GetNode returns the node with the given ID, or ErrNodeNotFound.
func (g *Graph) GetNode(id string) (*Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	return n, nil
}

// HasNode reports whether a node with the given ID exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the total number of edges, counted over every node's
// outgoing list.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, n := range g.nodes {
		total += len(n.edges)
	}
	return total
}

// NodeIDs returns all node IDs in sorted order.
func (g *Graph) NodeIDs() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Nodes returns all nodes in unspecified order. The returned slice contains
// the live node pointers.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, n)
	}
	return nodes
}

// newResult wraps the nodes collected by a traversal into a result graph.
// The nodes are the live instances from the traversed graph, not copies, and
// keep their original callback wiring; the result graph's own registries
// start empty. The visitation order is recorded in meta under "nodelist".
func newResult(nodes map[string]*Node, order []string) *Graph {
	g := New()
	g.nodes = nodes
	setNodelist(g, order)
	return g
}

// setNodelist records a visitation or path order in the graph's meta.
func setNodelist(g *Graph, order []string) {
	items := make([]value.Value, len(order))
	for i, id := range order {
		items[i] = value.StringVal(id)
	}
	g.meta["nodelist"] = value.ListVal(items...)
}

// inducedSubgraph builds a self-contained graph over the given node IDs:
// fresh node instances carrying copies of the originals' attributes and
// metadata, plus a fresh edge for every edge of src whose both endpoints are
// in the set. Incoming edge lists are populated alongside outgoing ones, so
// the node/edge invariants hold on the result. Every ID must exist in src.
func inducedSubgraph(src *Graph, ids map[string]struct{}) *Graph {
	out := New()
	for id := range ids {
		orig := src.nodes[id]
		out.nodes[id] = &Node{
			id:      id,
			attr:    cloneAttrs(orig.attr),
			meta:    cloneAttrs(orig.meta),
			graph:   out,
			updates: out.nodeUpdates,
		}
	}
	for id := range ids {
		for _, e := range src.nodes[id].edges {
			if _, ok := ids[e.to.id]; !ok {
				continue
			}
			from, to := out.nodes[id], out.nodes[e.to.id]
			ne := &Edge{
				id:      e.id,
				from:    from,
				to:      to,
				attr:    cloneAttrs(e.attr),
				meta:    cloneAttrs(e.meta),
				graph:   out,
				updates: out.edgeUpdates,
			}
			from.edges = append(from.edges, ne)
			to.inverse = append(to.inverse, ne)
		}
	}
	return out
}
