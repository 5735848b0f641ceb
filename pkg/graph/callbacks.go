package graph

import "github.com/p-sodmann/ironweaver/pkg/value"

// NodeAddFunc observes node creation. It receives the owning graph and the
// new node. Returning false stops later callbacks in the chain; the node
// stays added either way.
type NodeAddFunc func(g *Graph, n *Node) bool

// EdgeAddFunc observes edge creation, with the same chain semantics as
// [NodeAddFunc].
type EdgeAddFunc func(g *Graph, e *Edge) bool

// NodeUpdateFunc observes attribute changes on a node. old is the previous
// value, or the null Value when the key was not set before. Returning false
// stops later callbacks for this change.
type NodeUpdateFunc func(g *Graph, n *Node, key string, new, old value.Value) bool

// EdgeUpdateFunc observes attribute changes on an edge, with the same
// semantics as [NodeUpdateFunc].
type EdgeUpdateFunc func(g *Graph, e *Edge, key string, new, old value.Value) bool

// callbackList is a shared, append-only callback registry. Every node (or
// edge) in a graph points at the graph's single list, so one graph-level
// registration observes every entity without per-entity bookkeeping.
type callbackList[F any] struct {
	fns []F
}

func (l *callbackList[F]) add(fn F) {
	l.fns = append(l.fns, fn)
}

// OnNodeAdd registers fn to run after every successful AddNode, in
// registration order.
func (g *Graph) OnNodeAdd(fn NodeAddFunc) {
	g.onNodeAdd = append(g.onNodeAdd, fn)
}

// OnEdgeAdd registers fn to run after every successful AddEdge, in
// registration order.
func (g *Graph) OnEdgeAdd(fn EdgeAddFunc) {
	g.onEdgeAdd = append(g.onEdgeAdd, fn)
}

// OnNodeUpdate registers fn to run whenever AttrSet changes an attribute on
// any node of this graph, including nodes added after the registration.
func (g *Graph) OnNodeUpdate(fn NodeUpdateFunc) {
	g.nodeUpdates.add(fn)
}

// OnEdgeUpdate registers fn to run whenever AttrSet changes an attribute on
// any edge of this graph, including edges added after the registration.
func (g *Graph) OnEdgeUpdate(fn EdgeUpdateFunc) {
	g.edgeUpdates.add(fn)
}

func fireNodeAdd(fns []NodeAddFunc, g *Graph, n *Node) {
	for _, fn := range fns {
		if !fn(g, n) {
			break
		}
	}
}

func fireEdgeAdd(fns []EdgeAddFunc, g *Graph, e *Edge) {
	for _, fn := range fns {
		if !fn(g, e) {
			break
		}
	}
}
