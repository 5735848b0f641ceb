package graph_test

import (
	"fmt"

	"github.com/p-sodmann/ironweaver/pkg/graph"
	"github.com/p-sodmann/ironweaver/pkg/value"
)

func ExampleGraph_basic() {
	// Build a small social graph: alice knows bob, bob knows carol
	g := graph.New()
	_, _ = g.AddNode("alice", map[string]value.Value{"age": value.IntVal(30)})
	_, _ = g.AddNode("bob", nil)
	_, _ = g.AddNode("carol", nil)
	_, _ = g.AddEdge("alice", "bob", map[string]value.Value{"type": value.StringVal("knows")})
	_, _ = g.AddEdge("bob", "carol", map[string]value.Value{"type": value.StringVal("knows")})

	fmt.Println("Nodes:", g.NodeCount())
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("IDs:", g.NodeIDs())
	// Output:
	// Nodes: 3
	// Edges: 2
	// IDs: [alice bob carol]
}

func ExampleNode_BFS() {
	g := graph.New()
	for _, id := range []string{"a", "b", "c", "d"} {
		_, _ = g.AddNode(id, nil)
	}
	_, _ = g.AddEdge("a", "b", nil)
	_, _ = g.AddEdge("a", "c", nil)
	_, _ = g.AddEdge("b", "d", nil)

	a, _ := g.GetNode("a")

	// Unbounded: everything reachable from a
	fmt.Println("All:", a.BFS(graph.NoLimit, nil).NodeIDs())

	// Depth 1: direct neighbors only
	fmt.Println("Near:", a.BFS(1, nil).NodeIDs())
	// Output:
	// All: [a b c d]
	// Near: [a b c]
}

func ExampleGraph_ShortestPathBFS() {
	g := graph.New()
	for _, id := range []string{"start", "mid", "end", "detour"} {
		_, _ = g.AddNode(id, nil)
	}
	_, _ = g.AddEdge("start", "mid", nil)
	_, _ = g.AddEdge("mid", "end", nil)
	_, _ = g.AddEdge("start", "detour", nil)
	_, _ = g.AddEdge("detour", "mid", nil)

	path, err := g.ShortestPathBFS("start", "end", graph.NoLimit)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("Path nodes:", path.NodeCount())
	// Output:
	// Path nodes: 3
}

func ExampleGraph_OnNodeUpdate() {
	g := graph.New()
	n, _ := g.AddNode("doc", nil)

	// Observe attribute changes; returning false would halt later callbacks
	g.OnNodeUpdate(func(_ *graph.Graph, node *graph.Node, key string, newV, oldV value.Value) bool {
		fmt.Printf("%s.%s: %v -> %v\n", node.ID(), key, oldV, newV)
		return true
	})

	n.AttrSet("status", value.StringVal("draft"))
	n.AttrSet("status", value.StringVal("draft")) // unchanged, no callback
	n.AttrSet("status", value.StringVal("final"))
	// Output:
	// doc.status: null -> "draft"
	// doc.status: "draft" -> "final"
}
