package codec

import (
	"errors"
	"testing"

	"github.com/p-sodmann/ironweaver/pkg/graph"
	"github.com/p-sodmann/ironweaver/pkg/value"
)

// triangle builds a three-node graph with attributed nodes and edges:
// a -> b, a -> c, b -> c.
func triangle(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	if _, err := g.AddNode("a", map[string]value.Value{
		"label": value.StringVal("alpha"),
		"rank":  value.IntVal(1),
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddNode("b", map[string]value.Value{
		"score": value.FloatVal(0.5),
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddNode("c", nil); err != nil {
		t.Fatal(err)
	}
	for _, pair := range [][2]string{{"a", "b"}, {"a", "c"}, {"b", "c"}} {
		if _, err := g.AddEdge(pair[0], pair[1], map[string]value.Value{
			"type": value.StringVal("knows"),
		}); err != nil {
			t.Fatal(err)
		}
	}
	g.Meta()["source"] = value.StringVal("unit test")
	return g
}

func TestFromGraphEdgeIDsDeterministic(t *testing.T) {
	g := triangle(t)

	sg := FromGraph(g)
	want := []string{"edge_0_a_to_b", "edge_1_a_to_c", "edge_2_b_to_c"}
	for _, id := range want {
		if _, ok := sg.Edges[id]; !ok {
			t.Errorf("missing edge %q, have %v", id, sortedKeys(sg.Edges))
		}
	}
	if len(sg.Edges) != len(want) {
		t.Fatalf("edge count = %d, want %d", len(sg.Edges), len(want))
	}

	// A second export of the same graph synthesizes the same identifiers.
	again := FromGraph(g)
	for id := range sg.Edges {
		if _, ok := again.Edges[id]; !ok {
			t.Errorf("second export lost edge %q", id)
		}
	}
}

func TestFromGraphKeepsExistingEdgeIDs(t *testing.T) {
	g := graph.New()
	if _, err := g.AddNode("x", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddNode("y", nil); err != nil {
		t.Fatal(err)
	}
	e, err := g.AddEdge("x", "y", nil)
	if err != nil {
		t.Fatal(err)
	}
	e.SetID("custom_id")

	sg := FromGraph(g)
	if _, ok := sg.Edges["custom_id"]; !ok {
		t.Fatalf("custom edge id not preserved, have %v", sortedKeys(sg.Edges))
	}
}

func TestFromGraphKeptIDNeverCollides(t *testing.T) {
	// A kept identifier shaped like the synthesized pattern must not absorb
	// a later edge between the same endpoints.
	for _, keptID := range []string{"edge_0_a_to_b", "edge_1_a_to_b"} {
		g := graph.New()
		if _, err := g.AddNode("a", nil); err != nil {
			t.Fatal(err)
		}
		if _, err := g.AddNode("b", nil); err != nil {
			t.Fatal(err)
		}
		kept, err := g.AddEdge("a", "b", map[string]value.Value{"type": value.StringVal("old")})
		if err != nil {
			t.Fatal(err)
		}
		kept.SetID(keptID)
		if _, err := g.AddEdge("a", "b", map[string]value.Value{"type": value.StringVal("new")}); err != nil {
			t.Fatal(err)
		}

		sg := FromGraph(g)
		if len(sg.Edges) != 2 {
			t.Fatalf("kept %s: exported %d edges, want 2 (%v)", keptID, len(sg.Edges), sortedKeys(sg.Edges))
		}
		if _, ok := sg.Edges[keptID]; !ok {
			t.Errorf("kept %s: identifier not preserved", keptID)
		}
		if !sg.Metadata["edge_count"].Equal(value.IntVal(2)) {
			t.Errorf("kept %s: metadata edge_count = %v, want 2", keptID, sg.Metadata["edge_count"])
		}
		a := sg.Nodes["a"]
		if len(a.EdgeIDs) != 2 {
			t.Errorf("kept %s: a.EdgeIDs = %v, want 2 entries", keptID, a.EdgeIDs)
		}

		restored, err := sg.ToGraph()
		if err != nil {
			t.Fatal(err)
		}
		if restored.EdgeCount() != 2 {
			t.Errorf("kept %s: round trip edges = %d, want 2", keptID, restored.EdgeCount())
		}
	}
}

func TestFromGraphEndpointLists(t *testing.T) {
	sg := FromGraph(triangle(t))

	a := sg.Nodes["a"]
	if len(a.EdgeIDs) != 2 || len(a.InverseEdgeIDs) != 0 {
		t.Errorf("a lists = %v / %v, want 2 outgoing, 0 incoming", a.EdgeIDs, a.InverseEdgeIDs)
	}
	c := sg.Nodes["c"]
	if len(c.EdgeIDs) != 0 || len(c.InverseEdgeIDs) != 2 {
		t.Errorf("c lists = %v / %v, want 0 outgoing, 2 incoming", c.EdgeIDs, c.InverseEdgeIDs)
	}
}

func TestFromGraphMetadataBlock(t *testing.T) {
	sg := FromGraph(triangle(t))

	if v, ok := sg.Metadata["version"]; !ok || !v.Equal(value.StringVal(FormatVersion)) {
		t.Errorf("metadata version = %v", v)
	}
	if v := sg.Metadata["node_count"]; !v.Equal(value.IntVal(3)) {
		t.Errorf("metadata node_count = %v, want 3", v)
	}
	if v := sg.Metadata["edge_count"]; !v.Equal(value.IntVal(3)) {
		t.Errorf("metadata edge_count = %v, want 3", v)
	}
	for _, key := range []string{"timestamp", "graph_id"} {
		v, ok := sg.Metadata[key]
		if !ok {
			t.Errorf("metadata missing %q", key)
			continue
		}
		if s, ok := v.AsString(); !ok || s == "" {
			t.Errorf("metadata %s = %v, want non-empty string", key, v)
		}
	}
}

func TestRoundTripPreservesGraph(t *testing.T) {
	g := triangle(t)

	restored, err := FromGraph(g).ToGraph()
	if err != nil {
		t.Fatal(err)
	}

	if restored.NodeCount() != 3 || restored.EdgeCount() != 3 {
		t.Fatalf("restored counts = %d/%d, want 3/3", restored.NodeCount(), restored.EdgeCount())
	}
	a, err := restored.GetNode("a")
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := a.AttrGet("label"); !ok || !v.Equal(value.StringVal("alpha")) {
		t.Errorf("a.label = %v", v)
	}
	if v, ok := a.AttrGet("rank"); !ok || !v.Equal(value.IntVal(1)) {
		t.Errorf("a.rank = %v", v)
	}
	if len(a.Edges()) != 2 {
		t.Errorf("a has %d outgoing edges, want 2", len(a.Edges()))
	}
	c, err := restored.GetNode("c")
	if err != nil {
		t.Fatal(err)
	}
	if len(c.InverseEdges()) != 2 {
		t.Errorf("c has %d incoming edges, want 2", len(c.InverseEdges()))
	}
	if v, ok := a.Edges()[0].AttrGet("type"); !ok || !v.Equal(value.StringVal("knows")) {
		t.Errorf("edge type = %v", v)
	}
	if v := restored.Meta()["source"]; !v.Equal(value.StringVal("unit test")) {
		t.Errorf("graph meta source = %v", v)
	}
}

func TestToGraphDanglingEdge(t *testing.T) {
	sg := &Graph{
		Nodes: map[string]Node{
			"a": {ID: "a"},
		},
		Edges: map[string]Edge{
			"e1": {ID: "e1", FromID: "a", ToID: "ghost"},
		},
	}

	if _, err := sg.ToGraph(); !errors.Is(err, graph.ErrNodeNotFound) {
		t.Fatalf("err = %v, want ErrNodeNotFound", err)
	}
}

func TestToGraphEdgeIDsSurvive(t *testing.T) {
	restored, err := FromGraph(triangle(t)).ToGraph()
	if err != nil {
		t.Fatal(err)
	}
	a, _ := restored.GetNode("a")
	for _, e := range a.Edges() {
		if e.ID() == "" {
			t.Errorf("edge %s->%s lost its id", e.From().ID(), e.To().ID())
		}
	}
}
