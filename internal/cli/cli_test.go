package cli

import (
	"path/filepath"
	"testing"

	"github.com/p-sodmann/ironweaver/pkg/codec"
	"github.com/p-sodmann/ironweaver/pkg/graph"
	"github.com/p-sodmann/ironweaver/pkg/value"
)

func TestIsBinaryPath(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"graph.json", false},
		{"graph.iwb", true},
		{"graph.bin", true},
		{"graph.IWB", true},
		{"dir.iwb/graph.json", false},
		{"graph", false},
	}
	for _, tc := range cases {
		if got := isBinaryPath(tc.path); got != tc.want {
			t.Errorf("isBinaryPath(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func testGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, id := range []string{"a", "b", "c", "lone"} {
		if _, err := g.AddNode(id, nil); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := g.AddEdge("a", "b", map[string]value.Value{"type": value.StringVal("knows")}); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddEdge("a", "c", nil); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestLoadGraphDispatch(t *testing.T) {
	dir := t.TempDir()
	g := testGraph(t)

	jsonPath := filepath.Join(dir, "graph.json")
	if err := codec.SaveJSON(g, jsonPath); err != nil {
		t.Fatal(err)
	}
	binPath := filepath.Join(dir, "graph.iwb")
	if err := codec.SaveBinary(g, binPath); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{jsonPath, binPath} {
		loaded, raw, err := loadGraph(path)
		if err != nil {
			t.Fatalf("loadGraph(%s): %v", path, err)
		}
		if loaded.NodeCount() != 4 || loaded.EdgeCount() != 2 {
			t.Errorf("%s: counts = %d/%d, want 4/2", path, loaded.NodeCount(), loaded.EdgeCount())
		}
		if len(raw) == 0 {
			t.Errorf("%s: no raw bytes returned", path)
		}
	}

	if _, _, err := loadGraph(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("missing file did not error")
	}
}

func TestComputeStats(t *testing.T) {
	stats := computeStats(testGraph(t))

	if stats.Nodes != 4 || stats.Edges != 2 {
		t.Errorf("counts = %d/%d, want 4/2", stats.Nodes, stats.Edges)
	}
	if stats.Sources != 1 {
		t.Errorf("sources = %d, want 1 (a)", stats.Sources)
	}
	if stats.Sinks != 2 {
		t.Errorf("sinks = %d, want 2 (b, c)", stats.Sinks)
	}
	if stats.Isolated != 1 {
		t.Errorf("isolated = %d, want 1 (lone)", stats.Isolated)
	}
	if stats.MaxOutDegree != 2 {
		t.Errorf("max out-degree = %d, want 2", stats.MaxOutDegree)
	}
	if stats.AvgOutDegree != 0.5 {
		t.Errorf("avg out-degree = %v, want 0.5", stats.AvgOutDegree)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := computeStats(graph.New())
	if stats != (graphStats{}) {
		t.Errorf("empty graph stats = %+v, want zero", stats)
	}
}
