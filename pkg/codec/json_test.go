package codec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/p-sodmann/ironweaver/pkg/value"
)

func TestJSONRoundTrip(t *testing.T) {
	g := triangle(t)

	data, err := MarshalJSON(g)
	if err != nil {
		t.Fatal(err)
	}
	restored, err := UnmarshalJSON(data)
	if err != nil {
		t.Fatal(err)
	}

	if restored.NodeCount() != 3 || restored.EdgeCount() != 3 {
		t.Fatalf("restored counts = %d/%d, want 3/3", restored.NodeCount(), restored.EdgeCount())
	}
	b, err := restored.GetNode("b")
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := b.AttrGet("score"); !ok || !v.Equal(value.FloatVal(0.5)) {
		t.Errorf("b.score = %v, want 0.5", v)
	}
}

func TestJSONCompactFormDecodes(t *testing.T) {
	data, err := MarshalJSON(triangle(t))
	if err != nil {
		t.Fatal(err)
	}
	compact, err := compactJSON(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(compact) >= len(data) {
		t.Fatalf("compact form (%d bytes) not smaller than indented (%d bytes)", len(compact), len(data))
	}

	restored, err := UnmarshalJSON(compact)
	if err != nil {
		t.Fatal(err)
	}
	if restored.NodeCount() != 3 {
		t.Errorf("restored nodes = %d, want 3", restored.NodeCount())
	}
}

func TestJSONStringMatchesMarshal(t *testing.T) {
	g := triangle(t)
	s, err := JSONString(g)
	if err != nil {
		t.Fatal(err)
	}
	if len(s) == 0 || s[0] != '{' {
		t.Fatalf("JSONString does not look like a document: %.40q", s)
	}
}

func TestSaveAndLoadJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")
	if err := SaveJSON(triangle(t), path); err != nil {
		t.Fatal(err)
	}

	restored, err := LoadJSONFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if restored.NodeCount() != 3 || restored.EdgeCount() != 3 {
		t.Errorf("restored counts = %d/%d, want 3/3", restored.NodeCount(), restored.EdgeCount())
	}
}

func TestLoadJSONAuto(t *testing.T) {
	g := triangle(t)
	doc, err := JSONString(g)
	if err != nil {
		t.Fatal(err)
	}

	// Leading whitespace still counts as a document.
	fromDoc, err := LoadJSONAuto("\n\t " + doc)
	if err != nil {
		t.Fatal(err)
	}
	if fromDoc.NodeCount() != 3 {
		t.Errorf("document input nodes = %d, want 3", fromDoc.NodeCount())
	}

	path := filepath.Join(t.TempDir(), "graph.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	fromPath, err := LoadJSONAuto(path)
	if err != nil {
		t.Fatal(err)
	}
	if fromPath.NodeCount() != 3 {
		t.Errorf("path input nodes = %d, want 3", fromPath.NodeCount())
	}

	if _, err := LoadJSONAuto(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file did not error")
	}
}
