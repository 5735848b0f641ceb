package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/p-sodmann/ironweaver/pkg/graph"
)

// MarshalJSON encodes a live graph as indented JSON.
func MarshalJSON(g *graph.Graph) ([]byte, error) {
	data, err := json.MarshalIndent(FromGraph(g), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode graph: %w", err)
	}
	return data, nil
}

// JSONString is MarshalJSON as a string, for logging and debugging.
func JSONString(g *graph.Graph) (string, error) {
	data, err := MarshalJSON(g)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// SaveJSON writes the graph to path as indented JSON.
func SaveJSON(g *graph.Graph, path string) error {
	data, err := MarshalJSON(g)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write graph: %w", err)
	}
	return nil
}

// UnmarshalJSON decodes a graph previously produced by MarshalJSON.
func UnmarshalJSON(data []byte) (*graph.Graph, error) {
	var sg Graph
	if err := json.Unmarshal(data, &sg); err != nil {
		return nil, fmt.Errorf("decode graph: %w", err)
	}
	return sg.ToGraph()
}

// LoadJSONFile reads a graph from a JSON file on disk.
func LoadJSONFile(path string) (*graph.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph: %w", err)
	}
	return UnmarshalJSON(data)
}

// LoadJSONAuto accepts either a JSON document or a path to one. Input whose
// first non-space byte is '{' is treated as a document, anything else as a
// file path.
func LoadJSONAuto(input string) (*graph.Graph, error) {
	trimmed := strings.TrimLeftFunc(input, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if strings.HasPrefix(trimmed, "{") {
		return UnmarshalJSON([]byte(trimmed))
	}
	return LoadJSONFile(input)
}

// compactJSON is used by tests to compare documents ignoring whitespace.
func compactJSON(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
