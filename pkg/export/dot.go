// Package export renders graphs into text formats for external tooling.
package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/p-sodmann/ironweaver/pkg/graph"
)

// DOT renders the graph in Graphviz DOT syntax. Nodes and edges appear in
// sorted ID order, so the output is deterministic and diffable. A string
// "label" attribute becomes the node label; other attributes are omitted.
func DOT(g *graph.Graph, name string) string {
	if name == "" {
		name = "graph"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "digraph %q {\n", name)
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [shape=box];\n")

	ids := g.NodeIDs()
	for _, id := range ids {
		n, _ := g.GetNode(id)
		label := id
		if v, ok := n.AttrGet("label"); ok {
			if s, ok := v.AsString(); ok {
				label = s
			}
		}
		fmt.Fprintf(&b, "  %q [label=%q];\n", id, label)
	}

	type dotEdge struct {
		from, to, label string
	}
	var edges []dotEdge
	for _, id := range ids {
		n, _ := g.GetNode(id)
		for _, e := range n.Edges() {
			label := ""
			if v, ok := e.AttrGet("type"); ok {
				if s, ok := v.AsString(); ok {
					label = s
				}
			}
			edges = append(edges, dotEdge{from: e.From().ID(), to: e.To().ID(), label: label})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].from != edges[j].from {
			return edges[i].from < edges[j].from
		}
		if edges[i].to != edges[j].to {
			return edges[i].to < edges[j].to
		}
		return edges[i].label < edges[j].label
	})
	for _, e := range edges {
		if e.label != "" {
			fmt.Fprintf(&b, "  %q -> %q [label=%q];\n", e.from, e.to, e.label)
		} else {
			fmt.Fprintf(&b, "  %q -> %q;\n", e.from, e.to)
		}
	}

	b.WriteString("}\n")
	return b.String()
}
