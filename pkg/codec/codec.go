package codec

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/p-sodmann/ironweaver/pkg/graph"
	"github.com/p-sodmann/ironweaver/pkg/value"
)

// FormatVersion is recorded in the metadata block of every exported graph.
const FormatVersion = "1.0"

// Node is the acyclic representation of a graph node. Edges are referenced
// by ID instead of by pointer, which breaks the node/edge reference cycle of
// the live graph and makes the structure directly encodable.
type Node struct {
	ID             string                 `json:"id"`
	Attr           map[string]value.Value `json:"attr"`
	Meta           map[string]value.Value `json:"meta"`
	EdgeIDs        []string               `json:"edge_ids"`
	InverseEdgeIDs []string               `json:"inverse_edge_ids"`
}

// Edge is the acyclic representation of a graph edge.
type Edge struct {
	ID     string                 `json:"id"`
	FromID string                 `json:"from_id"`
	ToID   string                 `json:"to_id"`
	Attr   map[string]value.Value `json:"attr"`
	Meta   map[string]value.Value `json:"meta"`
}

// Graph is the complete portable representation of a graph: id-keyed node
// and edge tables, the graph-level meta map, and a metadata block describing
// the export (format version, counts, timestamp, graph id).
type Graph struct {
	Nodes    map[string]Node        `json:"nodes"`
	Edges    map[string]Edge        `json:"edges"`
	Meta     map[string]value.Value `json:"meta"`
	Metadata map[string]value.Value `json:"metadata"`
}

// FromGraph converts a live graph into its portable form in two passes:
// first a shell per node with attributes and metadata copied, then a walk
// over every node's outgoing edges that assigns each edge an identifier and
// records it on both endpoints. Nodes are walked in sorted ID order, so the
// synthesized edge identifiers are deterministic for a given graph.
//
// Edges that already carry an identifier (a graph loaded from disk) keep it;
// all others get `edge_<counter>_<from>_to_<to>`, skipping counters whose
// pattern matches a kept identifier so no two edges share an ID.
func FromGraph(g *graph.Graph) *Graph {
	out := &Graph{
		Nodes:    make(map[string]Node, g.NodeCount()),
		Edges:    make(map[string]Edge),
		Meta:     copyValues(g.Meta()),
		Metadata: make(map[string]value.Value),
	}

	ids := g.NodeIDs()
	for _, id := range ids {
		n, _ := g.GetNode(id)
		out.Nodes[id] = Node{
			ID:             id,
			Attr:           copyAttrs(n),
			Meta:           copyValues(n.Meta()),
			EdgeIDs:        []string{},
			InverseEdgeIDs: []string{},
		}
	}

	used := make(map[string]bool)
	for _, id := range ids {
		n, _ := g.GetNode(id)
		for _, e := range n.Edges() {
			if eid := e.ID(); eid != "" {
				used[eid] = true
			}
		}
	}

	counter := 0
	for _, id := range ids {
		n, _ := g.GetNode(id)
		for _, e := range n.Edges() {
			fromID, toID := e.From().ID(), e.To().ID()
			edgeID := e.ID()
			if edgeID == "" {
				for {
					edgeID = fmt.Sprintf("edge_%d_%s_to_%s", counter, fromID, toID)
					counter++
					if !used[edgeID] {
						break
					}
				}
			}
			used[edgeID] = true

			out.Edges[edgeID] = Edge{
				ID:     edgeID,
				FromID: fromID,
				ToID:   toID,
				Attr:   copyEdgeAttrs(e),
				Meta:   copyValues(e.Meta()),
			}

			from := out.Nodes[fromID]
			from.EdgeIDs = append(from.EdgeIDs, edgeID)
			out.Nodes[fromID] = from

			to := out.Nodes[toID]
			to.InverseEdgeIDs = append(to.InverseEdgeIDs, edgeID)
			out.Nodes[toID] = to
		}
	}

	out.Metadata["version"] = value.StringVal(FormatVersion)
	out.Metadata["node_count"] = value.IntVal(int64(len(out.Nodes)))
	out.Metadata["edge_count"] = value.IntVal(int64(len(out.Edges)))
	out.Metadata["timestamp"] = value.StringVal(time.Now().UTC().Format(time.RFC3339))
	out.Metadata["graph_id"] = value.StringVal(uuid.NewString())
	return out
}

// ToGraph reconstitutes a live graph. Nodes are instantiated first, then
// edges: adding an edge requires both endpoint nodes to exist, and appending
// through the graph keeps each node's outgoing and incoming lists
// consistent. An edge referencing a missing node fails the whole call with
// an error wrapping graph.ErrNodeNotFound, and no partial graph is returned.
func (sg *Graph) ToGraph() (*graph.Graph, error) {
	g := graph.New()

	nodeIDs := make([]string, 0, len(sg.Nodes))
	for id := range sg.Nodes {
		nodeIDs = append(nodeIDs, id)
	}
	sort.Strings(nodeIDs)
	for _, id := range nodeIDs {
		sn := sg.Nodes[id]
		n, err := g.AddNode(sn.ID, sn.Attr)
		if err != nil {
			return nil, fmt.Errorf("restore node %q: %w", id, err)
		}
		for k, v := range sn.Meta {
			n.Meta()[k] = v
		}
	}

	edgeIDs := make([]string, 0, len(sg.Edges))
	for id := range sg.Edges {
		edgeIDs = append(edgeIDs, id)
	}
	sort.Strings(edgeIDs)
	for _, id := range edgeIDs {
		se := sg.Edges[id]
		e, err := g.AddEdge(se.FromID, se.ToID, se.Attr)
		if err != nil {
			return nil, fmt.Errorf("restore edge %q: %w", id, err)
		}
		e.SetID(se.ID)
		for k, v := range se.Meta {
			e.Meta()[k] = v
		}
	}

	for k, v := range sg.Meta {
		g.Meta()[k] = v
	}
	return g, nil
}

func copyValues(src map[string]value.Value) map[string]value.Value {
	dst := make(map[string]value.Value, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func copyAttrs(n *graph.Node) map[string]value.Value {
	dst := make(map[string]value.Value)
	for _, k := range n.AttrKeys() {
		v, _ := n.AttrGet(k)
		dst[k] = v
	}
	return dst
}

func copyEdgeAttrs(e *graph.Edge) map[string]value.Value {
	dst := make(map[string]value.Value)
	for _, k := range e.AttrKeys() {
		v, _ := e.AttrGet(k)
		dst[k] = v
	}
	return dst
}
