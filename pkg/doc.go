// Package pkg provides the core libraries of ironweaver, an embeddable
// in-memory directed property-graph engine.
//
// # Overview
//
// Graphs are built in memory node by node, queried with traversal and
// sampling algorithms, and serialized to portable files. The pkg directory
// is organized by concern:
//
//  1. [value] - the tagged attribute value type shared by every layer
//  2. [graph] - nodes, edges, callbacks, and the traversal algorithms
//  3. [codec] - JSON and binary serialization
//  4. [cache] - query result caching (file, Redis, null backends)
//  5. [export] - Graphviz DOT output
//  6. [observability] - optional metrics/tracing hooks
//  7. [buildinfo] - build-time version information
//
// # Quick Start
//
// Build a small graph, walk it, and save it:
//
//	import (
//	    "github.com/p-sodmann/ironweaver/pkg/codec"
//	    "github.com/p-sodmann/ironweaver/pkg/graph"
//	    "github.com/p-sodmann/ironweaver/pkg/value"
//	)
//
//	g := graph.New()
//	g.AddNode("alice", map[string]value.Value{"label": value.StringVal("Alice")})
//	g.AddNode("bob", nil)
//	g.AddEdge("alice", "bob", map[string]value.Value{"type": value.StringVal("knows")})
//
//	alice, _ := g.GetNode("alice")
//	reachable := alice.BFS(graph.NoLimit, nil)
//
//	codec.SaveJSON(reachable, "reachable.json")
//
// # Data Flow
//
// The typical flow through ironweaver:
//
//	build or load a Graph (graph.New / codec.Load*)
//	         ↓
//	query it (Traverse, BFS, ShortestPathBFS, RandomWalks, ...)
//	         ↓
//	persist or export results (codec.Save*, export.DOT)
//
// Query results are themselves graphs, so queries compose: a BFS result can
// be expanded back into the full graph, filtered, and saved.
package pkg
