// Package graph implements an embeddable, append-only, in-memory directed
// property graph.
//
// Nodes and edges carry dynamically typed attributes ([value.Value]) and
// metadata. Nodes are created through [Graph.AddNode], edges through
// [Graph.AddEdge]; neither is ever removed. Attribute writes go through
// AttrSet, which detects structural changes and fans them out to callbacks
// registered at the graph level — a single OnNodeUpdate registration
// observes every node, because each node shares the graph's callback list.
//
// # Algorithms
//
// Traversals never mutate the graph they read and produce new result graphs:
//
//   - [Node.Traverse] — pre-order depth-first traversal
//   - [Node.BFS] — breadth-first traversal
//   - [Node.BFSSearch] — breadth-first search with early exit
//   - [Graph.ShortestPathBFS] — shortest path as an induced subgraph
//   - [Graph.Expand] — grow a node set into a larger source graph
//   - [Graph.Filter], [Graph.FilterByAttr] — induced subgraphs by ID or attribute
//   - [Graph.RandomWalks] — repeated uniform random walks
//   - [Graph.ParallelBFS] — layer-synchronous BFS on a worker pool
//
// Traverse, BFS, and ParallelBFS results share node instances with the
// traversed graph; ShortestPathBFS, Expand, and Filter rebuild self-contained
// induced subgraphs with fresh instances. All depth parameters treat negative
// values ([NoLimit]) as unbounded, and a node found at the depth bound is
// included without being expanded.
//
// Persistence lives in the codec package, which converts graphs to and from
// an acyclic serializable form.
package graph
