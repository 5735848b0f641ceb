package graph

import (
	"fmt"
	"runtime"
	"sync"
)

// maxParallelWorkers caps the BFS worker pool regardless of CPU count.
// Frontier expansion is memory-bound and stops scaling well past this.
const maxParallelWorkers = 8

// bfsState holds the three structures shared by all workers of a parallel
// BFS: the visited set, the found-node map, and the ordered discovery list.
// A single mutex guards them so that claiming an ID and recording its node
// is one atomic step; a check-then-insert split across lock acquisitions
// would let two workers both claim the same neighbor and double-count it.
type bfsState struct {
	mu       sync.Mutex
	visited  map[string]struct{}
	found    map[string]*Node
	nodelist []string
}

// claim atomically inserts n into the visited set and, when it was absent,
// records it in the found map and discovery list. It reports whether this
// call was the one that discovered n.
func (s *bfsState) claim(n *Node) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, seen := s.visited[n.id]; seen {
		return false
	}
	s.visited[n.id] = struct{}{}
	s.found[n.id] = n
	s.nodelist = append(s.nodelist, n.id)
	return true
}

// ParallelBFS performs a layer-synchronous breadth-first search from rootID
// up to maxDepth ([NoLimit] for unbounded), producing the same result shape
// as [Node.BFS]: a graph of the discovered node instances with the discovery
// order in its metadata under "nodelist". The found-node set always equals
// the sequential BFS set; the order within a layer depends on scheduling.
//
// Each frontier is split across a bounded worker pool (at most
// min(GOMAXPROCS, 8) goroutines), and a full barrier separates layers: all
// of layer k is expanded before layer k+1 starts, which is what makes the
// depth bound a true BFS distance. There is no cancellation or timeout; the
// depth bound is the only early exit.
func (g *Graph) ParallelBFS(rootID string, maxDepth int) (*Graph, error) {
	root, ok := g.nodes[rootID]
	if !ok {
		return nil, fmt.Errorf("%w: root %q", ErrNodeNotFound, rootID)
	}

	state := &bfsState{
		visited: make(map[string]struct{}),
		found:   make(map[string]*Node),
	}
	state.claim(root)

	frontier := []*Node{root}
	for depth := 0; len(frontier) > 0; depth++ {
		if maxDepth >= 0 && depth >= maxDepth {
			break
		}
		frontier = expandFrontier(frontier, state)
	}

	return newResult(state.found, state.nodelist), nil
}

// expandFrontier processes one BFS layer with a worker pool and returns the
// next layer. It only returns once every worker has finished, so the caller
// sees a full barrier between layers.
func expandFrontier(frontier []*Node, state *bfsState) []*Node {
	workers := runtime.GOMAXPROCS(0)
	if workers > maxParallelWorkers {
		workers = maxParallelWorkers
	}
	if workers > len(frontier) {
		workers = len(frontier)
	}

	next := make([][]*Node, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			var local []*Node
			// Stride partitioning: worker w owns frontier[w], frontier[w+workers], ...
			for i := w; i < len(frontier); i += workers {
				for _, e := range frontier[i].edges {
					if state.claim(e.to) {
						local = append(local, e.to)
					}
				}
			}
			next[w] = local
		}(w)
	}
	wg.Wait()

	var merged []*Node
	for _, local := range next {
		merged = append(merged, local...)
	}
	return merged
}
