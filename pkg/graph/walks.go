package graph

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// WalkOptions tunes [Graph.RandomWalks]. The zero value selects the
// defaults: minimum length 1, no revisits, node IDs only, edge type read
// from the "type" attribute, time-seeded randomness.
type WalkOptions struct {
	// MinLength is the minimum number of nodes a walk must contain to be
	// kept. Zero means 1. Walks that dead-end earlier are discarded, not
	// retried.
	MinLength int

	// AllowRevisit permits a walk to return to a node it already contains.
	AllowRevisit bool

	// IncludeEdgeTypes interleaves the traversed edges' type strings with
	// the node IDs in each returned walk.
	IncludeEdgeTypes bool

	// EdgeTypeField names the edge attribute holding the type string.
	// Empty means "type"; a missing or non-string attribute reads as
	// "unknown".
	EdgeTypeField string

	// Seed fixes the random source for reproducible walks. Zero seeds from
	// the current time.
	Seed int64
}

// walk accumulates one random walk; edges holds the type strings between
// consecutive nodes when requested.
type walk struct {
	nodes []string
	edges []string
}

// RandomWalks performs numAttempts independent random walks from startID,
// each up to maxLength nodes long. At every step the next edge is chosen
// uniformly at random among the outgoing edges whose target is admissible
// under opts.AllowRevisit; a walk ends early when no admissible edge exists.
// There is no backtracking, so an attempt that dead-ends below the minimum
// length yields nothing — the call may return fewer walks than attempts.
//
// The returned walks are deduplicated by node sequence (and edge types when
// included) in first-seen order. Each walk is a slice of node IDs, with edge
// type strings interleaved when opts.IncludeEdgeTypes is set.
//
// Returns ErrNodeNotFound for an unknown start node and ErrInvalidParameter
// when maxLength is 0 or the effective minimum length exceeds it.
func (g *Graph) RandomWalks(startID string, maxLength, numAttempts int, opts WalkOptions) ([][]string, error) {
	minLength := opts.MinLength
	if minLength <= 0 {
		minLength = 1
	}
	typeField := opts.EdgeTypeField
	if typeField == "" {
		typeField = "type"
	}

	if _, ok := g.nodes[startID]; !ok {
		return nil, fmt.Errorf("%w: start %q", ErrNodeNotFound, startID)
	}
	if maxLength <= 0 {
		return nil, fmt.Errorf("%w: max length must be positive, got %d", ErrInvalidParameter, maxLength)
	}
	if minLength > maxLength {
		return nil, fmt.Errorf("%w: min length %d exceeds max length %d", ErrInvalidParameter, minLength, maxLength)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var kept []walk
	for attempt := 0; attempt < numAttempts; attempt++ {
		w := g.randomWalk(startID, maxLength, opts.AllowRevisit, opts.IncludeEdgeTypes, typeField, rng)
		if len(w.nodes) >= minLength {
			kept = append(kept, w)
		}
	}

	return flattenWalks(dedupeWalks(kept, opts.IncludeEdgeTypes), opts.IncludeEdgeTypes), nil
}

// randomWalk performs a single walk without backtracking.
func (g *Graph) randomWalk(startID string, maxLength int, allowRevisit, includeTypes bool, typeField string, rng *rand.Rand) walk {
	var w walk
	visited := make(map[string]struct{})
	currentID := startID

	for step := 0; step < maxLength; step++ {
		w.nodes = append(w.nodes, currentID)
		if !allowRevisit {
			visited[currentID] = struct{}{}
		}

		current, ok := g.nodes[currentID]
		if !ok {
			break
		}

		type option struct {
			toID     string
			edgeType string
		}
		var options []option
		for _, e := range current.edges {
			toID := e.to.id
			if !allowRevisit {
				if _, seen := visited[toID]; seen {
					continue
				}
			}
			edgeType := ""
			if includeTypes {
				edgeType = "unknown"
				if v, ok := e.attr[typeField]; ok {
					if s, isStr := v.AsString(); isStr {
						edgeType = s
					}
				}
			}
			options = append(options, option{toID: toID, edgeType: edgeType})
		}
		if len(options) == 0 {
			break
		}

		next := options[rng.Intn(len(options))]
		if includeTypes {
			w.edges = append(w.edges, next.edgeType)
		}
		currentID = next.toID
	}
	return w
}

// dedupeWalks drops walks whose node sequence (and edge types, when they are
// part of the output) was already seen, keeping first occurrences in order.
func dedupeWalks(walks []walk, includeTypes bool) []walk {
	seen := make(map[string]struct{}, len(walks))
	unique := walks[:0]
	for _, w := range walks {
		key := strings.Join(w.nodes, ",")
		if includeTypes {
			key += "|" + strings.Join(w.edges, ",")
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, w)
	}
	return unique
}

// flattenWalks renders walks as plain string slices, interleaving edge types
// between node IDs when requested.
func flattenWalks(walks []walk, includeTypes bool) [][]string {
	out := make([][]string, len(walks))
	for i, w := range walks {
		if !includeTypes {
			out[i] = w.nodes
			continue
		}
		flat := make([]string, 0, len(w.nodes)+len(w.edges))
		for j, id := range w.nodes {
			flat = append(flat, id)
			if j < len(w.edges) {
				flat = append(flat, w.edges[j])
			}
		}
		out[i] = flat
	}
	return out
}
