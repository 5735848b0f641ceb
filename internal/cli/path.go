package cli

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/p-sodmann/ironweaver/pkg/cache"
	"github.com/p-sodmann/ironweaver/pkg/graph"
	"github.com/p-sodmann/ironweaver/pkg/observability"
)

// pathCommand creates the path command for shortest-path queries.
func (c *CLI) pathCommand() *cobra.Command {
	var (
		maxDepth int
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "path [graph-file] [root-id] [target-id]",
		Short: "Find the shortest path between two nodes",
		Long: `Find the shortest path between two nodes.

The path is computed by breadth-first search over outgoing edges, so it is
shortest in hop count. Results are cached keyed by the graph file contents
and the query parameters; editing the file invalidates its entries.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPath(cmd.Context(), args[0], args[1], args[2], maxDepth, noCache)
		},
	}

	cmd.Flags().IntVar(&maxDepth, "max-depth", graph.NoLimit, "maximum search depth (-1 for unlimited)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runPath(ctx context.Context, input, rootID, targetID string, maxDepth int, noCache bool) error {
	g, raw, err := loadGraph(input)
	if err != nil {
		return err
	}

	store := c.newCache(ctx, noCache)
	defer store.Close()
	key := c.keyer().PathKey(cache.Hash(raw), rootID, targetID, maxDepth)

	var path []string
	cached := false
	if data, hit, err := store.Get(ctx, key); err == nil && hit {
		cached = json.Unmarshal(data, &path) == nil
	}

	if cached {
		observability.Cache().OnCacheHit(ctx, "path")
	} else {
		observability.Cache().OnCacheMiss(ctx, "path")

		spinner := newSpinner(ctx, "Searching...")
		spinner.Start()
		observability.Query().OnQueryStart(ctx, "path", g.NodeCount())
		start := time.Now()
		sub, err := g.ShortestPathBFS(rootID, targetID, maxDepth)
		observability.Query().OnQueryComplete(ctx, "path", resultSize(sub), time.Since(start), err)
		if err != nil {
			spinner.StopWithError("Search failed")
			if errors.Is(err, graph.ErrUnreachable) {
				printDetail("%s is not reachable from %s", targetID, rootID)
			}
			return err
		}
		spinner.Stop()

		path = pathFromResult(sub)
		if data, err := json.Marshal(path); err == nil {
			_ = store.Set(ctx, key, data, c.cacheTTL())
			observability.Cache().OnCacheSet(ctx, "path", len(data))
		}
	}

	printSuccess("Path found (%d hops)", len(path)-1)
	printDetail("%s", strings.Join(path, " "+iconArrow+" "))
	printStats(len(path), len(path)-1, cached)

	return nil
}

// resultSize is nil-safe for failed queries.
func resultSize(g *graph.Graph) int {
	if g == nil {
		return 0
	}
	return g.NodeCount()
}

// pathFromResult reads the traversal order out of the result graph's
// nodelist metadata.
func pathFromResult(g *graph.Graph) []string {
	v, ok := g.Meta()["nodelist"]
	if !ok {
		return g.NodeIDs()
	}
	items, ok := v.AsList()
	if !ok {
		return g.NodeIDs()
	}
	path := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.AsString(); ok {
			path = append(path, s)
		}
	}
	return path
}
