package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/p-sodmann/ironweaver/pkg/cache"
	"github.com/p-sodmann/ironweaver/pkg/graph"
	"github.com/p-sodmann/ironweaver/pkg/observability"
)

// walkCommand creates the walk command for sampling random walks.
func (c *CLI) walkCommand() *cobra.Command {
	var (
		maxLength int
		attempts  int
		minLength int
		seed      int64
		revisit   bool
		edgeTypes bool
		edgeField string
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "walk [graph-file] [start-id]",
		Short: "Sample random walks from a node",
		Long: `Sample random walks from a node.

Each attempt walks from the start node following uniformly chosen outgoing
edges until it reaches a dead end or the length limit. Walks shorter than
--min-length are discarded and duplicates collapse to one. With a fixed
--seed the output is reproducible and cacheable; seed 0 draws a fresh seed
per run and bypasses the cache.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags the user left alone follow the config, which --config may
			// have replaced after the defaults above were captured.
			if !cmd.Flags().Changed("max-length") {
				maxLength = c.Config.Walk.MaxLength
			}
			if !cmd.Flags().Changed("attempts") {
				attempts = c.Config.Walk.Attempts
			}
			if !cmd.Flags().Changed("min-length") {
				minLength = c.Config.Walk.MinLength
			}
			opts := graph.WalkOptions{
				MinLength:        minLength,
				AllowRevisit:     revisit,
				IncludeEdgeTypes: edgeTypes,
				EdgeTypeField:    edgeField,
				Seed:             seed,
			}
			return c.runWalk(cmd.Context(), args[0], args[1], maxLength, attempts, opts, noCache)
		},
	}

	cmd.Flags().IntVar(&maxLength, "max-length", c.Config.Walk.MaxLength, "maximum walk length in nodes")
	cmd.Flags().IntVar(&attempts, "attempts", c.Config.Walk.Attempts, "number of walk attempts")
	cmd.Flags().IntVar(&minLength, "min-length", c.Config.Walk.MinLength, "discard walks shorter than this")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 for nondeterministic)")
	cmd.Flags().BoolVar(&revisit, "allow-revisit", false, "allow walks to revisit nodes")
	cmd.Flags().BoolVar(&edgeTypes, "edge-types", false, "interleave edge type strings with node ids")
	cmd.Flags().StringVar(&edgeField, "edge-field", "", "edge attribute recorded between nodes (default \"type\")")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runWalk(ctx context.Context, input, startID string, maxLength, attempts int, opts graph.WalkOptions, noCache bool) error {
	g, raw, err := loadGraph(input)
	if err != nil {
		return err
	}

	// Unseeded runs are nondeterministic, so their results must not be reused.
	if opts.Seed == 0 {
		noCache = true
	}
	store := c.newCache(ctx, noCache)
	defer store.Close()
	key := c.keyer().WalkKey(cache.Hash(raw), startID, maxLength, attempts, opts.Seed,
		opts.MinLength, opts.AllowRevisit, opts.IncludeEdgeTypes, opts.EdgeTypeField)

	var walks [][]string
	cached := false
	if data, hit, err := store.Get(ctx, key); err == nil && hit {
		cached = json.Unmarshal(data, &walks) == nil
	}

	if cached {
		observability.Cache().OnCacheHit(ctx, "walk")
	} else {
		observability.Cache().OnCacheMiss(ctx, "walk")

		prog := newProgress(loggerFromContext(ctx))
		observability.Query().OnQueryStart(ctx, "walk", g.NodeCount())
		start := time.Now()
		walks, err = g.RandomWalks(startID, maxLength, attempts, opts)
		observability.Query().OnQueryComplete(ctx, "walk", len(walks), time.Since(start), err)
		if err != nil {
			return fmt.Errorf("walk %s: %w", input, err)
		}
		prog.done(fmt.Sprintf("Sampled %d walks from %d attempts", len(walks), attempts))
		if data, err := json.Marshal(walks); err == nil {
			_ = store.Set(ctx, key, data, c.cacheTTL())
			observability.Cache().OnCacheSet(ctx, "walk", len(data))
		}
	}

	printSuccess("%d distinct walks", len(walks))
	for _, w := range walks {
		printDetail("%s", strings.Join(w, " "+iconArrow+" "))
	}
	printStats(g.NodeCount(), g.EdgeCount(), cached)

	return nil
}
