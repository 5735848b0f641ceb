// Package cli implements the ironweaver command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/p-sodmann/ironweaver/pkg/buildinfo"
	"github.com/p-sodmann/ironweaver/pkg/cache"
	"github.com/p-sodmann/ironweaver/pkg/codec"
	"github.com/p-sodmann/ironweaver/pkg/graph"
)

// appName is the application name used for directories and display.
const appName = "ironweaver"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a new CLI instance with a default logger and the
// configuration loaded from disk (defaults when no config file exists).
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: MustLoadConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The --verbose and --config flags and the context logger are wired here so
// every command sees the same logger and configuration.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          appName,
		Short:        "Ironweaver queries and converts property graphs",
		Long:         `Ironweaver is a CLI tool for working with directed property graphs stored as JSON or binary files: inspecting them, finding shortest paths, sampling random walks, and converting between formats.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			if configPath != "" {
				cfg, err := LoadConfig(configPath)
				if err != nil {
					return fmt.Errorf("load config %s: %w", configPath, err)
				}
				c.Config = cfg
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: "+appName+"/config.toml in the user config directory)")

	root.AddCommand(c.convertCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.pathCommand())
	root.AddCommand(c.walkCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newCache creates the result cache per configuration. Any backend failure
// degrades to the null cache so queries still run.
func (c *CLI) newCache(ctx context.Context, noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	switch c.Config.Cache.Backend {
	case backendRedis:
		rc, err := cache.NewRedisCache(ctx, c.Config.Cache.RedisAddr, c.Config.Cache.RedisPassword, c.Config.Cache.RedisDB)
		if err != nil {
			c.Logger.Warn("redis unavailable, caching disabled", "addr", c.Config.Cache.RedisAddr, "err", err)
			return cache.NewNullCache()
		}
		return rc
	case backendNone:
		return cache.NewNullCache()
	default:
		dir := c.Config.Cache.Dir
		if dir == "" {
			var err error
			if dir, err = cacheDir(); err != nil {
				return cache.NewNullCache()
			}
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			c.Logger.Warn("cache directory unavailable, caching disabled", "dir", dir, "err", err)
			return cache.NewNullCache()
		}
		return fc
	}
}

// keyer returns the cache key builder. Redis backends are often shared with
// other tools, so their keys get an application prefix; the file backend
// lives in its own directory and needs none.
func (c *CLI) keyer() cache.Keyer {
	if c.Config.Cache.Backend == backendRedis {
		return cache.NewScopedKeyer(cache.NewDefaultKeyer(), appName+":")
	}
	return cache.NewDefaultKeyer()
}

// cacheDir returns the cache directory using XDG standard (~/.cache/ironweaver/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// loadGraph reads a graph file, dispatching on extension: .bin and .iwb are
// binary containers, everything else is JSON. The raw file contents are
// returned alongside so callers can derive cache keys from them.
func loadGraph(path string) (*graph.Graph, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read graph %s: %w", path, err)
	}
	var g *graph.Graph
	if isBinaryPath(path) {
		g, err = codec.DecodeBinary(data)
	} else {
		g, err = codec.UnmarshalJSON(data)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load graph %s: %w", path, err)
	}
	return g, data, nil
}

func isBinaryPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bin", ".iwb":
		return true
	}
	return false
}
