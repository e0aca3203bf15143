package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flowbench/flowbench/pkg/graphio"
	"github.com/flowbench/flowbench/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file path (defaults to input with new extension)
	format   string // "svg" or "dot"
	detailed bool   // include measurement labels
	backend  string // cache backend: "file", "redis", "none"
	cacheDir string // file cache directory override
	addr     string // redis address
	ttlHours int    // cache entry lifetime
	profile  string // TOML profile path
}

// newRenderCmd creates the render command for drawing open-graph files.
// It reads a JSON graph produced by generate, series, or grid, and writes
// either Graphviz DOT source or a rendered SVG. SVG renders go through the
// cache, so re-rendering an unchanged graph is instant. The cache backend
// can come from a profile's [cache] section; explicit flags win.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{
		format:   "svg",
		backend:  "file",
		ttlHours: 24 * 7,
	}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render an open graph to SVG or DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.profile != "" {
				p, err := loadProfile(opts.profile)
				if err != nil {
					return err
				}
				applyCacheProfile(cmd, &opts, p)
			}
			if opts.format != "svg" && opts.format != "dot" {
				return fmt.Errorf("unknown format %q (svg, dot)", opts.format)
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input path with format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), dot")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include measurement planes and angles in labels")
	cmd.Flags().StringVar(&opts.backend, "cache", opts.backend, "cache backend: file (default), redis, none")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", "", "file cache directory override")
	cmd.Flags().StringVar(&opts.addr, "redis-addr", "localhost:6379", "redis address for the redis backend")
	cmd.Flags().IntVar(&opts.ttlHours, "ttl", opts.ttlHours, "cache entry lifetime in hours (0 = keep forever)")
	cmd.Flags().StringVar(&opts.profile, "profile", "", "TOML profile file ([cache] section)")

	return cmd
}

// applyCacheProfile fills cache settings from the profile's [cache] section
// for every flag the user did not set explicitly.
func applyCacheProfile(cmd *cobra.Command, opts *renderOpts, p *Profile) {
	flags := cmd.Flags()
	if !flags.Changed("cache") && p.Cache.Backend != "" {
		opts.backend = p.Cache.Backend
	}
	if !flags.Changed("cache-dir") && p.Cache.Dir != "" {
		opts.cacheDir = p.Cache.Dir
	}
	if !flags.Changed("redis-addr") && p.Cache.Addr != "" {
		opts.addr = p.Cache.Addr
	}
	if !flags.Changed("ttl") && p.Cache.TTLHours != 0 {
		opts.ttlHours = p.Cache.TTLHours
	}
}

func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	og, err := graphio.ImportJSON(input)
	if err != nil {
		return err
	}
	logger.Debug("graph loaded", "nodes", og.Order(), "edges", og.Graph().Size())

	dot := render.ToDOT(og, render.Options{Detailed: opts.detailed})

	output := opts.output
	if output == "" {
		output = replaceExt(input, "."+opts.format)
	}

	if opts.format == "dot" {
		if err := os.WriteFile(output, []byte(dot), 0644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
		printFile(output)
		return nil
	}

	c, err := openCache(ctx, opts.backend, opts.cacheDir, opts.addr)
	if err != nil {
		return err
	}
	defer c.Close()

	prog := newProgress(logger)
	spin := newSpinnerWithContext(ctx, "Rendering...")
	spin.Start()
	svg, cached, err := render.CachedSVG(ctx, c, dot, cacheTTL(opts.ttlHours))
	spin.Stop()
	if err != nil {
		return err
	}
	if spin.Cancelled() {
		return ctx.Err()
	}

	if err := os.WriteFile(output, svg, 0644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	printFile(output)
	printStats(og.Order(), og.Graph().Size(), cached)
	prog.done("Rendered")
	return nil
}

// replaceExt swaps the extension of path for ext (which includes the dot).
func replaceExt(path, ext string) string {
	if i := strings.LastIndex(path, "."); i > strings.LastIndex(path, "/") {
		return path[:i] + ext
	}
	return path + ext
}
