package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flowbench/flowbench/pkg/blocks"
	"github.com/flowbench/flowbench/pkg/compose"
	"github.com/flowbench/flowbench/pkg/graphio"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	pool       string // comma-separated block names
	steps      string // comma-separated step counts to snapshot
	mergeWidth int    // boundary pairs merged per step
	caps       string // comma-separated input caps, positional
	randomized bool   // random block and boundary selection
	seed       int64  // seed for randomized mode
	output     string // output directory
	profile    string // TOML profile path
}

// newGenerateCmd creates the generate command, the main entry point for
// producing open-graph batches. Each requested step count yields one JSON
// graph file; a manifest records the run configuration next to them.
//
// Flags set explicitly on the command line override profile values.
func newGenerateCmd() *cobra.Command {
	opts := generateOpts{
		mergeWidth: 1,
		seed:       compose.DefaultSeed,
		output:     "out",
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Grow open graphs by iterative block composition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.profile != "" {
				p, err := loadProfile(opts.profile)
				if err != nil {
					return err
				}
				applyProfile(cmd, &opts, p)
			}
			return runGenerate(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.pool, "pool", "", "block pool, comma-separated (default: all known blocks)")
	cmd.Flags().StringVar(&opts.steps, "steps", "", "step counts to snapshot, comma-separated (e.g. 1,3,5)")
	cmd.Flags().IntVar(&opts.mergeWidth, "width", opts.mergeWidth, "boundary pairs merged per step (-1 = as many as possible, 0 = none)")
	cmd.Flags().StringVar(&opts.caps, "caps", "", "per-snapshot input caps, comma-separated")
	cmd.Flags().BoolVar(&opts.randomized, "randomized", false, "randomize block and boundary selection")
	cmd.Flags().Int64Var(&opts.seed, "seed", opts.seed, "seed for randomized mode")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output directory")
	cmd.Flags().StringVar(&opts.profile, "profile", "", "TOML profile file")

	return cmd
}

// applyProfile fills opts from the profile for every flag the user did not
// set explicitly.
func applyProfile(cmd *cobra.Command, opts *generateOpts, p *Profile) {
	flags := cmd.Flags()
	if !flags.Changed("pool") && len(p.Generate.Pool) > 0 {
		opts.pool = strings.Join(p.Generate.Pool, ",")
	}
	if !flags.Changed("steps") && len(p.Generate.Steps) > 0 {
		opts.steps = joinInts(p.Generate.Steps)
	}
	if !flags.Changed("width") {
		opts.mergeWidth = p.Generate.MergeWidth
	}
	if !flags.Changed("caps") && len(p.Generate.InputCaps) > 0 {
		opts.caps = joinInts(p.Generate.InputCaps)
	}
	if !flags.Changed("randomized") {
		opts.randomized = p.Generate.Randomized
	}
	if !flags.Changed("seed") && p.Generate.Seed != 0 {
		opts.seed = p.Generate.Seed
	}
	if !flags.Changed("output") && p.Output.Dir != "" {
		opts.output = p.Output.Dir
	}
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, ",")
}

func runGenerate(ctx context.Context, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	pool, err := parsePool(opts.pool)
	if err != nil {
		return err
	}
	steps, err := parseIntList(opts.steps)
	if err != nil {
		return fmt.Errorf("parse --steps: %w", err)
	}
	caps, err := parseIntList(opts.caps)
	if err != nil {
		return fmt.Errorf("parse --caps: %w", err)
	}
	sort.Ints(steps)

	names := blocks.Names()
	if opts.pool != "" {
		names = splitTrim(opts.pool)
	}

	logger.Debug("generation configured",
		"pool", names, "steps", steps, "width", opts.mergeWidth,
		"randomized", opts.randomized, "seed", opts.seed)

	composer, err := compose.New(pool)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	spin := newSpinnerWithContext(ctx, "Composing blocks...")
	spin.Start()

	ogs, orders, err := composer.Generate(compose.Options{
		StepCounts: steps,
		MergeWidth: opts.mergeWidth,
		InputCaps:  caps,
		Randomized: opts.randomized,
		Seed:       opts.seed,
	})
	spin.Stop()
	if err != nil {
		return err
	}
	if spin.Cancelled() {
		return ctx.Err()
	}

	if len(ogs) < len(steps) {
		// The largest step count bounds the loop and is never snapshotted.
		printWarning("step %d is the iteration bound and produced no graph", steps[len(steps)-1])
	}

	if err := os.MkdirAll(opts.output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	manifest := graphio.NewManifest()
	manifest.Pool = names
	manifest.StepCounts = steps
	manifest.MergeWidth = opts.mergeWidth
	manifest.InputCaps = caps
	manifest.Randomized = opts.randomized
	if opts.randomized {
		manifest.Seed = opts.seed
	}

	for i, og := range ogs {
		name := fmt.Sprintf("step_%04d.json", steps[i])
		path := filepath.Join(opts.output, name)
		if err := graphio.ExportJSON(og, path); err != nil {
			return err
		}
		manifest.Entries = append(manifest.Entries, graphio.ManifestEntry{
			Step:    steps[i],
			Order:   orders[i],
			Inputs:  len(og.Inputs()),
			Outputs: len(og.Outputs()),
			File:    name,
		})
		printFile(path)
		printStats(og.Order(), og.Graph().Size(), false)
	}

	manifestPath := filepath.Join(opts.output, "manifest.json")
	if err := graphio.WriteManifest(manifest, manifestPath); err != nil {
		return err
	}
	printFile(manifestPath)

	prog.done(fmt.Sprintf("Generated %d graphs", len(ogs)))
	return nil
}

func splitTrim(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
