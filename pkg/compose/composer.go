package compose

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"github.com/flowbench/flowbench/pkg/opengraph"
)

var (
	// ErrEmptyPool is returned by [New] when the block pool is empty.
	ErrEmptyPool = errors.New("block pool must not be empty")

	// ErrNoStepCounts is returned by [Composer.Generate] when no step counts
	// are requested.
	ErrNoStepCounts = errors.New("at least one step count is required")

	// ErrStepCountRange is returned by [Composer.Generate] when a requested
	// step count is not positive.
	ErrStepCountRange = errors.New("step counts must be positive")
)

// WidthAll requests merging as many boundary node pairs per step as both
// operands allow: min(len(running.Outputs()), len(block.Inputs())).
const WidthAll = -1

// DefaultSeed is the seed used by the CLI when none is given.
const DefaultSeed int64 = 42

// Options configures one generation run.
type Options struct {
	// StepCounts are the composition-step indices to snapshot. Must be
	// non-empty and positive. The largest value acts as the iteration bound
	// and never yields a snapshot itself (see [Composer.Generate]).
	StepCounts []int

	// MergeWidth is the requested number of boundary node pairs identified
	// at each step. [WidthAll] merges as many as possible; 0 composes in
	// parallel with no identification. Widths exceeding the available
	// boundary nodes are silently clamped.
	MergeWidth int

	// InputCaps optionally bounds the input boundary size of each snapshot,
	// matched positionally against the snapshot list. Extra caps are
	// ignored; missing caps leave the remaining snapshots untouched.
	InputCaps []int

	// Randomized switches block and boundary node selection from
	// deterministic (cyclic pool order, list-prefix boundaries) to uniform
	// sampling driven by Seed.
	Randomized bool

	// Seed seeds the private random source when Randomized is set; it is
	// ignored otherwise.
	Seed int64
}

// Composer grows open graphs from a fixed pool of minimal blocks.
// The pool is copied at construction; blocks handed in by the caller are
// never read again afterwards, let alone mutated.
type Composer struct {
	pool []*opengraph.OpenGraph
}

// New creates a Composer over a non-empty, ordered block pool.
func New(pool []*opengraph.OpenGraph) (*Composer, error) {
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}
	blocks := make([]*opengraph.OpenGraph, len(pool))
	for i, b := range pool {
		blocks[i] = b.Clone()
	}
	return &Composer{pool: blocks}, nil
}

// Pool returns copies of the minimal blocks in pool order.
func (c *Composer) Pool() []*opengraph.OpenGraph {
	blocks := make([]*opengraph.OpenGraph, len(c.pool))
	for i, b := range c.pool {
		blocks[i] = b.Clone()
	}
	return blocks
}

// Generate iteratively composes blocks from the pool and returns the
// snapshots requested by opts.StepCounts, in ascending step order, together
// with a parallel slice of their node counts.
//
// The running graph starts as the first block (deterministic) or a uniformly
// chosen one (randomized). The step counter then runs upward from 1; each
// executed step composes the running graph with the next block — cycling
// through the pool in order, or chosen uniformly — identifying up to
// opts.MergeWidth boundary pairs selected by the boundary selector.
//
// Iteration stops BEFORE executing the step whose counter equals
// max(opts.StepCounts). The largest requested step count therefore never
// produces a snapshot: a caller asking for steps [1,3,5] gets two snapshots,
// not three. This boundary rule is part of the contract; requesting it is
// not an error, the result slices are simply shorter than opts.StepCounts,
// so callers must not assume equal lengths when they zip them together.
//
// When opts.InputCaps is set, each snapshot is passed through
// [TruncateInputs] with the positionally matching cap after the loop.
func (c *Composer) Generate(opts Options) ([]*opengraph.OpenGraph, []int, error) {
	if len(opts.StepCounts) == 0 {
		return nil, nil, ErrNoStepCounts
	}
	for _, n := range opts.StepCounts {
		if n < 1 {
			return nil, nil, fmt.Errorf("%w: %d", ErrStepCountRange, n)
		}
	}

	maxSteps := slices.Max(opts.StepCounts)
	wanted := make(map[int]struct{}, len(opts.StepCounts))
	for _, n := range opts.StepCounts {
		wanted[n] = struct{}{}
	}

	var rng *rand.Rand
	if opts.Randomized {
		rng = rand.New(rand.NewSource(opts.Seed))
	}

	running := c.pool[0]
	if rng != nil {
		running = c.pool[rng.Intn(len(c.pool))]
	}

	var snapshots []*opengraph.OpenGraph
	var orders []int

	for step := 1; step != maxSteps; step++ {
		block := c.pool[(step-1)%len(c.pool)]
		if rng != nil {
			block = c.pool[rng.Intn(len(c.pool))]
		}

		mapping := boundaryMapping(running.Outputs(), block.Inputs(), opts.MergeWidth, rng)
		merged, _, err := opengraph.Compose(running, block, mapping)
		if err != nil {
			return nil, nil, fmt.Errorf("compose step %d: %w", step, err)
		}
		running = merged

		if _, ok := wanted[step]; ok {
			snapshots = append(snapshots, running)
			orders = append(orders, running.Order())
		}
	}

	for i := range snapshots {
		if i >= len(opts.InputCaps) {
			break
		}
		trimmed, err := TruncateInputs(snapshots[i], opts.InputCaps[i], rng)
		if err != nil {
			return nil, nil, fmt.Errorf("truncate snapshot %d: %w", i, err)
		}
		snapshots[i] = trimmed
	}

	return snapshots, orders, nil
}
