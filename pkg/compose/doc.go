// Package compose generates open graphs of increasing size by iteratively
// merging small minimal building blocks. Because every merge identifies
// boundary pairs only, within documented width bounds, the generated
// instances retain the flow properties of their blocks without re-running a
// flow search per instance.
//
// Three recipes are provided:
//
//   - [Composer.Generate] grows a running graph by repeatedly composing the
//     next block from a fixed pool, snapshotting at requested step counts.
//   - [ComposeSeries] chains n structural copies of one block in a line.
//   - [ComposeGrid] lays copies of one block out as a two-dimensional brick
//     wall with alternating row offsets.
//
// # Determinism
//
// Every stochastic choice (block selection, boundary node selection, input
// truncation) draws from a private generator seeded per call, so the same
// seed and the same call pattern reproduce identical output. Nothing in this
// package touches the global math/rand state.
//
// # Step counts
//
// Generate stops before executing the step whose counter equals the largest
// requested step count, so that largest value never yields a snapshot and the
// returned slices can be shorter than Options.StepCounts. See
// [Composer.Generate] for the precise rule.
package compose
