package compose

import "math/rand"

// boundaryMapping selects which output nodes of the left operand and input
// nodes of the right operand are identified at one composition step, and zips
// the two selections into a mapping from right inputs to left outputs.
//
// The requested width is clamped to min(len(outputs), len(inputs)); a
// negative width means "as many as possible". Width 0 returns nil: pure
// parallel composition.
//
// Deterministic mode (rng == nil) pairs the first width elements of each list
// in their existing order. Stochastic mode draws width elements from each
// list uniformly WITH replacement; a node drawn twice on the input side
// collapses to a single mapping entry, so the effective merge width can fall
// below the requested one.
func boundaryMapping(outputs, inputs []int, width int, rng *rand.Rand) map[int]int {
	minIO := min(len(outputs), len(inputs))
	if width < 0 || width > minIO {
		width = minIO
	}
	if width == 0 {
		return nil
	}

	var outs, ins []int
	if rng == nil {
		ins = inputs[:width]
		outs = outputs[:width]
	} else {
		ins = sample(inputs, width, rng)
		outs = sample(outputs, width, rng)
	}

	mapping := make(map[int]int, width)
	for i := 0; i < width; i++ {
		mapping[ins[i]] = outs[i]
	}
	return mapping
}

// sample draws k elements from list uniformly with replacement.
func sample(list []int, k int, rng *rand.Rand) []int {
	out := make([]int, k)
	for i := range out {
		out[i] = list[rng.Intn(len(list))]
	}
	return out
}
