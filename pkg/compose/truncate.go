package compose

import (
	"math/rand"
	"slices"

	"github.com/flowbench/flowbench/pkg/opengraph"
)

// TruncateInputs returns an open graph whose input boundary holds at most
// maxInputs identifiers. When the current input count does not exceed the
// cap, og is returned unchanged. Demoted nodes stay in the graph and keep
// their measurement; they only lose their boundary-input status, which
// preserves the flow properties of the instance.
//
// Deterministic mode (rng == nil) removes from the front of the input list,
// keeping the tail. Stochastic mode draws the identifiers to remove
// uniformly WITH replacement and removes them idempotently: drawing the same
// identifier twice removes it once and wastes the second draw, so the result
// may retain more than maxInputs inputs.
func TruncateInputs(og *opengraph.OpenGraph, maxInputs int, rng *rand.Rand) (*opengraph.OpenGraph, error) {
	inputs := og.Inputs()
	excess := len(inputs) - maxInputs
	if excess <= 0 {
		return og, nil
	}
	if excess > len(inputs) {
		excess = len(inputs)
	}

	if rng == nil {
		return og.WithInputs(inputs[excess:])
	}

	remaining := slices.Clone(inputs)
	for i := 0; i < excess; i++ {
		pick := inputs[rng.Intn(len(inputs))]
		if at := slices.Index(remaining, pick); at >= 0 {
			remaining = slices.Delete(remaining, at, at+1)
		}
	}
	return og.WithInputs(remaining)
}
