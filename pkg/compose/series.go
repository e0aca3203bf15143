package compose

import (
	"fmt"

	"github.com/flowbench/flowbench/pkg/opengraph"
)

// ComposeSeries chains n structural copies of block behind the block itself:
//
//	 _ _  _ _  _ _
//	|   ||   ||   |    (n = 2: the block plus two copies)
//	|_ _||_ _||_ _|
//
// At every step the template copy's full input boundary is zipped onto the
// running graph's current output boundary (truncated to the shorter list)
// and identified, so the copies line up end to end. n = 0 returns a graph
// [opengraph.OpenGraph.Equal] to block. The block itself is never mutated;
// n may be 0 or larger.
func ComposeSeries(block *opengraph.OpenGraph, n int) (*opengraph.OpenGraph, error) {
	running := block.Clone()
	template := block.Clone()

	for i := 0; i < n; i++ {
		ins := template.Inputs()
		outs := running.Outputs()
		width := min(len(ins), len(outs))

		mapping := make(map[int]int, width)
		for j := 0; j < width; j++ {
			mapping[ins[j]] = outs[j]
		}

		merged, _, err := opengraph.Compose(running, template, mapping)
		if err != nil {
			return nil, fmt.Errorf("series copy %d: %w", i+1, err)
		}
		running = merged
	}

	return running, nil
}
