package compose

import (
	"errors"
	"fmt"

	"github.com/flowbench/flowbench/pkg/opengraph"
)

var (
	// ErrRowCount is returned by [ComposeGrid] when fewer than one row is
	// requested.
	ErrRowCount = errors.New("number of rows must be at least 1")

	// ErrLayerCount is returned by [ComposeGrid] when fewer than one layer
	// is requested.
	ErrLayerCount = errors.New("number of layers must be at least 1")
)

// ComposeGrid arranges copies of block in a two-dimensional brick wall:
//
//	  _ _       _ _
//	-|   | _ _ |   |-
//	-|_ _||   ||_ _|-      (rows = 2, layers = 3)
//	-|‾ ‾||_ _||‾ ‾|-
//	-|_ _|     |_ _|-
//
// Odd layers hold rows blocks; even layers hold one block fewer and sit
// offset by half a block, like staggered bricks (with rows == 1, every layer
// holds a single block). layers == 1 yields rows disconnected parallel
// blocks; any larger layer count welds the wall into a single component.
//
// The resulting boundary width on each side is 3 when rows == 1 and
// layers > 1 (two long edges plus the short truncated end), otherwise
// 2*rows.
func ComposeGrid(block *opengraph.OpenGraph, rows, layers int) (*opengraph.OpenGraph, error) {
	if rows < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrRowCount, rows)
	}
	if layers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrLayerCount, layers)
	}

	aligned, offset, err := gridTemplates(block, rows)
	if err != nil {
		return nil, err
	}

	running := aligned
	for i := 0; i < layers-1; i++ {
		if i%2 == 0 {
			running, err = addOffsetLayer(running, offset)
		} else {
			running, err = addAlignedLayer(running, aligned)
		}
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i+2, err)
		}
	}
	return running, nil
}

// gridTemplates builds the two alternating row templates: the aligned
// template with rows parallel copies and the offset template with one copy
// fewer. With a single row both templates are one block.
func gridTemplates(block *opengraph.OpenGraph, rows int) (aligned, offset *opengraph.OpenGraph, err error) {
	aligned = block.Clone()
	offset = block.Clone()

	for n := 1; n < rows; n++ {
		if aligned, _, err = opengraph.Compose(aligned, block, nil); err != nil {
			return nil, nil, fmt.Errorf("aligned template: %w", err)
		}
		if n < rows-1 {
			if offset, _, err = opengraph.Compose(offset, block, nil); err != nil {
				return nil, nil, fmt.Errorf("offset template: %w", err)
			}
		}
	}
	return aligned, offset, nil
}

// addOffsetLayer composes the offset row template onto the wall. Its rows
// sit half a block inward, so the wall's first and last outputs stay open
// and only the interior outputs are consumed.
func addOffsetLayer(wall, template *opengraph.OpenGraph) (*opengraph.OpenGraph, error) {
	outs := wall.Outputs()
	if len(outs) > 3 {
		outs = outs[1 : len(outs)-1]
	} else {
		outs = outs[1:]
	}
	return weldLayer(wall, template, outs)
}

// addAlignedLayer composes the aligned row template onto the wall. The
// wall's current outputs come from an offset layer, so the second output is
// moved to the end to line boundary nodes up geometrically before welding. With the three-output single-row wall the short end is
// dropped instead.
func addAlignedLayer(wall, template *opengraph.OpenGraph) (*opengraph.OpenGraph, error) {
	outs := wall.Outputs()
	if len(outs) == 3 {
		outs = outs[:2]
	} else {
		rotated := make([]int, 0, len(outs))
		rotated = append(rotated, outs[0])
		rotated = append(rotated, outs[2:]...)
		rotated = append(rotated, outs[1])
		outs = rotated
	}
	return weldLayer(wall, template, outs)
}

// weldLayer zips the template's inputs onto the given wall outputs
// (truncated to the shorter list) and composes.
func weldLayer(wall, template *opengraph.OpenGraph, outs []int) (*opengraph.OpenGraph, error) {
	ins := template.Inputs()
	width := min(len(ins), len(outs))

	mapping := make(map[int]int, width)
	for i := 0; i < width; i++ {
		mapping[ins[i]] = outs[i]
	}

	merged, _, err := opengraph.Compose(wall, template, mapping)
	return merged, err
}
