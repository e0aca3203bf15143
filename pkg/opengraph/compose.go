package opengraph

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	// ErrMapKeyNotInput is returned by [Compose] when a mapping key is not an
	// input node of the right operand.
	ErrMapKeyNotInput = errors.New("mapping key is not an input of the right operand")

	// ErrMapValueNotOutput is returned by [Compose] when a mapping value is
	// not an output node of the left operand.
	ErrMapValueNotOutput = errors.New("mapping value is not an output of the left operand")
)

// Compose merges right into left and returns the composed open graph together
// with the identifier offset applied to right's node identifiers.
//
// The mapping sends input nodes of right onto output nodes of left; each
// mapped pair is identified (collapsed to a single node). A nil or empty
// mapping yields pure parallel composition: a disjoint union with no
// identification. Unmapped nodes of right are shifted by the returned offset
// (one past the largest identifier of left) so the two identifier spaces
// cannot collide.
//
// Boundary bookkeeping: the result's inputs are left's inputs followed by
// right's unmapped inputs in order; the result's outputs are left's surviving
// outputs in order followed by right's outputs in order. An identified node
// stops being an output of left and an input of right, and takes the right
// input's measurement. The relative order is load-bearing for the grid
// constructor, which merges geometric neighbors by boundary position.
//
// Several distinct mapping keys may share one value: the affected right
// inputs all collapse onto the same left output. Both operands are left
// untouched; the result is a fresh value.
func Compose(left, right *OpenGraph, mapping map[int]int) (*OpenGraph, int, error) {
	rightIn := make(map[int]struct{}, len(right.inputs))
	for _, id := range right.inputs {
		rightIn[id] = struct{}{}
	}
	leftOut := make(map[int]struct{}, len(left.outputs))
	for _, id := range left.outputs {
		leftOut[id] = struct{}{}
	}
	for k, v := range mapping {
		if _, ok := rightIn[k]; !ok {
			return nil, 0, fmt.Errorf("%w: %d", ErrMapKeyNotInput, k)
		}
		if _, ok := leftOut[v]; !ok {
			return nil, 0, fmt.Errorf("%w: %d", ErrMapValueNotOutput, v)
		}
	}

	offset := 0
	if maxID, ok := left.graph.MaxNode(); ok {
		offset = maxID + 1
	}
	relabel := func(id int) int {
		if target, ok := mapping[id]; ok {
			return target
		}
		return id + offset
	}

	g := left.graph.Clone()
	for _, id := range right.graph.Nodes() {
		g.AddNode(relabel(id))
	}
	for _, e := range right.graph.Edges() {
		g.AddEdge(relabel(e[0]), relabel(e[1]))
	}

	inputs := slices.Clone(left.inputs)
	for _, id := range right.inputs {
		if _, mapped := mapping[id]; !mapped {
			inputs = append(inputs, id+offset)
		}
	}

	identified := make(map[int]struct{}, len(mapping))
	for _, target := range mapping {
		identified[target] = struct{}{}
	}
	outputs := make([]int, 0, len(left.outputs)+len(right.outputs))
	for _, id := range left.outputs {
		if _, gone := identified[id]; !gone {
			outputs = append(outputs, id)
		}
	}
	for _, id := range right.outputs {
		outputs = append(outputs, relabel(id))
	}

	measurements := make(map[int]Measurement, len(left.measurements)+len(right.measurements))
	for id, m := range left.measurements {
		measurements[id] = m
	}
	// Sorted iteration keeps the last-wins rule deterministic when duplicate
	// mapping values collapse several measured inputs onto one node.
	for _, id := range slices.Sorted(maps.Keys(right.measurements)) {
		measurements[relabel(id)] = right.measurements[id]
	}

	return &OpenGraph{
		graph:        g,
		inputs:       inputs,
		outputs:      outputs,
		measurements: measurements,
	}, offset, nil
}
