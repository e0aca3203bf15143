package opengraph

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	// ErrNilGraph is returned by [New] when no underlying graph is supplied.
	ErrNilGraph = errors.New("underlying graph must not be nil")

	// ErrUnknownBoundaryNode is returned by [New] when an input or output
	// identifier is not a node of the underlying graph.
	ErrUnknownBoundaryNode = errors.New("boundary node is not in the graph")

	// ErrDuplicateBoundaryNode is returned by [New] when the same identifier
	// appears twice in the input list or twice in the output list.
	ErrDuplicateBoundaryNode = errors.New("duplicate boundary node")

	// ErrMissingMeasurement is returned by [New] when a non-output node has
	// no measurement assigned.
	ErrMissingMeasurement = errors.New("non-output node has no measurement")

	// ErrMeasuredOutput is returned by [New] when an output node carries a
	// measurement. Outputs are unmeasured by definition.
	ErrMeasuredOutput = errors.New("output node must not carry a measurement")
)

// OpenGraph is an undirected graph with designated ordered input and output
// boundary lists and a measurement per non-output node.
//
// The boundary lists are ordered sequences: indexed selection in the
// composition recipes depends on their order. Construct instances with [New],
// which validates the open-graph invariants; all fields are private and all
// accessors copy, so a validated instance stays valid.
type OpenGraph struct {
	graph        *Graph
	inputs       []int
	outputs      []int
	measurements map[int]Measurement
}

// New creates an open graph over g with the given boundary lists and
// measurement assignment. All arguments are copied.
//
// Invariants checked:
//   - every input and output identifier is a node of g
//   - neither boundary list contains duplicates
//   - every non-output node (inputs included) carries exactly one measurement
//   - no output node carries a measurement
func New(g *Graph, inputs, outputs []int, measurements map[int]Measurement) (*OpenGraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	for _, list := range [][]int{inputs, outputs} {
		seen := make(map[int]struct{}, len(list))
		for _, id := range list {
			if !g.HasNode(id) {
				return nil, fmt.Errorf("%w: %d", ErrUnknownBoundaryNode, id)
			}
			if _, dup := seen[id]; dup {
				return nil, fmt.Errorf("%w: %d", ErrDuplicateBoundaryNode, id)
			}
			seen[id] = struct{}{}
		}
	}

	outSet := make(map[int]struct{}, len(outputs))
	for _, id := range outputs {
		outSet[id] = struct{}{}
	}
	for _, id := range g.Nodes() {
		_, isOutput := outSet[id]
		_, measured := measurements[id]
		if !isOutput && !measured {
			return nil, fmt.Errorf("%w: %d", ErrMissingMeasurement, id)
		}
		if isOutput && measured {
			return nil, fmt.Errorf("%w: %d", ErrMeasuredOutput, id)
		}
	}

	return &OpenGraph{
		graph:        g.Clone(),
		inputs:       slices.Clone(inputs),
		outputs:      slices.Clone(outputs),
		measurements: maps.Clone(measurements),
	}, nil
}

// Graph returns a copy of the underlying graph.
func (og *OpenGraph) Graph() *Graph { return og.graph.Clone() }

// Inputs returns a copy of the ordered input boundary list.
func (og *OpenGraph) Inputs() []int { return slices.Clone(og.inputs) }

// Outputs returns a copy of the ordered output boundary list.
func (og *OpenGraph) Outputs() []int { return slices.Clone(og.outputs) }

// Measurements returns a copy of the measurement assignment.
func (og *OpenGraph) Measurements() map[int]Measurement {
	return maps.Clone(og.measurements)
}

// Measurement returns the measurement of id, if any.
func (og *OpenGraph) Measurement(id int) (Measurement, bool) {
	m, ok := og.measurements[id]
	return m, ok
}

// Order returns the number of nodes of the underlying graph.
func (og *OpenGraph) Order() int { return og.graph.Order() }

// Clone returns an independent copy.
func (og *OpenGraph) Clone() *OpenGraph {
	return &OpenGraph{
		graph:        og.graph.Clone(),
		inputs:       slices.Clone(og.inputs),
		outputs:      slices.Clone(og.outputs),
		measurements: maps.Clone(og.measurements),
	}
}

// Equal reports whether both open graphs have identical node and edge sets,
// identical boundary lists (order included) and identical measurements.
func (og *OpenGraph) Equal(other *OpenGraph) bool {
	if !og.graph.Equal(other.graph) {
		return false
	}
	if !slices.Equal(og.inputs, other.inputs) || !slices.Equal(og.outputs, other.outputs) {
		return false
	}
	return maps.Equal(og.measurements, other.measurements)
}

// WithInputs returns a copy of og whose input list is replaced by the given
// identifiers. Every identifier must already be an input of og; the node set,
// edges and measurements are unchanged. This is the primitive behind input
// boundary truncation: demoted nodes stay in the graph and keep their
// measurement, they simply stop being boundary inputs.
func (og *OpenGraph) WithInputs(inputs []int) (*OpenGraph, error) {
	current := make(map[int]struct{}, len(og.inputs))
	for _, id := range og.inputs {
		current[id] = struct{}{}
	}
	for _, id := range inputs {
		if _, ok := current[id]; !ok {
			return nil, fmt.Errorf("%w: %d is not an input", ErrUnknownBoundaryNode, id)
		}
	}
	c := og.Clone()
	c.inputs = slices.Clone(inputs)
	return c, nil
}
