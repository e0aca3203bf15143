package opengraph

import (
	"errors"
	"slices"
	"testing"
)

// pathBlock builds the open graph [0]-1-(2): one input, one internal node,
// one output.
func pathBlock(t *testing.T) *OpenGraph {
	t.Helper()
	og, err := New(
		NewGraphFromEdges([][2]int{{0, 1}, {1, 2}}),
		[]int{0},
		[]int{2},
		map[int]Measurement{
			0: {Angle: 0, Plane: PlaneXY},
			1: {Angle: 0.5, Plane: PlaneYZ},
		},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return og
}

func TestNewValidation(t *testing.T) {
	g := NewGraphFromEdges([][2]int{{0, 1}, {1, 2}})
	meas := map[int]Measurement{
		0: {Plane: PlaneXY},
		1: {Plane: PlaneXY},
	}

	tests := []struct {
		name    string
		graph   *Graph
		inputs  []int
		outputs []int
		meas    map[int]Measurement
		wantErr error
	}{
		{
			name: "Valid", graph: g,
			inputs: []int{0}, outputs: []int{2}, meas: meas,
		},
		{
			name: "NilGraph", graph: nil,
			inputs: []int{0}, outputs: []int{2}, meas: meas,
			wantErr: ErrNilGraph,
		},
		{
			name: "UnknownInput", graph: g,
			inputs: []int{9}, outputs: []int{2}, meas: meas,
			wantErr: ErrUnknownBoundaryNode,
		},
		{
			name: "UnknownOutput", graph: g,
			inputs: []int{0}, outputs: []int{9}, meas: meas,
			wantErr: ErrUnknownBoundaryNode,
		},
		{
			name: "DuplicateInput", graph: g,
			inputs: []int{0, 0}, outputs: []int{2}, meas: meas,
			wantErr: ErrDuplicateBoundaryNode,
		},
		{
			name: "MissingMeasurement", graph: g,
			inputs: []int{0}, outputs: []int{2},
			meas:    map[int]Measurement{0: {Plane: PlaneXY}},
			wantErr: ErrMissingMeasurement,
		},
		{
			name: "MeasuredOutput", graph: g,
			inputs: []int{0}, outputs: []int{2},
			meas: map[int]Measurement{
				0: {Plane: PlaneXY},
				1: {Plane: PlaneXY},
				2: {Plane: PlaneXY},
			},
			wantErr: ErrMeasuredOutput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.graph, tt.inputs, tt.outputs, tt.meas)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("New: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAccessorsCopy(t *testing.T) {
	og := pathBlock(t)

	ins := og.Inputs()
	ins[0] = 99
	if got := og.Inputs()[0]; got != 0 {
		t.Errorf("Inputs()[0] = %d after caller mutation, want 0", got)
	}

	ms := og.Measurements()
	ms[1] = Measurement{Angle: 9}
	if m, _ := og.Measurement(1); m.Angle != 0.5 {
		t.Errorf("Measurement(1).Angle = %v after caller mutation, want 0.5", m.Angle)
	}

	g := og.Graph()
	g.AddEdge(2, 77)
	if og.Order() != 3 {
		t.Error("mutating Graph() copy affected the open graph")
	}
}

func TestCloneAndEqual(t *testing.T) {
	og := pathBlock(t)
	c := og.Clone()

	if !og.Equal(c) {
		t.Error("clone not Equal to original")
	}

	c2, err := c.WithInputs(nil)
	if err != nil {
		t.Fatalf("WithInputs: %v", err)
	}
	if og.Equal(c2) {
		t.Error("graphs with different input lists reported Equal")
	}
	if len(og.Inputs()) != 1 {
		t.Error("WithInputs mutated its receiver")
	}
}

func TestWithInputs(t *testing.T) {
	og := pathBlock(t)

	if _, err := og.WithInputs([]int{1}); !errors.Is(err, ErrUnknownBoundaryNode) {
		t.Errorf("WithInputs(non-input) error = %v, want ErrUnknownBoundaryNode", err)
	}

	trimmed, err := og.WithInputs([]int{})
	if err != nil {
		t.Fatalf("WithInputs: %v", err)
	}
	if got := trimmed.Inputs(); len(got) != 0 {
		t.Errorf("Inputs = %v, want empty", got)
	}
	// Demoted node keeps its place in the graph and its measurement.
	if trimmed.Order() != 3 {
		t.Errorf("Order = %d, want 3", trimmed.Order())
	}
	if _, ok := trimmed.Measurement(0); !ok {
		t.Error("demoted input lost its measurement")
	}
	if got := trimmed.Outputs(); !slices.Equal(got, []int{2}) {
		t.Errorf("Outputs = %v, want [2]", got)
	}
}
