package compose

import (
	"testing"

	"github.com/flowbench/flowbench/pkg/blocks"
)

func TestComposeSeriesZero(t *testing.T) {
	block := blocks.Browne()
	got, err := ComposeSeries(block, 0)
	if err != nil {
		t.Fatalf("ComposeSeries: %v", err)
	}
	if !got.Equal(block) {
		t.Error("n = 0 should return an unchanged copy of the block")
	}
}

func TestComposeSeriesChainLength(t *testing.T) {
	tests := []struct {
		n     int
		order int
	}{
		// Each appended copy welds its two inputs onto the running
		// outputs, contributing order-2 fresh nodes.
		{n: 1, order: 18},
		{n: 2, order: 26},
		{n: 3, order: 34},
	}
	for _, tt := range tests {
		got, err := ComposeSeries(blocks.Browne(), tt.n)
		if err != nil {
			t.Fatalf("ComposeSeries(n=%d): %v", tt.n, err)
		}
		if got.Order() != tt.order {
			t.Errorf("n = %d: order = %d, want %d", tt.n, got.Order(), tt.order)
		}
		if comps := got.Graph().ConnectedComponents(); comps != 1 {
			t.Errorf("n = %d: components = %d, want 1", tt.n, comps)
		}
		if len(got.Inputs()) != 2 || len(got.Outputs()) != 2 {
			t.Errorf("n = %d: boundary = %d/%d, want 2/2",
				tt.n, len(got.Inputs()), len(got.Outputs()))
		}
	}
}

func TestComposeSeriesLeavesBlockUntouched(t *testing.T) {
	block := blocks.Mixed()
	before := block.Clone()
	if _, err := ComposeSeries(block, 3); err != nil {
		t.Fatalf("ComposeSeries: %v", err)
	}
	if !block.Equal(before) {
		t.Error("series composition mutated its template")
	}
}
