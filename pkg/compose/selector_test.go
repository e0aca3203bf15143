package compose

import (
	"math/rand"
	"testing"
)

func TestBoundaryMappingDeterministic(t *testing.T) {
	outputs := []int{8, 9}
	inputs := []int{0, 1}

	if m := boundaryMapping(outputs, inputs, 0, nil); m != nil {
		t.Errorf("width 0 mapping = %v, want nil", m)
	}

	m := boundaryMapping(outputs, inputs, 1, nil)
	if len(m) != 1 || m[0] != 8 {
		t.Errorf("width 1 mapping = %v, want map[0:8]", m)
	}

	m = boundaryMapping(outputs, inputs, 5, nil)
	if len(m) != 2 || m[0] != 8 || m[1] != 9 {
		t.Errorf("clamped mapping = %v, want map[0:8 1:9]", m)
	}
}

// A duplicate input-side draw collapses to one map entry, so the effective
// merge width can fall below the requested one. On a 2-element boundary a
// width-2 draw collapses for roughly half of all seeds.
func TestBoundaryMappingStochasticCollapse(t *testing.T) {
	outputs := []int{20, 21}
	inputs := []int{10, 11}

	var collapsed, full bool
	for seed := int64(0); seed < 64; seed++ {
		rng := rand.New(rand.NewSource(seed))
		m := boundaryMapping(outputs, inputs, 2, rng)

		if len(m) < 1 || len(m) > 2 {
			t.Fatalf("seed %d: mapping size %d", seed, len(m))
		}
		for in, out := range m {
			if in != 10 && in != 11 {
				t.Fatalf("seed %d: input %d not on the boundary", seed, in)
			}
			if out != 20 && out != 21 {
				t.Fatalf("seed %d: output %d not on the boundary", seed, out)
			}
		}
		switch len(m) {
		case 1:
			collapsed = true
		case 2:
			full = true
		}
	}

	if !collapsed {
		t.Error("no seed collapsed the mapping below the requested width")
	}
	if !full {
		t.Error("no seed produced a full-width mapping")
	}
}

func TestBoundaryMappingStochasticReproducible(t *testing.T) {
	outputs := []int{6, 7, 8}
	inputs := []int{0, 1, 2}

	a := boundaryMapping(outputs, inputs, 2, rand.New(rand.NewSource(7)))
	b := boundaryMapping(outputs, inputs, 2, rand.New(rand.NewSource(7)))

	if len(a) != len(b) {
		t.Fatalf("same seed gave sizes %d and %d", len(a), len(b))
	}
	for in, out := range a {
		if b[in] != out {
			t.Errorf("same seed gave %v and %v", a, b)
			break
		}
	}
}
