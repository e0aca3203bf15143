// Package blocks holds the minimal open-graph building blocks used as
// composition pools. Each block is a small fixed open graph whose flow
// properties are known, so graphs grown from them keep those properties.
// Constructors return fresh instances; callers may hand them to a composer
// without worrying about shared state.
package blocks

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/flowbench/flowbench/pkg/opengraph"
)

// ErrUnknownBlock is returned by [Lookup] for names missing from the
// registry.
var ErrUnknownBlock = errors.New("unknown block name")

// Browne returns a 10-node block with Pauli flow but no gflow and two inputs
// and two outputs:
//
//	[0]-2-5-(8)
//	    | |
//	    3-6
//	    | |
//	[1]-4-7-(9)
//
// Adapted from Fig. 7 in D. E. Browne et al 2007 New J. Phys. 9 250.
func Browne() *opengraph.OpenGraph {
	g := opengraph.NewGraphFromEdges([][2]int{
		{0, 2}, {1, 4},
		{2, 3}, {3, 4},
		{2, 5}, {3, 6}, {4, 7},
		{5, 6}, {6, 7},
		{5, 8}, {7, 9},
	})

	meas := make(map[int]opengraph.Measurement, 8)
	for id := 0; id < 8; id++ {
		meas[id] = opengraph.Measurement{Angle: 0, Plane: opengraph.PlaneXY}
	}

	return mustBlock(g, []int{0, 1}, []int{8, 9}, meas)
}

// Mixed returns an 8-node block with Pauli flow, two inputs and two outputs,
// and measurements spanning the XY and YZ planes:
//
//	[0]-2-4-(6)
//	    | |
//	[1]-3-5-(7)
func Mixed() *opengraph.OpenGraph {
	g := opengraph.NewGraphFromEdges([][2]int{
		{0, 2}, {1, 3},
		{2, 3},
		{2, 4}, {3, 5},
		{4, 5},
		{4, 6}, {5, 7},
	})

	meas := map[int]opengraph.Measurement{
		0: {Angle: 0.1, Plane: opengraph.PlaneXY},
		1: {Angle: 0.1, Plane: opengraph.PlaneXY},
		2: {Angle: 0.1, Plane: opengraph.PlaneXY},
		3: {Angle: 0.1, Plane: opengraph.PlaneXY},
		4: {Angle: 0.0, Plane: opengraph.PlaneXY},
		5: {Angle: 0.5, Plane: opengraph.PlaneYZ},
	}

	return mustBlock(g, []int{0, 1}, []int{6, 7}, meas)
}

// DefaultPool returns the standard composition pool: [Browne, Mixed].
func DefaultPool() []*opengraph.OpenGraph {
	return []*opengraph.OpenGraph{Browne(), Mixed()}
}

// registry maps block names to constructors for CLI and profile lookups.
var registry = map[string]func() *opengraph.OpenGraph{
	"browne": Browne,
	"mixed":  Mixed,
}

// Names returns the registered block names in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}

// Lookup returns a fresh instance of the named block. Names are
// case-insensitive.
func Lookup(name string) (*opengraph.OpenGraph, error) {
	ctor, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownBlock, name, strings.Join(Names(), ", "))
	}
	return ctor(), nil
}

// mustBlock wraps opengraph.New for literal fixture data; it can only fail
// if the fixture itself is wrong.
func mustBlock(g *opengraph.Graph, inputs, outputs []int, meas map[int]opengraph.Measurement) *opengraph.OpenGraph {
	og, err := opengraph.New(g, inputs, outputs, meas)
	if err != nil {
		panic(fmt.Sprintf("invalid block fixture: %v", err))
	}
	return og
}
