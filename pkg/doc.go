// Package pkg provides the core libraries for Flowbench open-graph generation.
//
// # Overview
//
// Flowbench composes small open graphs with known flow properties into
// arbitrarily large benchmark instances for measurement-based computation.
// The pkg directory is organized into six areas:
//
//  1. [opengraph] - The open-graph data model and the composition primitive
//  2. [blocks] - The built-in minimal block fixtures
//  3. [compose] - Generation recipes (iterative, series, grid)
//  4. [graphio] - JSON serialization and run manifests
//  5. [render] - DOT and SVG diagram output
//  6. [cache] - Byte-level caching of expensive renders
//
// # Architecture
//
// The typical data flow through Flowbench:
//
//	[blocks] package (minimal open-graph fixtures)
//	         |
//	    [compose] package (iterative / series / grid recipes)
//	         |
//	    [graphio] package (JSON files + run manifest)
//	         |
//	    [render] package (DOT source, cached SVG)
//
// # Quick Start
//
// Grow a batch of open graphs and write them out:
//
//	import (
//	    "github.com/flowbench/flowbench/pkg/blocks"
//	    "github.com/flowbench/flowbench/pkg/compose"
//	    "github.com/flowbench/flowbench/pkg/graphio"
//	)
//
//	composer, _ := compose.New(blocks.DefaultPool())
//	ogs, _, _ := composer.Generate(compose.Options{
//	    StepCounts: []int{1, 3, 5},
//	    MergeWidth: 1,
//	})
//	for i, og := range ogs {
//	    _ = graphio.ExportJSON(og, fmt.Sprintf("step_%d.json", i))
//	}
//
// Composition preserves the Pauli-flow properties of the blocks, so every
// generated instance is a valid benchmark without further checking.
package pkg
