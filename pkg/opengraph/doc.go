// Package opengraph provides the open-graph data model used throughout
// flowbench: an undirected graph over integer node identifiers together with
// ordered input/output boundary lists and a measurement assignment for every
// non-output node.
//
// The package also provides the merge primitive [Compose], which joins two
// open graphs by disjoint union followed by identification of selected
// boundary node pairs. All composition recipes in package compose are built
// on top of it.
//
// # Immutability
//
// Open graphs are treated as values: [Compose] never mutates its operands,
// accessors return copies of boundary lists, and [OpenGraph.Clone] produces a
// fully independent instance. Composition recipes rely on this to reuse block
// templates across an unbounded number of steps.
package opengraph
