// Package render draws open graphs as node-link diagrams.
//
// # Usage
//
// Convert an open graph to DOT format, then render to SVG:
//
//	dot := render.ToDOT(og, render.Options{Detailed: true})
//	svg, err := render.SVG(ctx, dot)
//
// # Visual encoding
//
// Nodes are circles. Input nodes get a double outline, output nodes a bold
// one; a node that is both input and output gets both. With Detailed set,
// each measured node's label carries its measurement plane and angle.
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [SVG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// The graph is undirected, so the output is a "graph" with "--" edges laid
// out left to right (rankdir=LR), inputs on the left.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package render
