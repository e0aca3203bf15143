package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/flowbench/flowbench/pkg/opengraph"
)

// Options configures diagram rendering.
type Options struct {
	// Detailed includes the measurement plane and angle in node labels.
	// When false, only the node identifier is shown.
	Detailed bool
}

// ToDOT converts an open graph to Graphviz DOT format.
// The resulting DOT string can be rendered with [SVG].
//
// Input nodes are drawn with a double outline and output nodes with a bold
// one, so the boundary is visible at a glance.
func ToDOT(og *opengraph.OpenGraph, opts Options) string {
	g := og.Graph()
	inputs := boundarySet(og.Inputs())
	outputs := boundarySet(og.Outputs())
	meas := og.Measurements()

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, id := range g.Nodes() {
		var label string
		if m, ok := meas[id]; ok && opts.Detailed {
			label = fmt.Sprintf("%d\n%s %.2f", id, m.Plane, m.Angle)
		} else {
			label = fmt.Sprintf("%d", id)
		}

		attrs := []string{fmt.Sprintf("label=%q", label)}
		if _, in := inputs[id]; in {
			attrs = append(attrs, "shape=doublecircle")
		}
		if _, out := outputs[id]; out {
			attrs = append(attrs, "penwidth=2", "fillcolor=lightgrey")
		}
		fmt.Fprintf(&buf, "  %d [%s];\n", id, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %d -- %d;\n", e[0], e[1])
	}

	// Pin the input boundary to one rank so it reads as the left edge.
	if len(og.Inputs()) > 1 {
		ids := make([]string, len(og.Inputs()))
		for i, id := range og.Inputs() {
			ids[i] = fmt.Sprintf("%d", id)
		}
		fmt.Fprintf(&buf, "\n  { rank=same; %s; }\n", strings.Join(ids, "; "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func boundarySet(ids []int) map[int]struct{} {
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
