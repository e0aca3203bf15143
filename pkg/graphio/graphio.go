package graphio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/flowbench/flowbench/pkg/opengraph"
)

type graph struct {
	Nodes   []node `json:"nodes"`
	Edges   []edge `json:"edges"`
	Inputs  []int  `json:"inputs"`
	Outputs []int  `json:"outputs"`
}

type node struct {
	ID          int          `json:"id"`
	Measurement *measurement `json:"measurement,omitempty"`
}

type edge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

type measurement struct {
	Angle float64 `json:"angle"`
	Plane string  `json:"plane"`
}

// WriteJSON encodes an open graph as indented JSON and writes it to w.
// Nodes and edges are emitted in sorted order, so identical graphs always
// serialize to identical bytes. The output can be re-imported with
// [ReadJSON].
func WriteJSON(og *opengraph.OpenGraph, w io.Writer) error {
	g := og.Graph()
	meas := og.Measurements()

	out := graph{
		Nodes:   make([]node, 0, g.Order()),
		Edges:   make([]edge, 0, g.Size()),
		Inputs:  og.Inputs(),
		Outputs: og.Outputs(),
	}

	for _, id := range g.Nodes() {
		nd := node{ID: id}
		if m, ok := meas[id]; ok {
			nd.Measurement = &measurement{Angle: m.Angle, Plane: m.Plane.String()}
		}
		out.Nodes = append(out.Nodes, nd)
	}
	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, edge{From: e[0], To: e[1]})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes an open graph to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(og *opengraph.OpenGraph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(og, f)
}

// ReadJSON decodes a JSON open graph from r.
//
// The decoded structure is passed through [opengraph.New], so ReadJSON
// rejects graphs with boundary nodes that do not exist, duplicate boundary
// entries, measured outputs, or non-output nodes without a measurement.
// Unknown measurement planes are reported with the offending node's ID.
//
// The returned open graph is independent of r; ReadJSON does not close r.
func ReadJSON(r io.Reader) (*opengraph.OpenGraph, error) {
	var data graph
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	g := opengraph.NewGraph()
	meas := make(map[int]opengraph.Measurement, len(data.Nodes))
	for _, n := range data.Nodes {
		g.AddNode(n.ID)
		if n.Measurement == nil {
			continue
		}
		plane, err := opengraph.ParsePlane(n.Measurement.Plane)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", n.ID, err)
		}
		meas[n.ID] = opengraph.Measurement{Angle: n.Measurement.Angle, Plane: plane}
	}
	for _, e := range data.Edges {
		if !g.HasNode(e.From) || !g.HasNode(e.To) {
			return nil, fmt.Errorf("edge %d-%d: unknown endpoint", e.From, e.To)
		}
		g.AddEdge(e.From, e.To)
	}

	og, err := opengraph.New(g, data.Inputs, data.Outputs, meas)
	if err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	return og, nil
}

// ImportJSON reads a JSON file at path and returns the decoded open graph.
// It returns the same validation errors as [ReadJSON].
func ImportJSON(path string) (*opengraph.OpenGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	og, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return og, nil
}
