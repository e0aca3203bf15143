// Package graphio provides JSON import and export for open graphs.
//
// # JSON Format
//
// An open graph is stored as a JSON object with four fields:
//
//	{
//	  "nodes": [
//	    {"id": 0, "measurement": {"angle": 0.5, "plane": "XY"}},
//	    {"id": 1}
//	  ],
//	  "edges": [{"from": 0, "to": 1}],
//	  "inputs": [0],
//	  "outputs": [1]
//	}
//
// Every node carries its identifier; non-output nodes additionally carry
// their measurement (angle in fractions of pi, plane one of "XY", "YZ",
// "XZ"). The inputs and outputs arrays are ordered; their order is part of
// the graph's meaning and survives a round trip.
//
// Use [ExportJSON] and [ImportJSON] for file paths, or [WriteJSON] and
// [ReadJSON] for any io.Writer/io.Reader. Import runs the full open-graph
// validation, so malformed boundaries or missing measurements are rejected
// with the same errors [opengraph.New] returns.
//
// [opengraph.New]: github.com/flowbench/flowbench/pkg/opengraph.New
package graphio
