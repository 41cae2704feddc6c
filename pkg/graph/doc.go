// Package graph defines the dependency-graph dataset handed to renderers.
//
// The dataset is produced elsewhere and treated as immutable here: nodes and
// links are decoded once and passed to the visualization backends unmodified.
//
// # JSON Format
//
//	{
//	  "nodes": [{"id": "MDL-570"}, {"id": "Model Regulation 580"}],
//	  "links": [{"source": "MDL-570", "target": "Model Regulation 580"}]
//	}
//
// "edges" is accepted as an alias of "links" when reading. Extra node or link
// fields are kept in Attrs and written back unchanged.
//
// # Validation
//
// None. Duplicate ids, self-loops, parallel links and links that reference
// unknown ids pass through untouched; how they render is up to the renderer.
// Only a syntactically broken document fails to decode.
package graph
