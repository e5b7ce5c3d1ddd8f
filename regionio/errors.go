// Package regionio marshals and unmarshals Region, region.Set, and
// rig.Graph values to and from JSON, using encoding/json directly rather
// than reflection-driven struct tags: the wire shapes (spec.md §6.1-6.3)
// accept more than one input form per type, which a plain struct tag
// cannot express, so each type gets an explicit intermediate "wire"
// struct and a hand-written conversion both ways (the teacher's
// converters package documents the same adapt-by-explicit-struct
// approach for its external graph-library adapters, though the pack
// carries no generic JSON-graph library to wire in here directly — see
// DESIGN.md).
package regionio

import "errors"

// Sentinel errors for marshal/unmarshal.
var (
	// ErrLengthMismatch indicates a RegionSet's advisory "length" field
	// disagreed with the actual number of parsed regions.
	ErrLengthMismatch = errors.New("regionio: length field does not match region count")

	// ErrUnknownGraphShape indicates a RIG's "json_graph" field was
	// neither "node_link" nor "adjacency".
	ErrUnknownGraphShape = errors.New("regionio: unknown json_graph shape")

	// ErrMissingFactors indicates a Region object had neither a
	// "factors" array nor parallel "lower"/"upper" arrays.
	ErrMissingFactors = errors.New("regionio: region has no factors")
)
