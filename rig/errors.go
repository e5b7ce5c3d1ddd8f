// Package rig implements the Regional Intersection Graph: its node/edge
// storage (Graph) and the SLIG sweep-line algorithm that builds one from a
// region.Set in O(d*N log N + d*K) time.
package rig

import "errors"

// Sentinel errors for Graph and the SLIG constructor.
var (
	// ErrEmptyID indicates a Graph was constructed with an empty id.
	ErrEmptyID = errors.New("rig: id is empty")

	// ErrInvalidDimension indicates a Graph or Build call received a
	// dimension below 1.
	ErrInvalidDimension = errors.New("rig: dimension must be at least 1")

	// ErrRegionNotFound indicates an operation referenced a region id with
	// no corresponding node in the graph.
	ErrRegionNotFound = errors.New("rig: region not found")

	// ErrNotIntersecting indicates PutIntersection was asked to link two
	// regions that do not actually overlap.
	ErrNotIntersecting = errors.New("rig: regions do not intersect")

	// ErrDimensionMismatch is a shape-error sentinel for this package. No
	// function in the package returns it: Build takes its dimension from the
	// region.Set, which already rejects members of another dimension.
	ErrDimensionMismatch = errors.New("rig: dimension mismatch")
)
