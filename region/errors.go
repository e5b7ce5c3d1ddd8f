package region

import "errors"

// Sentinel errors for region construction and collection operations.
var (
	// ErrEmptyID indicates a Region or Set was constructed with an empty ID.
	ErrEmptyID = errors.New("region: id is empty")

	// ErrNoFactors indicates a Region was constructed with zero Factors
	// (dimension must be >= 1).
	ErrNoFactors = errors.New("region: dimension must be at least 1")

	// ErrDimensionMismatch indicates two Regions, or a Region and a Set,
	// were compared or combined despite differing Dimension. A shape error
	// per the propagation policy: fatal to the current operation.
	ErrDimensionMismatch = errors.New("region: dimension mismatch")

	// ErrDuplicateID indicates an attempt to add a Region whose ID already
	// exists in a Set.
	ErrDuplicateID = errors.New("region: duplicate id in set")

	// ErrOutOfBounds indicates an attempt to add a Region to a Set whose
	// Bounds does not enclose it. A domain error per the propagation policy.
	ErrOutOfBounds = errors.New("region: region violates set bounds")

	// ErrEmptyIntersection indicates from_intersection was asked to operate
	// on zero regions.
	ErrEmptyIntersection = errors.New("region: intersection requires at least one region")
)
