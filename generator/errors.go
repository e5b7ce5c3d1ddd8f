// Package generator produces randomized, deterministic-per-seed
// region.Sets for testing and benchmarking the rig/enumerate packages,
// in the style of lvlath/builder's functional-options stochastic
// constructors (WithSeed/WithRand, RandomSparse/RandomRegular).
package generator

import "errors"

// Sentinel errors for Config validation and Generate.
var (
	// ErrInvalidDimension indicates New/FromRegionSet was asked for a
	// dimension below 1.
	ErrInvalidDimension = errors.New("generator: dimension must be at least 1")

	// ErrInvalidCount indicates Generate was asked for a non-positive
	// region count.
	ErrInvalidCount = errors.New("generator: count must be positive")

	// ErrInvalidSizePct indicates a resolved per-axis size fraction
	// outside (0, 1], or a WithSizePctFactors slice whose length does
	// not match the bounding Region's dimension. The scalar WithSizePct
	// option validates its argument immediately and panics instead (its
	// value is known at construction time); this sentinel covers the
	// per-axis case, where the mismatch can only be detected once
	// Generate knows the bounds' dimension.
	ErrInvalidSizePct = errors.New("generator: size percentage must be in (0, 1]")

	// ErrNilBounds indicates a Generator was asked to place regions
	// without a bounding Region to draw coordinates from.
	ErrNilBounds = errors.New("generator: bounds region is required")
)
