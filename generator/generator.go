package generator

import (
	"fmt"

	"github.com/rectgraph/slig/interval"
	"github.com/rectgraph/slig/region"
)

// Generator produces uniformly-placed Regions within a fixed bounding
// Region, deterministic per seed.
type Generator struct {
	bounds region.Region
	cfg    config
	ids    *region.IDGenerator
}

// New constructs a Generator that places Regions within bounds.
//
// Resolves spec.md §9's open question over the reference implementation's
// two colliding RegionGenerator constructors (one from an explicit
// dimension+defaults, one from an existing RegionSet) as two distinct
// named factories: New takes an explicit bounding Region, FromRegionSet
// derives one from an existing Set's Bounds.
func New(bounds region.Region, opts ...Option) (*Generator, error) {
	if bounds.Dimension < 1 {
		return nil, ErrInvalidDimension
	}
	return &Generator{bounds: bounds, cfg: newConfig(opts...), ids: region.NewIDGenerator()}, nil
}

// FromRegionSet constructs a Generator whose bounds are set.Bounds. Returns
// ErrNilBounds if set has none.
func FromRegionSet(set *region.Set, opts ...Option) (*Generator, error) {
	if set.Bounds == nil {
		return nil, ErrNilBounds
	}
	return New(*set.Bounds, opts...)
}

// Generate produces a new region.Set of n freshly drawn Regions, all
// enclosed by the Generator's bounds.
//
// Each axis's extent is drawn independently from cfg.sizeRng, uniformly
// in [0, cap), where cap is that axis's per-axis size-fraction ceiling
// (uniform cfg.sizePct, or cfg.sizePctFactors per axis) times the axis's
// bounding length — unless WithSquare was given, in which case one shared
// fraction (still drawn from cfg.sizeRng) is applied to every axis of a
// single Region, scaled from the bounds' shortest axis. The Region's
// position is then drawn from cfg.positionRng so it remains enclosed.
// Keeping position and size on independent RNGs means reseeding one
// stream (e.g. to explore layouts at a fixed size distribution) never
// perturbs the other.
//
// Returns ErrInvalidSizePct if a WithSizePctFactors slice's length
// doesn't match the bounds' dimension, or any resolved fraction falls
// outside (0, 1].
//
// Complexity: O(n*d).
func (gen *Generator) Generate(n int) (*region.Set, error) {
	if n <= 0 {
		return nil, ErrInvalidCount
	}

	sizePct, err := gen.resolveSizePctFactors()
	if err != nil {
		return nil, err
	}

	set, err := region.NewSet(fmt.Sprintf("generated-%d", n), gen.bounds.Dimension, &gen.bounds)
	if err != nil {
		return nil, err
	}

	lengths := gen.bounds.Lengths()
	shortestLen := lengths[0]
	shortestPct := sizePct[0]
	for d, l := range lengths {
		if l < shortestLen {
			shortestLen = l
			shortestPct = sizePct[d]
		}
	}

	for i := 0; i < n; i++ {
		var squareExtent float64
		if gen.cfg.square {
			squareExtent = shortestLen * shortestPct * gen.cfg.sizeRng.Float64()
		}

		factors := make([]interval.Interval, gen.bounds.Dimension)
		for d := 0; d < gen.bounds.Dimension; d++ {
			lo, hi := gen.bounds.Lower(d), gen.bounds.Upper(d)
			axisLen := hi - lo

			extent := squareExtent
			if !gen.cfg.square {
				extent = axisLen * sizePct[d] * gen.cfg.sizeRng.Float64()
			}
			if extent > axisLen {
				extent = axisLen
			}

			start := lo + gen.cfg.positionRng.Float64()*(axisLen-extent)
			factors[d] = interval.New(start, start+extent)
		}
		r, err := region.FromIntervals(gen.ids.Next(), factors, nil)
		if err != nil {
			return nil, err
		}
		if err := set.Add(r); err != nil {
			return nil, err
		}
	}

	return set, nil
}

// resolveSizePctFactors returns one size fraction per axis, broadcasting
// cfg.sizePct when cfg.sizePctFactors wasn't set, and validating length
// and range otherwise.
func (gen *Generator) resolveSizePctFactors() ([]float64, error) {
	dim := gen.bounds.Dimension
	if gen.cfg.sizePctFactors == nil {
		out := make([]float64, dim)
		for d := range out {
			out[d] = gen.cfg.sizePct
		}
		return out, nil
	}
	if len(gen.cfg.sizePctFactors) != dim {
		return nil, ErrInvalidSizePct
	}
	for _, pct := range gen.cfg.sizePctFactors {
		if pct <= 0 || pct > 1 {
			return nil, ErrInvalidSizePct
		}
	}
	return gen.cfg.sizePctFactors, nil
}
