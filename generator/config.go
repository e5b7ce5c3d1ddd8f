package generator

import "math/rand"

// config holds the resolved knobs for a Generator, built from Option
// values the same way builder.builderConfig is built from BuilderOption
// values: defaults first, then each Option applied in order.
//
// positionRng and sizeRng are kept independent, matching spec.md §6.5's
// "accepts ... a position RNG, a size RNG": drawing both position and
// extent from one shared stream would make each axis's extent draw
// perturb the position stream's sequence (and vice versa), which breaks
// reproducing just the layout (or just the size distribution) across
// otherwise-identical runs.
type config struct {
	positionRng *rand.Rand
	sizeRng     *rand.Rand

	// sizePct is the uniform per-axis extent fraction used when
	// sizePctFactors is nil.
	sizePct float64

	// sizePctFactors, when non-nil, gives an explicit per-axis extent
	// fraction instead of the uniform sizePct. Its length is validated
	// against the bounds' dimension in Generate, since dimension isn't
	// known until the Generator is constructed.
	sizePctFactors []float64

	square bool
}

func newConfig(opts ...Option) config {
	cfg := config{
		positionRng: rand.New(rand.NewSource(1)),
		sizeRng:     rand.New(rand.NewSource(2)),
		sizePct:     0.1,
		square:      false,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option customizes a Generator. Option constructors validate and panic on
// meaningless inputs, matching builder.BuilderOption's contract; Generate
// itself never panics.
type Option func(*config)

// WithPositionRand provides an explicit RNG for position draws. Panics on
// nil.
func WithPositionRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithPositionRand(nil)")
	}
	return func(c *config) { c.positionRng = r }
}

// WithSizeRand provides an explicit RNG for extent draws. Panics on nil.
func WithSizeRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithSizeRand(nil)")
	}
	return func(c *config) { c.sizeRng = r }
}

// WithSeed seeds both the position and size RNGs deterministically from
// seed, using distinct derived sources so the two streams don't coincide.
// Prefer this over WithPositionRand/WithSizeRand for reproducible tests.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.positionRng = rand.New(rand.NewSource(seed))
		c.sizeRng = rand.New(rand.NewSource(seed ^ 0x5bd1e995))
	}
}

// WithSizePct sets the fraction of each bounding axis's length that a
// generated Region's extent is drawn from, uniformly across every axis,
// in (0, 1]. Panics outside that range.
func WithSizePct(pct float64) Option {
	if pct <= 0 || pct > 1 {
		panic("generator: WithSizePct out of range (0, 1]")
	}
	return func(c *config) {
		c.sizePct = pct
		c.sizePctFactors = nil
	}
}

// WithSizePctFactors sets an explicit per-axis extent fraction, overriding
// WithSizePct's uniform fraction. factors must be non-empty; panics
// otherwise. Its length is checked against the bounding Region's dimension
// in Generate (returning ErrInvalidSizePct on mismatch), since the
// dimension isn't known at option-construction time.
func WithSizePctFactors(factors []float64) Option {
	if len(factors) == 0 {
		panic("generator: WithSizePctFactors(empty)")
	}
	cp := append([]float64(nil), factors...)
	return func(c *config) { c.sizePctFactors = cp }
}

// WithSquare forces every generated Region to use the same extent on
// every axis (a hypercube), scaled from the bounding Region's shortest
// axis. Without this option, each axis draws its extent independently.
func WithSquare() Option {
	return func(c *config) { c.square = true }
}
