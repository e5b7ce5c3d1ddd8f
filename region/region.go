package region

import (
	"fmt"
	"sort"

	"github.com/rectgraph/slig/interval"
)

// Region is a d-dimensional axis-aligned hyperrectangle: an ordered
// sequence of per-axis Intervals, together with identity and provenance.
//
// Regions are immutable after construction except through Data, the open
// annotation map (mirroring core.Vertex.Metadata: present for user
// bookkeeping, not considered by any geometric operation or by equality).
type Region struct {
	// ID uniquely identifies this Region among its peers.
	ID string

	// Dimension is len(Factors); kept as a field for O(1) access and to
	// mirror the struct shape documented in spec.md §3.
	Dimension int

	// Factors holds one Interval per axis, in axis order.
	Factors []interval.Interval

	// Originals is the provenance set: the ids of the input Regions whose
	// common intersection produced this Region. Non-empty always; for an
	// input Region it is {ID}; for a derived Region it is the deduplicated
	// union of its constituents' Originals.
	Originals map[string]struct{}

	// Data is an open key->value annotation map (e.g. a visualization
	// color). Never consulted by geometric operations or equality.
	Data map[string]interface{}
}

// FromIntervals constructs a Region directly from a factor list.
//
// If originals is empty, Originals defaults to {id}. Returns
// ErrEmptyID/ErrNoFactors on invalid input.
//
// Complexity: O(d).
func FromIntervals(id string, factors []interval.Interval, originals []string) (Region, error) {
	if id == "" {
		return Region{}, ErrEmptyID
	}
	if len(factors) == 0 {
		return Region{}, ErrNoFactors
	}
	if len(originals) == 0 {
		originals = []string{id}
	}
	origSet := make(map[string]struct{}, len(originals))
	for _, o := range originals {
		origSet[o] = struct{}{}
	}
	return Region{
		ID:        id,
		Dimension: len(factors),
		Factors:   append([]interval.Interval(nil), factors...),
		Originals: origSet,
		Data:      make(map[string]interface{}),
	}, nil
}

// FromInterval builds a hypercube Region of the given dimension: every axis
// uses the same Interval.
//
// Complexity: O(dimension).
func FromInterval(id string, i interval.Interval, dimension int) (Region, error) {
	if dimension < 1 {
		return Region{}, ErrNoFactors
	}
	factors := make([]interval.Interval, dimension)
	for d := range factors {
		factors[d] = i
	}
	return FromIntervals(id, factors, nil)
}

// Lower returns Factors[d].Lower.
func (r Region) Lower(d int) float64 { return r.Factors[d].Lower }

// Upper returns Factors[d].Upper.
func (r Region) Upper(d int) float64 { return r.Factors[d].Upper }

// Lengths returns the per-axis interval lengths.
func (r Region) Lengths() []float64 {
	out := make([]float64, r.Dimension)
	for d, f := range r.Factors {
		out[d] = f.Length()
	}
	return out
}

// Midpoint returns the per-axis interval midpoints.
func (r Region) Midpoint() []float64 {
	out := make([]float64, r.Dimension)
	for d, f := range r.Factors {
		out[d] = f.Midpoint()
	}
	return out
}

// Size returns the product of the per-axis lengths (hypervolume).
func (r Region) Size() float64 {
	size := 1.0
	for _, f := range r.Factors {
		size *= f.Length()
	}
	return size
}

// Contains reports whether point lies within r on every axis.
//
// Returns ErrDimensionMismatch if len(point) != r.Dimension.
//
// Complexity: O(d).
func (r Region) Contains(point []float64, incLower, incUpper bool) (bool, error) {
	if len(point) != r.Dimension {
		return false, ErrDimensionMismatch
	}
	for d, f := range r.Factors {
		if !f.Contains(point[d], incLower, incUpper) {
			return false, nil
		}
	}
	return true, nil
}

// Encloses reports whether that lies entirely within r, axis by axis.
// Trivially true when r and that are the same Region.
//
// Returns ErrDimensionMismatch if dimensions differ.
//
// Complexity: O(d).
func (r Region) Encloses(that Region, incLower, incUpper bool) (bool, error) {
	if r.Dimension != that.Dimension {
		return false, ErrDimensionMismatch
	}
	for d := range r.Factors {
		if !r.Factors[d].Encloses(that.Factors[d], incLower, incUpper) {
			return false, nil
		}
	}
	return true, nil
}

// IsIntersecting reports whether r and that overlap on every axis.
//
// Returns ErrDimensionMismatch if dimensions differ — a shape error, fatal
// to the current operation per the error-handling design.
//
// Complexity: O(d).
func (r Region) IsIntersecting(that Region, incBounds bool) (bool, error) {
	if r.Dimension != that.Dimension {
		return false, ErrDimensionMismatch
	}
	for d := range r.Factors {
		if !r.Factors[d].IsIntersecting(that.Factors[d], incBounds) {
			return false, nil
		}
	}
	return true, nil
}

// Intersection computes the pairwise intersection Region of r and that.
//
// The result's Originals is the deduplicated union of r.Originals and
// that.Originals and its ID is freshly generated via newID. Returns
// (zero, false, nil) if r and that do not intersect — absence, not an
// error. Returns (zero, false, ErrDimensionMismatch) on a shape error.
//
// Complexity: O(d).
func (r Region) Intersection(that Region, incBounds bool, newID func() string) (Region, bool, error) {
	if r.Dimension != that.Dimension {
		return Region{}, false, ErrDimensionMismatch
	}
	factors := make([]interval.Interval, r.Dimension)
	for d := range r.Factors {
		f, ok := r.Factors[d].Intersection(that.Factors[d], incBounds)
		if !ok {
			return Region{}, false, nil
		}
		factors[d] = f
	}
	out, err := FromIntervals(newID(), factors, mergedOriginals(r, that))
	if err != nil {
		return Region{}, false, err
	}
	return out, true, nil
}

// IntersectionSize returns the hypervolume of r ∩ that, or 0 if they are
// disjoint or have mismatched dimension.
//
// Complexity: O(d).
func (r Region) IntersectionSize(that Region) float64 {
	if r.Dimension != that.Dimension {
		return 0
	}
	size := 1.0
	for d := range r.Factors {
		f, ok := r.Factors[d].Intersection(that.Factors[d], false)
		if !ok {
			return 0
		}
		size *= f.Length()
	}
	return size
}

// UnionSize returns r.Size() + that.Size() - r.IntersectionSize(that).
//
// spec.md §9 notes that an early draft of the reference source computed
// this via an undefined free function get_intersection_size(that) instead
// of self.get_intersection_size(that); that bug is not reproduced here.
func (r Region) UnionSize(that Region) float64 {
	return r.Size() + that.Size() - r.IntersectionSize(that)
}

// Project truncates or pads r to target dimension target, using fill for
// any newly added axes. Identity when target == r.Dimension.
//
// Complexity: O(target).
func (r Region) Project(target int, fill interval.Interval) Region {
	factors := make([]interval.Interval, target)
	copy(factors, r.Factors)
	for d := len(r.Factors); d < target; d++ {
		factors[d] = fill
	}
	if target < len(r.Factors) {
		factors = append([]interval.Interval(nil), r.Factors[:target]...)
	}
	return Region{
		ID:        r.ID,
		Dimension: target,
		Factors:   factors,
		Originals: r.Originals,
		Data:      r.Data,
	}
}

// Equal reports structural equality: same dimension, pointwise-equal
// Factors. Originals and Data are not part of equality.
func (r Region) Equal(that Region) bool {
	if r.Dimension != that.Dimension {
		return false
	}
	for d := range r.Factors {
		if r.Factors[d] != that.Factors[d] {
			return false
		}
	}
	return true
}

// Clone returns a value copy of r with a freshly allocated Factors slice
// and Originals set. Data is shared, not deep-copied, matching
// core.Vertex.Metadata's documented Clone contract.
func (r Region) Clone() Region {
	factors := append([]interval.Interval(nil), r.Factors...)
	origs := make(map[string]struct{}, len(r.Originals))
	for id := range r.Originals {
		origs[id] = struct{}{}
	}
	return Region{ID: r.ID, Dimension: r.Dimension, Factors: factors, Originals: origs, Data: r.Data}
}

// OriginalIDs returns the sorted contents of Originals.
func (r Region) OriginalIDs() []string {
	out := make([]string, 0, len(r.Originals))
	for id := range r.Originals {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// String renders a compact, deterministic debug form.
func (r Region) String() string {
	return fmt.Sprintf("Region{id:%s, dim:%d, factors:%v}", r.ID, r.Dimension, r.Factors)
}

// FromIntersection computes the multi-way intersection of regions, in the
// style of Interval.FromIntersection: fold Intersection left to right.
// Returns (zero, false, nil) if any pair along the fold is disjoint, and
// ErrEmptyIntersection if regions is empty.
//
// Per spec.md §4.E, for axis-aligned boxes pairwise overlap among a family
// implies a common non-empty intersection (each axis reduces to the 1-D
// case, where pairwise interval overlap implies a common point); so for
// any clique of a Regional Intersection Graph this always succeeds.
//
// Complexity: O(k*d) for k regions of dimension d.
func FromIntersection(regions []Region, incBounds bool, newID func() string) (Region, bool, error) {
	if len(regions) == 0 {
		return Region{}, false, ErrEmptyIntersection
	}
	acc := regions[0]
	for _, next := range regions[1:] {
		var ok bool
		var err error
		acc, ok, err = acc.Intersection(next, incBounds, newID)
		if err != nil {
			return Region{}, false, err
		}
		if !ok {
			return Region{}, false, nil
		}
	}
	acc.Originals = mergedOriginalsAll(regions)
	return acc, true, nil
}

func mergedOriginals(a, b Region) []string {
	seen := make(map[string]struct{}, len(a.Originals)+len(b.Originals))
	for id := range a.Originals {
		seen[id] = struct{}{}
	}
	for id := range b.Originals {
		seen[id] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	return out
}

func mergedOriginalsAll(regions []Region) map[string]struct{} {
	seen := make(map[string]struct{})
	for _, r := range regions {
		for id := range r.Originals {
			seen[id] = struct{}{}
		}
	}
	return seen
}
