// Package interval implements Interval, the 1-D closed-range primitive that
// every Region axis is built from.
//
// An Interval is a plain immutable value type: two float64 bounds and a
// handful of derived queries and combinators (Contains, Encloses,
// IsIntersecting, Intersection, Union). It carries no identity and no
// mutable state, so it needs none of core.Graph's locking — it is safe to
// share and compare by value across goroutines.
package interval

import "fmt"

// Interval is a closed range [Lower, Upper] on the real line.
//
// Lower is always <= Upper: New swaps reversed bounds at construction time
// so every Interval value satisfies the invariant for its whole lifetime.
type Interval struct {
	Lower float64
	Upper float64
}

// New constructs an Interval, swapping Lower/Upper if they arrive reversed.
//
// Complexity: O(1).
func New(lower, upper float64) Interval {
	if lower > upper {
		lower, upper = upper, lower
	}
	return Interval{Lower: lower, Upper: upper}
}

// Point returns a zero-length Interval representing a single value.
func Point(value float64) Interval {
	return Interval{Lower: value, Upper: value}
}

// Length returns Upper - Lower. Never negative, given the New invariant.
func (i Interval) Length() float64 {
	return i.Upper - i.Lower
}

// Midpoint returns the arithmetic mean of Lower and Upper.
func (i Interval) Midpoint() float64 {
	return (i.Lower + i.Upper) / 2
}

// Contains reports whether value lies within the interval, per the
// inclusivity flags for each bound.
//
// Complexity: O(1).
func (i Interval) Contains(value float64, incLower, incUpper bool) bool {
	lowerOK := i.Lower < value
	if incLower {
		lowerOK = i.Lower <= value
	}
	upperOK := value < i.Upper
	if incUpper {
		upperOK = value <= i.Upper
	}
	return lowerOK && upperOK
}

// Encloses reports whether that lies entirely within i, per the inclusivity
// flags used for the two boundary containment checks.
//
// Complexity: O(1).
func (i Interval) Encloses(that Interval, incLower, incUpper bool) bool {
	return i.Length() >= that.Length() &&
		i.Contains(that.Lower, incLower, incUpper) &&
		i.Contains(that.Upper, incLower, incUpper)
}

// IsIntersecting reports whether i and that share at least one point.
//
// With incBounds == false (the default comparison used throughout this
// package's exported API), touching endpoints do not count as intersecting:
// Upper > that.Lower && that.Upper > Lower. With incBounds == true, the
// strict inequalities become non-strict, so exactly touching endpoints do
// count — this is the policy the SLIG sweep-line's LOWER-before-UPPER event
// order encodes (see the rig package).
//
// Complexity: O(1).
func (i Interval) IsIntersecting(that Interval, incBounds bool) bool {
	if incBounds {
		return i.Upper >= that.Lower && that.Upper >= i.Lower
	}
	return i.Upper > that.Lower && that.Upper > i.Lower
}

// Intersection returns the overlapping Interval between i and that, and
// false if they do not intersect. A false return is the "no value"
// sentinel named in the error-handling design: absence, never an error.
//
// Complexity: O(1).
func (i Interval) Intersection(that Interval, incBounds bool) (Interval, bool) {
	if !i.IsIntersecting(that, incBounds) {
		return Interval{}, false
	}
	return Interval{Lower: max(i.Lower, that.Lower), Upper: min(i.Upper, that.Upper)}, true
}

// Union returns the convex hull of i and that: the smallest Interval
// enclosing both, regardless of whether they overlap.
//
// Complexity: O(1).
func (i Interval) Union(that Interval) Interval {
	return Interval{Lower: min(i.Lower, that.Lower), Upper: max(i.Upper, that.Upper)}
}

// FromIntersection folds Intersection over intervals, left to right.
// Returns false as soon as any pair fails to intersect, or if intervals is
// empty.
//
// Complexity: O(len(intervals)).
func FromIntersection(intervals []Interval, incBounds bool) (Interval, bool) {
	if len(intervals) == 0 {
		return Interval{}, false
	}
	acc := intervals[0]
	for _, next := range intervals[1:] {
		var ok bool
		acc, ok = acc.Intersection(next, incBounds)
		if !ok {
			return Interval{}, false
		}
	}
	return acc, true
}

// FromUnion folds Union over intervals, left to right. Panics-free for an
// empty slice, returning the zero Interval — callers that care should check
// len(intervals) themselves.
//
// Complexity: O(len(intervals)).
func FromUnion(intervals []Interval) Interval {
	if len(intervals) == 0 {
		return Interval{}
	}
	acc := intervals[0]
	for _, next := range intervals[1:] {
		acc = acc.Union(next)
	}
	return acc
}

// String renders the interval as "[lower, upper]", matching the reference
// source's display convention.
func (i Interval) String() string {
	return fmt.Sprintf("[%g, %g]", i.Lower, i.Upper)
}
