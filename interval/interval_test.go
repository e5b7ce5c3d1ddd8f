package interval_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rectgraph/slig/interval"
)

// TestNew_SwapsReversedBounds verifies the construction-time normalization
// invariant: Lower <= Upper always holds, even for swapped input.
func TestNew_SwapsReversedBounds(t *testing.T) {
	i := interval.New(5, 1)
	require.Equal(t, 1.0, i.Lower)
	require.Equal(t, 5.0, i.Upper)
	require.GreaterOrEqual(t, i.Upper, i.Lower)
	require.Equal(t, 4.0, i.Length())
}

// TestContains_InclusivityFlags exercises the four combinations of bound
// inclusivity: three at the exact boundary values, and both flags off at
// an interior point.
func TestContains_InclusivityFlags(t *testing.T) {
	i := interval.New(0, 10)

	require.True(t, i.Contains(0, true, true))
	require.False(t, i.Contains(0, false, true))
	require.True(t, i.Contains(10, true, true))
	require.False(t, i.Contains(10, true, false))
	require.True(t, i.Contains(5, false, false))
}

// TestEncloses_TrivialForEqualIntervals matches the spec's invariant that
// encloses is trivially true for identical intervals.
func TestEncloses_TrivialForEqualIntervals(t *testing.T) {
	i := interval.New(2, 8)
	require.True(t, i.Encloses(i, true, true))

	inner := interval.New(3, 7)
	require.True(t, i.Encloses(inner, true, true))
	require.False(t, inner.Encloses(i, true, true))
}

// TestIsIntersecting_TieBreakOnTouchingEndpoints verifies the two policies
// named in spec.md §9: strict (incBounds=false) excludes a shared endpoint,
// inclusive (incBounds=true) counts it.
func TestIsIntersecting_TieBreakOnTouchingEndpoints(t *testing.T) {
	a := interval.New(0, 5)
	b := interval.New(5, 10)

	require.False(t, a.IsIntersecting(b, false))
	require.True(t, a.IsIntersecting(b, true))
}

// TestIntersection_CommutativeAndAbsent checks commutativity for
// intersecting pairs and the "no value" sentinel for disjoint pairs.
func TestIntersection_CommutativeAndAbsent(t *testing.T) {
	a := interval.New(0, 5)
	b := interval.New(3, 8)

	ab, okAB := a.Intersection(b, false)
	ba, okBA := b.Intersection(a, false)
	require.True(t, okAB)
	require.True(t, okBA)
	require.Equal(t, ab, ba)
	require.Equal(t, interval.New(3, 5), ab)

	disjointA := interval.New(0, 1)
	disjointB := interval.New(2, 3)
	_, ok := disjointA.Intersection(disjointB, false)
	require.False(t, ok)
}

// TestIntersection_SubsetIdentity verifies: if I is enclosed by J, their
// intersection equals I and their union equals J.
func TestIntersection_SubsetIdentity(t *testing.T) {
	inner := interval.New(3, 7)
	outer := interval.New(0, 10)

	got, ok := inner.Intersection(outer, false)
	require.True(t, ok)
	require.Equal(t, inner, got)
	require.Equal(t, outer, inner.Union(outer))
}

// TestFromIntersection_FailsOnAnyDisjointPair covers the fold-based
// multi-way intersection contract.
func TestFromIntersection_FailsOnAnyDisjointPair(t *testing.T) {
	all := []interval.Interval{interval.New(0, 10), interval.New(2, 8), interval.New(4, 6)}
	got, ok := interval.FromIntersection(all, false)
	require.True(t, ok)
	require.Equal(t, interval.New(4, 6), got)

	withDisjoint := []interval.Interval{interval.New(0, 10), interval.New(20, 30)}
	_, ok = interval.FromIntersection(withDisjoint, false)
	require.False(t, ok)
}

// TestFromUnion_EnclosesAll verifies the convex-hull fold across many
// intervals.
func TestFromUnion_EnclosesAll(t *testing.T) {
	all := []interval.Interval{interval.New(5, 6), interval.New(-2, 0), interval.New(1, 9)}
	got := interval.FromUnion(all)
	require.Equal(t, interval.New(-2, 9), got)
}
