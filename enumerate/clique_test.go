package enumerate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rectgraph/slig/enumerate"
	"github.com/rectgraph/slig/interval"
	"github.com/rectgraph/slig/region"
	"github.com/rectgraph/slig/rig"
)

func box(t *testing.T, id string, lower, upper []float64) region.Region {
	t.Helper()
	factors := make([]interval.Interval, len(lower))
	for i := range lower {
		factors[i] = interval.New(lower[i], upper[i])
	}
	r, err := region.FromIntervals(id, factors, nil)
	require.NoError(t, err)
	return r
}

func buildGraph(t *testing.T, dim int, regions ...region.Region) *rig.Graph {
	t.Helper()
	s, err := region.NewSet("s", dim, nil)
	require.NoError(t, err)
	for _, r := range regions {
		require.NoError(t, s.Add(r))
	}
	g, err := rig.Build(s)
	require.NoError(t, err)
	return g
}

// TestAll_NonDecreasingSizeOrder verifies the iteration order property the
// breadth-first frontier is designed to guarantee.
func TestAll_NonDecreasingSizeOrder(t *testing.T) {
	a := box(t, "A", []float64{0, 0}, []float64{5, 5})
	b := box(t, "B", []float64{1, 1}, []float64{6, 6})
	c := box(t, "C", []float64{2, 2}, []float64{7, 7})
	g := buildGraph(t, 2, a, b, c)

	var sizes []int
	for clique := range enumerate.All(g) {
		sizes = append(sizes, len(clique))
	}
	for i := 1; i < len(sizes); i++ {
		require.LessOrEqual(t, sizes[i-1], sizes[i], "clique sizes must be non-decreasing")
	}
	require.Contains(t, sizes, 3)
}

// TestAll_ThreeMutualOverlap_YieldsTripleClique exercises the canonical
// three-way overlap scenario and checks the triple clique's intersection
// Region matches direct computation.
func TestAll_ThreeMutualOverlap_YieldsTripleClique(t *testing.T) {
	a := box(t, "A", []float64{0, 0}, []float64{5, 5})
	b := box(t, "B", []float64{2, 2}, []float64{7, 7})
	c := box(t, "C", []float64{1, 1}, []float64{6, 6})
	g := buildGraph(t, 2, a, b, c)
	gen := region.NewIDGenerator()

	var triple enumerate.Clique
	for clique := range enumerate.All(g) {
		if len(clique) == 3 {
			triple = clique
		}
	}
	require.Len(t, triple, 3)

	got, ok, err := triple.Region(g, gen.Next)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, interval.New(2, 5), got.Factors[0])
	require.Equal(t, interval.New(2, 5), got.Factors[1])
}

// TestAll_DisjointFamily_YieldsNothing verifies an all-disjoint family
// produces zero cliques of size >= 2.
func TestAll_DisjointFamily_YieldsNothing(t *testing.T) {
	a := box(t, "A", []float64{0}, []float64{1})
	b := box(t, "B", []float64{2}, []float64{3})
	g := buildGraph(t, 1, a, b)

	count := 0
	for range enumerate.All(g) {
		count++
	}
	require.Zero(t, count)
}

// TestAll_ChainOfThree_YieldsOnlyPairs: A-B and B-C overlap, A-C disjoint,
// so the only cliques are the two edges - no triangle.
func TestAll_ChainOfThree_YieldsOnlyPairs(t *testing.T) {
	a := box(t, "A", []float64{0}, []float64{5})
	b := box(t, "B", []float64{4}, []float64{9})
	c := box(t, "C", []float64{8}, []float64{13})
	g := buildGraph(t, 1, a, b, c)

	cliques := enumerate.Collect(enumerate.All(g))
	require.Len(t, cliques, 2)
	for _, cl := range cliques {
		require.Len(t, cl, 2)
	}
}

// TestAll_StopsOnYieldFalse verifies early cancellation via the
// range-over-func protocol: returning false from yield halts iteration.
func TestAll_StopsOnYieldFalse(t *testing.T) {
	a := box(t, "A", []float64{0}, []float64{10})
	b := box(t, "B", []float64{0}, []float64{10})
	c := box(t, "C", []float64{0}, []float64{10})
	g := buildGraph(t, 1, a, b, c)

	count := 0
	for range enumerate.All(g) {
		count++
		if count == 1 {
			break
		}
	}
	require.Equal(t, 1, count)
}

// TestNeighborhood_RestrictsToClosedNeighborhood verifies that a region
// disjoint from the pivot never appears in its neighborhood enumeration.
func TestNeighborhood_RestrictsToClosedNeighborhood(t *testing.T) {
	a := box(t, "A", []float64{0}, []float64{5})
	b := box(t, "B", []float64{4}, []float64{9})
	c := box(t, "C", []float64{20}, []float64{25})
	g := buildGraph(t, 1, a, b, c)

	seq, err := enumerate.Neighborhood(g, "A")
	require.NoError(t, err)
	for clique := range seq {
		for _, id := range clique {
			require.NotEqual(t, "C", id)
		}
	}
}

// TestCollectRegions_MatchesDirectIntersection cross-checks the
// collection helper's output count and Originals provenance.
func TestCollectRegions_MatchesDirectIntersection(t *testing.T) {
	a := box(t, "A", []float64{0, 0}, []float64{5, 5})
	b := box(t, "B", []float64{2, 2}, []float64{7, 7})
	c := box(t, "C", []float64{1, 1}, []float64{6, 6})
	g := buildGraph(t, 2, a, b, c)
	gen := region.NewIDGenerator()

	out, err := enumerate.CollectRegions(g, gen.Next)
	require.NoError(t, err)
	require.Equal(t, 2, out.Dimension)
	require.Equal(t, 4, out.Len(), "three pairwise edges plus one triple clique")
}
