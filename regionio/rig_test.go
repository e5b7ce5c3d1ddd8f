package regionio_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rectgraph/slig/interval"
	"github.com/rectgraph/slig/region"
	"github.com/rectgraph/slig/regionio"
	"github.com/rectgraph/slig/rig"
)

func buildTriangleGraph(t *testing.T) *rig.Graph {
	t.Helper()
	mk := func(id string, lo, hi []float64) region.Region {
		factors := make([]interval.Interval, len(lo))
		for i := range lo {
			factors[i] = interval.New(lo[i], hi[i])
		}
		r, err := region.FromIntervals(id, factors, nil)
		require.NoError(t, err)
		return r
	}
	a := mk("A", []float64{0, 0}, []float64{5, 5})
	b := mk("B", []float64{2, 2}, []float64{7, 7})
	c := mk("C", []float64{1, 1}, []float64{6, 6})
	s, err := region.NewSet("s", 2, nil)
	require.NoError(t, err)
	require.NoError(t, s.Add(a))
	require.NoError(t, s.Add(b))
	require.NoError(t, s.Add(c))
	g, err := rig.Build(s)
	require.NoError(t, err)
	return g
}

func TestMarshalUnmarshalRIG_NodeLink_RoundTrip(t *testing.T) {
	g := buildTriangleGraph(t)
	raw, err := regionio.MarshalRIG(g, "node_link")
	require.NoError(t, err)
	require.Contains(t, string(raw), `"node_link"`)

	got, err := regionio.UnmarshalRIG(raw)
	require.NoError(t, err)
	require.Equal(t, g.NodeCount(), got.NodeCount())
	require.Equal(t, g.EdgeCount(), got.EdgeCount())
	require.True(t, got.HasIntersection("A", "B"))
	require.True(t, got.HasIntersection("A", "C"))
	require.True(t, got.HasIntersection("B", "C"))
}

func TestMarshalUnmarshalRIG_Adjacency_RoundTrip(t *testing.T) {
	g := buildTriangleGraph(t)
	raw, err := regionio.MarshalRIG(g, "adjacency")
	require.NoError(t, err)
	require.Contains(t, string(raw), `"adjacency"`)

	got, err := regionio.UnmarshalRIG(raw)
	require.NoError(t, err)
	require.Equal(t, g.NodeCount(), got.NodeCount())
	require.Equal(t, g.EdgeCount(), got.EdgeCount())
}

func TestMarshalRIG_RejectsUnknownShape(t *testing.T) {
	g := buildTriangleGraph(t)
	_, err := regionio.MarshalRIG(g, "bogus")
	require.ErrorIs(t, err, regionio.ErrUnknownGraphShape)
}

func TestUnmarshalRIG_RejectsUnknownShape(t *testing.T) {
	raw := []byte(`{"id":"g","dimension":2,"json_graph":"bogus","graph":{}}`)
	_, err := regionio.UnmarshalRIG(raw)
	require.ErrorIs(t, err, regionio.ErrUnknownGraphShape)
}
