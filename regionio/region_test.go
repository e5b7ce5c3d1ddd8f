package regionio_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rectgraph/slig/interval"
	"github.com/rectgraph/slig/region"
	"github.com/rectgraph/slig/regionio"
)

func TestUnmarshalRegion_AcceptsLowerUpperForm(t *testing.T) {
	raw := []byte(`{"id":"A","lower":[0,0],"upper":[5,5]}`)
	r, err := regionio.UnmarshalRegion(raw)
	require.NoError(t, err)
	require.Equal(t, "A", r.ID)
	require.Equal(t, interval.New(0, 5), r.Factors[0])
	require.Equal(t, interval.New(0, 5), r.Factors[1])
	require.Contains(t, r.Originals, "A")
}

func TestUnmarshalRegion_AcceptsFactorsForm(t *testing.T) {
	raw := []byte(`{"id":"A","factors":[{"lower":1,"upper":2},{"lower":3,"upper":4}],"originals":["X","Y"]}`)
	r, err := regionio.UnmarshalRegion(raw)
	require.NoError(t, err)
	require.Equal(t, interval.New(1, 2), r.Factors[0])
	require.Equal(t, interval.New(3, 4), r.Factors[1])
	require.Contains(t, r.Originals, "X")
	require.Contains(t, r.Originals, "Y")
}

func TestUnmarshalRegion_MissingFactors(t *testing.T) {
	_, err := regionio.UnmarshalRegion([]byte(`{"id":"A"}`))
	require.ErrorIs(t, err, regionio.ErrMissingFactors)
}

func TestMarshalRegion_RoundTrip(t *testing.T) {
	orig, err := region.FromIntervals("A", []interval.Interval{interval.New(0, 1), interval.New(2, 3)}, nil)
	require.NoError(t, err)

	raw, err := regionio.MarshalRegion(orig)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"factors"`)

	got, err := regionio.UnmarshalRegion(raw)
	require.NoError(t, err)
	require.True(t, orig.Equal(got))
	require.Equal(t, orig.OriginalIDs(), got.OriginalIDs())
}
