package regionio

import (
	"encoding/json"

	"github.com/rectgraph/slig/interval"
	"github.com/rectgraph/slig/region"
)

// intervalWire is the wire form of interval.Interval, named to match
// spec.md §6.1's "factors" array element shape.
type intervalWire struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// regionWire is the wire form of region.Region, accepting both JSON
// shapes spec.md §6.1 names on read; toWire (and so MarshalRegion) always
// emits the "factors" form.
type regionWire struct {
	ID        string                 `json:"id"`
	Lower     []float64              `json:"lower,omitempty"`
	Upper     []float64              `json:"upper,omitempty"`
	Factors   []intervalWire         `json:"factors,omitempty"`
	Originals []string               `json:"originals,omitempty"`
	Data      map[string]interface{} `json:"data,omitempty"`
}

func toWire(r region.Region) regionWire {
	factors := make([]intervalWire, len(r.Factors))
	for i, f := range r.Factors {
		factors[i] = intervalWire{Lower: f.Lower, Upper: f.Upper}
	}
	return regionWire{
		ID:        r.ID,
		Factors:   factors,
		Originals: r.OriginalIDs(),
		Data:      r.Data,
	}
}

// toRegion resolves w's factors from whichever of the two accepted shapes
// is present, preferring "factors" over "lower"/"upper" pairs, and builds
// a region.Region from it.
func (w regionWire) toRegion() (region.Region, error) {
	factors, err := w.resolveFactors()
	if err != nil {
		return region.Region{}, err
	}
	r, err := region.FromIntervals(w.ID, factors, w.Originals)
	if err != nil {
		return region.Region{}, err
	}
	if w.Data != nil {
		r.Data = w.Data
	}
	return r, nil
}

func (w regionWire) resolveFactors() ([]interval.Interval, error) {
	if len(w.Factors) > 0 {
		out := make([]interval.Interval, len(w.Factors))
		for i, f := range w.Factors {
			out[i] = interval.New(f.Lower, f.Upper)
		}
		return out, nil
	}
	if len(w.Lower) > 0 && len(w.Lower) == len(w.Upper) {
		out := make([]interval.Interval, len(w.Lower))
		for i := range w.Lower {
			out[i] = interval.New(w.Lower[i], w.Upper[i])
		}
		return out, nil
	}
	return nil, ErrMissingFactors
}

// MarshalRegion encodes r in the canonical "factors" wire form.
func MarshalRegion(r region.Region) ([]byte, error) {
	return json.Marshal(toWire(r))
}

// UnmarshalRegion decodes data, accepting either wire form spec.md §6.1
// names. originals defaults to {id} and data to {} when absent, matching
// region.FromIntervals's own defaulting.
func UnmarshalRegion(data []byte) (region.Region, error) {
	var w regionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return region.Region{}, err
	}
	return w.toRegion()
}
