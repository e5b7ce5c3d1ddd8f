package regionio

import (
	"encoding/json"

	"github.com/rectgraph/slig/region"
)

// setWire is the wire form of region.Set (spec.md §6.2).
type setWire struct {
	ID        string       `json:"id"`
	Dimension int          `json:"dimension"`
	Length    *int         `json:"length,omitempty"`
	Bounds    *regionWire  `json:"bounds,omitempty"`
	Regions   []regionWire `json:"regions"`
}

// MarshalRegionSet encodes s, writing Length as len(s.Regions()).
func MarshalRegionSet(s *region.Set) ([]byte, error) {
	items := s.Regions()
	regions := make([]regionWire, len(items))
	for i, r := range items {
		regions[i] = toWire(r)
	}
	length := len(items)
	w := setWire{
		ID:        s.ID,
		Dimension: s.Dimension,
		Length:    &length,
		Regions:   regions,
	}
	if s.Bounds != nil {
		bw := toWire(*s.Bounds)
		w.Bounds = &bw
	}
	return json.Marshal(w)
}

// UnmarshalRegionSet decodes data into a region.Set. If the "length"
// field is present, it is validated against the parsed region count and
// ErrLengthMismatch is returned on disagreement, per spec.md §6.2.
func UnmarshalRegionSet(data []byte) (*region.Set, error) {
	var w setWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	if w.Length != nil && *w.Length != len(w.Regions) {
		return nil, ErrLengthMismatch
	}

	var bounds *region.Region
	if w.Bounds != nil {
		b, err := w.Bounds.toRegion()
		if err != nil {
			return nil, err
		}
		bounds = &b
	}

	set, err := region.NewSet(w.ID, w.Dimension, bounds)
	if err != nil {
		return nil, err
	}
	for _, rw := range w.Regions {
		r, err := rw.toRegion()
		if err != nil {
			return nil, err
		}
		if err := set.Add(r); err != nil {
			return nil, err
		}
	}
	return set, nil
}
