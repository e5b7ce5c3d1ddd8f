package rig

import (
	"sort"

	"github.com/rectgraph/slig/region"
)

// eventKind orders LOWER before UPPER at equal coordinate values, which is
// what makes touching endpoints count as intersecting (the incBounds=true
// tie-break fixed in methods.go). Mirrors slig.py's LOWER=False, UPPER=True.
type eventKind bool

const (
	eventLower eventKind = false
	eventUpper eventKind = true
)

type event struct {
	value float64
	kind  eventKind
	id    string
}

// pairKey identifies an unordered pair of region ids accumulated during
// the sweep. It must be canonicalized the same way edgeKey is: which of
// the two regions opens second on a given axis depends on that axis's
// geometry, so the same pair can present as (A,B) on one axis and (B,A)
// on another. Accumulating under both orderings would split one pair's
// tally across two map entries and neither would ever reach the
// dimension, silently dropping a true intersection.
type pairKey struct {
	a, b string
}

func newPairKey(a, b string) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a: a, b: b}
}

// Config controls the SLIG constructor.
type Config struct {
	// ID names the built Graph.
	ID string

	// NewID is not consulted by Build: the ids of edge-payload Regions come
	// from a fresh region.IDGenerator that Build creates on each call and
	// passes to PutIntersection.
	NewID func() string
}

// Option configures a Config, in the style of builder.BuilderOption.
type Option func(*Config)

// WithID overrides the built Graph's ID (default: the source Set's ID).
func WithID(id string) Option {
	return func(c *Config) { c.ID = id }
}

// Build runs the SLIG sweep-line algorithm over set, producing a Graph
// with one node per Region in set and one edge per pair whose per-axis
// overlap tally reaches set.Dimension.
//
// Grounded on slig.py's SLIG.prepare/SLIG.sweep: one events list per axis,
// sorted by (value, kind) so LOWER precedes UPPER at equal values; a fresh
// "actives" list per axis and one pair-tally map reused across every axis; an edge
// is admitted once its tally equals the dimension, meaning the two
// regions overlap on every axis.
//
// Complexity: O(d*N log N) for the per-axis sorts plus O(d*K) for the
// sweep itself, where K is the total number of active-pair events across
// all axes (spec.md §3).
func Build(set *region.Set, opts ...Option) (*Graph, error) {
	cfg := Config{ID: set.ID}
	for _, opt := range opts {
		opt(&cfg)
	}

	g, err := New(cfg.ID, set.Dimension)
	if err != nil {
		return nil, err
	}
	for _, r := range set.Regions() {
		g.PutRegion(r)
	}

	tally := make(map[pairKey]int)
	newIDs := region.NewIDGenerator()

	for d := 0; d < set.Dimension; d++ {
		events := make([]event, 0, 2*set.Len())
		for _, r := range set.Regions() {
			events = append(events,
				event{value: r.Lower(d), kind: eventLower, id: r.ID},
				event{value: r.Upper(d), kind: eventUpper, id: r.ID},
			)
		}
		sort.Slice(events, func(i, j int) bool {
			if events[i].value != events[j].value {
				return events[i].value < events[j].value
			}
			return events[i].kind == eventLower && events[j].kind == eventUpper
		})

		active := make([]string, 0, set.Len())
		for _, ev := range events {
			if ev.kind == eventUpper {
				active = removeID(active, ev.id)
				continue
			}
			for _, other := range active {
				tally[newPairKey(other, ev.id)]++
			}
			active = append(active, ev.id)
		}
	}

	for pair, count := range tally {
		if count != set.Dimension {
			continue
		}
		if err := g.PutIntersection(pair.a, pair.b, newIDs.Next); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func removeID(active []string, id string) []string {
	for i, v := range active {
		if v == id {
			return append(active[:i], active[i+1:]...)
		}
	}
	return active
}
