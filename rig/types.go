package rig

import (
	"sync"

	"github.com/rectgraph/slig/region"
)

// edgeKey canonically identifies an undirected pair (A < B lexically),
// mirroring the spec's "edge (a,b) with a.id < b.id" convention.
type edgeKey struct {
	A, B string
}

func newEdgeKey(a, b string) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{A: a, B: b}
}

// edge stores the pairwise intersection Region for one RIG edge.
type edge struct {
	A, B         string
	Intersection region.Region
}

// Graph is the Regional Intersection Graph: one node per input Region,
// keyed by Region id, and one undirected edge per intersecting pair,
// keyed canonically, carrying the pairwise intersection Region as payload.
//
// Graph departs from core.Graph's locking model: a single mu guards both
// the node and edge maps, since RIG construction (the SLIG constructor) is a
// one-shot, non-yielding build — there is no per-map contention to split
// across separate locks the way core.Graph splits muVert/muEdgeAdj for its
// much hotter, long-lived mutation path. Once built, a Graph is treated as
// immutable for enumeration (spec.md §3); mu still guards concurrent
// read-only access so the race detector stays quiet under goroutine use.
type Graph struct {
	mu sync.RWMutex

	// ID identifies this graph instance.
	ID string

	// Dimension every node Region shares.
	Dimension int

	nodes map[string]region.Region
	edges map[edgeKey]edge

	// adjacency[id] is the set of neighbor ids of id, kept in lock-step
	// with edges for O(1) Neighbors().
	adjacency map[string]map[string]struct{}
}

// New constructs an empty Graph of the given dimension.
//
// Complexity: O(1).
func New(id string, dimension int) (*Graph, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	if dimension < 1 {
		return nil, ErrInvalidDimension
	}
	return &Graph{
		ID:        id,
		Dimension: dimension,
		nodes:     make(map[string]region.Region),
		edges:     make(map[edgeKey]edge),
		adjacency: make(map[string]map[string]struct{}),
	}, nil
}
