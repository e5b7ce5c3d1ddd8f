package rig

import (
	"sort"

	"github.com/rectgraph/slig/region"
)

// incBounds is the fixed tie-break policy for all geometric tests this
// package performs: touching endpoints count as intersecting, matching the
// SLIG sweep-line's LOWER-before-UPPER event order (spec.md §9). It is not
// exposed as an Option: spec.md §9 is explicit that the sweep-line's
// behavior is authoritative, and changing it without also changing event
// ordering would desynchronize edge admission from edge-payload computation.
const incBounds = true

// PutRegion inserts r as a node, keyed by r.ID. Overwrites silently if the
// id already has a node (idempotent, mirroring core.Graph.AddVertex).
//
// Complexity: O(1).
func (g *Graph) PutRegion(r region.Region) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nodes[r.ID] = r
	if g.adjacency[r.ID] == nil {
		g.adjacency[r.ID] = make(map[string]struct{})
	}
}

// PutIntersection inserts an edge between aID and bID, computing and
// storing the pairwise intersection Region as its payload.
//
// Returns ErrRegionNotFound if either id has no node, and
// ErrNotIntersecting if the two Regions do not actually overlap — callers
// (notably the SLIG constructor) are expected to have already established
// that they do.
//
// Naming: spec.md §9 notes that draft sources used both put_intersection
// and put_overlap for this operation; this package exposes only the
// former.
//
// Complexity: O(d).
func (g *Graph) PutIntersection(aID, bID string, newID func() string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	a, ok := g.nodes[aID]
	if !ok {
		return ErrRegionNotFound
	}
	b, ok := g.nodes[bID]
	if !ok {
		return ErrRegionNotFound
	}
	inter, ok, err := a.Intersection(b, incBounds, newID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotIntersecting
	}

	key := newEdgeKey(aID, bID)
	g.edges[key] = edge{A: key.A, B: key.B, Intersection: inter}
	g.adjacency[aID][bID] = struct{}{}
	g.adjacency[bID][aID] = struct{}{}
	return nil
}

// PutPrecomputedIntersection installs an edge between aID and bID using
// inter as the payload directly, instead of recomputing it via
// region.Region.Intersection. Intended for deserialization, where the
// wire form already carries the exact intersection Region (id and
// originals included) and recomputing would assign a fresh id.
//
// Returns ErrRegionNotFound if either id has no node.
//
// Complexity: O(1).
func (g *Graph) PutPrecomputedIntersection(aID, bID string, inter region.Region) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.nodes[aID]; !ok {
		return ErrRegionNotFound
	}
	if _, ok := g.nodes[bID]; !ok {
		return ErrRegionNotFound
	}
	key := newEdgeKey(aID, bID)
	g.edges[key] = edge{A: key.A, B: key.B, Intersection: inter}
	g.adjacency[aID][bID] = struct{}{}
	g.adjacency[bID][aID] = struct{}{}
	return nil
}

// Region retrieves the node Region for id. False if absent — a lookup
// miss, not an error.
//
// Complexity: O(1).
func (g *Graph) Region(id string) (region.Region, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	r, ok := g.nodes[id]
	return r, ok
}

// Intersection retrieves the edge payload Region for the pair (aID, bID).
// False if no such edge exists.
//
// Complexity: O(1).
func (g *Graph) Intersection(aID, bID string) (region.Region, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[newEdgeKey(aID, bID)]
	return e.Intersection, ok
}

// HasRegion reports whether id has a node.
func (g *Graph) HasRegion(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]
	return ok
}

// HasIntersection reports whether (aID, bID) is an edge.
func (g *Graph) HasIntersection(aID, bID string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges[newEdgeKey(aID, bID)]
	return ok
}

// Regions returns all node Regions, sorted by id for determinism.
//
// Complexity: O(V log V).
func (g *Graph) Regions() []region.Region {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]region.Region, 0, len(g.nodes))
	for _, r := range g.nodes {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Intersections returns all edge-payload Regions, sorted by (A,B) for
// determinism.
//
// Complexity: O(E log E).
func (g *Graph) Intersections() []region.Region {
	g.mu.RLock()
	defer g.mu.RUnlock()
	keys := make([]edgeKey, 0, len(g.edges))
	for k := range g.edges {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].A != keys[j].A {
			return keys[i].A < keys[j].A
		}
		return keys[i].B < keys[j].B
	})
	out := make([]region.Region, len(keys))
	for i, k := range keys {
		out[i] = g.edges[k].Intersection
	}
	return out
}

// Neighbors returns the sorted ids of nodes adjacent to id.
//
// Returns ErrRegionNotFound if id has no node.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.nodes[id]; !ok {
		return nil, ErrRegionNotFound
	}
	out := make([]string, 0, len(g.adjacency[id]))
	for nbr := range g.adjacency[id] {
		out = append(out, nbr)
	}
	sort.Strings(out)
	return out, nil
}

// RemoveRegion deletes the node id and every incident edge.
//
// Complexity: O(deg(id)).
func (g *Graph) RemoveRegion(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.nodes[id]; !ok {
		return ErrRegionNotFound
	}
	for nbr := range g.adjacency[id] {
		delete(g.edges, newEdgeKey(id, nbr))
		delete(g.adjacency[nbr], id)
	}
	delete(g.adjacency, id)
	delete(g.nodes, id)
	return nil
}

// RemoveIntersection deletes the edge (aID, bID).
//
// Complexity: O(1).
func (g *Graph) RemoveIntersection(aID, bID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	key := newEdgeKey(aID, bID)
	if _, ok := g.edges[key]; !ok {
		return ErrRegionNotFound
	}
	delete(g.edges, key)
	delete(g.adjacency[aID], bID)
	delete(g.adjacency[bID], aID)
	return nil
}

// NodeCount returns the number of Regions in the graph. Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// EdgeCount returns the number of intersecting pairs in the graph.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

// Stats is a read-only O(V+E) summary, in the style of core.Graph.Stats.
type Stats struct {
	Dimension int
	NodeCount int
	EdgeCount int
	// MaxDegree is the largest neighbor-set size across all nodes.
	MaxDegree int
}

// Stats computes a Stats snapshot of g.
//
// Complexity: O(V+E).
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()
	s := Stats{Dimension: g.Dimension, NodeCount: len(g.nodes), EdgeCount: len(g.edges)}
	for _, nbrs := range g.adjacency {
		if len(nbrs) > s.MaxDegree {
			s.MaxDegree = len(nbrs)
		}
	}
	return s
}
