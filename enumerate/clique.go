package enumerate

import (
	"iter"
	"sort"

	"github.com/rectgraph/slig/region"
	"github.com/rectgraph/slig/rig"
)

// Clique is an ordered list of region ids forming a complete subgraph: every
// pair of members is a rig.Graph edge. Cliques produced by this package
// list their members in ascending id order.
type Clique []string

// Region computes the common intersection Region of c's members in g, via
// region.FromIntersection. Per spec.md §4.E this always succeeds for a
// genuine clique of an axis-aligned RIG; a false return indicates c was
// not in fact a clique of g.
func (c Clique) Region(g *rig.Graph, newID func() string) (region.Region, bool, error) {
	regions := make([]region.Region, 0, len(c))
	for _, id := range c {
		r, ok := g.Region(id)
		if !ok {
			return region.Region{}, false, rig.ErrRegionNotFound
		}
		regions = append(regions, r)
	}
	return region.FromIntersection(regions, true, newID)
}

// All enumerates every clique of size >= 2 in g, in non-decreasing size
// order, as a Go range-over-func iterator. Stops early if yield returns
// false.
//
// Complexity: the frontier holds one entry per clique ever discovered
// (including singletons, filtered from output); total work is proportional
// to the number of cliques times the average degree examined per
// expansion.
func All(g *rig.Graph) iter.Seq[Clique] {
	ids := make([]string, 0, g.NodeCount())
	for _, r := range g.Regions() {
		ids = append(ids, r.ID)
	}
	return enumerateOver(g, ids)
}

// Subset restricts enumeration to the induced subgraph on ids: cliques are
// reported only if every member lies in ids. Unknown ids are ignored.
func Subset(g *rig.Graph, ids []string) iter.Seq[Clique] {
	return enumerateOver(g, ids)
}

// Neighborhood enumerates cliques within the closed neighborhood of
// pivotID: pivotID itself plus every region directly intersecting it.
// Returns rig.ErrRegionNotFound if pivotID has no node in g.
func Neighborhood(g *rig.Graph, pivotID string) (iter.Seq[Clique], error) {
	nbrs, err := g.Neighbors(pivotID)
	if err != nil {
		return nil, err
	}
	closed := append([]string{pivotID}, nbrs...)
	return enumerateOver(g, closed), nil
}

// Collect drains seq into a slice, in iteration order.
func Collect(seq iter.Seq[Clique]) []Clique {
	out := make([]Clique, 0)
	for c := range seq {
		out = append(out, c)
	}
	return out
}

// CollectRegions enumerates every clique in g and materializes each as a
// Region, collected into a freshly built Set — the Go analogue of the
// reference implementation's enumerate_all(combine=False).
func CollectRegions(g *rig.Graph, newID func() string) (*region.Set, error) {
	out, err := region.NewSet("enumeration", g.Dimension, nil)
	if err != nil {
		return nil, err
	}
	for clique := range All(g) {
		r, ok, err := clique.Region(g, newID)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if err := out.Add(r); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// enumerateOver runs the breadth-first clique expansion over the induced
// subgraph of g on ids, in the fixed total order given by sorting ids.
// Grounded on networkx.enumerate_all_cliques: each node's forward
// neighbors (those later in the fixed order) seed one frontier entry, and
// each expansion step only considers forward neighbors of the newly added
// node, which guarantees every clique is produced exactly once.
func enumerateOver(g *rig.Graph, ids []string) iter.Seq[Clique] {
	universe := make([]string, len(ids))
	copy(universe, ids)
	sort.Strings(universe)

	index := make(map[string]int, len(universe))
	for i, id := range universe {
		index[id] = i
	}

	fwd := make(map[string][]string, len(universe))
	for _, id := range universe {
		nbrs, err := g.Neighbors(id)
		if err != nil {
			continue
		}
		forward := make([]string, 0, len(nbrs))
		for _, n := range nbrs {
			if j, ok := index[n]; ok && j > index[id] {
				forward = append(forward, n)
			}
		}
		sort.Slice(forward, func(a, b int) bool { return index[forward[a]] < index[forward[b]] })
		fwd[id] = forward
	}

	return func(yield func(Clique) bool) {
		type frontier struct {
			base  Clique
			cnbrs []string
		}
		queue := make([]frontier, 0, len(universe))
		for _, id := range universe {
			queue = append(queue, frontier{base: Clique{id}, cnbrs: fwd[id]})
		}

		for len(queue) > 0 {
			f := queue[0]
			queue = queue[1:]

			if len(f.base) >= 2 {
				out := make(Clique, len(f.base))
				copy(out, f.base)
				if !yield(out) {
					return
				}
			}

			for i, u := range f.cnbrs {
				newBase := make(Clique, len(f.base)+1)
				copy(newBase, f.base)
				newBase[len(f.base)] = u

				uForward := make(map[string]struct{}, len(fwd[u]))
				for _, v := range fwd[u] {
					uForward[v] = struct{}{}
				}
				newCnbrs := make([]string, 0, len(f.cnbrs)-i-1)
				for _, v := range f.cnbrs[i+1:] {
					if _, ok := uForward[v]; ok {
						newCnbrs = append(newCnbrs, v)
					}
				}
				queue = append(queue, frontier{base: newBase, cnbrs: newCnbrs})
			}
		}
	}
}
