// Package slig computes the Regional Intersection Graph (RIG) of a
// collection of axis-aligned hyperrectangles in d-dimensional space, and
// enumerates every multi-way intersection (clique) among them.
//
// The toolkit is organized as six subpackages:
//
//	interval/   — the 1-D Interval primitive (lower/upper, overlap, union)
//	region/     — Region (a d-dimensional hyperrectangle) and Set, its
//	              identity-indexed collection
//	rig/        — Graph, the Regional Intersection Graph, and Build, the
//	              SLIG sweep-line constructor
//	enumerate/  — clique enumeration over a Graph, exposed as a Go
//	              range-over-func iterator
//	generator/  — deterministic, seedable random Region generation
//	regionio/   — JSON marshaling for Region, Set, and Graph
//
// cmd/slig is the reference CLI: it generates region sets, converts
// between the regions and RIG JSON forms, and enumerates intersections.
//
// A minimal pipeline:
//
//	set, _ := region.NewSet("demo", 2, nil)
//	set.Add(a)
//	set.Add(b)
//	graph, _ := rig.Build(set)
//	for clique := range enumerate.All(graph) {
//	    intersection, _, _ := clique.Region(graph, idGen.Next)
//	}
package slig
