// Package enumerate finds every multi-region intersection in a rig.Graph:
// each clique of the Regional Intersection Graph (a set of mutually
// intersecting Regions) corresponds to one region of common overlap,
// materialized via region.FromIntersection.
//
// All walks cliques in non-decreasing size order via a breadth-first
// frontier expansion, grounded on the reference implementation's use of
// networkx's enumerate_all_cliques rather than a maximal-clique search:
// the spec wants every k-wise intersection (k>=2), not only the maximal
// ones, so a true Bron-Kerbosch (which yields maximal cliques only) would
// under-report. Forward adjacency is computed once per node against a
// fixed total order over the graph's region ids, which is what lets each
// clique be generated exactly once without a seen-set.
package enumerate
