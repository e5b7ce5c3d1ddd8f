// Package region provides the core geometric types of the Regional
// Intersection Graph toolkit: Region, a d-dimensional axis-aligned
// hyperrectangle built from per-axis interval.Interval values, and Set, an
// insertion-ordered, identity-indexed collection of equi-dimensional
// Regions with an optional enclosing bound.
//
// Why these two types?
//
//   - Region is a value type carrying ID, Dimension, Factors, Originals
//     (provenance — the minimal set of input Region ids whose common
//     intersection equals this Region) and an open Data annotation map.
//   - Set mirrors core.Graph's id->index bookkeeping: O(1) lookup by id,
//     insertion-order iteration, and an optional Bounds Region that every
//     member must be enclosed by.
//
// Error policy:
//
//	ErrEmptyID            - Region/Set id is empty.
//	ErrNoFactors          - Region constructed with zero Factors.
//	ErrDimensionMismatch  - shape error: operand dimensions differ.
//	ErrDuplicateID        - Set.Add with an id already present.
//	ErrOutOfBounds        - Set.Add violates Set.Bounds.
//	ErrEmptyIntersection  - FromIntersection called with zero regions.
//
// Absence (e.g. a disjoint Intersection, a missing Set.Get) is signaled by
// an ordinary (zero, false) return, never an error — see spec.md §7.
package region
