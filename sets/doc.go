// Package sets provides the minimal vertex-set algebra the game solver is
// written against, together with an enumerated, map-backed implementation.
//
// What:
//
//   - Set[V]: an immutable set capability: membership, size, iteration,
//     union, difference and subset test. Nothing more is required by the
//     arena and condition packages, so any compact or symbolic representation
//     offering these operations can be substituted without touching them.
//   - Enum[V]: the default implementation over a Go map.
//   - Factory[V]: constructor hook used by arena.WithSetFactory to choose the
//     representation produced by the engine.
//
// Helpers derived from the core capability:
//
//	Equal(a, b)         mutual inclusion
//	Intersects(a, b)    a ∩ b ≠ ∅
//	Intersection(a, b)  a \ (a \ b)
//	Sorted(s)           deterministic slice for cmp.Ordered vertices
//	SortedFunc(s, cmp)  deterministic slice for any vertex type
//
// Complexity (Enum):
//
//   - Contains: O(1)
//   - Union / Difference: O(|a| + |b|)
//   - SubsetOf: O(|a|)
//
// Sets are values: no operation mutates its receiver, so a Set may be shared
// freely between goroutines once built.
package sets
