// Package bitset provides the low-level, allocation-conscious primitives
// the rest of the module is built on: popcount and bit-listing over
// machine words, and set algebra (union, intersection, difference,
// filter-out, insert/delete) over ascending, duplicate-free int slices.
//
// What:
//
//   - Word helpers: PopCount, LowestBit, LowestBitIndex, Bits.
//   - Sorted-sequence algebra: Union, Intersect, Difference, FilterOut,
//     Insert, Delete, Dedup, Intersects.
//
// Why:
//
//   - The implication graph (package implication) stores each variable's
//     adjacency as a sorted, duplicate-free []int32 so that intersection
//     (clause-forcing) and union (consequence merging) run in O(n+m)
//     without a map.
//   - Cell candidate masks (package cellgrid) are machine words; popcount
//     and bit-listing drive naked-single detection and MRV cell choice.
//
// Complexity:
//
//   - PopCount, LowestBit, LowestBitIndex: O(1) (word-size independent of N).
//   - Bits: O(popcount(mask)).
//   - Union/Intersect/Difference/FilterOut: O(len(a)+len(b)).
//   - Insert/Delete: O(n) (shift), no reallocation beyond amortized growth.
//
// The "Into" variants (UnionInto, IntersectInto, DifferenceInto) append
// onto the destination and reuse its backing array when it has spare
// capacity; callers that need a fresh slice should use the functional
// variant (Union, Intersect, Difference).
package bitset
