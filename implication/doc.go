// Package implication implements the polarity-keyed adjacency tables that
// back one layer of a Binary Implication Layered Graph.
//
// What:
//
//   - Clock: the single monotonically increasing logical clock shared by
//     every layer of one BIG family.
//   - Table: four polarity-keyed adjacency slices (NegNeg, NegPos, PosNeg,
//     PosPos — see package literal), each holding, per variable, a sorted
//     duplicate-free []int32 of consequent variable ids, a dirty flag, and
//     a last-updated timestamp from Clock.
//
// Why dense slices instead of maps: the variable range is known and fixed
// at construction, so a []bitset.Seq indexed directly by
// Variable avoids map overhead on the hottest path in the module — every
// propagation step walks PosConsequents/NegConsequents. This mirrors the
// dense, pre-sized row storage an adjacency/incidence matrix would use,
// rather than a map-of-maps adjacency list, because here the vertex set
// size is known up front and never grows after construction.
//
// Complexity (see each method's doc comment for detail): AddImplication
// is O(n) for the sorted insert; the batched variants are O(n+m) merges;
// SortGraph is O(n log n) per dirty adjacency, amortized by only touching
// adjacencies marked dirty since the last sort.
package implication
