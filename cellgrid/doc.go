// Package cellgrid implements the N×N cell grid: each
// cell is a bitmask whose low N bits are candidate values and whose bit N
// is the "given" bit, meaning "single remaining candidate, already
// propagated". A cell is solved iff its given bit
// is set.
//
// What:
//
//   - Grid: the dense N*N-cell store, backed by one []uint64 acquired
//     from a pool.Pool so that cloning a grid for a search-tree branch
//     (package search) is a word-at-a-time memcpy rather than a
//     per-cell copy.
//   - SetAsGivenRaw / ApplyPencilMarksRaw (and EliminateCandidateRaw,
//     built on the latter): the raw grid mutations the propagator
//     (package propagate) drives.
//   - FindUnassignedLocation: minimum-remaining-values cell selection for
//     the search driver.
//
// Uses dense, pre-sized row storage with a precondition/execute/finalize
// shape for anything that can fail, the same way a flat backing array
// stores a logical matrix shape — here over uint64 candidate bitmasks
// instead of float64 entries.
package cellgrid
