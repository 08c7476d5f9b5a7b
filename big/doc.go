// Package big implements the Binary Implication Layered Graph: a stack
// of polarity-keyed implication tables (package
// implication) — one mutable table owned by this layer plus an ordered
// list of immutable parent tables inherited from ancestor sub-boards —
// together with a transitive-closure cache recomputed in full by a
// Tarjan SCC pass, and per-clause clause-forcing lookup tables built over
// user-declared exactly-one clauses.
//
// What:
//
//   - BIG: the layered graph itself. NewBIG builds the root layer and
//     registers the clause identifications; SubboardClone derives a
//     child layer that shares every ancestor table by reference.
//   - Pruning: Finalize removes edges out of literals already known
//     impossible from the current grid.
//   - SCC & closure: Preprocess runs Finalize plus a Tarjan pass over the
//     literal graph (primary table + parents, full-variable view),
//     caching each literal's transitive pos/neg consequents.
//   - Clause-forcing LUT: for each registered exactly-one clause of width
//     k, a table keyed by non-empty subset bitmask m ⊆ {1..k} gives the
//     consequents forced by "the value lies in m", built bottom-up by
//     popcount so each level's split m = firstBit|rest reuses the
//     already-filled rest entry.
//
// Why this shape: a single layer of mutexed, map-backed adjacency over
// a fixed vertex namespace generalizes naturally to a STACK of such
// layers (for copy-on-write sub-board snapshots) and to literals with a
// pos/neg duality plain adjacency does not need. The Tarjan walk is a
// stack-free recursive traversal adapted to track low-link numbers and
// an explicit component stack.
package big
