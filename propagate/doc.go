// Package propagate implements the propagation engine: the
// unit-propagation / cell-mask engine that, given an elimination
// or assignment, transitively closes binary implications, runs
// cell-forcing through the clause lookup tables, and invokes
// per-constraint callbacks.
//
// A small set of explicit worklists drained in a fixed priority order,
// the same queue-driven shape a breadth-first traversal uses,
// generalized here to three queues: eliminations, singles, and
// (brute-force mode only) pending cell-forcing.
package propagate
