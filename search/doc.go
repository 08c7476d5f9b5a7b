// Package search implements the depth-first search driver: a LIFO job
// stack of board snapshots, driven by
// minimum-remaining-values cell selection and a branch-swap heuristic
// for hard subtrees, with cooperative yielding so a host scheduler can
// deliver cancellation.
//
// A context-cancellable, explicit-stack traversal with visit/exit
// hooks, generalized here to a constraint-propagation search tree
// instead of a graph.
package search
