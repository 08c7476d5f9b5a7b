// Package status defines the small result enum shared by every component
// that reports "did this pass change anything" — the propagator
// (package propagate), the constraint interface (package constraint), the
// search driver (package search), the preprocessor (package preprocess),
// and the logical-step dispatcher (package steps). Kept as its own leaf
// package (no imports) so those packages can share one vocabulary without
// creating an import cycle between them.
package status

// Status is the outcome of one propagation/search/heuristic step.
type Status int

const (
	// Unchanged indicates the step made no observable change.
	Unchanged Status = iota
	// Changed indicates the step made at least one change (an
	// elimination, an assignment, a derived implication, ...).
	Changed
	// Invalid indicates the step discovered a contradiction: some cell
	// mask went to zero, or a constraint rejected an assignment.
	Invalid
	// Complete indicates the board reached a full, valid solution.
	Complete
	// Cancelled indicates the host's cancellation predicate fired.
	Cancelled
)

// String renders Status for logs and traces.
func (s Status) String() string {
	switch s {
	case Unchanged:
		return "unchanged"
	case Changed:
		return "changed"
	case Invalid:
		return "invalid"
	case Complete:
		return "complete"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}
