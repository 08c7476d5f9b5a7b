// Package steps implements the logical-step dispatcher: an ordered,
// filterable list of named heuristics queried one at a time, each
// reporting whether it fired and a human-readable trace line. The
// dispatch loop follows the same cooperative-yielding shape as the
// search driver: a loop over an ordered slice, consulting a cancel
// predicate at the same cadence.
//
// Only naked-single, hidden-single, and the constraint dispatcher are
// always enabled — the wider family of named heuristics (Fish,
// Skyscraper, Naked Tuples, …) is out of scope beyond the dispatch
// contract itself. Naked-pair detection is
// wired in here too, as an optional (not always-enabled) step, since
// package preprocess already implements it as a supplemented feature.
package steps
