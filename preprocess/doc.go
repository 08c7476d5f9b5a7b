// Package preprocess implements the binary-implication preprocessor
//: per-candidate probing that discovers new implied
// edges by cloning the board, trying a candidate, and diffing the
// resulting grid against the original — plus the cheap helper tactics
// (naked singles, hidden singles, pairs) it interleaves with that probe.
//
// Invoked once per search root, at depth 0.
//
// Follows a traversal-with-callback style generalized to a
// clone-probe-diff loop over package search's Snapshot rather than a
// graph walk.
package preprocess
