package search

import (
	"github.com/sudokubig/bigsolver/propagate"
	"github.com/sudokubig/bigsolver/status"
)

// DiscoverBinaryImplications, when non-nil, is invoked once per search
// root as the last part of initial preprocessing: probe every
// not-yet-solved cell's remaining candidates and wire whatever new
// binary implications that probing discovers directly into the root's
// BIG layer. Package preprocess registers its own implementation here
// at import time, the same way a database/sql driver registers itself,
// so that package search can call it without importing package
// preprocess — which itself imports package search for Snapshot.
var DiscoverBinaryImplications func(root *Snapshot, cellOrder []int) status.Status

// naturalCellOrder returns 0..numCells-1, the probing order
// DiscoverBinaryImplications is driven in.
func naturalCellOrder(numCells int) []int {
	order := make([]int, numCells)
	for i := range order {
		order[i] = i
	}
	return order
}

// ApplyBruteForceLogic re-verifies snap's fixpoint under brute-force mode
// (naked-single inference and cell-forcing enabled), runs every
// constraint's cheap per-pass BruteForceStep, and — on the very first
// iteration of a search, when the caller allowed it — runs a full BIG
// Preprocess pass (sort, prune, SCC/closure, clause LUT rebuild) plus
// probe-diff implication discovery before any branching. Propagation and
// the constraint/preprocessing steps are driven to a joint fixpoint: a
// constraint's BruteForceStep may itself call EliminateCandidate, which
// only enqueues the elimination on engine's worklist, so the loop below
// re-runs ApplyAndPropagate until a full round leaves both propagation
// and every constraint step unchanged.
//
// The snapshot arriving here is already propagated: branch() ran
// ApplyAndPropagate with the branching literal before pushing it, so the
// first round below is ordinarily a no-op and exists to fold in whatever
// the constraints' own BruteForceStep and, at depth 0, a full Preprocess
// pass additionally discover.
func ApplyBruteForceLogic(snap *Snapshot, isDepth0, isInitialPreprocessing bool) status.Status {
	engine := propagate.NewEngine(snap.Grid, snap.Graph, snap.Constraints)
	engine.BruteForce = true

	changed := false
	ranInitialPass := false

	for {
		st := engine.ApplyAndPropagate(nil, nil)
		if st == status.Invalid {
			return status.Invalid
		}
		if st == status.Changed {
			changed = true
		}

		roundChanged := false
		if !ranInitialPass {
			ranInitialPass = true
			if isInitialPreprocessing {
				snap.Graph.Preprocess(snap.Grid)
				roundChanged = true
				if DiscoverBinaryImplications != nil {
					cellOrder := naturalCellOrder(snap.Grid.NumCells())
					if dst := DiscoverBinaryImplications(snap, cellOrder); dst == status.Invalid {
						return status.Invalid
					}
				}
			} else if isDepth0 && snap.NeedsExpensiveBruteForceSteps {
				snap.Graph.Preprocess(snap.Grid)
				snap.NeedsExpensiveBruteForceSteps = false
				roundChanged = true
			}
		}

		for _, c := range snap.Constraints {
			switch c.BruteForceStep(engine) {
			case status.Invalid:
				return status.Invalid
			case status.Changed:
				roundChanged = true
			}
		}

		if roundChanged {
			changed = true
		}
		if snap.Grid.IsComplete() {
			return status.Complete
		}
		if st != status.Changed && !roundChanged {
			break
		}
	}

	if changed {
		return status.Changed
	}
	return status.Unchanged
}
