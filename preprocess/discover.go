package preprocess

import (
	"github.com/sudokubig/bigsolver/cellvar"
	"github.com/sudokubig/bigsolver/literal"
	"github.com/sudokubig/bigsolver/propagate"
	"github.com/sudokubig/bigsolver/search"
	"github.com/sudokubig/bigsolver/status"
)

// DiscoverBinaryImplications probes every not-yet-solved cell in
// cellOrder, one candidate value at a time: clone root, assign the
// candidate, and run the brute-force fixpoint. An INVALID result proves
// the candidate impossible and it is eliminated on root directly;
// otherwise the clone's grid is diffed against root's pre-assignment
// grid and every newly-solved or newly-eliminated peer cell becomes a
// discovered implication, batch-added to root's top-layer BIG.
//
// Negative probing (assuming ¬lit to detect eliminations) is a known
// future enhancement and is deliberately not implemented here.
//
// Registered onto search.DiscoverBinaryImplications below so the
// brute-force driver can reach this without package search importing
// package preprocess.
func DiscoverBinaryImplications(root *search.Snapshot, cellOrder []int) status.Status {
	n := root.Grid.N()
	changed := false

	for _, cell := range cellOrder {
		if root.Grid.IsGiven(cell) {
			continue
		}
		mask := root.Grid.CandidateMask(cell)
		for value := 1; value <= n; value++ {
			if mask&(uint64(1)<<uint(value-1)) == 0 {
				continue
			}
			lit := literal.Pos(cellvar.Encode(n, cell, value))

			clone := root.Clone()
			cloneEngine := propagate.NewEngine(clone.Grid, clone.Graph, clone.Constraints)
			cloneEngine.BruteForce = true
			st := cloneEngine.ApplyAndPropagate(nil, []literal.Literal{lit})
			if st != status.Invalid {
				st = search.ApplyBruteForceLogic(clone, false, false)
			}
			if st == status.Invalid {
				clone.Release()
				switch eliminateOnRoot(root, cell, value) {
				case status.Invalid:
					return status.Invalid
				case status.Changed:
					changed = true
				}
				continue
			}

			diffAndWire(root, clone, lit)
			clone.Release()
		}
	}

	if changed {
		rebuildLUTs(root)
		return status.Changed
	}
	return status.Unchanged
}

func init() {
	search.DiscoverBinaryImplications = DiscoverBinaryImplications
}

func eliminateOnRoot(root *search.Snapshot, cell, value int) status.Status {
	n := root.Grid.N()
	engine := propagate.NewEngine(root.Grid, root.Graph, root.Constraints)
	engine.BruteForce = true
	lit := literal.Neg(cellvar.Encode(n, cell, value))
	return engine.ApplyAndPropagate([]literal.Literal{lit}, nil)
}

// diffAndWire compares clone's grid against root's (the state the clone
// was forked from, before the probed assignment) and emits lit⇒otherLit
// for every cell that became given, or lit⇒¬otherLit for every candidate
// a cell lost, batch-added after filtering out edges already present.
func diffAndWire(root, clone *search.Snapshot, lit literal.Literal) {
	n := root.Grid.N()
	var posTargets, negTargets []int32

	for cell := 0; cell < root.Grid.NumCells(); cell++ {
		before := root.Grid.CandidateMask(cell)
		after := clone.Grid.CandidateMask(cell)
		if before == after {
			continue
		}
		if clone.Grid.IsGiven(cell) && !root.Grid.IsGiven(cell) {
			v := clone.Grid.GivenValue(cell)
			posTargets = append(posTargets, int32(cellvar.Encode(n, cell, v)))
			continue
		}
		lost := before &^ after
		for v := 1; v <= n; v++ {
			if lost&(uint64(1)<<uint(v-1)) != 0 {
				negTargets = append(negTargets, int32(cellvar.Encode(n, cell, v)))
			}
		}
	}

	if len(posTargets) > 0 {
		filtered := filterNewPos(root, lit, posTargets)
		if len(filtered) > 0 {
			root.Graph.AddPosImplicationsBatched(lit, filtered)
		}
	}
	if len(negTargets) > 0 {
		filtered := filterNewNeg(root, lit, negTargets)
		if len(filtered) > 0 {
			root.Graph.AddNegImplicationsBatched(lit, filtered)
		}
	}
}
