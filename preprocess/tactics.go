package preprocess

import (
	"github.com/sudokubig/bigsolver/bitset"
	"github.com/sudokubig/bigsolver/cellvar"
	"github.com/sudokubig/bigsolver/literal"
	"github.com/sudokubig/bigsolver/propagate"
	"github.com/sudokubig/bigsolver/search"
	"github.com/sudokubig/bigsolver/status"
)

// ApplyNakedSingles sweeps root's grid for unsolved cells whose
// candidate mask has already collapsed to a single bit and assigns
// them, in brute-force mode so the assignment's own consequences
// propagate immediately.
func ApplyNakedSingles(root *search.Snapshot) status.Status {
	n := root.Grid.N()
	engine := propagate.NewEngine(root.Grid, root.Graph, root.Constraints)
	engine.BruteForce = true

	changed := false
	for cell := 0; cell < root.Grid.NumCells(); cell++ {
		if root.Grid.IsGiven(cell) {
			continue
		}
		mask := root.Grid.CandidateMask(cell)
		if !bitset.HasExactlyOneBit(mask) {
			continue
		}
		value := bitset.LowestBitIndex(mask) + 1
		single := literal.Pos(cellvar.Encode(n, cell, value))
		if st := engine.ApplyAndPropagate(nil, []literal.Literal{single}); st == status.Invalid {
			return status.Invalid
		} else if st == status.Changed {
			changed = true
		}
	}
	if changed {
		return status.Changed
	}
	return status.Unchanged
}

// ApplyHiddenSingles scans every region (a full-size group of cells,
// e.g. a row, column, or box) for a value that appears in exactly one
// cell's candidate mask, and assigns it there.
func ApplyHiddenSingles(root *search.Snapshot, regions [][]int) status.Status {
	n := root.Grid.N()
	engine := propagate.NewEngine(root.Grid, root.Graph, root.Constraints)
	engine.BruteForce = true

	changed := false
	for _, region := range regions {
		for value := 1; value <= n; value++ {
			bit := uint64(1) << uint(value-1)
			onlyCell, count := -1, 0
			for _, cell := range region {
				if root.Grid.IsGivenTo(cell, value) {
					count = -1 // already placed in this region: nothing hidden to find
					break
				}
				if root.Grid.CandidateMask(cell)&bit != 0 {
					onlyCell = cell
					count++
				}
			}
			if count != 1 {
				continue
			}
			single := literal.Pos(cellvar.Encode(n, onlyCell, value))
			if st := engine.ApplyAndPropagate(nil, []literal.Literal{single}); st == status.Invalid {
				return status.Invalid
			} else if st == status.Changed {
				changed = true
			}
		}
	}
	if changed {
		return status.Changed
	}
	return status.Unchanged
}

// ApplyPairs looks for naked pairs: two bi-value cells sharing an
// identical two-candidate mask with a weak link on each shared value,
// i.e. "cellA=a and cellB=a cannot both hold" for both of the pair's
// values. The derived cross-implications (cellA=a⇒cellB=b and
// cellA=b⇒cellB=a) are wired directly into the graph, letting the
// propagator's own closure perform whatever eliminations follow rather
// than this tactic recomputing them by hand.
func ApplyPairs(root *search.Snapshot, peersOf func(cell int) []int) status.Status {
	n := root.Grid.N()
	changed := false

	for cell := 0; cell < root.Grid.NumCells(); cell++ {
		if root.Grid.IsGiven(cell) {
			continue
		}
		mask := root.Grid.CandidateMask(cell)
		if bitset.PopCount(mask) != 2 {
			continue
		}
		valA := bitset.LowestBitIndex(mask) + 1
		valB := bitset.LowestBitIndex(mask&^(uint64(1)<<uint(valA-1))) + 1

		for _, peer := range peersOf(cell) {
			if peer <= cell || root.Grid.IsGiven(peer) {
				continue
			}
			if root.Grid.CandidateMask(peer) != mask {
				continue
			}
			litAa := literal.Pos(cellvar.Encode(n, cell, valA))
			litAb := literal.Pos(cellvar.Encode(n, peer, valA))
			litBa := literal.Pos(cellvar.Encode(n, cell, valB))
			litBb := literal.Pos(cellvar.Encode(n, peer, valB))
			if !root.Graph.HasImplication(litAa, literal.Negate(litAb)) {
				continue
			}
			if !root.Graph.HasImplication(litBa, literal.Negate(litBb)) {
				continue
			}
			if root.Graph.AddImplication(litAa, litBb) {
				changed = true
			}
			if root.Graph.AddImplication(litBa, litAb) {
				changed = true
			}
		}
	}
	if changed {
		return status.Changed
	}
	return status.Unchanged
}
