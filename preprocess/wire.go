package preprocess

import (
	"github.com/sudokubig/bigsolver/bitset"
	"github.com/sudokubig/bigsolver/literal"
	"github.com/sudokubig/bigsolver/search"
)

// filterNewPos sorts/dedupes targets and drops any variable lit already
// positively implies anywhere in root's visible graph — the batched
// table writer requires its input share no element with the existing
// adjacency (package implication's addBatched contract).
func filterNewPos(root *search.Snapshot, lit literal.Literal, targets []int32) bitset.Seq {
	sorted := bitset.ExtendSorted(nil, targets...)
	existing := root.Graph.GetPosConsequencesFull(lit)
	fresh, _ := bitset.FilterOut(sorted, existing, nil)
	return fresh
}

// filterNewNeg is the negative-consequent counterpart of filterNewPos.
func filterNewNeg(root *search.Snapshot, lit literal.Literal, targets []int32) bitset.Seq {
	sorted := bitset.ExtendSorted(nil, targets...)
	existing := root.Graph.GetNegConsequencesFull(lit)
	fresh, _ := bitset.FilterOut(sorted, existing, nil)
	return fresh
}

// rebuildLUTs refreshes root's clause-forcing LUTs so later passes see
// newly discovered implications through cell-forcing.
func rebuildLUTs(root *search.Snapshot) {
	root.Graph.Finalize(root.Grid)
}
