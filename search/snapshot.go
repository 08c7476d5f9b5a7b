package search

import (
	"github.com/sudokubig/bigsolver/big"
	"github.com/sudokubig/bigsolver/cellgrid"
	"github.com/sudokubig/bigsolver/constraint"
)

// Snapshot is one job-stack entry: an independent board state plus the
// constraints cloned alongside it. The search driver owns Snapshot's lifecycle; package board
// constructs the root one.
type Snapshot struct {
	Grid        *cellgrid.Grid
	Graph       *big.BIG
	Constraints []constraint.Constraint

	// NeedsExpensiveBruteForceSteps is set on every live snapshot by a
	// branch-swap to force a full
	// preprocessing pass the next time this snapshot reaches depth 0.
	NeedsExpensiveBruteForceSteps bool
}

// Clone forks snap into an independent snapshot: a grid clone, a BIG
// sub-board layer, and cloned constraint state, sharing everything
// immutable.
func (snap *Snapshot) Clone() *Snapshot {
	constraints := make([]constraint.Constraint, len(snap.Constraints))
	for i, c := range snap.Constraints {
		constraints[i] = c.Clone()
	}
	return &Snapshot{
		Grid:        snap.Grid.Clone(),
		Graph:       snap.Graph.SubboardClone(),
		Constraints: constraints,
	}
}

// Release returns snap's pooled grid buffer and releases its constraint
// state. Callers must not use snap after calling Release.
func (snap *Snapshot) Release() {
	snap.Grid.Release()
	for _, c := range snap.Constraints {
		c.Release()
	}
}
