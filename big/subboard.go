package big

import (
	"github.com/sudokubig/bigsolver/bitset"
	"github.com/sudokubig/bigsolver/implication"
	"github.com/sudokubig/bigsolver/literal"
)

// SubboardClone returns a new layer whose own implication table is empty
// and whose parent list is this layer's parents followed by this layer's
// own table — so the child inherits every edge visible here without
// copying any of it. Clock, clauses, and the pruned-literal set are
// shared by reference; only the clause-forcing LUT is rebuilt fresh for
// the child (clause forcing for an empty top layer reduces to whatever
// the parent chain already provides; see rebuildClauseLUT's root-or-top
// activity check).
// Complexity: O(len(parents)) to build the new parent slice.
func (b *BIG) SubboardClone() *BIG {
	parents := make([]*implication.Table, 0, len(b.parents)+1)
	parents = append(parents, b.parents...)
	parents = append(parents, b.self)

	child := &BIG{
		clock:       b.clock,
		varCount:    b.varCount,
		self:        implication.NewTable(b.varCount, b.clock),
		parents:     parents,
		clauses:     b.clauses,
		pruned:      b.pruned,
		lut:         make(map[int]*clauseLUTState, len(b.clauses)),
		commonCache: make(map[string]commonCacheEntry),
	}
	for ci, c := range b.clauses {
		child.lut[ci] = &clauseLUTState{
			pos:         make(map[uint32]bitset.Seq),
			neg:         make(map[uint32]bitset.Seq),
			literalAtTS: make([]uint64, c.Width()),
		}
	}
	return child
}

// TransferImplicationToParent unsafe-removes a⇒b from this layer's own
// table and re-adds it to the immediate parent's table. Must be called
// before any closure cache is ever consulted; it is an InternalInvariant violation to
// call this on a root layer.
func (b *BIG) TransferImplicationToParent(a, lit literal.Literal) {
	if len(b.parents) == 0 {
		panic(ErrNotRoot)
	}
	b.self.UnsafeRemoveImplication(a, lit)
	b.parents[len(b.parents)-1].AddImplication(a, lit)
}

// AddWeakLink asserts that a and b cannot both be true: it adds both
// a⇒¬b and b⇒¬a. Returns false if both edges
// were already present. Board-level callers (package board) combine this
// with the grid's given bits to detect invalidInit: a weak link between
// two literals that are both already givens is a contradictory input
//, but that check needs grid state BIG does not
// hold, so it lives in board.AddWeakLink rather than here.
func (b *BIG) AddWeakLink(a, lit literal.Literal) (added bool) {
	addedAB := b.self.AddImplication(a, literal.Negate(lit))
	addedBA := b.self.AddImplication(lit, literal.Negate(a))
	return addedAB || addedBA
}
