package big

import (
	"github.com/sudokubig/bigsolver/cellvar"
	"github.com/sudokubig/bigsolver/literal"
)

// prunePossible marks impossible root literals from the current grid and
// removes their outgoing edges: for each cell×value pair, if the value
// is not in the cell's mask, +lit is pruned; if the cell is solved to
// this value, ¬lit is pruned. Because the contrapositives of the removed edges remain
// elsewhere in the graph, this is sound only before any closure is
// cached — callers must prune before the first SCC/closure pass.
func (b *BIG) prunePossible(g GridView) {
	n := g.N()
	for cell := 0; cell < g.NumCells(); cell++ {
		for value := 1; value <= n; value++ {
			v := cellvar.Encode(n, cell, value)
			if !g.HasCandidate(cell, value) {
				b.pruneLiteral(literal.Pos(v))
			}
			if g.IsGivenTo(cell, value) {
				b.pruneLiteral(literal.Neg(v))
			}
		}
	}
}

func (b *BIG) pruneLiteral(lit literal.Literal) {
	if b.pruned.contains(lit) {
		return
	}
	b.pruned.add(lit)
	b.removeOutgoing(lit)
}

// removeOutgoing drops every edge lit⇒x this layer's own table holds
// (pruning only ever touches the top layer; parent layers are immutable
// and were already pruned when they were the top layer of their own
// preprocess call).
func (b *BIG) removeOutgoing(lit literal.Literal) {
	for _, v := range append([]int32(nil), b.self.PosConsequents(lit)...) {
		b.self.UnsafeRemoveImplication(lit, literal.Pos(literal.Variable(v)))
	}
	for _, v := range append([]int32(nil), b.self.NegConsequents(lit)...) {
		b.self.UnsafeRemoveImplication(lit, literal.Neg(literal.Variable(v)))
	}
}

// IsPruned reports whether lit is known impossible at the root.
func (b *BIG) IsPruned(lit literal.Literal) bool {
	return b.pruned.contains(lit)
}
