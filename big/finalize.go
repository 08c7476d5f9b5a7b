package big

// Finalize sorts the graph, prunes impossible root literals against the
// current grid, and rebuilds the clause-forcing LUTs. It does not
// recompute SCC/closure; call Preprocess for that.
func (b *BIG) Finalize(g GridView) {
	b.self.SortGraph()
	b.prunePossible(g)
	b.rebuildClauseLUTs()
}

// Preprocess runs Finalize and then a full SCC/closure recomputation.
// This must be called before the first search on a board.
func (b *BIG) Preprocess(g GridView) {
	b.Finalize(g)
	b.recomputeSCC()
	// A second LUT pass rebuilds any clause whose literals' adjacency
	// timestamps moved during the first pass (wiring one clause's LUT adds
	// contrapositive edges onto other clauses' literals). LUT entries are
	// built from table edges via getConsequences; the closure cache that
	// recomputeSCC just filled is not read by the LUT rebuild.
	b.rebuildClauseLUTs()
}

// NeedsSCCRecompute reports whether a write has occurred since the last
// SCC/closure pass.
func (b *BIG) NeedsSCCRecompute() bool {
	return b.clock.Now() > b.sccRecomputedAt
}
