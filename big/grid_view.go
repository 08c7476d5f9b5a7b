package big

// GridView is the minimal read-only view of a cell grid that BIG needs
// to prune impossible root literals and to run SCC/closure over a
// concrete puzzle. Package cellgrid's Grid type implements this; BIG
// does not otherwise depend on package cellgrid, so only this narrow
// view is threaded the other way for pruning.
type GridView interface {
	// NumCells returns N*N.
	NumCells() int
	// N returns the puzzle's symbol count / side length.
	N() int
	// HasCandidate reports whether value is still a candidate of cell.
	HasCandidate(cell, value int) bool
	// IsGivenTo reports whether cell is solved to value.
	IsGivenTo(cell, value int) bool
}
