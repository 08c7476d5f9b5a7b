package board

import (
	"github.com/sudokubig/bigsolver/big"
	"github.com/sudokubig/bigsolver/cellgrid"
	"github.com/sudokubig/bigsolver/cellvar"
	"github.com/sudokubig/bigsolver/literal"
)

// AddWeakLink adds the weak link between cellA=valueA and cellB=valueB
// to graph, and reports whether doing so contradicts grid's already-given
// cells: if both candidates are already placed as givens, the weak link
// just asserted they cannot coexist is itself the contradiction.
func AddWeakLink(graph *big.BIG, grid *cellgrid.Grid, n, cellA, valueA, cellB, valueB int) (invalidInit bool) {
	litA := literal.Pos(cellvar.Encode(n, cellA, valueA))
	litB := literal.Pos(cellvar.Encode(n, cellB, valueB))
	graph.AddWeakLink(litA, litB)
	return grid.IsGivenTo(cellA, valueA) && grid.IsGivenTo(cellB, valueB)
}

// wireRegionWeakLinks adds the Latin-square pairwise exclusion — no two
// cells in the same region may share a value — as weak links for every
// region and every value, reporting whether any of them contradicts an
// already-given cell pair.
func wireRegionWeakLinks(graph *big.BIG, grid *cellgrid.Grid, n int, regions [][]int) (invalidInit bool) {
	for _, region := range regions {
		for i := 0; i < len(region); i++ {
			for j := i + 1; j < len(region); j++ {
				for v := 1; v <= n; v++ {
					if AddWeakLink(graph, grid, n, region[i], v, region[j], v) {
						invalidInit = true
					}
				}
			}
		}
	}
	return invalidInit
}
