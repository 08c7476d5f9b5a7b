package preprocess_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudokubig/bigsolver/big"
	"github.com/sudokubig/bigsolver/cellgrid"
	"github.com/sudokubig/bigsolver/cellvar"
	"github.com/sudokubig/bigsolver/literal"
	"github.com/sudokubig/bigsolver/pool"
	"github.com/sudokubig/bigsolver/preprocess"
	"github.com/sudokubig/bigsolver/search"
	"github.com/sudokubig/bigsolver/status"
)

func newRoot(t *testing.T, n int) *search.Snapshot {
	t.Helper()
	grid := cellgrid.New(n, pool.New(n*n))
	graph, err := big.NewBIG(cellvar.CellValueCount(n), nil)
	require.NoError(t, err)
	return &search.Snapshot{Grid: grid, Graph: graph}
}

func TestApplyNakedSinglesAssignsCollapsedCell(t *testing.T) {
	root := newRoot(t, 4)
	defer root.Release()

	for v := 1; v <= 3; v++ {
		root.Grid.EliminateCandidateRaw(0, v)
	}
	assert.Equal(t, uint64(0b1000), root.Grid.CandidateMask(0))

	st := preprocess.ApplyNakedSingles(root)
	assert.Equal(t, status.Changed, st)
	assert.True(t, root.Grid.IsGivenTo(0, 4))
}

func TestApplyHiddenSinglesFindsUniqueCellForValue(t *testing.T) {
	root := newRoot(t, 4)
	defer root.Release()

	row := []int{0, 1, 2, 3}
	for _, cell := range row {
		if cell != 2 {
			root.Grid.EliminateCandidateRaw(cell, 3)
		}
	}

	st := preprocess.ApplyHiddenSingles(root, [][]int{row})
	assert.Equal(t, status.Changed, st)
	assert.True(t, root.Grid.IsGivenTo(2, 3))
}

func TestDiscoverBinaryImplicationsEliminatesImpossibleCandidate(t *testing.T) {
	n := 4
	root := newRoot(t, n)
	defer root.Release()

	// A weak link making cell0=1 and cell1=1 mutually exclusive, plus a
	// forced cell1=1 (only candidate remaining), makes cell0=1
	// discoverable as impossible.
	root.Graph.AddWeakLink(
		literal.Pos(cellvar.Encode(n, 0, 1)),
		literal.Pos(cellvar.Encode(n, 1, 1)),
	)
	for v := 2; v <= n; v++ {
		root.Grid.EliminateCandidateRaw(1, v)
	}
	require.Equal(t, uint64(0b0001), root.Grid.CandidateMask(1))

	st := preprocess.DiscoverBinaryImplications(root, []int{0})
	assert.Equal(t, status.Changed, st)
	assert.False(t, root.Grid.HasCandidate(0, 1), "candidate ruled out by the weak link must be eliminated")
}
