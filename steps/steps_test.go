package steps_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudokubig/bigsolver/big"
	"github.com/sudokubig/bigsolver/cellgrid"
	"github.com/sudokubig/bigsolver/cellvar"
	"github.com/sudokubig/bigsolver/pool"
	"github.com/sudokubig/bigsolver/search"
	"github.com/sudokubig/bigsolver/status"
	"github.com/sudokubig/bigsolver/steps"
)

func newRoot(t *testing.T, n int) *search.Snapshot {
	t.Helper()
	grid := cellgrid.New(n, pool.New(n*n))
	graph, err := big.NewBIG(cellvar.CellValueCount(n), nil)
	require.NoError(t, err)
	return &search.Snapshot{Grid: grid, Graph: graph}
}

func TestLogicalStepFiresNakedSingleBeforeHiddenSingle(t *testing.T) {
	root := newRoot(t, 4)
	defer root.Release()

	for v := 1; v <= 3; v++ {
		root.Grid.EliminateCandidateRaw(0, v)
	}

	d := steps.NewDefaultDispatcher(nil, func(int) []int { return nil })
	res := d.LogicalStep(root, nil)

	assert.Equal(t, status.Changed, res.Status)
	assert.True(t, root.Grid.IsGivenTo(0, 4))
}

func TestLogicalSolveStopsWhenNoHeuristicFires(t *testing.T) {
	root := newRoot(t, 4)
	defer root.Release()

	d := steps.NewDefaultDispatcher(nil, func(int) []int { return nil })
	res := d.LogicalSolve(root, nil)

	assert.Equal(t, status.Unchanged, res.Status)
	assert.False(t, res.Cancelled)
	assert.Empty(t, res.Descs)
}

func TestLogicalSolveCollectsTraceAcrossSteps(t *testing.T) {
	n := 4
	root := newRoot(t, n)
	defer root.Release()

	// Row 0: cell0 collapsed to value 4 by direct elimination, cell1
	// hidden-singled to value 1 within the row.
	for v := 1; v <= 3; v++ {
		root.Grid.EliminateCandidateRaw(0, v)
	}
	row := []int{0, 1, 2, 3}
	for _, cell := range []int{0, 2, 3} {
		root.Grid.EliminateCandidateRaw(cell, 1)
	}

	d := steps.NewDefaultDispatcher([][]int{row}, func(int) []int { return nil })
	res := d.LogicalSolve(root, nil)

	assert.Equal(t, status.Changed, res.Status)
	assert.NotEmpty(t, res.Descs)
}
