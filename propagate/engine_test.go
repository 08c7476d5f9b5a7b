package propagate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudokubig/bigsolver/big"
	"github.com/sudokubig/bigsolver/cellgrid"
	"github.com/sudokubig/bigsolver/cellvar"
	"github.com/sudokubig/bigsolver/literal"
	"github.com/sudokubig/bigsolver/pool"
	"github.com/sudokubig/bigsolver/propagate"
	"github.com/sudokubig/bigsolver/status"
)

func newBoard(t *testing.T, n int) (*cellgrid.Grid, *big.BIG) {
	t.Helper()
	g := cellgrid.New(n, pool.New(n*n))
	graph, err := big.NewBIG(cellvar.CellValueCount(n), nil)
	require.NoError(t, err)
	return g, graph
}

func weakLinkSameValue(t *testing.T, graph *big.BIG, n, cellA, cellB, value int) {
	t.Helper()
	a := literal.Pos(cellvar.Encode(n, cellA, value))
	b := literal.Pos(cellvar.Encode(n, cellB, value))
	graph.AddWeakLink(a, b)
}

func TestApplyAndPropagateAssignmentEliminatesPeer(t *testing.T) {
	n := 4
	grid, graph := newBoard(t, n)
	defer grid.Release()
	weakLinkSameValue(t, graph, n, 0, 1, 1)

	e := propagate.NewEngine(grid, graph, nil)
	assigned := literal.Pos(cellvar.Encode(n, 0, 1))
	got := e.ApplyAndPropagate(nil, []literal.Literal{assigned})

	assert.Equal(t, status.Changed, got)
	assert.True(t, grid.IsGivenTo(0, 1))
	assert.False(t, grid.HasCandidate(1, 1), "weak-linked peer must lose the shared value")
}

func TestApplyAndPropagateConflictingGivenIsInvalid(t *testing.T) {
	n := 4
	grid, graph := newBoard(t, n)
	defer grid.Release()

	e := propagate.NewEngine(grid, graph, nil)
	first := literal.Pos(cellvar.Encode(n, 0, 1))
	second := literal.Pos(cellvar.Encode(n, 0, 2))
	got := e.ApplyAndPropagate(nil, []literal.Literal{first, second})

	assert.Equal(t, status.Invalid, got)
}

func TestApplyAndPropagateIsIdempotent(t *testing.T) {
	n := 4
	grid, graph := newBoard(t, n)
	defer grid.Release()
	weakLinkSameValue(t, graph, n, 0, 1, 1)

	e := propagate.NewEngine(grid, graph, nil)
	assigned := literal.Pos(cellvar.Encode(n, 0, 1))
	require.Equal(t, status.Changed, e.ApplyAndPropagate(nil, []literal.Literal{assigned}))

	got := e.ApplyAndPropagate(nil, []literal.Literal{assigned})
	assert.Equal(t, status.Unchanged, got, "re-applying an already-propagated single must be a no-op")
}

func TestApplyAndPropagateEliminationToZeroMaskIsInvalid(t *testing.T) {
	n := 4
	grid, graph := newBoard(t, n)
	defer grid.Release()

	e := propagate.NewEngine(grid, graph, nil)
	elims := make([]literal.Literal, 0, n)
	for v := 1; v <= n; v++ {
		elims = append(elims, literal.Neg(cellvar.Encode(n, 0, v)))
	}
	got := e.ApplyAndPropagate(elims, nil)
	assert.Equal(t, status.Invalid, got)
}
