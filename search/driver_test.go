package search_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudokubig/bigsolver/big"
	"github.com/sudokubig/bigsolver/cellgrid"
	"github.com/sudokubig/bigsolver/cellvar"
	"github.com/sudokubig/bigsolver/constraint"
	"github.com/sudokubig/bigsolver/literal"
	"github.com/sudokubig/bigsolver/pool"
	"github.com/sudokubig/bigsolver/propagate"
	"github.com/sudokubig/bigsolver/search"
	"github.com/sudokubig/bigsolver/status"
)

// buildFourByFour constructs a 4x4 board (2x2 boxes) with one
// exactly-one clause per cell (so clause id == cell index, matching
// package propagate's cell-forcing convention) plus pairwise weak links
// enforcing row/column/box uniqueness.
func buildFourByFour(t *testing.T) (*cellgrid.Grid, *big.BIG) {
	t.Helper()
	n := 4
	grid := cellgrid.New(n, pool.New(n*n))

	specs := make([]big.ClauseSpec, n*n)
	for cell := 0; cell < n*n; cell++ {
		lits := make([]literal.Literal, n)
		for v := 1; v <= n; v++ {
			lits[v-1] = literal.Pos(cellvar.Encode(n, cell, v))
		}
		specs[cell] = big.ClauseSpec{Literals: lits}
	}
	graph, err := big.NewBIG(cellvar.CellValueCount(n), specs)
	require.NoError(t, err)

	box := int(math.Sqrt(float64(n)))
	rowOf := func(c int) int { return c / n }
	colOf := func(c int) int { return c % n }
	boxOf := func(c int) int { return (rowOf(c)/box)*box + colOf(c)/box }

	for a := 0; a < n*n; a++ {
		for b := a + 1; b < n*n; b++ {
			if rowOf(a) == rowOf(b) || colOf(a) == colOf(b) || boxOf(a) == boxOf(b) {
				for v := 1; v <= n; v++ {
					graph.AddWeakLink(
						literal.Pos(cellvar.Encode(n, a, v)),
						literal.Pos(cellvar.Encode(n, b, v)),
					)
				}
			}
		}
	}
	return grid, graph
}

func TestDriverFindSolutionSolvesFourByFour(t *testing.T) {
	grid, graph := buildFourByFour(t)

	givens := map[int]int{0: 1, 3: 4, 6: 1, 9: 1, 12: 4, 15: 1}
	initial := make([]literal.Literal, 0, len(givens))
	for cell, value := range givens {
		initial = append(initial, literal.Pos(cellvar.Encode(4, cell, value)))
	}
	seedEngine := propagate.NewEngine(grid, graph, nil)
	seedEngine.BruteForce = true
	require.NotEqual(t, status.Invalid, seedEngine.ApplyAndPropagate(nil, initial), "givens must be mutually consistent")
	graph.Preprocess(grid)

	root := &search.Snapshot{Grid: grid, Graph: graph, Constraints: []constraint.Constraint{constraint.NoOp{}}}
	driver := search.NewDriver(root)

	result := driver.FindSolution(search.Options{AllowPreprocessing: true}, nil)
	require.False(t, result.NoSolution, "a solvable 4x4 puzzle must yield a solution")
	require.False(t, result.Cancelled)
	require.NotNil(t, result.Board)
	defer result.Board.Release()

	solved := result.Board.Grid
	assert.True(t, solved.IsComplete())
	for cell, value := range givens {
		assert.True(t, solved.IsGivenTo(cell, value))
	}
	assertLatin(t, solved, 4)
}

// TestDriverCalcTrueCandidatesFourByFour exercises Driver.CalcTrueCandidates
// (search §8 seed S6) against a fully open 4x4 board: with no givens at all,
// every cell's true-candidate mask must cover every value, since a
// completely symmetric Latin square admits a solution with any value in
// any cell.
func TestDriverCalcTrueCandidatesFourByFour(t *testing.T) {
	grid, graph := buildFourByFour(t)
	graph.Preprocess(grid)

	root := &search.Snapshot{Grid: grid, Graph: graph, Constraints: []constraint.Constraint{constraint.NoOp{}}}
	driver := search.NewDriver(root)

	res := driver.CalcTrueCandidates(1, nil, nil)
	require.False(t, res.NoSolution)
	require.False(t, res.Cancelled)
	require.Len(t, res.TrueCandidates, 16)

	full := uint64(0)
	for v := 1; v <= 4; v++ {
		full |= uint64(1) << uint(v-1)
	}
	for cell, mask := range res.TrueCandidates {
		assert.Equal(t, full, mask, "cell %d should admit every value across some solution", cell)
	}
}

// TestDriverCalcTrueCandidatesRespectsGivens pins one cell and checks that
// its true-candidate mask collapses to exactly that value, while the
// per-candidate Counts table (requested via maxPerCand>1) is populated.
func TestDriverCalcTrueCandidatesRespectsGivens(t *testing.T) {
	grid, graph := buildFourByFour(t)

	lit := literal.Pos(cellvar.Encode(4, 0, 1))
	seedEngine := propagate.NewEngine(grid, graph, nil)
	seedEngine.BruteForce = true
	require.NotEqual(t, status.Invalid, seedEngine.ApplyAndPropagate(nil, []literal.Literal{lit}))
	graph.Preprocess(grid)

	root := &search.Snapshot{Grid: grid, Graph: graph, Constraints: []constraint.Constraint{constraint.NoOp{}}}
	driver := search.NewDriver(root)

	res := driver.CalcTrueCandidates(2, nil, nil)
	require.False(t, res.NoSolution)
	require.NotNil(t, res.Counts)

	assert.Equal(t, uint64(1), res.TrueCandidates[0], "cell 0 is given 1: no other value may appear")
	assert.Greater(t, res.Counts[0][0], 0, "cell 0's value-1 count must reflect at least one enumerated solution")
}

// TestDriverMaybeSwapTriggersOnLongSearch exercises the branch-swap
// heuristic (search §8 seed S5): a fully open 4x4 board enumerated to
// exhaustion makes far more than the 100-guess swap threshold's worth of
// branch() calls, so at least one swap must fire.
func TestDriverMaybeSwapTriggersOnLongSearch(t *testing.T) {
	grid, graph := buildFourByFour(t)
	graph.Preprocess(grid)

	root := &search.Snapshot{Grid: grid, Graph: graph, Constraints: []constraint.Constraint{constraint.NoOp{}}}
	driver := search.NewDriver(root)
	driver.EnableStats()

	res := driver.CountSolutions(0, nil, nil, nil)
	require.False(t, res.Cancelled)
	require.Greater(t, res.Count, 0, "an unconstrained 4x4 Latin square must have solutions")

	assert.Greater(t, driver.GuessCount(), 100, "exhaustive enumeration should need more than the swap threshold's worth of guesses")
	assert.Greater(t, driver.BranchSwapCount(), 0, "a search this long must trigger at least one branch swap")
}

// assertLatin verifies no row, column, or box of solved repeats a value.
func assertLatin(t *testing.T, g *cellgrid.Grid, n int) {
	t.Helper()
	box := int(math.Sqrt(float64(n)))
	check := func(cells []int) {
		seen := make(map[int]bool)
		for _, c := range cells {
			v := g.GivenValue(c)
			require.False(t, seen[v], "duplicate value %d among cells %v", v, cells)
			seen[v] = true
		}
	}
	for r := 0; r < n; r++ {
		row := make([]int, 0, n)
		for c := 0; c < n; c++ {
			row = append(row, r*n+c)
		}
		check(row)
	}
	for c := 0; c < n; c++ {
		col := make([]int, 0, n)
		for r := 0; r < n; r++ {
			col = append(col, r*n+c)
		}
		check(col)
	}
	for br := 0; br < n; br += box {
		for bc := 0; bc < n; bc += box {
			cells := make([]int, 0, n)
			for r := br; r < br+box; r++ {
				for c := bc; c < bc+box; c++ {
					cells = append(cells, r*n+c)
				}
			}
			check(cells)
		}
	}
}
