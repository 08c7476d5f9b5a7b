package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudokubig/bigsolver/board"
)

func TestDefaultRegionsPerfectSquare(t *testing.T) {
	regions := board.DefaultRegions(4)
	require.Len(t, regions, 4)
	for _, r := range regions {
		assert.Len(t, r, 4)
	}
	// Box 0 is the top-left 2x2: cells 0,1,4,5.
	assert.ElementsMatch(t, []int{0, 1, 4, 5}, regions[0])
}

func TestDefaultRegionsNonSquareFactorizes(t *testing.T) {
	regions := board.DefaultRegions(6)
	require.Len(t, regions, 6)
	for _, r := range regions {
		assert.Len(t, r, 6)
	}
}

func TestRowAndColumnRegions(t *testing.T) {
	rows := board.RowRegions(4)
	require.Len(t, rows, 4)
	assert.Equal(t, []int{0, 1, 2, 3}, rows[0])

	cols := board.ColumnRegions(4)
	require.Len(t, cols, 4)
	assert.Equal(t, []int{0, 4, 8, 12}, cols[0])
}

// givensConfig builds a Config for an n x n puzzle from a row-major
// string of digits ('0' meaning "no given").
func givensConfig(n int, digits string) board.Config {
	cells := make([]board.CellSpec, n*n)
	for i, r := range digits {
		if r == '0' {
			continue
		}
		cells[i] = board.CellSpec{Given: true, Value: int(r - '0')}
	}
	return board.Config{N: n, Cells: cells}
}

func TestNewBoardSolvesMinimalFourByFour(t *testing.T) {
	cfg := givensConfig(4, "0030040010000002")
	brd, err := board.NewBoard(cfg, nil, nil)
	require.NoError(t, err)
	defer brd.Release()

	require.False(t, brd.InvalidInit())

	res := brd.FindSolution(board.FindSolutionOptions{AllowPreprocessing: true}, nil)
	require.False(t, res.NoSolution)
	require.False(t, res.Cancelled)
	require.NotNil(t, res.Solution)
	defer res.Solution.Release()

	assertLatinSquare(t, res.Solution, 4)

	// The original givens must survive into the solution.
	assert.Equal(t, 3, res.Solution.Value(2))
	assert.Equal(t, 4, res.Solution.Value(5))
	assert.Equal(t, 1, res.Solution.Value(8))
	assert.Equal(t, 2, res.Solution.Value(15))
}

func TestNewBoardContradictoryGivensAreInvalidInit(t *testing.T) {
	// r0c0=1 and r0c1=1: same row, same value — impossible.
	cfg := givensConfig(4, "1100000000000000")
	brd, err := board.NewBoard(cfg, nil, nil)
	require.NoError(t, err)
	defer brd.Release()

	assert.True(t, brd.InvalidInit())

	res := brd.FindSolution(board.FindSolutionOptions{}, nil)
	assert.True(t, res.NoSolution)
	assert.Nil(t, res.Solution)
}

func TestNewBoardRejectsConflictingCellLoad(t *testing.T) {
	cells := make([]board.CellSpec, 16)
	cells[0] = board.CellSpec{Given: true, Value: 1, CenterPencilMarks: []int{1, 2}}
	_, err := board.NewBoard(board.Config{N: 4, Cells: cells}, nil, nil)
	assert.Error(t, err)
}

// TestBoardCalcTrueCandidates exercises board.CalcTrueCandidates (search §8
// seed S6) through the public API: a puzzle with one given cell must report
// that cell's true-candidate mask as exactly the given value, while every
// other cell still admits at least one value.
func TestBoardCalcTrueCandidates(t *testing.T) {
	cfg := givensConfig(4, "1000000000000000")
	brd, err := board.NewBoard(cfg, nil, nil)
	require.NoError(t, err)
	defer brd.Release()
	require.False(t, brd.InvalidInit())

	res := brd.CalcTrueCandidates(1, nil, nil)
	require.False(t, res.NoSolution)
	require.False(t, res.Cancelled)
	require.Len(t, res.TrueCandidates, 16)

	assert.Equal(t, uint64(1), res.TrueCandidates[0], "cell 0 is given 1: no other value may appear")
	for cell := 1; cell < 16; cell++ {
		assert.NotEqual(t, uint64(0), res.TrueCandidates[cell], "cell %d must admit at least one value", cell)
	}
}

// TestBoardCountSolutionsReportsBranchSwaps exercises the branch-swap
// heuristic (search §8 seed S5) through the board API: an unconstrained 4x4
// board (no givens) takes far more guesses than the swap threshold to
// exhaust, so CountSolutionsResult.Stats must report at least one swap.
func TestBoardCountSolutionsReportsBranchSwaps(t *testing.T) {
	cfg := board.Config{N: 4}
	brd, err := board.NewBoard(cfg, nil, nil)
	require.NoError(t, err)
	defer brd.Release()
	require.False(t, brd.InvalidInit())

	res := brd.CountSolutions(board.CountSolutionsOptions{EnableStats: true}, nil)
	require.False(t, res.Cancelled)
	require.Greater(t, res.Count, 0)

	assert.Greater(t, res.Stats.Guesses, 100, "exhaustive enumeration should need more than the swap threshold's worth of guesses")
	assert.Greater(t, res.Stats.BranchSwaps, 0, "a search this long must trigger at least one branch swap")
}

func assertLatinSquare(t *testing.T, sol *board.Solution, n int) {
	t.Helper()
	for r := 0; r < n; r++ {
		seen := map[int]bool{}
		for c := 0; c < n; c++ {
			v := sol.Value(r*n + c)
			assert.False(t, seen[v], "row %d has a repeated value %d", r, v)
			seen[v] = true
		}
	}
	for c := 0; c < n; c++ {
		seen := map[int]bool{}
		for r := 0; r < n; r++ {
			v := sol.Value(r*n + c)
			assert.False(t, seen[v], "column %d has a repeated value %d", c, v)
			seen[v] = true
		}
	}
}
