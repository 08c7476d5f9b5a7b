package cellgrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudokubig/bigsolver/cellgrid"
	"github.com/sudokubig/bigsolver/pool"
)

func newGrid(n int) *cellgrid.Grid {
	return cellgrid.New(n, pool.New(n*n))
}

func TestNewGridAllCandidates(t *testing.T) {
	g := newGrid(4)
	defer g.Release()
	for c := 0; c < 16; c++ {
		assert.False(t, g.IsGiven(c))
		assert.Equal(t, uint64(0b1111), g.CandidateMask(c))
	}
}

func TestSetAsGivenReducesMaskAndCounter(t *testing.T) {
	g := newGrid(4)
	defer g.Release()
	require.NoError(t, g.SetAsGivenRaw(0, 3))
	assert.True(t, g.IsGiven(0))
	assert.True(t, g.IsGivenTo(0, 3))
	assert.Equal(t, 15, g.UnsolvedCount())
}

func TestSetAsGivenSameValueNoOp(t *testing.T) {
	g := newGrid(4)
	defer g.Release()
	require.NoError(t, g.SetAsGivenRaw(0, 3))
	require.NoError(t, g.SetAsGivenRaw(0, 3))
	assert.Equal(t, 15, g.UnsolvedCount())
}

func TestSetAsGivenConflictFails(t *testing.T) {
	g := newGrid(4)
	defer g.Release()
	require.NoError(t, g.SetAsGivenRaw(0, 3))
	err := g.SetAsGivenRaw(0, 2)
	assert.ErrorIs(t, err, cellgrid.ErrIncompatibleGiven)
}

func TestApplyPencilMarksIntersects(t *testing.T) {
	g := newGrid(4)
	defer g.Release()
	_, changed := g.ApplyPencilMarksRaw(0, 0b0011)
	assert.True(t, changed)
	assert.Equal(t, uint64(0b0011), g.CandidateMask(0))

	_, changed = g.ApplyPencilMarksRaw(0, 0b0011)
	assert.False(t, changed, "reapplying the same mask changes nothing")
}

func TestCloneIsIndependent(t *testing.T) {
	g := newGrid(4)
	defer g.Release()
	clone := g.Clone()
	defer clone.Release()

	require.NoError(t, clone.SetAsGivenRaw(0, 1))
	assert.False(t, g.IsGiven(0), "mutating the clone must not affect the original")
}

func TestFindUnassignedLocationPrefersFewestCandidates(t *testing.T) {
	g := newGrid(4)
	defer g.Release()
	g.ApplyPencilMarksRaw(0, 0b0111) // 3 candidates
	g.ApplyPencilMarksRaw(1, 0b0011) // 2 candidates: should win

	cell := g.FindUnassignedLocation(0)
	assert.Equal(t, 1, cell)
}

func TestFindUnassignedLocationSkipsGiven(t *testing.T) {
	g := newGrid(4)
	defer g.Release()
	require.NoError(t, g.SetAsGivenRaw(0, 1))
	cell := g.FindUnassignedLocation(0)
	assert.NotEqual(t, 0, cell)
}
