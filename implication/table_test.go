package implication_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudokubig/bigsolver/bitset"
	"github.com/sudokubig/bigsolver/implication"
	"github.com/sudokubig/bigsolver/literal"
)

func TestAddImplicationContrapositive(t *testing.T) {
	tbl := implication.NewTable(10, implication.NewClock())
	a := literal.Pos(1)
	b := literal.Pos(2)

	added := tbl.AddImplication(a, b)
	require.True(t, added)
	assert.True(t, tbl.HasImplication(a, b))
	assert.True(t, tbl.HasImplication(literal.Negate(b), literal.Negate(a)),
		"contrapositive must be present (invariant 1)")
}

func TestAddImplicationDuplicateReturnsFalse(t *testing.T) {
	tbl := implication.NewTable(10, implication.NewClock())
	a, b := literal.Pos(1), literal.Pos(2)
	require.True(t, tbl.AddImplication(a, b))
	assert.False(t, tbl.AddImplication(a, b), "re-adding an existing edge must be a no-op")
}

func TestClockStrictlyMonotonic(t *testing.T) {
	clock := implication.NewClock()
	tbl := implication.NewTable(10, clock)
	tbl.AddImplication(literal.Pos(1), literal.Pos(2))
	ts1 := tbl.LastUpdatedAt(literal.Pos(1), true)
	tbl.AddImplication(literal.Pos(1), literal.Pos(3))
	ts2 := tbl.LastUpdatedAt(literal.Pos(1), true)
	assert.Greater(t, ts2, ts1)
}

func TestConsequentsSortedAndDedupedAfterSortGraph(t *testing.T) {
	tbl := implication.NewTable(10, implication.NewClock())
	a := literal.Pos(1)
	tbl.AddImplication(a, literal.Pos(5))
	tbl.AddImplication(a, literal.Pos(2))
	tbl.AddImplication(a, literal.Pos(8))

	tbl.SortGraph()
	got := tbl.PosConsequents(a)
	assert.Equal(t, bitset.Seq{2, 5, 8}, got)
}

func TestUnsafeRemoveRemovesBothDirections(t *testing.T) {
	tbl := implication.NewTable(10, implication.NewClock())
	a, b := literal.Pos(1), literal.Pos(2)
	tbl.AddImplication(a, b)
	tbl.UnsafeRemoveImplication(a, b)
	assert.False(t, tbl.HasImplication(a, b))
	assert.False(t, tbl.HasImplication(literal.Negate(b), literal.Negate(a)))
}

func TestBatchedPosImplications(t *testing.T) {
	tbl := implication.NewTable(20, implication.NewClock())
	a := literal.Pos(1)
	tbl.AddPosImplicationsBatched(a, bitset.Seq{3, 5, 9})

	assert.Equal(t, bitset.Seq{3, 5, 9}, tbl.PosConsequents(a))
	assert.True(t, tbl.HasImplication(a, literal.Pos(3)))
	assert.True(t, tbl.HasImplication(literal.Neg(5), literal.Negate(a)))
}

func TestBatchedNegImplications(t *testing.T) {
	tbl := implication.NewTable(20, implication.NewClock())
	a := literal.Neg(1)
	tbl.AddNegImplicationsBatched(a, bitset.Seq{4, 6})

	assert.Equal(t, bitset.Seq{4, 6}, tbl.NegConsequents(a))
	assert.True(t, tbl.HasImplication(a, literal.Neg(4)))
	assert.True(t, tbl.HasImplication(literal.Pos(6), literal.Negate(a)))
}

func TestNegNegConsequentsViaPosPosContrapositive(t *testing.T) {
	// a(-) ⇒ b(-)  contrapositive  ¬b(+) ⇒ ¬a(+)
	tbl := implication.NewTable(10, implication.NewClock())
	a, b := literal.Neg(1), literal.Neg(2)
	tbl.AddImplication(a, b)
	assert.Contains(t, tbl.NegConsequents(a), int32(2))
	assert.Contains(t, tbl.PosConsequents(literal.Pos(2)), int32(1))
}
