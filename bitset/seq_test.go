package bitset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sudokubig/bigsolver/bitset"
)

func TestUnion(t *testing.T) {
	a := bitset.Seq{1, 3, 5}
	b := bitset.Seq{2, 3, 4}
	assert.Equal(t, bitset.Seq{1, 2, 3, 4, 5}, bitset.Union(a, b))
}

func TestIntersect(t *testing.T) {
	a := bitset.Seq{1, 2, 3, 4}
	b := bitset.Seq{2, 4, 6}
	assert.Equal(t, bitset.Seq{2, 4}, bitset.Intersect(a, b))
}

func TestIntersectDisjoint(t *testing.T) {
	a := bitset.Seq{1, 3}
	b := bitset.Seq{2, 4}
	assert.Empty(t, bitset.Intersect(a, b))
}

func TestDifference(t *testing.T) {
	a := bitset.Seq{1, 2, 3, 4}
	b := bitset.Seq{2, 4}
	assert.Equal(t, bitset.Seq{1, 3}, bitset.Difference(a, b))
}

func TestIntersects(t *testing.T) {
	assert.True(t, bitset.Intersects(bitset.Seq{1, 5, 9}, bitset.Seq{9, 10}))
	assert.False(t, bitset.Intersects(bitset.Seq{1, 5}, bitset.Seq{2, 6}))
}

func TestInsertDelete(t *testing.T) {
	s := bitset.Seq{1, 3, 5}
	s = bitset.Insert(s, 4)
	assert.Equal(t, bitset.Seq{1, 3, 4, 5}, s)

	// inserting an existing element is a no-op
	s = bitset.Insert(s, 4)
	assert.Equal(t, bitset.Seq{1, 3, 4, 5}, s)

	s = bitset.Delete(s, 3)
	assert.Equal(t, bitset.Seq{1, 4, 5}, s)

	// deleting an absent element is a no-op
	s = bitset.Delete(s, 99)
	assert.Equal(t, bitset.Seq{1, 4, 5}, s)
}

func TestContains(t *testing.T) {
	s := bitset.Seq{1, 4, 9, 16}
	assert.True(t, bitset.Contains(s, 9))
	assert.False(t, bitset.Contains(s, 10))
}

func TestFilterOut(t *testing.T) {
	s := bitset.Seq{1, 2, 3, 4, 5}
	filter := bitset.Seq{2, 4}
	removed := bitset.Seq{}
	out, removed := bitset.FilterOut(s, filter, removed)
	assert.Equal(t, bitset.Seq{1, 3, 5}, out)
	assert.Equal(t, bitset.Seq{2, 4}, removed)
}

func TestExtendSorted(t *testing.T) {
	s := bitset.Seq{5, 1, 1, 3}
	s = bitset.ExtendSorted(s, 2, 3, 0)
	assert.Equal(t, bitset.Seq{0, 1, 2, 3, 5}, s)
}

func TestPopCountAndBits(t *testing.T) {
	assert.Equal(t, 3, bitset.PopCount(0b1011))
	assert.Equal(t, []int{0, 1, 3}, bitset.Bits(0b1011, nil))
	assert.True(t, bitset.HasExactlyOneBit(0b1000))
	assert.False(t, bitset.HasExactlyOneBit(0b1100))
	assert.Equal(t, -1, bitset.LowestBitIndex(0))
	assert.Equal(t, 2, bitset.LowestBitIndex(0b1100))
}
