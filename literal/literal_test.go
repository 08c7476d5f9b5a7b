package literal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sudokubig/bigsolver/literal"
)

func TestVarRoundTrip(t *testing.T) {
	for _, v := range []literal.Variable{0, 1, 42, 1000} {
		assert.Equal(t, v, literal.Var(literal.Pos(v)))
		assert.Equal(t, v, literal.Var(literal.Neg(v)))
	}
}

func TestIsPositive(t *testing.T) {
	v := literal.Variable(7)
	assert.True(t, literal.IsPositive(literal.Pos(v)))
	assert.False(t, literal.IsPositive(literal.Neg(v)))
}

func TestNegateInvolution(t *testing.T) {
	lit := literal.Pos(5)
	assert.Equal(t, lit, literal.Negate(literal.Negate(lit)))
	assert.NotEqual(t, lit, literal.Negate(lit))
}

func TestPolarityIndex(t *testing.T) {
	a, b := literal.Variable(1), literal.Variable(2)
	assert.Equal(t, literal.PosPos, literal.PolarityIndex(literal.Pos(a), literal.Pos(b)))
	assert.Equal(t, literal.PosNeg, literal.PolarityIndex(literal.Pos(a), literal.Neg(b)))
	assert.Equal(t, literal.NegPos, literal.PolarityIndex(literal.Neg(a), literal.Pos(b)))
	assert.Equal(t, literal.NegNeg, literal.PolarityIndex(literal.Neg(a), literal.Neg(b)))
}
