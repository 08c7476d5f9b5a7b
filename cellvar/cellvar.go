// Package cellvar encodes the narrow (cellIndex, value) ↔ Variable mapping
// shared by every package that talks about cell-value variables (N*N*N
// cell-value variables, indexed cellIndex*N + (value-1)), so that
// package big, package cellgrid, package constraint, and package
// propagate agree on one encoding without importing each other.
package cellvar

import "github.com/sudokubig/bigsolver/literal"

// Encode returns the variable identifying "cell cellIndex holds value" for
// an N-symbol puzzle (value is 1-based).
func Encode(n, cellIndex, value int) literal.Variable {
	return literal.Variable(cellIndex*n + (value - 1))
}

// Decode reverses Encode, returning the 0-based cell index and 1-based
// value for a cell-value variable.
func Decode(n int, v literal.Variable) (cellIndex, value int) {
	iv := int(v)
	return iv / n, iv%n + 1
}

// CellValueCount returns N·N·N, the number of cell-value variables for an
// N-symbol, N·N-cell puzzle — the first free pseudo-variable id.
func CellValueCount(n int) int {
	return n * n * n
}
