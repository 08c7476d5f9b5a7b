package board

import "github.com/sudokubig/bigsolver/constraint"

// ConstraintFactory builds a Constraint from a board and its declared
// parameters: a registry mapping name -> factory(board, params) ->
// Constraint. Concrete constraint implementations are out of scope;
// the registry only gives the core a place to look one up by name.
type ConstraintFactory func(b *Board, params map[string]interface{}) (constraint.Constraint, error)

// ConstraintRegistry maps a constraint descriptor's Name to its factory.
type ConstraintRegistry map[string]ConstraintFactory
