package board

import "errors"

// Sentinel errors for board construction and decoding.
var (
	// ErrInvalidSize indicates a non-positive N. NewBoard applies no
	// upper bound to N.
	ErrInvalidSize = errors.New("board: grid size must be positive")

	// ErrCellLoadConflict indicates a cell specified more than one of
	// value+given, givenPencilMarks, centerPencilMarks.
	ErrCellLoadConflict = errors.New("board: cell specifies more than one load mode")

	// ErrUnknownConstraint indicates a constraint descriptor's Name has
	// no matching factory in the registry passed to NewBoard.
	ErrUnknownConstraint = errors.New("board: unknown constraint name")

	// ErrDecodeConfig indicates mapstructure could not decode the raw
	// input into a Config.
	ErrDecodeConfig = errors.New("board: failed to decode config")
)
