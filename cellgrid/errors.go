package cellgrid

import "errors"

// Sentinel errors for cell grid operations.
var (
	// ErrCellIndexOutOfRange indicates a cell index outside [0, N*N).
	ErrCellIndexOutOfRange = errors.New("cellgrid: cell index out of range")

	// ErrValueOutOfRange indicates a value outside [1, N].
	ErrValueOutOfRange = errors.New("cellgrid: value out of range")

	// ErrIncompatibleGiven indicates SetAsGiven was called with a value
	// that conflicts with an already-given cell.
	ErrIncompatibleGiven = errors.New("cellgrid: cell already given to a different value")
)
