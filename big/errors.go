package big

import "errors"

// Sentinel errors for BIG construction and clause registration.
var (
	// ErrEmptyClause indicates a clause with zero literals was registered.
	ErrEmptyClause = errors.New("big: exactly-one clause must have at least one literal")

	// ErrClauseTooWide indicates a clause whose width would overflow the
	// 32-bit subset-bitmask encoding used by the clause-forcing LUT.
	ErrClauseTooWide = errors.New("big: clause width exceeds 31, bitmask encoding would overflow")

	// ErrNotRoot indicates an operation that is only valid on a non-root
	// layer (one with a parent, e.g. TransferImplicationToParent) was
	// invoked on the root layer.
	ErrNotRoot = errors.New("big: operation requires a parent layer, but this is the root layer")
)
