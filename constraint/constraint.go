package constraint

import (
	"github.com/sudokubig/bigsolver/big"
	"github.com/sudokubig/bigsolver/status"
)

// Host is the narrow view of a board a Constraint is allowed to touch:
// its cell grid (through the methods constraints need to read and punch
// candidates) and its Binary Implication Layered Graph layer. Defined
// here rather than depending on package board directly, the same way
// big.GridView keeps package big decoupled from package cellgrid.
type Host interface {
	// N returns the puzzle's symbol count / side length.
	N() int
	// NumCells returns N*N.
	NumCells() int
	// HasCandidate reports whether value is still a candidate of cell.
	HasCandidate(cell, value int) bool
	// IsGivenTo reports whether cell is solved to value.
	IsGivenTo(cell, value int) bool
	// EliminateCandidate removes value from cell's candidates, routed
	// through the host so the resulting elimination is queued for
	// propagation rather than applied silently.
	// Returns whether anything changed.
	EliminateCandidate(cell, value int) bool
	// Graph returns the board's current BIG layer, for constraints that
	// derive or consult binary implications directly.
	Graph() *big.BIG
}

// InitResult is what Init reports about the constraint's starting state:
// whether construction-time propagation already found a contradiction,
// plus an opaque payload the constraint may want threaded back into
// later PreprocessingStep calls.
type InitResult struct {
	Status  status.Status
	Payload any
}

// Constraint is the one interface the propagation core (packages
// propagate, search, preprocess) uses to consult a puzzle-specific rule
// without knowing its semantics — killer cages, arrows, thermometers,
// and the like are all, deliberately, out of scope here; this
// package only defines the vtable they would plug into.
//
// A small, stable method set objects are expected to satisfy,
// generalized with the clone/release lifecycle a per-board,
// copy-on-write constraint needs when package board forks a sub-board.
type Constraint interface {
	// Init registers the constraint's own starting implications (if any)
	// against host's graph and reports whether that alone produces a
	// contradiction.
	Init(host Host) (InitResult, error)

	// Enforce is called when cell is newly given to value: the
	// constraint may eliminate other candidates in response. Returns
	// false if doing so discovers a contradiction (some other cell's
	// mask would go empty).
	Enforce(host Host, cell, value int) bool

	// EnforceCandidateElim is called when value is merely eliminated
	// (not necessarily assigned) from cell's candidates: weaker than
	// Enforce, used by constraints whose rule fires on eliminations
	// alone.
	EnforceCandidateElim(host Host, cell, value int) bool

	// BruteForceStep runs one pass of the constraint's own brute-force
	// consistency check (e.g. recomputing a cage's remaining sum),
	// reporting whether it changed anything, found a contradiction, or
	// left the board untouched.
	BruteForceStep(host Host) status.Status

	// PreprocessingStep runs one pass of whatever expensive,
	// amortizable precomputation the constraint wants to perform only
	// once per board family, returning an updated opaque
	// payload to carry into the next call.
	PreprocessingStep(host Host) (status.Status, any)

	// Clone returns an independent copy of this constraint's own state,
	// for use against a forked sub-board. Implementations
	// whose state is immutable may return themselves.
	Clone() Constraint

	// Release returns any pooled resources the constraint holds. Called
	// when the board owning it is discarded.
	Release()
}
