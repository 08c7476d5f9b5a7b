package propagate

import (
	"github.com/sudokubig/bigsolver/big"
	"github.com/sudokubig/bigsolver/bitset"
	"github.com/sudokubig/bigsolver/cellgrid"
	"github.com/sudokubig/bigsolver/cellvar"
	"github.com/sudokubig/bigsolver/constraint"
	"github.com/sudokubig/bigsolver/literal"
	"github.com/sudokubig/bigsolver/status"
)

// Engine holds the three eliminations/singles/cell-forcing worklists
// plus the board state they operate over. It implements constraint.Host
// itself, so a constraint's mid-propagation eliminations route back
// through the same queues a directly-pushed elimination would.
//
// The cell-forcing clause id for cell c is c itself: package board
// registers one exactly-one clause per cell, in cell-index order, ahead
// of any other clause, so pseudoLit = clauseIdAndMaskToVariable(cellIndex, M)
// always resolves against that convention.
type Engine struct {
	Grid        *cellgrid.Grid
	graph       *big.BIG
	Constraints []constraint.Constraint

	// BruteForce toggles naked-single inference and cell-forcing
	// scheduling. Outside brute force, only
	// immediate peer propagation fires.
	BruteForce bool

	elimQueue      []literal.Literal
	singleQueue    []literal.Literal
	forcingQueue   []int
	forcingPending []bool

	changed bool
	invalid bool
}

// NewEngine builds a propagation engine over grid/graph/constraints.
func NewEngine(grid *cellgrid.Grid, graph *big.BIG, constraints []constraint.Constraint) *Engine {
	return &Engine{
		Grid:           grid,
		graph:          graph,
		Constraints:    constraints,
		forcingPending: make([]bool, grid.NumCells()),
	}
}

// --- constraint.Host ---

func (e *Engine) N() int        { return e.Grid.N() }
func (e *Engine) NumCells() int { return e.Grid.NumCells() }

func (e *Engine) HasCandidate(cell, value int) bool { return e.Grid.HasCandidate(cell, value) }
func (e *Engine) IsGivenTo(cell, value int) bool    { return e.Grid.IsGivenTo(cell, value) }

// Graph returns the engine's BIG layer (constraint.Host).
func (e *Engine) Graph() *big.BIG { return e.graph }

// EliminateCandidate is constraint.Host's entry point for a
// constraint-driven elimination raised mid-propagation; it is routed
// through pushElim so it obeys the same ordering invariants as any other
// elimination.
func (e *Engine) EliminateCandidate(cell, value int) bool {
	n := e.Grid.N()
	before := e.Grid.HasCandidate(cell, value)
	e.pushElim(literal.Neg(cellvar.Encode(n, cell, value)))
	return before && !e.Grid.HasCandidate(cell, value)
}

// ApplyAndPropagate is the propagator's entry point: it
// seeds the elimination and single queues with initialElims/initialSingles,
// then drains them (plus, in brute-force mode, cell-forcing) to a fixed
// point.
func (e *Engine) ApplyAndPropagate(initialElims, initialSingles []literal.Literal) status.Status {
	e.changed = false
	e.invalid = false

	for _, lit := range initialElims {
		e.pushElim(lit)
		if e.invalid {
			return status.Invalid
		}
	}
	for _, lit := range initialSingles {
		e.pushSingle(lit)
		if e.invalid {
			return status.Invalid
		}
	}

	e.drain()
	if e.invalid {
		return status.Invalid
	}
	if e.changed {
		return status.Changed
	}
	return status.Unchanged
}

// SeedGivens threads already-placed puzzle givens (set directly on the
// grid by package board during construction, before any weak link or
// constraint was wired) through the board's now-complete weak-link graph
// and constraint set. Unlike ApplyAndPropagate, it trusts each lit's cell
// is already given to that value and skips pushSingle's own-cell peer
// elimination and given-bit write — it only enqueues lit for the normal
// drain loop, which performs the peer/constraint consequence walk
// (processSingle) exactly as it would for any other single.
func (e *Engine) SeedGivens(lits []literal.Literal) status.Status {
	e.changed = false
	e.invalid = false

	for _, lit := range lits {
		e.singleQueue = append(e.singleQueue, lit)
		cell, _ := cellvar.Decode(e.Grid.N(), literal.Var(lit))
		e.scheduleForcing(cell)
	}

	e.drain()
	if e.invalid {
		return status.Invalid
	}
	if e.changed {
		return status.Changed
	}
	return status.Unchanged
}

// drain runs the fixed priority loop: eliminations, then one single, then
// (brute-force only) one pending cell-forcing cell; repeat until all
// three are empty.
func (e *Engine) drain() {
	for {
		if len(e.elimQueue) > 0 {
			lit := e.elimQueue[0]
			e.elimQueue = e.elimQueue[1:]
			e.processElim(lit)
			if e.invalid {
				return
			}
			continue
		}
		if len(e.singleQueue) > 0 {
			lit := e.singleQueue[0]
			e.singleQueue = e.singleQueue[1:]
			e.processSingle(lit)
			if e.invalid {
				return
			}
			continue
		}
		if e.BruteForce && len(e.forcingQueue) > 0 {
			cell := e.forcingQueue[0]
			e.forcingQueue = e.forcingQueue[1:]
			e.forcingPending[cell] = false
			e.processCellForcing(cell)
			if e.invalid {
				return
			}
			continue
		}
		return
	}
}

// pushElim reduces cell's mask for value (invariant 2: the mask is
// reduced at push time, not at drain time) and enqueues lit for
// constraint notification, unless value was already eliminated.
func (e *Engine) pushElim(lit literal.Literal) {
	n := e.Grid.N()
	cell, value := cellvar.Decode(n, literal.Var(lit))
	if !e.Grid.HasCandidate(cell, value) {
		return // already eliminated: no new work
	}
	newMask, changed := e.Grid.EliminateCandidateRaw(cell, value)
	if !changed {
		return
	}
	e.changed = true
	if newMask == 0 {
		e.invalid = true
		return
	}
	e.elimQueue = append(e.elimQueue, lit)
	e.scheduleForcing(cell)

	if e.BruteForce && bitset.HasExactlyOneBit(newMask) {
		// Naked-single inference: brute-force
		// mode derives the forced assignment the moment a cell's mask
		// collapses to one candidate, rather than waiting for an
		// external caller to notice.
		singleValue := bitset.LowestBitIndex(newMask) + 1
		e.pushSingle(literal.Pos(cellvar.Encode(n, cell, singleValue)))
	}
}

// pushSingle reduces cell's mask to {value} and sets the given bit
// (invariant 2), first generating peer eliminations for the cell's other
// candidates so they are queued, and therefore drained, ahead of this
// single (invariant 1: eliminations always drain before any single is
// popped).
func (e *Engine) pushSingle(lit literal.Literal) {
	n := e.Grid.N()
	cell, value := cellvar.Decode(n, literal.Var(lit))

	if e.Grid.IsGivenTo(cell, value) {
		return // already given to this value: no new work
	}
	if e.Grid.IsGiven(cell) {
		e.invalid = true // given to a different value already: contradiction
		return
	}

	for v := 1; v <= n; v++ {
		if v == value {
			continue
		}
		if e.Grid.HasCandidate(cell, v) {
			e.pushElim(literal.Neg(cellvar.Encode(n, cell, v)))
			if e.invalid {
				return
			}
		}
	}

	if err := e.Grid.SetAsGivenRaw(cell, value); err != nil {
		e.invalid = true
		return
	}
	e.changed = true
	e.singleQueue = append(e.singleQueue, lit)
	e.scheduleForcing(cell)
}

// scheduleForcing marks cell pending for cell-forcing, at most once per
// quiet point, via forcingPending's dedup bitmap.
// A no-op outside brute-force mode.
func (e *Engine) scheduleForcing(cell int) {
	if !e.BruteForce || e.forcingPending[cell] {
		return
	}
	e.forcingPending[cell] = true
	e.forcingQueue = append(e.forcingQueue, cell)
}

// processElim invokes every constraint's EnforceCandidateElim for the
// just-eliminated (cell, value). Negative-literal propagation through the
// graph at this point is reserved and deliberately not implemented.
func (e *Engine) processElim(lit literal.Literal) {
	n := e.Grid.N()
	cell, value := cellvar.Decode(n, literal.Var(lit))
	for _, c := range e.Constraints {
		if !c.EnforceCandidateElim(e, cell, value) {
			e.invalid = true
			return
		}
	}
}

// processSingle looks up the just-assigned literal's positive and
// negative consequents in the BIG, enqueues the resulting singles and
// eliminations, and invokes every constraint's Enforce.
func (e *Engine) processSingle(lit literal.Literal) {
	n := e.Grid.N()
	cell, value := cellvar.Decode(n, literal.Var(lit))

	for _, v := range e.graph.GetPosConsequencesMasked(n, lit) {
		e.pushSingle(literal.Pos(literal.Variable(v)))
		if e.invalid {
			return
		}
	}
	for _, v := range e.graph.GetNegConsequencesMasked(n, lit) {
		e.pushElim(literal.Neg(literal.Variable(v)))
		if e.invalid {
			return
		}
	}

	for _, c := range e.Constraints {
		if !c.Enforce(e, cell, value) {
			e.invalid = true
			return
		}
	}
}

// processCellForcing computes cell's clause pseudo-variable under its
// current candidate mask and enqueues everything it forces: pop one
// cell, read its mask M, compute pseudoLit =
// clauseIdAndMaskToVariable(cellIndex, M), enqueue all pos/neg
// consequents. A cell with no registered clause (a graph built with
// fewer clauses than cells) gets no cell-forcing.
func (e *Engine) processCellForcing(cell int) {
	n := e.Grid.N()
	mask := e.Grid.CandidateMask(cell)
	if mask == 0 {
		e.invalid = true
		return
	}
	if cell >= len(e.graph.Clauses()) {
		return
	}
	pseudo := literal.Pos(e.graph.ClauseVariable(cell, uint32(mask)))

	for _, v := range e.graph.GetPosConsequencesMasked(n, pseudo) {
		e.pushSingle(literal.Pos(literal.Variable(v)))
		if e.invalid {
			return
		}
	}
	for _, v := range e.graph.GetNegConsequencesMasked(n, pseudo) {
		e.pushElim(literal.Neg(literal.Variable(v)))
		if e.invalid {
			return
		}
	}
}

var _ constraint.Host = (*Engine)(nil)
