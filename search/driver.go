package search

import (
	"math/rand"
	"runtime"
	"time"

	"github.com/sudokubig/bigsolver/cellvar"
	"github.com/sudokubig/bigsolver/literal"
	"github.com/sudokubig/bigsolver/propagate"
	"github.com/sudokubig/bigsolver/status"
)

// yieldInterval bounds how long the driver runs before giving the host
// scheduler a chance to deliver cancellation.
const yieldInterval = 100 * time.Millisecond

// CancelFunc is consulted at every cooperative yield point; a true
// return aborts the search.
type CancelFunc func() bool

// Options configures one search run.
type Options struct {
	// Random selects a uniformly random candidate value at each branch
	// point instead of the deterministic lowest bit.
	Random bool
	// AllowPreprocessing runs a full BIG Preprocess pass (and the
	// binary-implication preprocessor, when wired by the caller) before
	// the first branch.
	AllowPreprocessing bool
}

// Result is the outcome of FindSolution.
type Result struct {
	Board      *Snapshot
	NoSolution bool
	Cancelled  bool
}

// Driver runs the depth-first search over a LIFO job stack of board
// snapshots. A Driver is single-use: construct a fresh one
// per search with NewDriver.
type Driver struct {
	stack []*Snapshot
	rng   *rand.Rand

	guessesSinceLastJumpBack int
	multiplier               float64

	statsEnabled bool
	guesses      int
	backtracks   int
	branchSwaps  int
}

// NewDriver seeds the search with root, the board's current (already
// propagated) state. The driver owns root's lifecycle from here on.
func NewDriver(root *Snapshot) *Driver {
	return &Driver{
		stack:      []*Snapshot{root},
		rng:        rand.New(rand.NewSource(1)),
		multiplier: 1,
	}
}

// EnableStats turns on guess/backtrack/branch-swap counting for this
// driver run, the way package board's enableStats option does for older
// search implementations that tracked these counters and ones that
// didn't.
func (d *Driver) EnableStats() { d.statsEnabled = true }

// GuessCount returns the number of branch guesses made so far.
func (d *Driver) GuessCount() int { return d.guesses }

// BacktrackCount returns the number of snapshots discarded as
// contradictory so far.
func (d *Driver) BacktrackCount() int { return d.backtracks }

// BranchSwapCount returns the number of branch-swap events so far.
func (d *Driver) BranchSwapCount() int { return d.branchSwaps }

func (d *Driver) push(snap *Snapshot) { d.stack = append(d.stack, snap) }

func (d *Driver) pop() *Snapshot {
	top := d.stack[len(d.stack)-1]
	d.stack = d.stack[:len(d.stack)-1]
	return top
}

func (d *Driver) releaseStack() {
	for _, snap := range d.stack {
		snap.Release()
	}
	d.stack = nil
}

// FindSolution runs the search to the first solution, a proof of
// unsatisfiability, or cancellation.
func (d *Driver) FindSolution(opts Options, cancel CancelFunc) Result {
	firstIteration := true
	lastYield := time.Now()

	for len(d.stack) > 0 {
		if d.shouldYield(&lastYield, cancel) {
			d.releaseStack()
			return Result{Cancelled: true}
		}

		snap := d.pop()
		isDepth0 := len(d.stack) == 0
		st := ApplyBruteForceLogic(snap, isDepth0, firstIteration && opts.AllowPreprocessing)
		firstIteration = false

		if st == status.Invalid {
			snap.Release()
			if d.statsEnabled {
				d.backtracks++
			}
			continue
		}
		if st == status.Complete {
			d.onSolved()
			d.releaseStack()
			return Result{Board: snap}
		}
		d.branch(snap, opts.Random)
	}
	return Result{NoSolution: true}
}

// CountResult is the outcome of CountSolutions.
type CountResult struct {
	Count     int
	Cancelled bool
}

// CountSolutions runs the same search loop as FindSolution but continues
// past every solution found, up to max (0 meaning unbounded), reporting
// each one through solutionCb.
func (d *Driver) CountSolutions(max int, solutionCb func(*Snapshot), reportCb func(count int), cancel CancelFunc) CountResult {
	count := 0
	firstIteration := true
	lastYield := time.Now()

	for len(d.stack) > 0 {
		if d.shouldYield(&lastYield, cancel) {
			d.releaseStack()
			return CountResult{Count: count, Cancelled: true}
		}

		snap := d.pop()
		isDepth0 := len(d.stack) == 0
		st := ApplyBruteForceLogic(snap, isDepth0, firstIteration)
		firstIteration = false

		if st == status.Invalid {
			snap.Release()
			if d.statsEnabled {
				d.backtracks++
			}
			continue
		}
		if st == status.Complete {
			count++
			d.onSolved()
			if solutionCb != nil {
				solutionCb(snap)
			}
			if reportCb != nil {
				reportCb(count)
			}
			snap.Release()
			if max > 0 && count >= max {
				d.releaseStack()
				return CountResult{Count: count}
			}
			continue
		}
		d.branch(snap, false)
	}
	return CountResult{Count: count}
}

// shouldYield checks whether yieldInterval has elapsed and, if so,
// yields to the scheduler and consults cancel; it reports whether the
// caller must abort.
func (d *Driver) shouldYield(lastYield *time.Time, cancel CancelFunc) bool {
	if time.Since(*lastYield) < yieldInterval {
		return false
	}
	*lastYield = time.Now()
	runtime.Gosched()
	return cancel != nil && cancel()
}

// onSolved decays the branch-swap multiplier on every completed
// solution, by /1.5, bounded below by 1.
func (d *Driver) onSolved() {
	d.multiplier /= 1.5
	if d.multiplier < 1 {
		d.multiplier = 1
	}
}

// branch performs one MRV branch step: it picks the unassigned cell with
// fewest candidates, clones the board, eliminates the chosen value in
// the clone, and assigns it in the original — pushing the clone first so
// the (deterministic or random) direct assignment is tried first.
func (d *Driver) branch(snap *Snapshot, random bool) {
	n := snap.Grid.N()
	cell := snap.Grid.FindUnassignedLocation(0)
	if cell < 0 {
		snap.Release() // no unassigned cell with >=2 candidates and not complete: dead end
		return
	}
	mask := snap.Grid.CandidateMask(cell)
	value := d.chooseValue(mask, random)

	clone := snap.Clone()
	cloneEngine := propagate.NewEngine(clone.Grid, clone.Graph, clone.Constraints)
	cloneEngine.BruteForce = true
	cloneEngine.ApplyAndPropagate([]literal.Literal{literal.Neg(cellvar.Encode(n, cell, value))}, nil)
	d.push(clone)

	snapEngine := propagate.NewEngine(snap.Grid, snap.Graph, snap.Constraints)
	snapEngine.BruteForce = true
	if st := snapEngine.ApplyAndPropagate(nil, []literal.Literal{literal.Pos(cellvar.Encode(n, cell, value))}); st != status.Invalid {
		d.push(snap)
	} else {
		snap.Release()
	}

	if d.statsEnabled {
		d.guesses++
	}
	d.guessesSinceLastJumpBack++
	d.maybeSwap()
}

// chooseValue returns the lowest candidate bit of mask, or a uniformly
// random one when random is true.
func (d *Driver) chooseValue(mask uint64, random bool) int {
	if !random {
		return lowestBitValue(mask)
	}
	candidates := make([]int, 0, 32)
	for v := 1; mask != 0; v++ {
		if mask&1 != 0 {
			candidates = append(candidates, v)
		}
		mask >>= 1
	}
	return candidates[d.rng.Intn(len(candidates))]
}

func lowestBitValue(mask uint64) int {
	v := 1
	for mask&1 == 0 {
		mask >>= 1
		v++
	}
	return v
}

// maybeSwap implements the branch-swap heuristic: once guessesSinceLastJumpBack exceeds
// 100*multiplier, the current top-of-stack subtree is demoted to the
// bottom so the driver works on other pending branches first, every
// remaining snapshot is flagged for a full brute-force pass the next
// time it reaches depth 0, and the multiplier grows by x1.5.
func (d *Driver) maybeSwap() {
	threshold := 100 * d.multiplier
	if float64(d.guessesSinceLastJumpBack) <= threshold {
		return
	}
	if len(d.stack) > 0 {
		top := d.stack[len(d.stack)-1]
		d.stack = d.stack[:len(d.stack)-1]
		d.stack = append([]*Snapshot{top}, d.stack...)
	}
	for _, snap := range d.stack {
		snap.NeedsExpensiveBruteForceSteps = true
	}
	if d.statsEnabled {
		d.branchSwaps++
	}
	d.guessesSinceLastJumpBack = 0
	d.multiplier *= 1.5
}
