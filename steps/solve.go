package steps

import (
	"runtime"
	"time"

	"github.com/sudokubig/bigsolver/search"
	"github.com/sudokubig/bigsolver/status"
)

const yieldInterval = 100 * time.Millisecond

// SolveResult is the outcome of LogicalSolve.
type SolveResult struct {
	Descs     []string
	Status    status.Status
	Cancelled bool
}

// LogicalSolve calls LogicalStep repeatedly, collecting every trace
// line, until no heuristic fires, one reports INVALID, or cancel fires.
// Suspension happens at the same 100ms cadence as the search driver's
// cooperative yield.
func (d *Dispatcher) LogicalSolve(root *search.Snapshot, cancel search.CancelFunc) SolveResult {
	var descs []string
	lastYield := time.Now()

	for {
		if time.Since(lastYield) >= yieldInterval {
			lastYield = time.Now()
			runtime.Gosched()
			if cancel != nil && cancel() {
				return SolveResult{Descs: descs, Cancelled: true}
			}
		}

		res := d.LogicalStep(root, nil)
		switch res.Status {
		case status.Invalid:
			return SolveResult{Descs: descs, Status: status.Invalid}
		case status.Cancelled:
			return SolveResult{Descs: descs, Cancelled: true}
		case status.Unchanged:
			changed := status.Unchanged
			if len(descs) > 0 {
				changed = status.Changed
			}
			return SolveResult{Descs: descs, Status: changed}
		case status.Changed:
			descs = append(descs, res.Desc)
		}
	}
}
