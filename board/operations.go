package board

import (
	"time"

	"github.com/sudokubig/bigsolver/search"
	"github.com/sudokubig/bigsolver/status"
	"github.com/sudokubig/bigsolver/steps"
)

// FindSolutionOptions configures FindSolution.
type FindSolutionOptions struct {
	Random             bool
	AllowPreprocessing bool
	EnableStats        bool
}

// FindSolutionResult is the outcome of FindSolution.
type FindSolutionResult struct {
	Solution   *Solution
	NoSolution bool
	Cancelled  bool
	Stats      Stats
}

// Solution is a read-only view of one satisfying assignment, the result
// of handing a search.Snapshot back across the board boundary without
// leaking package search's types.
type Solution struct {
	n    int
	snap *search.Snapshot
}

// N returns the puzzle's side length.
func (s *Solution) N() int { return s.n }

// Value returns the 1-based value placed in cell, row-major.
func (s *Solution) Value(cell int) int { return s.snap.Grid.GivenValue(cell) }

// Release returns the solution's pooled resources. Callers must not use
// s after calling Release.
func (s *Solution) Release() { s.snap.Release() }

// FindSolution runs the search to the first solution, a proof of
// unsatisfiability, or cancellation. A board
// whose InvalidInit is already true short-circuits without entering the
// search loop.
func (b *Board) FindSolution(opts FindSolutionOptions, cancel search.CancelFunc) FindSolutionResult {
	if b.invalidInit {
		b.log.Debug("findSolution short-circuit: invalid init")
		return FindSolutionResult{NoSolution: true}
	}

	start := time.Now()
	driver := search.NewDriver(b.root.Clone())
	if opts.EnableStats {
		driver.EnableStats()
	}

	res := driver.FindSolution(search.Options{Random: opts.Random, AllowPreprocessing: opts.AllowPreprocessing}, cancel)
	out := FindSolutionResult{NoSolution: res.NoSolution, Cancelled: res.Cancelled}
	if opts.EnableStats {
		out.Stats = Stats{
			Guesses:     driver.GuessCount(),
			Backtracks:  driver.BacktrackCount(),
			BranchSwaps: driver.BranchSwapCount(),
			Duration:    time.Since(start),
		}
	}
	if res.Board != nil {
		out.Solution = &Solution{n: b.N(), snap: res.Board}
	}
	b.log.Debug("findSolution done", "noSolution", res.NoSolution, "cancelled", res.Cancelled)
	return out
}

// CountSolutionsOptions configures CountSolutions.
type CountSolutionsOptions struct {
	Max                int
	AllowPreprocessing bool
	EnableStats        bool
	SolutionCb         func(*Solution)
	ReportCb           func(Progress)
}

// CountSolutionsResult is the outcome of CountSolutions.
type CountSolutionsResult struct {
	Count     int
	Cancelled bool
	Stats     Stats
}

// CountSolutions enumerates solutions up to opts.Max (0 meaning
// unbounded), reporting each one through opts.SolutionCb.
func (b *Board) CountSolutions(opts CountSolutionsOptions, cancel search.CancelFunc) CountSolutionsResult {
	if b.invalidInit {
		return CountSolutionsResult{}
	}

	start := time.Now()
	driver := search.NewDriver(b.root.Clone())
	if opts.EnableStats {
		driver.EnableStats()
	}

	lastReport := time.Now()
	solutionCb := func(snap *search.Snapshot) {
		if opts.SolutionCb != nil {
			opts.SolutionCb(&Solution{n: b.N(), snap: snap})
		}
	}
	reportCb := func(count int) {
		if opts.ReportCb == nil {
			return
		}
		if time.Since(lastReport) < 100*time.Millisecond {
			return
		}
		lastReport = time.Now()
		opts.ReportCb(Progress{Done: count, Elapsed: time.Since(start)})
	}

	res := driver.CountSolutions(opts.Max, solutionCb, reportCb, cancel)
	out := CountSolutionsResult{Count: res.Count, Cancelled: res.Cancelled}
	if opts.EnableStats {
		out.Stats = Stats{
			Guesses:     driver.GuessCount(),
			Backtracks:  driver.BacktrackCount(),
			BranchSwaps: driver.BranchSwapCount(),
			Duration:    time.Since(start),
		}
	}
	return out
}

// CalcTrueCandidatesResult is the outcome of CalcTrueCandidates.
type CalcTrueCandidatesResult struct {
	TrueCandidates []uint64
	Counts         [][]int
	NoSolution     bool
	Cancelled      bool
}

// CalcTrueCandidates enumerates solutions to discover, for every cell,
// the set of values that can appear in some solution.
func (b *Board) CalcTrueCandidates(maxPerCand int, progressCb func(Progress), cancel search.CancelFunc) CalcTrueCandidatesResult {
	if b.invalidInit {
		return CalcTrueCandidatesResult{NoSolution: true}
	}

	start := time.Now()
	driver := search.NewDriver(b.root.Clone())

	var cb func(done, total int)
	if progressCb != nil {
		cb = func(done, total int) {
			progressCb(Progress{Done: done, Elapsed: time.Since(start)})
		}
	}

	res := driver.CalcTrueCandidates(maxPerCand, cb, cancel)
	return CalcTrueCandidatesResult{
		TrueCandidates: res.TrueCandidates,
		Counts:         res.Counts,
		NoSolution:     res.NoSolution,
		Cancelled:      res.Cancelled,
	}
}

// LogicalStepResult is the outcome of LogicalStep.
type LogicalStepResult struct {
	Desc      string
	Status    status.Status
	Cancelled bool
}

// LogicalStep runs the logical-step dispatcher once against the board's
// live state. Unlike the search operations, this mutates the board's
// own root snapshot in place: each call advances the board's own
// deduction state rather than forking a disposable clone, treating the
// board as a persistent, incrementally-steppable puzzle.
func (b *Board) LogicalStep(cancel search.CancelFunc) LogicalStepResult {
	res := b.dispatcher().LogicalStep(b.root, cancel)
	if res.Status == status.Invalid {
		b.invalidInit = true
	}
	return LogicalStepResult{Desc: res.Desc, Status: res.Status, Cancelled: res.Status == status.Cancelled}
}

// LogicalSolveResult is the outcome of LogicalSolve.
type LogicalSolveResult struct {
	Descs            []string
	LogicallyInvalid bool
	CancelledPartial bool
	Changed          bool
}

// LogicalSolve calls LogicalStep repeatedly against the board's live
// state until no heuristic fires, one reports a contradiction, or
// cancel fires.
func (b *Board) LogicalSolve(cancel search.CancelFunc) LogicalSolveResult {
	res := b.dispatcher().LogicalSolve(b.root, cancel)
	if res.Status == status.Invalid {
		b.invalidInit = true
		return LogicalSolveResult{Descs: res.Descs, LogicallyInvalid: true}
	}
	if res.Cancelled {
		return LogicalSolveResult{Descs: res.Descs, CancelledPartial: true}
	}
	return LogicalSolveResult{Descs: res.Descs, Changed: res.Status == status.Changed}
}

func (b *Board) dispatcher() *steps.Dispatcher {
	peersOf := func(cell int) []int {
		var peers []int
		for _, region := range b.regions {
			found := false
			for _, c := range region {
				if c == cell {
					found = true
					break
				}
			}
			if !found {
				continue
			}
			for _, c := range region {
				if c != cell {
					peers = append(peers, c)
				}
			}
		}
		return peers
	}
	d := steps.NewDefaultDispatcher(b.regions, peersOf)
	for _, name := range b.allowedSteps {
		d.Allow(name)
	}
	return d
}
