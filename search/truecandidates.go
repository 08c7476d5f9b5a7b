package search

import (
	"time"

	"github.com/sudokubig/bigsolver/status"
)

// TrueCandidatesResult is the outcome of CalcTrueCandidates.
type TrueCandidatesResult struct {
	// TrueCandidates holds, for each cell, the bitmask of values that
	// appeared in at least one enumerated solution.
	TrueCandidates []uint64
	// Counts holds, for each cell and value (indexed [cell][value-1]),
	// how many enumerated solutions had that value — populated only
	// when the caller asked for per-candidate counts (maxPerCand > 1).
	Counts     [][]int
	NoSolution bool
	Cancelled  bool
}

// CalcTrueCandidates enumerates solutions to discover, for every cell,
// the set of values that can appear in *some* solution. It tracks interesting candidates — those whose
// per-candidate solution count has not yet reached maxPerCand — and
// prunes branches once no cell's mask still contains one.
//
// This is a simplified rendition of a frontier-pruning search: it
// reuses the same DFS loop as CountSolutions rather than a bespoke
// interesting-candidate-aware branch order, trading some possible
// pruning aggressiveness for reuse of one well-tested traversal. See
// the design ledger for the tradeoff.
func (d *Driver) CalcTrueCandidates(maxPerCand int, progressCb func(done, total int), cancel CancelFunc) TrueCandidatesResult {
	if maxPerCand < 1 {
		maxPerCand = 1
	}
	n := 0
	if len(d.stack) > 0 {
		n = d.stack[0].Grid.N()
	}
	numCells := n * n

	trueCandidates := make([]uint64, numCells)
	var counts [][]int
	if maxPerCand > 1 {
		counts = make([][]int, numCells)
		for i := range counts {
			counts[i] = make([]int, n)
		}
	}

	solutions := 0
	firstIteration := true
	lastYield := time.Now()
	lastProgress := time.Now()

	for len(d.stack) > 0 {
		if d.shouldYield(&lastYield, cancel) {
			d.releaseStack()
			return TrueCandidatesResult{Cancelled: true, TrueCandidates: trueCandidates, Counts: counts}
		}

		snap := d.pop()
		isDepth0 := len(d.stack) == 0
		st := ApplyBruteForceLogic(snap, isDepth0, firstIteration)
		firstIteration = false

		if st == status.Invalid {
			snap.Release()
			continue
		}
		if st == status.Complete {
			solutions++
			recordSolution(snap, trueCandidates, counts)
			d.onSolved()
			snap.Release()
			if progressCb != nil && time.Since(lastProgress) >= yieldInterval {
				lastProgress = time.Now()
				progressCb(solutions, 0)
			}
			if allCandidatesInteresting(counts, maxPerCand) {
				d.releaseStack()
				break
			}
			continue
		}
		d.branch(snap, false)
	}

	if solutions == 0 {
		return TrueCandidatesResult{NoSolution: true}
	}
	return TrueCandidatesResult{TrueCandidates: trueCandidates, Counts: counts}
}

func recordSolution(snap *Snapshot, trueCandidates []uint64, counts [][]int) {
	for cell := 0; cell < snap.Grid.NumCells(); cell++ {
		value := snap.Grid.GivenValue(cell)
		trueCandidates[cell] |= uint64(1) << uint(value-1)
		if counts != nil {
			counts[cell][value-1]++
		}
	}
}

// allCandidatesInteresting reports whether, once per-candidate counts
// are tracked, every observed candidate has reached maxPerCand: the
// stopping condition "stop when the frontier is empty."
func allCandidatesInteresting(counts [][]int, maxPerCand int) bool {
	if counts == nil {
		return false
	}
	for _, row := range counts {
		for _, c := range row {
			if c > 0 && c < maxPerCand {
				return false
			}
		}
	}
	return true
}
