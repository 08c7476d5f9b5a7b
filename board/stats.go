package board

import "time"

// Stats accumulates per-run search statistics when a core operation is
// called with EnableStats set.
type Stats struct {
	Guesses     int
	Backtracks  int
	BranchSwaps int
	Duration    time.Duration
}

// Progress is what reportCb/progressCb callbacks receive: a
// monotonically increasing counter (solutions found, or search steps
// taken) plus elapsed wall time, at the same cooperative-yield cadence
// as cancellation checks.
type Progress struct {
	Done    int
	Elapsed time.Duration
}
