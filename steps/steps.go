package steps

import (
	"github.com/sudokubig/bigsolver/preprocess"
	"github.com/sudokubig/bigsolver/propagate"
	"github.com/sudokubig/bigsolver/search"
	"github.com/sudokubig/bigsolver/status"
)

// Name identifies one registered heuristic.
type Name string

const (
	NameNakedSingle      Name = "naked_single"
	NameHiddenSingle     Name = "hidden_single"
	NamePairs            Name = "naked_pair"
	NameConstraintDeduce Name = "constraint_dispatch"
)

// Result is what one heuristic, or a full LogicalStep/LogicalSolve call,
// reports back: a status and a trace line describing what happened.
type Result struct {
	Status status.Status
	Desc   string
}

// Step is one named heuristic. AlwaysEnabled steps run regardless of
// the dispatcher's allow-list.
type Step struct {
	Name          Name
	AlwaysEnabled bool
	run           func(root *search.Snapshot) Result
}

// Dispatcher holds the ordered heuristic list plus whatever per-board
// context a heuristic needs (regions for hidden singles, a peer lookup
// for naked pairs).
type Dispatcher struct {
	steps   []Step
	allowed map[Name]bool
}

// NewDefaultDispatcher builds the dispatcher's standard step list:
// naked singles, hidden singles (over regions), naked pairs (over
// peersOf, optional), and the constraint dispatcher, in that order —
// cheapest and most broadly applicable deductions first.
func NewDefaultDispatcher(regions [][]int, peersOf func(cell int) []int) *Dispatcher {
	return &Dispatcher{
		steps: []Step{
			{
				Name:          NameNakedSingle,
				AlwaysEnabled: true,
				run: func(root *search.Snapshot) Result {
					return describeStatus(preprocess.ApplyNakedSingles(root), "naked single assigned")
				},
			},
			{
				Name:          NameHiddenSingle,
				AlwaysEnabled: true,
				run: func(root *search.Snapshot) Result {
					return describeStatus(preprocess.ApplyHiddenSingles(root, regions), "hidden single assigned")
				},
			},
			{
				Name: NamePairs,
				run: func(root *search.Snapshot) Result {
					return describeStatus(preprocess.ApplyPairs(root, peersOf), "naked pair cross-implications wired")
				},
			},
			{
				Name:          NameConstraintDeduce,
				AlwaysEnabled: true,
				run:           runConstraintDispatch,
			},
		},
		allowed: map[Name]bool{},
	}
}

// Allow enables an optional (non-always-enabled) step by name; it is a
// no-op for steps that are already always enabled.
func (d *Dispatcher) Allow(name Name) {
	d.allowed[name] = true
}

func (d *Dispatcher) isEnabled(step Step) bool {
	return step.AlwaysEnabled || d.allowed[step.Name]
}

// LogicalStep runs each enabled heuristic in order and returns the
// first whose status is not UNCHANGED.
func (d *Dispatcher) LogicalStep(root *search.Snapshot, cancel search.CancelFunc) Result {
	if cancel != nil && cancel() {
		return Result{Status: status.Cancelled}
	}
	for _, step := range d.steps {
		if !d.isEnabled(step) {
			continue
		}
		if res := step.run(root); res.Status != status.Unchanged {
			return res
		}
	}
	return Result{Status: status.Unchanged, Desc: "no heuristic fired"}
}

// runConstraintDispatch drives every registered constraint's
// PreprocessingStep through a scratch propagate.Engine, the narrow Host
// those hooks expect.
func runConstraintDispatch(root *search.Snapshot) Result {
	if len(root.Constraints) == 0 {
		return Result{Status: status.Unchanged}
	}
	engine := propagate.NewEngine(root.Grid, root.Graph, root.Constraints)
	engine.BruteForce = true
	for _, c := range root.Constraints {
		st, _ := c.PreprocessingStep(engine)
		if st == status.Invalid {
			return Result{Status: status.Invalid, Desc: "constraint dispatch found a contradiction"}
		}
		if st == status.Changed {
			return Result{Status: status.Changed, Desc: "constraint dispatch deduced a placement or elimination"}
		}
	}
	return Result{Status: status.Unchanged}
}

func describeStatus(st status.Status, changedDesc string) Result {
	if st == status.Invalid {
		return Result{Status: status.Invalid, Desc: changedDesc + ": contradiction found"}
	}
	if st == status.Changed {
		return Result{Status: status.Changed, Desc: changedDesc}
	}
	return Result{Status: status.Unchanged}
}
