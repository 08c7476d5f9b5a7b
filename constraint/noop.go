package constraint

import "github.com/sudokubig/bigsolver/status"

// NoOp is the zero-value Constraint: every hook is a pure pass-through.
// Package board does not insert it: a board with no puzzle-specific rule
// simply has an empty constraint list.
type NoOp struct{}

func (NoOp) Init(Host) (InitResult, error)              { return InitResult{Status: status.Unchanged}, nil }
func (NoOp) Enforce(Host, int, int) bool                { return true }
func (NoOp) EnforceCandidateElim(Host, int, int) bool    { return true }
func (NoOp) BruteForceStep(Host) status.Status           { return status.Unchanged }
func (NoOp) PreprocessingStep(Host) (status.Status, any) { return status.Unchanged, nil }
func (NoOp) Clone() Constraint                            { return NoOp{} }
func (NoOp) Release()                                     {}

var _ Constraint = NoOp{}
