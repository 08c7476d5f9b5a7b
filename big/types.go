package big

import (
	"github.com/sudokubig/bigsolver/bitset"
	"github.com/sudokubig/bigsolver/implication"
	"github.com/sudokubig/bigsolver/literal"
)

// ClauseSpec is the caller-supplied description of one exactly-one
// clause: the literals of which exactly one is true in every solution.
// Width is len(Literals).
type ClauseSpec struct {
	Literals []literal.Literal
}

// Clause is a registered exactly-one clause: its original literals plus
// the starting pseudo-variable of its 2^k-wide subset-bitmask block.
type Clause struct {
	Literals []literal.Literal
	Start    literal.Variable
}

// Width returns k, the number of literals in the clause.
func (c Clause) Width() int { return len(c.Literals) }

// PseudoVar returns the pseudo-variable encoding "the value lies within
// subset mask" for a non-empty mask ⊆ {0, ..., Width()-1}.
func (c Clause) PseudoVar(mask uint32) literal.Variable {
	return c.Start + literal.Variable(mask)
}

// prunedSet is the shared, family-wide set of literals known impossible
// at the root from the initial grid.
// Shared by pointer across every layer of one BIG family, the same way
// Clock is, since pruning reflects the root puzzle's givens, not any one
// layer's local state.
type prunedSet struct {
	m map[literal.Literal]bool
}

func newPrunedSet() *prunedSet { return &prunedSet{m: make(map[literal.Literal]bool)} }

func (p *prunedSet) add(lit literal.Literal)        { p.m[lit] = true }
func (p *prunedSet) contains(lit literal.Literal) bool { return p.m[lit] }

// clauseLUTState tracks the clause-forcing LUT for one registered clause:
// per-mask forced-consequent sets, the clock value at which the clause's
// LUT was last rebuilt, and the per-literal consequent timestamps that
// let rebuildClauseLUT skip a clause none of whose literals changed.
type clauseLUTState struct {
	pos          map[uint32]bitset.Seq
	neg          map[uint32]bitset.Seq
	rebuiltAt    uint64
	literalAtTS  []uint64 // per-literal consequent timestamp observed at last rebuild
}

// BIG is one layer of the Binary Implication Layered Graph: its own
// mutable implication table plus the ordered, immutable parent tables it
// inherits from ancestor sub-boards.
type BIG struct {
	clock  *implication.Clock
	varCount int

	self    *implication.Table
	parents []*implication.Table

	clauses []Clause
	pruned  *prunedSet

	// closurePos/closureNeg hold this layer's own transitive-closure
	// cache, populated by Preprocess. Indexed by literal node (nodeIndex:
	// 2v for Pos(v), 2v+1 for Neg(v), pseudo-variables included), nil
	// until the first Preprocess call.
	closurePos []bitset.Seq
	closureNeg []bitset.Seq
	sccRecomputedAt uint64

	lut map[int]*clauseLUTState // index into clauses

	commonCache map[string]commonCacheEntry
}

type commonCacheEntry struct {
	result bitset.Seq
	ts     uint64
}

// NewBIG allocates the root layer for a puzzle with cellValueVarCount
// cell-value variables plus the
// pseudo-variable blocks required by specs (one per clause, sized 2^k).
// Each clause is registered via the singleton identifications S+2^i ⇔
// clause.Literals[i].
func NewBIG(cellValueVarCount int, specs []ClauseSpec) (*BIG, error) {
	clock := implication.NewClock()

	next := literal.Variable(cellValueVarCount)
	clauses := make([]Clause, len(specs))
	for i, spec := range specs {
		width := len(spec.Literals)
		if width == 0 {
			return nil, ErrEmptyClause
		}
		if width > 31 {
			return nil, ErrClauseTooWide
		}
		blockSize := literal.Variable(1 << uint(width))
		clauses[i] = Clause{Literals: append([]literal.Literal(nil), spec.Literals...), Start: next}
		next += blockSize
	}
	total := int(next)

	b := &BIG{
		clock:       clock,
		varCount:    total,
		self:        implication.NewTable(total, clock),
		clauses:     clauses,
		pruned:      newPrunedSet(),
		lut:         make(map[int]*clauseLUTState, len(clauses)),
		commonCache: make(map[string]commonCacheEntry),
	}

	for ci, c := range clauses {
		for i, lit := range c.Literals {
			pseudo := literal.Pos(c.PseudoVar(uint32(1) << uint(i)))
			b.self.AddImplication(pseudo, lit)
			b.self.AddImplication(lit, pseudo)
		}
		b.lut[ci] = &clauseLUTState{
			pos:         make(map[uint32]bitset.Seq),
			neg:         make(map[uint32]bitset.Seq),
			literalAtTS: make([]uint64, c.Width()),
		}
	}

	return b, nil
}

// VarCount returns the total number of variables (cell-value plus
// pseudo-variables) this BIG family was sized for.
func (b *BIG) VarCount() int { return b.varCount }

// Clauses returns the registered exactly-one clauses, in registration
// order. The returned slice must not be mutated.
func (b *BIG) Clauses() []Clause { return b.clauses }

// IsRoot reports whether this layer has no parent tables.
func (b *BIG) IsRoot() bool { return len(b.parents) == 0 }
