package big

import (
	"github.com/sudokubig/bigsolver/bitset"
	"github.com/sudokubig/bigsolver/literal"
)

// ClauseVariable returns the pseudo-variable encoding "the value lies
// within mask" for clause ci. mask must be a non-empty subset of
// {0, ..., Width(ci)-1}.
func (b *BIG) ClauseVariable(ci int, mask uint32) literal.Variable {
	return b.clauses[ci].PseudoVar(mask)
}

// rebuildClauseLUTs rebuilds the clause-forcing LUT for every registered
// clause.
func (b *BIG) rebuildClauseLUTs() {
	for ci := range b.clauses {
		b.rebuildClauseLUT(ci)
	}
}

func (b *BIG) rebuildClauseLUT(ci int) {
	c := b.clauses[ci]
	state := b.lut[ci]
	k := c.Width()

	if !b.IsRoot() && !b.clauseActiveAtTop(c) {
		return // step 1: skip unless root or this layer touches one of its literals
	}

	changed := false
	for i, lit := range c.Literals {
		ts := b.lastUpdatedAt(lit, true)
		if nts := b.lastUpdatedAt(lit, false); nts > ts {
			ts = nts
		}
		if ts > state.literalAtTS[i] {
			changed = true
			state.literalAtTS[i] = ts
		}
	}
	if !changed {
		return
	}

	for popcount := 1; popcount <= k; popcount++ {
		anyNonEmpty := false
		for _, mask := range masksOfPopcount(k, popcount) {
			var posSet, negSet bitset.Seq
			if popcount == 1 {
				i := bitset.LowestBitIndex(uint64(mask))
				lit := c.Literals[i]
				posSet = append(bitset.Seq(nil), b.getConsequences(lit, true)...)
				negSet = append(bitset.Seq(nil), b.getConsequences(lit, false)...)
			} else {
				first := uint32(bitset.LowestBit(uint64(mask)))
				rest := mask &^ first
				posSet = bitset.Intersect(state.pos[first], state.pos[rest])
				negSet = bitset.Intersect(state.neg[first], state.neg[rest])

				pseudo := literal.Pos(c.PseudoVar(mask))
				posSet, _ = bitset.FilterOut(append(bitset.Seq(nil), posSet...), b.parentConsequents(pseudo, true), nil)
				negSet, _ = bitset.FilterOut(append(bitset.Seq(nil), negSet...), b.parentConsequents(pseudo, false), nil)
			}
			state.pos[mask] = posSet
			state.neg[mask] = negSet

			if len(posSet) > 0 || len(negSet) > 0 {
				anyNonEmpty = true
				b.wireClauseMask(c, mask, posSet, negSet)
			}
		}
		if !anyNonEmpty {
			break // stop scanning at a popcount level where no intersection was non-empty
		}
	}

	if b.IsRoot() {
		b.wireComplementPairs(c, state, k)
	}

	state.rebuiltAt = b.clock.Now()
}

// wireClauseMask materializes the LUT entry for mask as real graph edges
// out of the clause's pseudo-variable, so that a subsequent
// getPos/NegConsequences on ClauseVariable(ci, mask) already includes
// every forced literal without this package's callers needing to consult
// a separate cache.
func (b *BIG) wireClauseMask(c Clause, mask uint32, posSet, negSet bitset.Seq) {
	pseudo := literal.Pos(c.PseudoVar(mask))
	newPos, _ := bitset.FilterOut(append(bitset.Seq(nil), posSet...), b.self.PosConsequents(pseudo), nil)
	if len(newPos) > 0 {
		b.self.AddPosImplicationsBatched(pseudo, newPos)
	}
	newNeg, _ := bitset.FilterOut(append(bitset.Seq(nil), negSet...), b.self.NegConsequents(pseudo), nil)
	if len(newNeg) > 0 {
		b.self.AddNegImplicationsBatched(pseudo, newNeg)
	}
}

// wireComplementPairs adds the root-only summary edge S+m⇒¬(S+complement)
// for every complementary pair with non-empty forcing sets on both sides.
func (b *BIG) wireComplementPairs(c Clause, state *clauseLUTState, k int) {
	full := uint32(1)<<uint(k) - 1
	for mask := uint32(1); mask < full; mask++ {
		comp := full &^ mask
		if mask >= comp {
			continue // each pair considered once
		}
		leftNonEmpty := len(state.pos[mask]) > 0 || len(state.neg[mask]) > 0
		rightNonEmpty := len(state.pos[comp]) > 0 || len(state.neg[comp]) > 0
		if !leftNonEmpty || !rightNonEmpty {
			continue
		}
		b.self.AddImplication(literal.Pos(c.PseudoVar(mask)), literal.Neg(c.PseudoVar(comp)))
	}
}

// clauseActiveAtTop reports whether any literal of c has implications
// recorded at this layer's own table.
func (b *BIG) clauseActiveAtTop(c Clause) bool {
	for _, lit := range c.Literals {
		if len(b.self.PosConsequents(lit)) > 0 || len(b.self.NegConsequents(lit)) > 0 {
			return true
		}
	}
	return false
}

// parentConsequents returns the union of every parent layer's consequents
// of lit (pos/neg selected), used to avoid wiring an edge this layer's
// AddImplication would reject anyway because a parent already has it.
func (b *BIG) parentConsequents(lit literal.Literal, pos bool) bitset.Seq {
	var out bitset.Seq
	for _, p := range b.parents {
		var s bitset.Seq
		if pos {
			s = p.PosConsequents(lit)
		} else {
			s = p.NegConsequents(lit)
		}
		if len(s) > 0 {
			out = bitset.ExtendSorted(out, s...)
		}
	}
	return out
}

// masksOfPopcount returns every mask in [1, 2^k) with exactly popcount
// set bits among the low k bits, ascending.
func masksOfPopcount(k, popcount int) []uint32 {
	var out []uint32
	full := uint32(1)<<uint(k) - 1
	for mask := uint32(1); mask <= full; mask++ {
		if bitset.PopCount(uint64(mask)) == popcount {
			out = append(out, mask)
		}
	}
	return out
}
