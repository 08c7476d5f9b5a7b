package big

import (
	"sort"
	"strconv"
	"strings"

	"github.com/sudokubig/bigsolver/bitset"
	"github.com/sudokubig/bigsolver/cellvar"
	"github.com/sudokubig/bigsolver/literal"
)

// AddImplication adds a⇒b (and its contrapositive) to the top (self)
// table, unless any parent layer already has the edge — parents are
// immutable, so duplicating an inherited edge at this layer would only
// waste memory and risk the two copies drifting.
// Complexity: O(len(parents)) membership checks plus O(n) for the insert.
func (b *BIG) AddImplication(a, lit literal.Literal) bool {
	for _, p := range b.parents {
		if p.HasImplication(a, lit) {
			return false
		}
	}
	return b.self.AddImplication(a, lit)
}

// HasImplication reports whether a⇒b holds anywhere in this layer's
// visible graph: parents first, then
// this layer's own closure cache, then this layer's own top table.
func (b *BIG) HasImplication(a, lit literal.Literal) bool {
	for _, p := range b.parents {
		if p.HasImplication(a, lit) {
			return true
		}
	}
	if b.closurePos != nil {
		node := nodeIndex(a)
		target := literal.Var(lit)
		if literal.IsPositive(lit) {
			if bitset.Contains(b.closurePos[node], int32(target)) {
				return true
			}
		} else if bitset.Contains(b.closureNeg[node], int32(target)) {
			return true
		}
	}
	return b.self.HasImplication(a, lit)
}

// getConsequences merges top-level and every parent's consequents of lit
// (either positive or negative, selected by pos), with no further
// filtering — the "full" flavor of
// getPosConsequences/getNegConsequences, including pseudo-variables.
func (b *BIG) getConsequences(lit literal.Literal, pos bool) bitset.Seq {
	var top bitset.Seq
	if pos {
		top = b.self.PosConsequents(lit)
	} else {
		top = b.self.NegConsequents(lit)
	}
	out := append(bitset.Seq(nil), top...)
	for _, p := range b.parents {
		var s bitset.Seq
		if pos {
			s = p.PosConsequents(lit)
		} else {
			s = p.NegConsequents(lit)
		}
		if len(s) == 0 {
			continue
		}
		out = bitset.ExtendSorted(out, s...)
	}
	return out
}

// GetPosConsequencesFull returns every variable v (pseudo-variables
// included) such that lit⇒Pos(v) holds anywhere in this layer's visible
// graph.
func (b *BIG) GetPosConsequencesFull(lit literal.Literal) bitset.Seq {
	return b.getConsequences(lit, true)
}

// GetNegConsequencesFull returns every variable v (pseudo-variables
// included) such that lit⇒Neg(v) holds anywhere in this layer's visible
// graph.
func (b *BIG) GetNegConsequencesFull(lit literal.Literal) bitset.Seq {
	return b.getConsequences(lit, false)
}

// GetPosConsequencesMasked is GetPosConsequencesFull filtered to real
// cell-value variables — what constraint code consumes.
func (b *BIG) GetPosConsequencesMasked(n int, lit literal.Literal) bitset.Seq {
	return maskToCellVars(n, b.GetPosConsequencesFull(lit))
}

// GetNegConsequencesMasked is the negative counterpart of
// GetPosConsequencesMasked.
func (b *BIG) GetNegConsequencesMasked(n int, lit literal.Literal) bitset.Seq {
	return maskToCellVars(n, b.GetNegConsequencesFull(lit))
}

func maskToCellVars(n int, vars bitset.Seq) bitset.Seq {
	limit := int32(cellvar.CellValueCount(n))
	out := make(bitset.Seq, 0, len(vars))
	for _, v := range vars {
		if v < limit {
			out = append(out, v)
		}
	}
	return out
}

// GetCommonPosConsequences returns the intersection of the positive
// consequent sets of every literal in lits, memoized by the sorted literal list plus a
// polarity tag; the cache entry is invalidated if any input literal's
// update timestamp exceeds the entry's recorded timestamp.
func (b *BIG) GetCommonPosConsequences(lits []literal.Literal) bitset.Seq {
	return b.getCommonConsequences(lits, true)
}

// GetCommonNegConsequences is the negative counterpart of
// GetCommonPosConsequences.
func (b *BIG) GetCommonNegConsequences(lits []literal.Literal) bitset.Seq {
	return b.getCommonConsequences(lits, false)
}

func (b *BIG) getCommonConsequences(lits []literal.Literal, pos bool) bitset.Seq {
	if len(lits) == 0 {
		return nil
	}
	sorted := append([]literal.Literal(nil), lits...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	key := cacheKey(sorted, pos)

	maxTS := uint64(0)
	for _, lit := range sorted {
		ts := b.lastUpdatedAt(lit, pos)
		if ts > maxTS {
			maxTS = ts
		}
	}
	if entry, ok := b.commonCache[key]; ok && entry.ts >= maxTS {
		return entry.result
	}

	result := b.commonConsequencesRecursive(sorted, pos)
	b.commonCache[key] = commonCacheEntry{result: result, ts: maxTS}
	return result
}

// commonConsequencesRecursive computes the common-consequences recursion:
// base case k=1 returns the sorted consequents; inductive case intersects
// the tail's result with the head's.
func (b *BIG) commonConsequencesRecursive(lits []literal.Literal, pos bool) bitset.Seq {
	if len(lits) == 1 {
		return b.getConsequences(lits[0], pos)
	}
	tail := b.commonConsequencesRecursive(lits[1:], pos)
	head := b.getConsequences(lits[0], pos)
	return bitset.Intersect(head, tail)
}

// lastUpdatedAt returns the most recent timestamp at which lit's
// consequent adjacency (pos/neg selected) changed, across this layer and
// every parent.
func (b *BIG) lastUpdatedAt(lit literal.Literal, pos bool) uint64 {
	ts := b.self.LastUpdatedAt(lit, pos)
	for _, p := range b.parents {
		if t := p.LastUpdatedAt(lit, pos); t > ts {
			ts = t
		}
	}
	return ts
}

func cacheKey(sorted []literal.Literal, pos bool) string {
	var sb strings.Builder
	if pos {
		sb.WriteByte('+')
	} else {
		sb.WriteByte('-')
	}
	for _, lit := range sorted {
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(int(lit)))
	}
	return sb.String()
}
