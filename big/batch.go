package big

import (
	"github.com/sudokubig/bigsolver/bitset"
	"github.com/sudokubig/bigsolver/literal"
)

// AddPosImplicationsBatched bulk-adds a⇒Pos(v) for every v in vars to
// the top table, after dropping any v a parent layer already carries
// (mirrors AddImplication's parent-first dedup, batched for the
// preprocessor's per-candidate probing pass: batch-adds into the
// top-layer BIG the guaranteed-unique, sorted remainder after filtering
// out anything already present in the graph).
func (b *BIG) AddPosImplicationsBatched(a literal.Literal, vars bitset.Seq) {
	fresh := b.filterAgainstParents(a, vars, true)
	if len(fresh) > 0 {
		b.self.AddPosImplicationsBatched(a, fresh)
	}
}

// AddNegImplicationsBatched is the negative-consequent counterpart of
// AddPosImplicationsBatched.
func (b *BIG) AddNegImplicationsBatched(a literal.Literal, vars bitset.Seq) {
	fresh := b.filterAgainstParents(a, vars, false)
	if len(fresh) > 0 {
		b.self.AddNegImplicationsBatched(a, fresh)
	}
}

func (b *BIG) filterAgainstParents(a literal.Literal, vars bitset.Seq, pos bool) bitset.Seq {
	if len(b.parents) == 0 {
		return vars
	}
	out := make(bitset.Seq, 0, len(vars))
	for _, v := range vars {
		target := literal.ForVariable(literal.Variable(v), pos)
		already := false
		for _, p := range b.parents {
			if p.HasImplication(a, target) {
				already = true
				break
			}
		}
		if !already {
			out = append(out, v)
		}
	}
	return out
}
