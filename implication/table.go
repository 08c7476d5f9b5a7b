package implication

import (
	"sort"

	"github.com/sudokubig/bigsolver/bitset"
	"github.com/sudokubig/bigsolver/literal"
)

// Table holds one layer's four polarity-keyed adjacency lists plus their
// dirty flags and last-updated timestamps, all indexed directly by
// literal.Variable.
type Table struct {
	clock *Clock
	size  int // number of variables this table is sized for

	adj       [4][]bitset.Seq
	dirty     [4][]bool
	timestamp [4][]uint64
}

// NewTable allocates an empty Table for size variables, sharing clock
// with every other layer of the same BIG family.
// Complexity: O(size).
func NewTable(size int, clock *Clock) *Table {
	t := &Table{clock: clock, size: size}
	for p := 0; p < 4; p++ {
		t.adj[p] = make([]bitset.Seq, size)
		t.dirty[p] = make([]bool, size)
		t.timestamp[p] = make([]uint64, size)
	}
	return t
}

// Size returns the number of variables this table was allocated for.
func (t *Table) Size() int { return t.size }

// AddImplication inserts a⇒b and its contrapositive ¬b⇒¬a. Returns false
// without modifying the table if a⇒b is already present.
// Complexity: O(n) (membership scan over the unsorted tail plus append).
func (t *Table) AddImplication(a, b literal.Literal) bool {
	idx1 := literal.PolarityIndex(a, b)
	va, vb := literal.Var(a), literal.Var(b)
	if t.containsRaw(idx1, va, vb) {
		return false
	}

	idx2 := literal.PolarityIndex(literal.Negate(b), literal.Negate(a))
	ts := t.clock.Tick()

	t.adj[idx1][va] = append(t.adj[idx1][va], int32(vb))
	t.dirty[idx1][va] = true
	t.timestamp[idx1][va] = ts

	t.adj[idx2][vb] = append(t.adj[idx2][vb], int32(va))
	t.dirty[idx2][vb] = true
	t.timestamp[idx2][vb] = ts

	return true
}

// AddPosImplicationsBatched bulk-adds a⇒v (v positive) for every v in
// vars. The caller guarantees vars is ascending, duplicate-free, and
// shares no element with a's existing pos-consequent adjacency: under
// that precondition the merge below preserves sortedness without a
// dirty flag.
// Complexity: O(n+m) for the forward merge, O(m log n) for the m
// single-element contrapositive inserts.
func (t *Table) AddPosImplicationsBatched(a literal.Literal, vars bitset.Seq) {
	t.addBatched(a, vars, true)
}

// AddNegImplicationsBatched is the negative-consequent counterpart of
// AddPosImplicationsBatched: bulk-adds a⇒¬v for every v in vars.
func (t *Table) AddNegImplicationsBatched(a literal.Literal, vars bitset.Seq) {
	t.addBatched(a, vars, false)
}

func (t *Table) addBatched(a literal.Literal, vars bitset.Seq, bPositive bool) {
	if len(vars) == 0 {
		return
	}
	b := literal.ForVariable(0, bPositive) // placeholder to select polarity index pattern
	fwdIdx := literal.PolarityIndex(a, b)
	va := literal.Var(a)

	t.ensureSorted(fwdIdx, va)
	existing := t.adj[fwdIdx][va]
	merged := make(bitset.Seq, 0, len(existing)+len(vars))
	merged = bitset.UnionInto(merged, existing, vars)
	t.adj[fwdIdx][va] = merged

	ts := t.clock.Tick()
	t.timestamp[fwdIdx][va] = ts

	notA := literal.Negate(a)
	for _, v32 := range vars {
		v := literal.Variable(v32)
		target := literal.ForVariable(v, !bPositive) // ¬(b) has the opposite sign of b
		revIdx := literal.PolarityIndex(target, notA)
		t.ensureSorted(revIdx, v)
		t.adj[revIdx][v] = bitset.Insert(t.adj[revIdx][v], int32(literal.Var(a)))
		t.timestamp[revIdx][v] = ts
	}
}

// UnsafeRemoveImplication removes both a⇒b and ¬b⇒¬a without bumping the
// clock or marking anything dirty. The caller guarantees this is safe:
// either no closure has been cached yet, or the edge is being re-homed to
// a parent layer by the BIG.
// Complexity: O(n).
func (t *Table) UnsafeRemoveImplication(a, b literal.Literal) {
	idx1 := literal.PolarityIndex(a, b)
	va, vb := literal.Var(a), literal.Var(b)
	t.ensureSorted(idx1, va)
	t.adj[idx1][va] = bitset.Delete(t.adj[idx1][va], int32(vb))

	idx2 := literal.PolarityIndex(literal.Negate(b), literal.Negate(a))
	t.ensureSorted(idx2, vb)
	t.adj[idx2][vb] = bitset.Delete(t.adj[idx2][vb], int32(va))
}

// HasImplication reports whether a⇒b is present in this table.
// Complexity: O(log n) once sorted, O(n) to sort a dirty adjacency first.
func (t *Table) HasImplication(a, b literal.Literal) bool {
	idx := literal.PolarityIndex(a, b)
	va, vb := literal.Var(a), literal.Var(b)
	t.ensureSorted(idx, va)
	return bitset.Contains(t.adj[idx][va], int32(vb))
}

// PosConsequents returns the (sorted, deduplicated) variables positively
// implied by lit: lit⇒Pos(v) for every v returned. The returned slice
// aliases internal storage; callers must not mutate it.
// Complexity: O(n log n) if the adjacency is dirty, else O(1).
func (t *Table) PosConsequents(lit literal.Literal) bitset.Seq {
	idx := posTableIndex(lit)
	v := literal.Var(lit)
	t.ensureSorted(idx, v)
	return t.adj[idx][v]
}

// NegConsequents returns the variables negatively implied by lit:
// lit⇒Neg(v) for every v returned.
// Complexity: O(n log n) if dirty, else O(1).
func (t *Table) NegConsequents(lit literal.Literal) bitset.Seq {
	idx := negTableIndex(lit)
	v := literal.Var(lit)
	t.ensureSorted(idx, v)
	return t.adj[idx][v]
}

// LastUpdatedAt returns the logical clock value at which lit's consequent
// adjacency (positive if pos=true, else negative) last changed.
func (t *Table) LastUpdatedAt(lit literal.Literal, pos bool) uint64 {
	var idx literal.Polarity
	if pos {
		idx = posTableIndex(lit)
	} else {
		idx = negTableIndex(lit)
	}
	return t.timestamp[idx][literal.Var(lit)]
}

// SortGraph normalizes every dirty adjacency (sort ascending, dedupe) and
// clears the corresponding dirty flags.
// Complexity: O(sum of n log n) over dirty adjacencies only.
func (t *Table) SortGraph() {
	for p := 0; p < 4; p++ {
		for v := 0; v < t.size; v++ {
			if t.dirty[p][v] {
				t.sortOne(literal.Polarity(p), v)
			}
		}
	}
}

func (t *Table) ensureSorted(idx literal.Polarity, v literal.Variable) {
	if t.dirty[idx][v] {
		t.sortOne(idx, int(v))
	}
}

func (t *Table) sortOne(idx literal.Polarity, v int) {
	s := t.adj[idx][v]
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	t.adj[idx][v] = bitset.Dedup(s)
	t.dirty[idx][v] = false
}

// containsRaw performs a linear membership scan that tolerates an unsorted
// (dirty) adjacency, used by AddImplication's pre-insert duplicate check
// so a single add never forces an eager sort of the whole adjacency.
func (t *Table) containsRaw(idx literal.Polarity, key literal.Variable, target literal.Variable) bool {
	for _, x := range t.adj[idx][key] {
		if x == int32(target) {
			return true
		}
	}
	return false
}

func posTableIndex(lit literal.Literal) literal.Polarity {
	if literal.IsPositive(lit) {
		return literal.PosPos
	}
	return literal.NegPos
}

func negTableIndex(lit literal.Literal) literal.Polarity {
	if literal.IsPositive(lit) {
		return literal.PosNeg
	}
	return literal.NegNeg
}
