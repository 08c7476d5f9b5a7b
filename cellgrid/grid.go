package cellgrid

import (
	"github.com/sudokubig/bigsolver/pool"
)

// Grid is an N*N board of candidate bitmasks. Bits 0..N-1 of each cell
// are candidate values; bit N is the "given" bit.
// A secondary 64-bit-wide alias of the same pool-acquired buffer is
// simply the buffer itself, since each cell already is one uint64 word —
// bulk clone is therefore already word-at-a-time.
type Grid struct {
	n        int
	pool     *pool.Pool
	handle   *pool.Handle
	cells    []uint64 // alias of handle.Words
	unsolved int       // count of cells whose given bit is not set
}

// givenBit is the bit position of the given flag for an N-symbol grid.
func givenBit(n int) uint64 { return uint64(1) << uint(n) }

// fullMask is the bitmask with every candidate bit (0..n-1) set.
func fullMask(n int) uint64 { return (uint64(1) << uint(n)) - 1 }

// New allocates a Grid of n*n cells, every cell starting with all n
// candidates and no given bit, backed by a buffer acquired from p.
// Complexity: O(n^2).
func New(n int, p *pool.Pool) *Grid {
	h := p.Acquire()
	g := &Grid{n: n, pool: p, handle: h, cells: h.Words, unsolved: n * n}
	full := fullMask(n)
	for i := range g.cells {
		g.cells[i] = full
	}
	return g
}

// N returns the grid's side length / symbol count.
func (g *Grid) N() int { return g.n }

// NumCells returns N*N.
func (g *Grid) NumCells() int { return g.n * g.n }

// Release returns the grid's backing buffer to its pool. Callers must not
// use g after calling Release.
func (g *Grid) Release() {
	g.pool.Release(g.handle)
}

// Clone returns a new Grid sharing this grid's pool, with an
// independently pool-acquired buffer holding an identical word-for-word
// copy of cells.
// Complexity: O(n^2).
func (g *Grid) Clone() *Grid {
	h := g.pool.Acquire()
	copy(h.Words, g.cells)
	return &Grid{n: g.n, pool: g.pool, handle: h, cells: h.Words, unsolved: g.unsolved}
}

// Mask returns the raw bitmask of cell (candidate bits plus given bit).
func (g *Grid) Mask(cell int) uint64 { return g.cells[cell] }

// CandidateMask returns just the candidate bits of cell (bits 0..N-1).
func (g *Grid) CandidateMask(cell int) uint64 {
	return g.cells[cell] & fullMask(g.n)
}

// HasCandidate reports whether value is still a candidate of cell.
func (g *Grid) HasCandidate(cell, value int) bool {
	return g.cells[cell]&(1<<uint(value-1)) != 0
}

// IsGiven reports whether cell is solved (its given bit is set).
func (g *Grid) IsGiven(cell int) bool {
	return g.cells[cell]&givenBit(g.n) != 0
}

// IsGivenTo reports whether cell is solved specifically to value.
func (g *Grid) IsGivenTo(cell, value int) bool {
	return g.IsGiven(cell) && g.HasCandidate(cell, value)
}

// GivenValue returns the 1-based value cell is given to. The result is
// only meaningful if IsGiven(cell) is true.
func (g *Grid) GivenValue(cell int) int {
	return lowestCandidateValue(g.CandidateMask(cell))
}

// UnsolvedCount returns the number of cells whose given bit is not set.
func (g *Grid) UnsolvedCount() int { return g.unsolved }

// IsComplete reports whether every cell is given.
func (g *Grid) IsComplete() bool { return g.unsolved == 0 }

func lowestCandidateValue(mask uint64) int {
	if mask == 0 {
		return 0
	}
	v := 1
	for mask&1 == 0 {
		mask >>= 1
		v++
	}
	return v
}
