package pool

import (
	"errors"
	"sync"
)

// ErrLengthMismatch indicates a Release call whose handle length does not
// match the pool's configured buffer length.
var ErrLengthMismatch = errors.New("pool: handle length does not match pool length")

// ErrDoubleRelease indicates a handle was released twice.
var ErrDoubleRelease = errors.New("pool: handle already released")

// Handle is an acquired buffer. Words aliases the same backing array as a
// view for bulk 64-bit-wide operations (word-at-a-time clone, for the
// cell grid's candidate-mask storage).
type Handle struct {
	Words    []uint64
	released bool
}

// Pool is a per-board free-list of fixed-length []uint64 buffers.
type Pool struct {
	mu     sync.Mutex
	length int
	free   []*Handle
}

// New creates a Pool that hands out buffers of the given length (in
// uint64 words).
// Complexity: O(1).
func New(length int) *Pool {
	return &Pool{length: length}
}

// Acquire returns a zeroed Handle of the pool's configured length, reusing
// a released buffer if one is available.
// Complexity: O(length) (for zeroing, whether freshly allocated or reused).
func (p *Pool) Acquire() *Handle {
	p.mu.Lock()
	n := len(p.free)
	if n == 0 {
		p.mu.Unlock()
		return &Handle{Words: make([]uint64, p.length)}
	}
	h := p.free[n-1]
	p.free = p.free[:n-1]
	p.mu.Unlock()

	for i := range h.Words {
		h.Words[i] = 0
	}
	h.released = false
	return h
}

// Release returns h to the pool for reuse. Releasing a handle twice, or a
// handle whose length differs from the pool's, is an InternalInvariant
// violation and panics; a same-length handle from another pool is not
// detected.
// Complexity: O(1).
func (p *Pool) Release(h *Handle) {
	if h == nil {
		return
	}
	if h.released {
		panic(ErrDoubleRelease)
	}
	if len(h.Words) != p.length {
		panic(ErrLengthMismatch)
	}
	h.released = true

	p.mu.Lock()
	p.free = append(p.free, h)
	p.mu.Unlock()
}

// Len returns the configured buffer length in words.
func (p *Pool) Len() int { return p.length }
