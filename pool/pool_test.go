package pool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudokubig/bigsolver/pool"
)

func TestAcquireZeroed(t *testing.T) {
	p := pool.New(4)
	h := p.Acquire()
	require.Len(t, h.Words, 4)
	for _, w := range h.Words {
		assert.Zero(t, w)
	}
}

func TestAcquireReusesReleased(t *testing.T) {
	p := pool.New(4)
	h1 := p.Acquire()
	h1.Words[0] = 0xFF
	p.Release(h1)

	h2 := p.Acquire()
	assert.Same(t, h1, h2)
	assert.Zero(t, h2.Words[0], "reused buffer must be re-zeroed")
}

func TestDoubleReleasePanics(t *testing.T) {
	p := pool.New(2)
	h := p.Acquire()
	p.Release(h)
	assert.Panics(t, func() { p.Release(h) })
}

func TestReleaseWrongLengthPanics(t *testing.T) {
	p := pool.New(2)
	bad := &pool.Handle{Words: make([]uint64, 3)}
	assert.Panics(t, func() { p.Release(bad) })
}
