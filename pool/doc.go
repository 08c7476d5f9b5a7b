// Package pool implements a recyclable buffer pool for fixed-length cell
// masks.
//
// What:
//
//   - Pool: per-board free-list of []uint64 buffers, one fixed length per
//     board (N*N cells, one word per cell).
//   - Handle: an acquired buffer plus a word-aligned view of the same
//     memory, so callers that want a 64-bit-wide clone (package cellgrid)
//     and callers that want per-cell masks share one allocation.
//
// Why:
//
//   - Board snapshots are cloned on every search-tree branch (package
//     search); allocating a fresh []uint64 per clone would dominate GC
//     pressure on hard puzzles with thousands of guesses. Recycling
//     buffers keeps clone cost to a memcpy.
//
// Acquire always zeroes the returned buffer; Release returns it to the
// free-list without zeroing (the next Acquire does that). The pool itself
// is guarded by a mutex, following core.Graph's per-concern RWMutex
// convention, since board snapshots taken concurrently by preprocessing
// probes (package preprocess) may acquire/release from independent
// goroutines in a future host even though today's search driver is
// single-threaded.
package pool
