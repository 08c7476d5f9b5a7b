package implication

// Clock is the monotonically increasing logical clock shared by every
// layer (self table, plus every ancestor's table) of one BIG family.
// Writes anywhere in the family bump the same counter, so a timestamp
// comparison across layers is always meaningful.
type Clock struct {
	value uint64
}

// NewClock returns a fresh clock starting at 0 (no writes yet).
func NewClock() *Clock { return &Clock{} }

// Tick advances the clock and returns the new value. No two calls ever
// return the same value.
// Complexity: O(1).
func (c *Clock) Tick() uint64 {
	c.value++
	return c.value
}

// Now returns the current clock value without advancing it.
func (c *Clock) Now() uint64 { return c.value }
