package stats

import "sync/atomic"

// counter is a single table slot. Slots never leave the registry; readers get
// an Entry copy instead.
type counter struct {
	seq uint64 // creation order, used by OrderInsertion
	val atomic.Uint64
}

// inc adds one. Overflow wraps around to zero.
func (c *counter) inc() { c.val.Add(1) }

func (c *counter) load() uint64 { return c.val.Load() }
