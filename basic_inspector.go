package stats

// Lookup implements Inspector.Lookup for BasicRegistry.
// name is truncated the same way as on the write path, so a name that was
// stored truncated is still found by its full form.
func (r *BasicRegistry) Lookup(name string) (uint64, bool) {
	checkName(name, "Lookup")
	t := r.acquire("Lookup")
	defer r.mu.RUnlock()
	c, ok := t.Load(r.key(name))
	if !ok {
		return 0, false
	}
	return c.load(), true
}

// Entries implements Inspector.Entries for BasicRegistry.
// The result is a copy in dump order; counters created concurrently may or
// may not be included.
func (r *BasicRegistry) Entries() []Entry {
	t := r.acquire("Entries")
	defer r.mu.RUnlock()
	return r.collect(t)
}

// Len implements Inspector.Len for BasicRegistry.
func (r *BasicRegistry) Len() int {
	t := r.acquire("Len")
	defer r.mu.RUnlock()
	return t.Size()
}

// snapshot is Entries without the initialization precondition.
// ok is false if the registry is uninitialized.
func (r *BasicRegistry) snapshot() (entries []Entry, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.table == nil {
		return nil, false
	}
	return r.collect(r.table), true
}
