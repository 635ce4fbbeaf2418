package stats

// Inspector provides read-only access to counter values.
// Returned values are copies; nothing returned aliases the registry's table.
// Snapshot semantics: best-effort at call time.
// Methods must be safe for concurrent use.
type Inspector interface {
	// Lookup returns the current value for name and whether it exists.
	Lookup(name string) (uint64, bool)

	// Entries returns all counters in the registry's dump order.
	Entries() []Entry

	// Len returns the number of registered counters.
	Len() int
}
