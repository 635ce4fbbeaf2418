package stats

// defaultRegistry backs the package-level functions. It starts out
// uninitialized; call Init first.
var defaultRegistry = &BasicRegistry{}

// Default returns the process-wide registry used by the package-level
// functions, for passing to code that accepts a Registry or Inspector.
func Default() *BasicRegistry { return defaultRegistry }

// Init (re)initializes the process-wide registry, discarding all counters.
// Non-empty opts replace its configuration; otherwise the previous
// configuration is kept.
func Init(opts ...Option) { defaultRegistry.initWith(opts) }

// Finalize releases the process-wide registry. It panics if Init was not called.
func Finalize() { defaultRegistry.Finalize() }

// AddEntry registers name on the process-wide registry.
func AddEntry(name string) bool { return defaultRegistry.AddEntry(name) }

// Increment adds 1 to name on the process-wide registry.
func Increment(name string) { defaultRegistry.Increment(name) }

// Dump logs every counter of the process-wide registry.
func Dump() { defaultRegistry.Dump() }

// Lookup returns the value of name on the process-wide registry.
func Lookup(name string) (uint64, bool) { return defaultRegistry.Lookup(name) }
