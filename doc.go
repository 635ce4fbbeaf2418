/*
Package stats provides a small, concurrency-safe registry of named 64-bit counters.

# Overview

The library is organized around two main interfaces:

1. Registry: registering, incrementing and dumping counters.

	type Registry interface {
	  AddEntry(name string) bool
	  Increment(name string)
	  Dump()
	}

2. Inspector: read-only access to counter values. Values are returned as
copies; callers never hold a reference into the registry's table.

	type Inspector interface {
	  Lookup(name string) (uint64, bool)
	  Entries() []Entry
	  Len() int
	}

# Reference implementation

BasicRegistry implements both Registry and Inspector. It stores counters in an
xsync.MapOf keyed by name. Each counter is an atomic uint64, so increments of
existing counters never contend on a shared lock.

Lifecycle

 1. NewBasicRegistry (or Init on a zero value) creates an empty table.
    Calling Init again discards all counters; it is a reset, not an error.
 2. AddEntry registers a name with value 0 and fails (returns false) if the
    name already exists.
 3. Increment creates a missing name with value 0 and then adds 1. Creation is
    atomic, so concurrent first increments of the same name are all counted.
    Values wrap around at 2^64.
 4. Dump logs "Statistics:" followed by "<name>: <value>" per counter, or
    "No statistics found." for an empty table, at info level.
 5. Finalize drops the table. The registry is uninitialized afterwards.

Misuse panics

Using a registry before Init or after Finalize, finalizing twice, and passing
an empty name are programming errors. They panic with an error wrapping
ErrNotInitialized or ErrEmptyName; the value carries a stack trace (print it
with %+v). A duplicate AddEntry is the only failure reported as a result.

Names longer than DefaultMaxKeyLength bytes (or WithMaxKeyLength) are
truncated on a UTF-8 boundary before being stored or looked up.

Examples

	r := stats.NewBasicRegistry(stats.WithLogger(stats.NewZerologLogger(log.Logger)))
	defer r.Finalize()

	r.AddEntry("packets_in")
	r.Increment("packets_in")
	r.Increment("packets_dropped")

	if v, ok := r.Lookup("packets_in"); ok {
	    _ = v // 1
	}

	r.Dump()
	// Statistics:
	// packets_in: 1
	// packets_dropped: 1

# Dump order

Counters are listed in creation order by default. WithDumpOrder(OrderName)
sorts them by name instead.

# Process-wide registry

The package-level Init, Finalize, AddEntry, Increment, Dump and Lookup operate
on a single default BasicRegistry, for code that has no registry injected.
Default returns it.

# Exporting

NewCollector adapts a BasicRegistry to a prometheus.Collector.
*/
package stats
