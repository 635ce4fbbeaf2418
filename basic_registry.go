package stats

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"github.com/puzpuzpuz/xsync/v3"
)

// BasicRegistry is an in-memory implementation of Registry and Inspector.
// It is concurrency-safe. Counters are created on demand by name and live
// until Finalize or the next Init.
//
// The zero value is uninitialized: call Init before use, or construct it with
// NewBasicRegistry.
type BasicRegistry struct {
	// mu guards the table pointer. Init and Finalize swap it under the write
	// lock; everything else holds the read lock, so per-counter updates
	// proceed in parallel.
	mu    sync.RWMutex
	cfg   *basicRegistryConfig
	table *xsync.MapOf[string, *counter] // nil while uninitialized
	seq   atomic.Uint64
}

// NewBasicRegistry constructs an initialized, empty BasicRegistry.
// Accepts optional functional options to customize behavior.
func NewBasicRegistry(opts ...Option) *BasicRegistry {
	r := &BasicRegistry{cfg: newBasicRegistryConfig(opts)}
	r.Init()
	return r
}

// Init replaces the table with a fresh empty one, discarding every counter.
// Calling Init on an initialized registry is a reset, not an error.
func (r *BasicRegistry) Init() {
	r.initWith(nil)
}

// initWith is Init that also replaces the configuration when opts is non-empty.
func (r *BasicRegistry) initWith(opts []Option) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cfg == nil || len(opts) > 0 {
		r.cfg = newBasicRegistryConfig(opts)
	}
	r.table = r.newTable()
	r.seq.Store(0)
}

// Finalize releases the table and all counters. The registry is
// uninitialized afterwards. Finalize panics if the registry is not initialized.
func (r *BasicRegistry) Finalize() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.table == nil {
		precondition(ErrNotInitialized, "Finalize")
	}
	r.table.Clear()
	r.table = nil
}

// Initialized reports whether the registry currently holds a table.
func (r *BasicRegistry) Initialized() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.table != nil
}

func (r *BasicRegistry) newTable() *xsync.MapOf[string, *counter] {
	if r.cfg.presize > 0 {
		return xsync.NewMapOf[string, *counter](xsync.WithPresize(r.cfg.presize))
	}
	return xsync.NewMapOf[string, *counter]()
}

func (r *BasicRegistry) newCounter() *counter {
	return &counter{seq: r.seq.Add(1)}
}

// acquire read-locks the registry and returns the live table.
// It panics on an uninitialized registry; callers must defer r.mu.RUnlock().
func (r *BasicRegistry) acquire(op string) *xsync.MapOf[string, *counter] {
	r.mu.RLock()
	if r.table == nil {
		r.mu.RUnlock()
		precondition(ErrNotInitialized, op)
	}
	return r.table
}

// checkName panics on an empty name. It runs before acquire so that no lock
// is held when it fires.
func checkName(name, op string) {
	if name == "" {
		precondition(ErrEmptyName, op)
	}
}

// key truncates name to the configured maximum length.
// The caller must hold r.mu.
func (r *BasicRegistry) key(name string) string {
	return truncateKey(name, r.cfg.maxKeyLength)
}

// truncateKey cuts s to at most n bytes without splitting a UTF-8 sequence.
// If no rune starts within the first n bytes (a leading rune wider than n, or
// invalid UTF-8), it cuts at n bytes, so a non-empty name never becomes empty.
func truncateKey(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	if cut == 0 {
		cut = n
	}
	return s[:cut]
}

// AddEntry registers name with value 0.
// It returns false and leaves the stored value untouched if name exists.
func (r *BasicRegistry) AddEntry(name string) bool {
	checkName(name, "AddEntry")
	t := r.acquire("AddEntry")
	key := r.key(name)
	_, loaded := t.LoadOrCompute(key, r.newCounter)
	l := r.cfg.logger
	r.mu.RUnlock()

	if loaded {
		l.Log(LevelWarn, fmt.Sprintf("Statistic entry for %s already exists.", key))
		return false
	}
	return true
}

// Increment adds 1 to the counter for name, creating it with value 0 first
// if it does not exist. Concurrent first-time increments of the same name
// share one counter, so no update is lost.
func (r *BasicRegistry) Increment(name string) {
	checkName(name, "Increment")
	t := r.acquire("Increment")
	defer r.mu.RUnlock()
	c, _ := t.LoadOrCompute(r.key(name), r.newCounter)
	c.inc()
}

// Dump writes "Statistics:" followed by one "<name>: <value>" line per
// counter to the logger at info level, or "No statistics found." if there
// are no counters. The table is read once; logging happens outside the lock.
func (r *BasicRegistry) Dump() {
	t := r.acquire("Dump")
	entries := r.collect(t)
	l := r.cfg.logger
	r.mu.RUnlock()

	l.Log(LevelInfo, dumpHeader)
	if len(entries) == 0 {
		l.Log(LevelInfo, dumpEmpty)
		return
	}
	for _, e := range entries {
		l.Log(LevelInfo, fmt.Sprintf("%s: %d", e.Name, e.Value))
	}
}

type orderedEntry struct {
	seq uint64
	Entry
}

// collect copies the table into a slice sorted by the configured DumpOrder.
// The caller must hold r.mu.
func (r *BasicRegistry) collect(t *xsync.MapOf[string, *counter]) []Entry {
	slots := make([]orderedEntry, 0, t.Size())
	t.Range(func(name string, c *counter) bool {
		slots = append(slots, orderedEntry{seq: c.seq, Entry: Entry{Name: name, Value: c.load()}})
		return true
	})

	switch r.cfg.order {
	case OrderName:
		slices.SortFunc(slots, func(a, b orderedEntry) int { return cmp.Compare(a.Name, b.Name) })
	default:
		slices.SortFunc(slots, func(a, b orderedEntry) int { return cmp.Compare(a.seq, b.seq) })
	}

	out := make([]Entry, len(slots))
	for i, s := range slots {
		out[i] = s.Entry
	}
	return out
}
