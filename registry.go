package stats

// Registry records named monotonic counters.
//
// Implementations must be safe for concurrent use. BasicRegistry treats
// calls on an uninitialized registry, and empty names, as programming errors
// and panics (see ErrNotInitialized and ErrEmptyName); the noop registry
// accepts anything.
type Registry interface {
	// AddEntry registers name with value 0. It returns false, leaving the
	// existing value untouched, if name is already registered.
	AddEntry(name string) bool
	// Increment adds 1 to the counter for name, creating it first if needed.
	Increment(name string)
	// Dump writes every counter to the registry's logger at info level.
	Dump()
}

// DefaultMaxKeyLength is the longest counter name kept by a registry, in bytes.
// Longer names are truncated.
const DefaultMaxKeyLength = 255

const (
	dumpHeader = "Statistics:"
	dumpEmpty  = "No statistics found."
)

// DumpOrder selects the order in which Dump and Entries list counters.
type DumpOrder uint8

const (
	// OrderInsertion lists counters in the order they were first created.
	OrderInsertion DumpOrder = iota
	// OrderName lists counters sorted by name.
	OrderName
)

func (o DumpOrder) String() string {
	switch o {
	case OrderInsertion:
		return "insertion"
	case OrderName:
		return "name"
	default:
		return "unknown"
	}
}

// ParseDumpOrder maps "insertion" or "name" to a DumpOrder.
func ParseDumpOrder(s string) (DumpOrder, bool) {
	switch s {
	case "", "insertion":
		return OrderInsertion, true
	case "name":
		return OrderName, true
	}
	return OrderInsertion, false
}

// Entry is a point-in-time copy of one counter.
type Entry struct {
	Name  string
	Value uint64
}
