package stats

type basicRegistryConfig struct {
	logger       Logger
	maxKeyLength int
	order        DumpOrder
	// initial table capacity hint passed to xsync; 0 keeps the xsync default
	presize int
}

func newBasicRegistryConfig(opts []Option) *basicRegistryConfig {
	cfg := &basicRegistryConfig{maxKeyLength: DefaultMaxKeyLength}
	for _, o := range opts {
		if o != nil {
			o(cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = NewNoopLogger()
	}
	if cfg.maxKeyLength <= 0 {
		cfg.maxKeyLength = DefaultMaxKeyLength
	}
	return cfg
}

// Option configures a BasicRegistry constructed by NewBasicRegistry.
type Option func(*basicRegistryConfig)

// WithLogger sets the sink used by Dump and for duplicate-entry warnings.
func WithLogger(l Logger) Option {
	return func(cfg *basicRegistryConfig) { cfg.logger = l }
}

// WithMaxKeyLength overrides DefaultMaxKeyLength. Non-positive values are ignored.
func WithMaxKeyLength(n int) Option {
	return func(cfg *basicRegistryConfig) { cfg.maxKeyLength = n }
}

// WithDumpOrder selects how Dump and Entries order counters.
// The default is OrderInsertion.
func WithDumpOrder(o DumpOrder) Option {
	return func(cfg *basicRegistryConfig) { cfg.order = o }
}

// WithPresize hints how many counters the table should hold without growing.
func WithPresize(n int) Option {
	return func(cfg *basicRegistryConfig) { cfg.presize = n }
}
