package stats

// Level is the severity attached to a log line.
type Level int8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Logger receives pre-rendered lines from a registry.
// Dump output is always sent at LevelInfo, one call per line.
type Logger interface {
	Log(level Level, msg string)
}

// LoggerFunc adapts a plain function to Logger.
type LoggerFunc func(level Level, msg string)

// Log calls f(level, msg).
func (f LoggerFunc) Log(level Level, msg string) { f(level, msg) }

// NewNoopLogger returns a Logger that discards everything.
func NewNoopLogger() Logger {
	return noopLogger{}
}

type noopLogger struct{}

func (noopLogger) Log(Level, string) {}
