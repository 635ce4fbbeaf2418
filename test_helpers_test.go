package stats

import (
	"sync"
	"testing"

	"github.com/pkg/errors"
)

// mustPanicWith runs fn and fails the test unless it panics with an error
// wrapping target.
func mustPanicWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		v := recover()
		if v == nil {
			t.Fatalf("expected panic wrapping %q, got none", target)
		}
		err, ok := v.(error)
		if !ok {
			t.Fatalf("expected error panic value, got %T: %v", v, v)
		}
		if !errors.Is(err, target) {
			t.Fatalf("expected panic wrapping %q, got %q", target, err)
		}
	}()
	fn()
}

type logLine struct {
	level Level
	msg   string
}

// recordingLogger captures every line logged by a registry.
type recordingLogger struct {
	mu    sync.Mutex
	lines []logLine
}

func (l *recordingLogger) Log(level Level, msg string) {
	l.mu.Lock()
	l.lines = append(l.lines, logLine{level: level, msg: msg})
	l.mu.Unlock()
}

func (l *recordingLogger) messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	for i, ln := range l.lines {
		out[i] = ln.msg
	}
	return out
}

func (l *recordingLogger) reset() {
	l.mu.Lock()
	l.lines = nil
	l.mu.Unlock()
}
