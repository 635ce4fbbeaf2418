package stats

import "github.com/pkg/errors"

var (
	// ErrNotInitialized is the panic cause when a registry is used before
	// Init or after Finalize.
	ErrNotInitialized = errors.New("stats: registry not initialized")
	// ErrEmptyName is the panic cause when a counter name is empty.
	ErrEmptyName = errors.New("stats: empty counter name")
)

// precondition panics with cause wrapped by op and a stack trace.
// Misuse of a registry is a caller bug and is never returned as an error.
// Recovered values satisfy errors.Is(v.(error), cause); format with %+v to
// see where the call came from.
func precondition(cause error, op string) {
	panic(errors.Wrap(cause, op))
}
