package didway

import (
	"errors"
	"fmt"
)

// Sentinel errors for dispatch.
var (
	// ErrDispatchCancelled indicates the context was cancelled before the
	// dispatch could launch its plugin invocations.
	ErrDispatchCancelled = errors.New("dispatch cancelled")
)

// DispatchError wraps a plugin failure with dispatch context. It is the
// only error path that preserves the original plugin error: collect-all
// dispatches fail fast with the full detail, wrapped with the operation
// and target being dispatched.
type DispatchError struct {
	// Operation is the dispatched operation name, e.g. "did_create".
	Operation string
	// Target is the method or subject/credential identifier dispatched to.
	Target string
	// PluginIndex is the registry position of the failing plugin.
	PluginIndex int
	// Err is the underlying plugin error.
	Err error
}

// Error implements the error interface.
func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch %s for %q: plugin %d: %v", e.Operation, e.Target, e.PluginIndex, e.Err)
}

// Unwrap returns the underlying plugin error.
func (e *DispatchError) Unwrap() error {
	return e.Err
}
