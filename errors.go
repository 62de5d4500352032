package keeper

import (
	"errors"
	"fmt"
)

// Sentinel errors for common SDK error conditions. These can be used with
// errors.Is() for error checking.
var (
	// ErrAgentNotFound indicates the requested agent has no persisted state.
	ErrAgentNotFound = errors.New("agent not found")

	// ErrNoStore indicates an operation requiring persistence ran without
	// a configured store.
	ErrNoStore = errors.New("no store configured")

	// ErrInvalidConfig indicates the provided configuration is invalid or
	// incomplete.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Error kinds categorize errors by their type.
const (
	// KindNotFound represents errors where a resource was not found.
	KindNotFound = "not_found"

	// KindValidation represents errors related to input validation.
	KindValidation = "validation"

	// KindConfiguration represents errors related to configuration.
	KindConfiguration = "configuration"

	// KindNetwork represents errors from provider or store I/O.
	KindNetwork = "network"

	// KindInternal represents internal SDK errors.
	KindInternal = "internal"
)

// KeeperError is a structured error type that wraps underlying errors with
// the operation that failed and the category of error.
//
// KeeperError implements the error interface and supports unwrapping, so it
// is compatible with errors.Is() and errors.As().
type KeeperError struct {
	// Op is the operation that failed (e.g. "Agent.Ask", "Load").
	Op string

	// Kind categorizes the error (e.g. KindNotFound, KindValidation).
	Kind string

	// Err is the underlying error.
	Err error
}

// Error returns a formatted message including the operation, kind, and
// underlying error.
func (e *KeeperError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("keeper: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("keeper: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *KeeperError) Unwrap() error {
	return e.Err
}

// Is matches either the underlying error or another KeeperError with the
// same Kind (and Op, when the target sets one).
func (e *KeeperError) Is(target error) bool {
	if target == nil {
		return false
	}
	if t, ok := target.(*KeeperError); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}
	return errors.Is(e.Err, target)
}

// newError builds a KeeperError for the given operation and kind.
func newError(op, kind string, err error) *KeeperError {
	return &KeeperError{Op: op, Kind: kind, Err: err}
}
