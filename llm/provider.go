package llm

import (
	"context"
	"errors"
)

// maxResponseTokens caps the length of provider responses. Memory
// continuity queries are short-form; the budget machinery governs the
// input side, not the output.
const maxResponseTokens = 500

// Common errors returned by providers and the registry.
var (
	// ErrUnknownProvider is returned when a provider name is not registered.
	ErrUnknownProvider = errors.New("llm: unknown provider")

	// ErrEmptyResponse is returned when a provider responds without any
	// usable text content.
	ErrEmptyResponse = errors.New("llm: provider returned empty response")
)

// Provider is the single capability the SDK requires from a language-model
// backend: send a system context plus a user message, get text back.
//
// Implementations must honor context cancellation and must not retry on
// their own; transient-failure policy belongs to the caller.
type Provider interface {
	// Name returns the provider's registry name (e.g. "openai").
	Name() string

	// Query sends the system context and user message to the model and
	// returns the response text.
	Query(ctx context.Context, systemContext, userMessage string) (string, error)
}
