package llm

import (
	"context"
	"sync"
)

// MockProvider is an offline Provider for tests and dry runs. It echoes the
// system context it receives, which lets callers verify exactly what memory
// was injected, and records the last system context for inspection.
type MockProvider struct {
	mu                sync.Mutex
	lastSystemContext string
}

// NewMockProvider creates a mock provider.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// Name returns "mock".
func (p *MockProvider) Name() string { return "mock" }

// Query records the system context and echoes it back prefixed with
// "Based on my memory: ".
func (p *MockProvider) Query(ctx context.Context, systemContext, userMessage string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p.mu.Lock()
	p.lastSystemContext = systemContext
	p.mu.Unlock()
	return "Based on my memory: " + systemContext, nil
}

// LastSystemContext returns the system context from the most recent Query.
func (p *MockProvider) LastSystemContext() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastSystemContext
}
