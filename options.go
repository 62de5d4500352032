package keeper

import (
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/agentkeeper-ai/sdk/llm"
	"github.com/agentkeeper-ai/sdk/store"
)

// settings collects the configuration applied when creating or loading an
// agent.
type settings struct {
	store           store.Store
	providers       *llm.Registry
	defaultProvider string
	tokenBudget     int
	logger          *slog.Logger
	tracer          trace.Tracer
	meter           metric.Meter
}

// Option configures Create, Load, and Delete.
type Option func(*settings)

// WithStore sets the persistence backend. Required for Load, Delete, and
// Agent.Save; Create works without one for purely ephemeral agents.
func WithStore(st store.Store) Option {
	return func(s *settings) {
		s.store = st
	}
}

// WithProviders sets the provider registry. Without one, only queries are
// unavailable; memory operations still work.
func WithProviders(registry *llm.Registry) Option {
	return func(s *settings) {
		s.providers = registry
	}
}

// WithDefaultProvider sets the provider used when a query does not pick one
// explicitly. Defaults to "anthropic".
func WithDefaultProvider(name string) Option {
	return func(s *settings) {
		s.defaultProvider = name
	}
}

// WithTokenBudget fixes the injection budget for every query, overriding
// per-model budget lookup. Zero keeps the lookup behavior.
func WithTokenBudget(budget int) Option {
	return func(s *settings) {
		s.tokenBudget = budget
	}
}

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithTracer enables OpenTelemetry spans around queries.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *settings) {
		s.tracer = tracer
	}
}

// WithMeter enables OpenTelemetry metrics for selection outcomes.
func WithMeter(meter metric.Meter) Option {
	return func(s *settings) {
		s.meter = meter
	}
}

// AskOption adjusts a single query.
type AskOption func(*askSettings)

type askSettings struct {
	provider string
	model    string
	budget   int
}

// AskProvider routes this query to a specific registered provider.
func AskProvider(name string) AskOption {
	return func(a *askSettings) {
		a.provider = name
	}
}

// AskModel names the target model for budget lookup. Unknown models fall
// back to the default budget.
func AskModel(model string) AskOption {
	return func(a *askSettings) {
		a.model = model
	}
}

// AskBudget overrides the token budget for this query only.
func AskBudget(budget int) AskOption {
	return func(a *askSettings) {
		a.budget = budget
	}
}

// newSettings applies options over defaults.
func newSettings(opts []Option) *settings {
	s := &settings{
		defaultProvider: "anthropic",
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.tracer == nil {
		s.tracer = noop.NewTracerProvider().Tracer("keeper")
	}
	return s
}
