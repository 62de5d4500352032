package keeper

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/agentkeeper-ai/sdk/llm"
	"github.com/agentkeeper-ai/sdk/memory"
	"github.com/agentkeeper-ai/sdk/reconstruct"
	"github.com/agentkeeper-ai/sdk/tokens"
)

// Agent is the handle for one agent identity: its cognitive state plus the
// store, providers, and observability wiring around it.
//
// An Agent is not safe for concurrent use. Hosts exposing the same agent to
// concurrent callers must serialize access per agent identifier.
type Agent struct {
	state *memory.CognitiveState
	s     *settings
	obs   *instruments
}

func newAgent(state *memory.CognitiveState, s *settings) *Agent {
	return &Agent{
		state: state,
		s:     s,
		obs:   newInstruments(s.meter),
	}
}

// ID returns the agent identifier.
func (a *Agent) ID() string {
	return a.state.AgentID()
}

// Facts returns the agent's facts in insertion order.
func (a *Agent) Facts() []*memory.Fact {
	return a.state.Facts()
}

// Remember adds a fact to the agent's memory and returns it. Critical
// facts are prioritized during reconstruction under budget pressure.
func (a *Agent) Remember(content string, critical bool) *memory.Fact {
	fact := a.state.AddFact(content, critical)
	a.s.logger.Debug("fact remembered",
		"agent_id", a.ID(),
		"fact_id", fact.ID,
		"critical", critical)
	return fact
}

// Forget removes a fact by identifier and reports whether it existed.
// Forgetting an unknown identifier is a no-op.
func (a *Agent) Forget(factID string) bool {
	return a.state.RemoveFact(factID)
}

// Ask queries the agent. Memory is reconstructed under the token budget,
// injected as system context, and the assembled prompt is sent to the
// selected provider.
func (a *Agent) Ask(ctx context.Context, question string, opts ...AskOption) (string, error) {
	ask := a.resolveAsk(opts)

	provider, err := a.provider(ask.provider)
	if err != nil {
		return "", err
	}

	budget := a.resolveBudget(ask)
	engine := reconstruct.New(a.state)
	prompt := engine.BuildContextPrompt(question, budget)
	stats := engine.Stats(budget)

	ctx, span := a.startAskSpan(ctx, provider.Name(), ask.model, stats)
	defer span.End()

	a.s.logger.Debug("asking provider",
		"agent_id", a.ID(),
		"provider", provider.Name(),
		"budget", budget,
		"facts_selected", stats.SelectedFacts,
		"tokens_used", stats.TokensUsed)

	response, err := provider.Query(ctx, prompt, question)
	if err != nil {
		span.RecordError(err)
		return "", newError("Agent.Ask", KindNetwork, err)
	}

	a.obs.recordAsk(ctx, provider.Name(), stats)
	return response, nil
}

// Stats reports what a reconstruction under the current settings would
// select, without querying any provider. It is read-only and does not
// touch the agent's timestamps.
func (a *Agent) Stats(opts ...AskOption) reconstruct.Stats {
	ask := a.resolveAsk(opts)
	return reconstruct.New(a.state).Stats(a.resolveBudget(ask))
}

// Recall returns the identifiers of facts whose content the given response
// reflects, using the keyword heuristic from the llm package.
func (a *Agent) Recall(response string) []string {
	return llm.ExtractFacts(response, a.state.Facts())
}

// SwitchProvider changes the default provider. Memory is unaffected; the
// next Ask reconstructs it for the new provider. Unknown names are
// rejected with the registered names in the error.
func (a *Agent) SwitchProvider(name string) error {
	if a.s.providers == nil || !a.s.providers.Has(name) {
		err := fmt.Errorf("%w: %q", llm.ErrUnknownProvider, name)
		if a.s.providers != nil {
			err = fmt.Errorf("%w: %q (available: %v)", llm.ErrUnknownProvider, name, a.s.providers.Names())
		}
		return newError("Agent.SwitchProvider", KindValidation, err)
	}
	a.s.defaultProvider = name
	return nil
}

// Save persists the agent's cognitive state through the configured store.
func (a *Agent) Save(ctx context.Context) error {
	if a.s.store == nil {
		return newError("Agent.Save", KindConfiguration, ErrNoStore)
	}
	if err := a.s.store.Save(ctx, a.state); err != nil {
		return newError("Agent.Save", KindNetwork, err)
	}
	a.s.logger.Debug("agent saved", "agent_id", a.ID(), "facts", a.state.Len())
	return nil
}

// resolveAsk applies per-query options over the agent's defaults.
func (a *Agent) resolveAsk(opts []AskOption) *askSettings {
	ask := &askSettings{provider: a.s.defaultProvider}
	for _, opt := range opts {
		opt(ask)
	}
	return ask
}

// resolveBudget picks the injection budget: explicit per-query budget,
// then the agent-wide budget, then per-model lookup with its documented
// default for unknown models.
func (a *Agent) resolveBudget(ask *askSettings) int {
	if ask.budget != 0 {
		return ask.budget
	}
	if a.s.tokenBudget != 0 {
		return a.s.tokenBudget
	}
	return tokens.BudgetFor(ask.model)
}

// provider resolves a provider by name from the registry.
func (a *Agent) provider(name string) (llm.Provider, error) {
	if a.s.providers == nil {
		return nil, newError("Agent.Ask", KindConfiguration,
			fmt.Errorf("%w: no provider registry configured", ErrInvalidConfig))
	}
	provider, err := a.s.providers.Get(name)
	if err != nil {
		return nil, newError("Agent.Ask", KindValidation, err)
	}
	return provider, nil
}

// startAskSpan opens the query span. The tracer defaults to a no-op, so
// this is free unless WithTracer was used.
func (a *Agent) startAskSpan(ctx context.Context, provider, model string, stats reconstruct.Stats) (context.Context, trace.Span) {
	return a.s.tracer.Start(ctx, "keeper.ask",
		trace.WithAttributes(
			attribute.String("keeper.agent_id", a.ID()),
			attribute.String("keeper.provider", provider),
			attribute.String("keeper.model", model),
			attribute.Int("keeper.facts_selected", stats.SelectedFacts),
			attribute.Int("keeper.tokens_used", stats.TokensUsed),
			attribute.Int("keeper.token_budget", stats.TokenBudget),
		))
}
