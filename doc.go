// Package keeper provides cognitive persistence for AI agents: durable
// memory that survives across sessions and across language-model providers.
//
// An agent accumulates small text facts; when queried, the SDK reconstructs
// the agent's memory under a token budget, injects it as system context,
// and hands the assembled prompt to a provider adapter. Facts marked
// critical are prioritized when the budget is tight.
//
// # Core Concepts
//
//   - Facts: small units of memory with a criticality flag and a token cost
//   - Cognitive State: the ordered fact collection for one agent identity
//   - Reconstruction: budget-constrained selection and prompt assembly
//   - Providers: interchangeable language-model backends behind one interface
//   - Stores: durable persistence of cognitive state keyed by agent id
//
// # Getting Started
//
// Create an agent, teach it, and query it:
//
//	agent, err := keeper.Create("my-agent",
//	    keeper.WithStore(st),
//	    keeper.WithProviders(registry),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	agent.Remember("budget: 50k EUR", true)
//	agent.Remember("client: Acme Corp", true)
//
//	answer, err := agent.Ask(ctx, "What is the project budget?")
//
// Save the agent and restore it later, with a different provider if you
// like; memory survives the switch:
//
//	if err := agent.Save(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	agent, err = keeper.Load(ctx, "my-agent",
//	    keeper.WithStore(st),
//	    keeper.WithProviders(registry),
//	    keeper.WithDefaultProvider("openai"),
//	)
//
// # Architecture
//
// The SDK is organized into focused packages:
//
//   - memory: the fact and cognitive-state data model
//   - tokens: approximate token costs and per-model budgets
//   - reconstruct: the selection engine, prompt assembly, and statistics
//   - llm: the provider interface, registry, and adapters
//   - store: persistence backends (SQLite, Redis, etcd, in-memory)
//   - config: YAML and environment configuration
//
// The root package ties them together behind the Agent handle.
//
// # Observability
//
// Queries emit OpenTelemetry spans and metrics when a tracer or meter is
// configured via WithTracer and WithMeter, and structured logs through
// log/slog via WithLogger. All three default to no-ops.
package keeper
