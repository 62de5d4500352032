// Package llm defines the provider boundary for AgentKeeper: a single query
// capability shared by every language-model backend, an explicit registry
// mapping provider names to constructors, and a keyword check that verifies
// which memory facts a model response reflects.
//
// The core of the SDK depends only on the Provider interface. Each concrete
// adapter (OpenAI, Anthropic, Gemini, Ollama, and a mock for offline use)
// implements it against the vendor's own API:
//
//	registry := llm.NewRegistry()
//	registry.Register("openai", func() (llm.Provider, error) {
//	    return llm.NewOpenAIProvider(apiKey, "gpt-4-turbo"), nil
//	})
//
//	provider, err := registry.Get("openai")
//	if err != nil {
//	    return err
//	}
//	answer, err := provider.Query(ctx, systemContext, "What is the budget?")
//
// Registries are plain values passed at call time; there is no process-wide
// provider table. Adapters perform no retries or backoff: a failed query
// surfaces immediately and cancellation flows through the context.
package llm
