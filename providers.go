package keeper

import (
	"fmt"

	"github.com/agentkeeper-ai/sdk/config"
	"github.com/agentkeeper-ai/sdk/llm"
)

// DefaultRegistry builds a provider registry from a Config. All four real
// providers plus the mock are registered; providers whose credentials are
// missing fail at first use rather than at registration, so a registry
// built from a partial config still serves the providers it can.
func DefaultRegistry(cfg *config.Config) *llm.Registry {
	registry := llm.NewRegistry()

	registry.Register("openai", func() (llm.Provider, error) {
		if cfg.Providers.OpenAI.APIKey == "" {
			return nil, fmt.Errorf("%w: openai api key not set", ErrInvalidConfig)
		}
		return llm.NewOpenAIProvider(cfg.Providers.OpenAI.APIKey, cfg.Providers.OpenAI.Model), nil
	})
	registry.Register("anthropic", func() (llm.Provider, error) {
		if cfg.Providers.Anthropic.APIKey == "" {
			return nil, fmt.Errorf("%w: anthropic api key not set", ErrInvalidConfig)
		}
		return llm.NewAnthropicProvider(cfg.Providers.Anthropic.APIKey, cfg.Providers.Anthropic.Model), nil
	})
	registry.Register("gemini", func() (llm.Provider, error) {
		if cfg.Providers.Gemini.APIKey == "" {
			return nil, fmt.Errorf("%w: gemini api key not set", ErrInvalidConfig)
		}
		return llm.NewGeminiProvider(cfg.Providers.Gemini.APIKey, cfg.Providers.Gemini.Model), nil
	})
	registry.Register("ollama", func() (llm.Provider, error) {
		return llm.NewOllamaProvider(cfg.Providers.Ollama.Host, cfg.Providers.Ollama.Model), nil
	})
	registry.Register("mock", func() (llm.Provider, error) {
		return llm.NewMockProvider(), nil
	})

	return registry
}
