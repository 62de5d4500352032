package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIProvider implements Provider using the OpenAI chat completions API.
type OpenAIProvider struct {
	client openai.Client
	model  string
}

// NewOpenAIProvider creates an OpenAI provider. An empty model defaults to
// gpt-4-turbo.
func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	if model == "" {
		model = "gpt-4-turbo"
	}
	return &OpenAIProvider{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

// Name returns "openai".
func (p *OpenAIProvider) Name() string { return "openai" }

// Query sends the system context and user message as a non-streaming chat
// completion and returns the first choice's content.
func (p *OpenAIProvider) Query(ctx context.Context, systemContext, userMessage string) (string, error) {
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemContext),
			openai.UserMessage(userMessage),
		},
		MaxTokens: openai.Int(maxResponseTokens),
	})
	if err != nil {
		return "", fmt.Errorf("llm: openai query: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}
