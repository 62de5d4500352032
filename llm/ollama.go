package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultOllamaHost = "http://localhost:11434"

// OllamaProvider implements Provider against a local Ollama server's
// /api/chat endpoint, non-streaming.
type OllamaProvider struct {
	host       string
	model      string
	httpClient *http.Client
}

// NewOllamaProvider creates an Ollama provider. An empty host defaults to
// http://localhost:11434 and an empty model to llama3.
func NewOllamaProvider(host, model string) *OllamaProvider {
	if host == "" {
		host = defaultOllamaHost
	}
	if model == "" {
		model = "llama3"
	}
	return &OllamaProvider{
		host:       host,
		model:      model,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

// Name returns "ollama".
func (p *OllamaProvider) Name() string { return "ollama" }

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
}

type ollamaResponse struct {
	Message ollamaMessage `json:"message"`
}

// Query sends a system and user message pair to /api/chat and returns the
// response message content.
func (p *OllamaProvider) Query(ctx context.Context, systemContext, userMessage string) (string, error) {
	payload, err := json.Marshal(ollamaRequest{
		Model: p.model,
		Messages: []ollamaMessage{
			{Role: "system", Content: systemContext},
			{Role: "user", Content: userMessage},
		},
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("llm: ollama marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.host+"/api/chat", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("llm: ollama build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("llm: ollama query: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("llm: ollama read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("llm: ollama query: status %d: %s", resp.StatusCode, body)
	}

	var parsed ollamaResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("llm: ollama decode response: %w", err)
	}
	if parsed.Message.Content == "" {
		return "", ErrEmptyResponse
	}
	return parsed.Message.Content, nil
}
