package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/daniel/resume-mcp/internal/config"
)

const ollamaTimeout = 120 * time.Second

// Ollama talks to a local Ollama daemon over its plain HTTP API. Local
// models can be slow, hence the generous client timeout.
type Ollama struct {
	cfg      config.ProviderConfig
	client   *http.Client
	models   []string
	defModel string
}

// NewOllama builds the provider from its config block.
func NewOllama(cfg config.ProviderConfig) *Ollama {
	models := []string{"llama2", "codellama", "mistral"}
	return &Ollama{
		cfg:      cfg,
		client:   &http.Client{Timeout: ollamaTimeout},
		models:   models,
		defModel: defaultModel(cfg.DefaultModel, models),
	}
}

func (p *Ollama) Name() string { return NameOllama }

func (p *Ollama) Models() []string { return p.models }

func (p *Ollama) DefaultModel() string { return p.defModel }

// Available probes the daemon's tag listing, the cheapest endpoint that
// proves the server is up.
func (p *Ollama) Available(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.BaseURL+"/api/tags", nil)
	if err != nil {
		return fmt.Errorf("failed to build probe request: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("server not reachable: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("probe returned status %d", resp.StatusCode)
	}
	return nil
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
}

type ollamaChatResponse struct {
	Message ollamaMessage `json:"message"`
}

// Chat folds the system prompt and the user message into a single user
// turn; local models follow a combined prompt more reliably than a
// separate system message.
func (p *Ollama) Chat(ctx context.Context, model, message, contextText string) (string, error) {
	prompt := systemPrompt(contextText) + "\n\nUSER QUESTION: " + message

	body, err := json.Marshal(ollamaChatRequest{
		Model:    model,
		Messages: []ollamaMessage{{Role: "user", Content: prompt}},
		Stream:   false,
	})
	if err != nil {
		return "", &ProviderCallError{Provider: p.Name(), Model: model, Message: "failed to encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.BaseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", &ProviderCallError{Provider: p.Name(), Model: model, Message: "failed to build request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", &ProviderCallError{Provider: p.Name(), Model: model, Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ProviderCallError{Provider: p.Name(), Model: model, StatusCode: resp.StatusCode, Message: "failed to read response", Cause: err}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &ProviderCallError{
			Provider:   p.Name(),
			Model:      model,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(data)),
		}
	}

	var chatResp ollamaChatResponse
	if err := json.Unmarshal(data, &chatResp); err != nil {
		return "", &ProviderCallError{Provider: p.Name(), Model: model, Message: "failed to decode response", Cause: err}
	}
	return chatResp.Message.Content, nil
}
