package providers

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/daniel/resume-mcp/internal/config"
)

// Gemini talks to the Google Gemini API. The genai client is created
// lazily on first use because construction needs a context and the
// provider may sit unconfigured for the whole process lifetime.
type Gemini struct {
	cfg      config.ProviderConfig
	models   []string
	defModel string

	once    sync.Once
	client  *genai.Client
	initErr error
}

// NewGemini builds the provider from its config block.
func NewGemini(cfg config.ProviderConfig) *Gemini {
	models := []string{"gemini-2.5-flash-lite", "gemini-2.5-flash", "gemini-2.5-pro"}
	return &Gemini{
		cfg:      cfg,
		models:   models,
		defModel: defaultModel(cfg.DefaultModel, models),
	}
}

func (p *Gemini) Name() string { return NameGemini }

func (p *Gemini) Models() []string { return p.models }

func (p *Gemini) DefaultModel() string { return p.defModel }

func (p *Gemini) Available(_ context.Context) error {
	if strings.TrimSpace(p.cfg.APIKey) == "" {
		return errors.New("no API key configured")
	}
	return nil
}

func (p *Gemini) ensureClient(ctx context.Context) (*genai.Client, error) {
	p.once.Do(func() {
		p.client, p.initErr = genai.NewClient(ctx, option.WithAPIKey(p.cfg.APIKey))
	})
	return p.client, p.initErr
}

func (p *Gemini) Chat(ctx context.Context, model, message, contextText string) (string, error) {
	client, err := p.ensureClient(ctx)
	if err != nil {
		return "", &ProviderCallError{Provider: p.Name(), Model: model, Message: "failed to create client", Cause: err}
	}

	m := client.GenerativeModel(model)
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt(contextText))},
	}

	resp, err := m.GenerateContent(ctx, genai.Text(message))
	if err != nil {
		callErr := &ProviderCallError{
			Provider: p.Name(),
			Model:    model,
			Message:  "generation request failed",
			Cause:    err,
		}
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			callErr.StatusCode = apiErr.Code
		}
		return "", callErr
	}
	return p.extractText(model, resp)
}

func (p *Gemini) extractText(model string, resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", &ProviderCallError{Provider: p.Name(), Model: model, Message: "no candidates in response"}
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &ProviderCallError{Provider: p.Name(), Model: model, Message: "no content in response"}
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", &ProviderCallError{Provider: p.Name(), Model: model, Message: "no text parts in response"}
	}
	return strings.Join(parts, ""), nil
}
