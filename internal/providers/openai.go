package providers

import (
	"context"
	"errors"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/daniel/resume-mcp/internal/config"
)

// OpenAI talks to the OpenAI chat completions API.
type OpenAI struct {
	cfg      config.ProviderConfig
	client   openai.Client
	models   []string
	defModel string
}

// NewOpenAI builds the provider from its config block. A missing API key
// is not an error here; it only makes the availability probe fail.
func NewOpenAI(cfg config.ProviderConfig) *OpenAI {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	models := []string{"gpt-3.5-turbo", "gpt-4", "gpt-4-turbo"}
	return &OpenAI{
		cfg:      cfg,
		client:   openai.NewClient(opts...),
		models:   models,
		defModel: defaultModel(cfg.DefaultModel, models),
	}
}

func (p *OpenAI) Name() string { return NameOpenAI }

func (p *OpenAI) Models() []string { return p.models }

func (p *OpenAI) DefaultModel() string { return p.defModel }

func (p *OpenAI) Available(_ context.Context) error {
	if strings.TrimSpace(p.cfg.APIKey) == "" {
		return errors.New("no API key configured")
	}
	return nil
}

func (p *OpenAI) Chat(ctx context.Context, model, message, contextText string) (string, error) {
	return completeChat(ctx, p.client, p.Name(), model, message, contextText)
}

// completeChat runs one system+user exchange against an OpenAI-compatible
// chat completions endpoint. Shared by the OpenAI and OpenRouter providers.
func completeChat(ctx context.Context, client openai.Client, provider, model, message, contextText string) (string, error) {
	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt(contextText)),
			openai.UserMessage(message),
		},
	})
	if err != nil {
		callErr := &ProviderCallError{
			Provider: provider,
			Model:    model,
			Message:  "chat completion request failed",
			Cause:    err,
		}
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			callErr.StatusCode = apiErr.StatusCode
		}
		return "", callErr
	}
	if len(resp.Choices) == 0 {
		return "", &ProviderCallError{Provider: provider, Model: model, Message: "no choices in response"}
	}
	return resp.Choices[0].Message.Content, nil
}
