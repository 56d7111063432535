package providers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/daniel/resume-mcp/internal/config"
)

const openRouterKeyPrefix = "sk-or-"

// OpenRouter talks to openrouter.ai through its OpenAI-compatible API.
// The HTTP-Referer and X-Title headers identify the app for OpenRouter's
// rankings and are sent on every request.
type OpenRouter struct {
	cfg      config.OpenRouterConfig
	client   openai.Client
	models   []string
	defModel string
}

// NewOpenRouter builds the provider from its config block.
func NewOpenRouter(cfg config.OpenRouterConfig) *OpenRouter {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
	}
	if cfg.SiteURL != "" {
		opts = append(opts, option.WithHeader("HTTP-Referer", cfg.SiteURL))
	}
	if cfg.AppName != "" {
		opts = append(opts, option.WithHeader("X-Title", cfg.AppName))
	}
	models := []string{
		"meta-llama/llama-3.1-8b-instruct:free",
		"microsoft/phi-3-mini-128k-instruct:free",
		"google/gemma-2-9b-it:free",
	}
	return &OpenRouter{
		cfg:      cfg,
		client:   openai.NewClient(opts...),
		models:   models,
		defModel: defaultModel(cfg.DefaultModel, models),
	}
}

func (p *OpenRouter) Name() string { return NameOpenRouter }

func (p *OpenRouter) Models() []string { return p.models }

func (p *OpenRouter) DefaultModel() string { return p.defModel }

// Available checks the key shape without a network round trip; OpenRouter
// keys always carry the sk-or- prefix, so a mismatch is caught before the
// first paid call.
func (p *OpenRouter) Available(_ context.Context) error {
	key := strings.TrimSpace(p.cfg.APIKey)
	if key == "" {
		return errors.New("no API key configured")
	}
	if !strings.HasPrefix(key, openRouterKeyPrefix) {
		return fmt.Errorf("API key must start with %q", openRouterKeyPrefix)
	}
	return nil
}

func (p *OpenRouter) Chat(ctx context.Context, model, message, contextText string) (string, error) {
	return completeChat(ctx, p.client, p.Name(), model, message, contextText)
}
