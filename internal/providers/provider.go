// Package providers implements the registry of chat back-ends the gateway
// dispatches to. Each provider carries a static model list and an
// availability probe; the probe runs on every call, so a provider that
// gains its API key or comes online becomes usable without a restart.
package providers

import "context"

// Provider names as used in chat requests and the availability listing.
const (
	NameOpenRouter = "openrouter"
	NameOpenAI     = "openai"
	NameOllama     = "ollama"
	NameGemini     = "gemini"
)

// Provider is one text-generation back-end with a uniform chat call.
type Provider interface {
	// Name returns the registry key.
	Name() string
	// Models returns the static model list, in preference order.
	Models() []string
	// DefaultModel returns the model used when a request names none.
	DefaultModel() string
	// Available reports whether the provider can currently serve a chat
	// call; nil means available.
	Available(ctx context.Context) error
	// Chat sends one user message grounded with contextText and returns
	// the assistant reply.
	Chat(ctx context.Context, model, message, contextText string) (string, error)
}

// Status is one provider's entry in the availability listing.
type Status struct {
	Name      string   `json:"name"`
	Available bool     `json:"available"`
	Models    []string `json:"models"`
	Default   string   `json:"default_model"`
	Error     string   `json:"error,omitempty"`
}

func defaultModel(configured string, models []string) string {
	if configured != "" {
		return configured
	}
	if len(models) > 0 {
		return models[0]
	}
	return ""
}
