package providers

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/daniel/resume-mcp/internal/config"
)

// Registry holds the fixed provider set and dispatches chat calls. It is
// read-only after construction and safe for concurrent use.
type Registry struct {
	providers map[string]Provider
	order     []string
	logger    *zap.Logger
}

// NewRegistry builds all four providers from configuration. Providers with
// missing credentials are still registered; they just report unavailable
// until configured.
func NewRegistry(cfg config.ProvidersConfig, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Registry{
		providers: make(map[string]Provider),
		logger:    logger,
	}
	r.register(NewOpenRouter(cfg.OpenRouter))
	r.register(NewOpenAI(cfg.OpenAI))
	r.register(NewOllama(cfg.Ollama))
	r.register(NewGemini(cfg.Gemini))
	return r
}

func (r *Registry) register(p Provider) {
	r.providers[p.Name()] = p
	r.order = append(r.order, p.Name())
}

// Names returns the provider names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Get looks up a provider by name.
func (r *Registry) Get(name string) (Provider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, &UnknownProviderError{Name: name}
	}
	return p, nil
}

// Chat dispatches one message to the named provider. The availability
// probe runs first on every call; an empty model falls back to the
// provider's default. The registry never retries — that policy belongs to
// callers.
func (r *Registry) Chat(ctx context.Context, providerName, model, message, contextText string) (string, error) {
	p, err := r.Get(providerName)
	if err != nil {
		return "", err
	}
	if err := p.Available(ctx); err != nil {
		return "", &ProviderUnavailableError{Provider: providerName, Reason: err.Error(), Cause: err}
	}
	if model == "" {
		model = p.DefaultModel()
	}

	start := time.Now()
	out, err := p.Chat(ctx, model, message, contextText)
	if err != nil {
		return "", err
	}
	r.logger.Info("chat completed",
		zap.String("provider", providerName),
		zap.String("model", model),
		zap.Duration("duration", time.Since(start)),
		zap.Int("response_chars", len(out)),
	)
	return out, nil
}

// Availability probes every provider concurrently and reports the results
// in registration order.
func (r *Registry) Availability(ctx context.Context) []Status {
	statuses := make([]Status, len(r.order))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range r.order {
		p := r.providers[name]
		g.Go(func() error {
			st := Status{
				Name:    p.Name(),
				Models:  p.Models(),
				Default: p.DefaultModel(),
			}
			if err := p.Available(ctx); err != nil {
				st.Error = err.Error()
			} else {
				st.Available = true
			}
			statuses[i] = st
			return nil
		})
	}
	// Probes report into their slot instead of failing the group.
	_ = g.Wait()
	return statuses
}
