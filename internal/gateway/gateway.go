// Package gateway orchestrates chat turns over the resume: it selects a
// grounding context slice through the shared tool catalogue, dispatches
// the turn to a provider, and serves the whole thing over HTTP.
package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/daniel/resume-mcp/internal/logger"
	"github.com/daniel/resume-mcp/internal/providers"
	"github.com/daniel/resume-mcp/internal/resume"
	"github.com/daniel/resume-mcp/internal/tools"
)

// contextPlaceholder substitutes for the grounding context when the
// document cannot be served; the turn proceeds ungrounded instead of
// failing.
const contextPlaceholder = "résumé data unavailable"

const healthProbeTimeout = 5 * time.Second

// Gateway ties the tool catalogue, the context selector and the provider
// registry into the chat operations the HTTP API exposes.
type Gateway struct {
	catalog  *tools.Catalog
	selector *Selector
	registry *providers.Registry
	source   tools.Source
	logger   *zap.Logger
}

// New wires a gateway over the shared catalogue, registry and document
// source.
func New(catalog *tools.Catalog, registry *providers.Registry, source tools.Source, log *zap.Logger) *Gateway {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gateway{
		catalog:  catalog,
		selector: NewSelector(catalog),
		registry: registry,
		source:   source,
		logger:   log,
	}
}

// Chat runs one turn: validate, select context, dispatch to the provider.
// A context-selection failure downgrades to the placeholder rather than
// aborting; registry errors surface to the caller unretried.
func (g *Gateway) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	log := g.logger.With(zap.String("request_id", uuid.NewString()))

	contextText, err := g.selector.Select(ctx, req.Message)
	if err != nil {
		log.Warn("context selection failed, proceeding ungrounded", zap.Error(err))
		contextText = contextPlaceholder
	}

	log.Info("dispatching chat",
		zap.String("provider", req.Provider),
		zap.String("model", req.Model),
		zap.String("context_preview", logger.Truncate(contextText, 80)),
	)

	response, err := g.registry.Chat(ctx, req.Provider, req.Model, req.Message, contextText)
	if err != nil {
		log.Warn("chat failed", zap.Error(err))
		return nil, err
	}
	return &ChatResponse{Response: response, Context: contextText}, nil
}

// Resume returns the current document through the get_resume tool, either
// as canonical JSON or rendered plain text.
func (g *Gateway) Resume(ctx context.Context, format string) (string, error) {
	if format != "json" && format != "text" {
		return "", &ValidationError{Field: "format", Message: fmt.Sprintf("must be %q or %q", "json", "text")}
	}
	return g.catalog.Call(ctx, tools.ToolGetResume, map[string]any{"format": format})
}

// Match scores the resume's skill keywords against a job description.
func (g *Gateway) Match(ctx context.Context, req MatchRequest) (*resume.MatchReport, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	doc, err := g.source.GetResume(ctx)
	if err != nil {
		return nil, err
	}
	return resume.AnalyzeMatch(doc, req.JobDescription), nil
}

// Providers reports the availability listing for all registered providers.
func (g *Gateway) Providers(ctx context.Context) []providers.Status {
	return g.registry.Availability(ctx)
}

// ResumeAvailable reports whether the document can currently be served.
// Warm cache hits make this cheap; a cold cache triggers one fetch.
func (g *Gateway) ResumeAvailable(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
	defer cancel()
	_, err := g.source.GetResume(ctx)
	return err == nil
}
