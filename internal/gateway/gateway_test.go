package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/daniel/resume-mcp/internal/config"
	"github.com/daniel/resume-mcp/internal/gist"
	"github.com/daniel/resume-mcp/internal/mcpserver"
	"github.com/daniel/resume-mcp/internal/providers"
	"github.com/daniel/resume-mcp/internal/tools"
	"github.com/daniel/resume-mcp/internal/types"
)

type stubSource struct {
	doc *types.ResumeDocument
	err error
}

func (s *stubSource) GetResume(context.Context) (*types.ResumeDocument, error) {
	return s.doc, s.err
}

func testDoc() *types.ResumeDocument {
	return &types.ResumeDocument{
		Basics: types.Basics{
			Name:    "Jane Doe",
			Label:   "Software Engineer",
			Summary: "Backend engineer focused on Go services.",
		},
		Work: []types.Work{
			{Company: "Acme Corp", Position: "Senior Engineer", StartDate: "2020-01"},
		},
		Skills: []types.SkillGroup{
			{Name: "Backend", Keywords: []string{"Go", "Python", "PostgreSQL"}},
		},
	}
}

// newOllamaStub fakes a local Ollama daemon with a fixed reply.
func newOllamaStub(t *testing.T, chatStatus int, reply string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/tags", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"models": []}`)
	})
	mux.HandleFunc("/api/chat", func(w http.ResponseWriter, _ *http.Request) {
		if chatStatus != http.StatusOK {
			http.Error(w, "model exploded", chatStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message": map[string]string{"role": "assistant", "content": reply},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestGateway(t *testing.T, src tools.Source, ollamaURL string) *Gateway {
	t.Helper()
	catalog, err := tools.NewCatalog(src, nil)
	require.NoError(t, err)
	reg := providers.NewRegistry(config.ProvidersConfig{
		Ollama: config.ProviderConfig{BaseURL: ollamaURL, DefaultModel: "llama2"},
	}, zap.NewNop())
	return New(catalog, reg, src, zap.NewNop())
}

func TestGateway_Chat_Validation(t *testing.T) {
	g := newTestGateway(t, &stubSource{doc: testDoc()}, "http://localhost:11434")

	tests := []struct {
		name  string
		req   ChatRequest
		field string
	}{
		{"missing message", ChatRequest{Provider: "ollama"}, "message"},
		{"missing provider", ChatRequest{Message: "hi"}, "provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Chat(context.Background(), tt.req)
			require.Error(t, err)

			var valErr *ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, tt.field, valErr.Field)
		})
	}
}

func TestGateway_Chat_Success(t *testing.T) {
	srv := newOllamaStub(t, http.StatusOK, "she works at Acme Corp")
	g := newTestGateway(t, &stubSource{doc: testDoc()}, srv.URL)

	resp, err := g.Chat(context.Background(), ChatRequest{Message: "hello", Provider: "ollama"})
	require.NoError(t, err)

	assert.Equal(t, "she works at Acme Corp", resp.Response)
	assert.True(t, strings.HasPrefix(resp.Context, "Resume Summary:"), "context was %q", resp.Context)
	assert.Contains(t, resp.Context, "Jane Doe")
}

func TestGateway_Chat_ContextFailureUsesPlaceholder(t *testing.T) {
	srv := newOllamaStub(t, http.StatusOK, "I have no resume to go on")
	g := newTestGateway(t, &stubSource{err: errors.New("gist unreachable")}, srv.URL)

	resp, err := g.Chat(context.Background(), ChatRequest{Message: "hello", Provider: "ollama"})
	require.NoError(t, err, "a context failure must not abort the turn")

	assert.Equal(t, contextPlaceholder, resp.Context)
	assert.Equal(t, "I have no resume to go on", resp.Response)
}

func TestGateway_Chat_UnknownProvider(t *testing.T) {
	g := newTestGateway(t, &stubSource{doc: testDoc()}, "http://localhost:11434")

	_, err := g.Chat(context.Background(), ChatRequest{Message: "hi", Provider: "anthropic"})
	require.Error(t, err)

	var unknownErr *providers.UnknownProviderError
	assert.ErrorAs(t, err, &unknownErr)
}

func TestGateway_Resume(t *testing.T) {
	g := newTestGateway(t, &stubSource{doc: testDoc()}, "http://localhost:11434")

	out, err := g.Resume(context.Background(), "json")
	require.NoError(t, err)
	var doc types.ResumeDocument
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "Jane Doe", doc.Basics.Name)

	out, err = g.Resume(context.Background(), "text")
	require.NoError(t, err)
	assert.Contains(t, out, "WORK EXPERIENCE")

	_, err = g.Resume(context.Background(), "yaml")
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "format", valErr.Field)
}

func TestGateway_Match(t *testing.T) {
	g := newTestGateway(t, &stubSource{doc: testDoc()}, "http://localhost:11434")

	report, err := g.Match(context.Background(), MatchRequest{
		JobDescription: "Looking for engineers fluent in Go and Python.",
	})
	require.NoError(t, err)

	assert.Equal(t, 20, report.MatchScore)
	assert.ElementsMatch(t, []string{"Go", "Python"}, report.MatchedSkills)
	assert.Equal(t, "Found 2 matching skills. Match score: 20%", report.Analysis)
}

func TestGateway_Match_Validation(t *testing.T) {
	g := newTestGateway(t, &stubSource{doc: testDoc()}, "http://localhost:11434")

	_, err := g.Match(context.Background(), MatchRequest{})
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "jobdescription", valErr.Field)
}

func TestGateway_ResumeAvailable(t *testing.T) {
	g := newTestGateway(t, &stubSource{doc: testDoc()}, "http://localhost:11434")
	assert.True(t, g.ResumeAvailable(context.Background()))

	g = newTestGateway(t, &stubSource{err: errors.New("gist unreachable")}, "http://localhost:11434")
	assert.False(t, g.ResumeAvailable(context.Background()))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &ValidationError{Field: "message", Message: "is required"}, http.StatusBadRequest},
		{"unknown provider", &providers.UnknownProviderError{Name: "x"}, http.StatusBadRequest},
		{"unknown tool", &tools.UnknownToolError{Name: "x"}, http.StatusBadRequest},
		{"unknown resource", &mcpserver.UnknownResourceError{URI: "resume://x"}, http.StatusBadRequest},
		{"provider unavailable", &providers.ProviderUnavailableError{Provider: "openai", Reason: "no key"}, http.StatusServiceUnavailable},
		{"fetch failure", &gist.FetchError{GistID: "abc", Message: "boom"}, http.StatusBadGateway},
		{"parse failure", &gist.ParseError{File: "resume.json", Message: "boom"}, http.StatusBadGateway},
		{"provider call failure", &providers.ProviderCallError{Provider: "ollama", StatusCode: 500}, http.StatusBadGateway},
		{"tool wrapping fetch failure", &tools.ToolExecutionError{
			Tool:    "get_resume",
			Message: "resume unavailable",
			Cause:   &gist.FetchError{GistID: "abc", Message: "boom"},
		}, http.StatusBadGateway},
		{"bare tool failure", &tools.ToolExecutionError{Tool: "get_resume", Message: "boom"}, http.StatusInternalServerError},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
