package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/daniel/resume-mcp/internal/resume"
	"github.com/daniel/resume-mcp/internal/types"
)

// Resource URIs. The catalogue is fixed: four read-only views of the
// resume document.
const (
	ResourceFull       = "resume://full"
	ResourceSummary    = "resume://summary"
	ResourceExperience = "resume://experience"
	ResourceSkills     = "resume://skills"
)

const (
	mimeJSON = "application/json"
	mimeText = "text/plain"
)

// UnknownResourceError reports a read for a URI outside the fixed
// resource catalogue.
type UnknownResourceError struct {
	URI string
}

func (e *UnknownResourceError) Error() string {
	return fmt.Sprintf("unknown resource: %s", e.URI)
}

type resourceDefinition struct {
	uri         string
	name        string
	description string
	mimeType    string
	render      func(doc *types.ResumeDocument) (string, error)
}

func resourceDefinitions() []resourceDefinition {
	return []resourceDefinition{
		{
			uri:         ResourceFull,
			name:        "Full Resume",
			description: "The complete resume document in canonical JSON form",
			mimeType:    mimeJSON,
			render: func(doc *types.ResumeDocument) (string, error) {
				return renderJSON(doc)
			},
		},
		{
			uri:         ResourceSummary,
			name:        "Resume Summary",
			description: "A human-readable plain-text rendering of the resume",
			mimeType:    mimeText,
			render: func(doc *types.ResumeDocument) (string, error) {
				return resume.FormatSummary(doc), nil
			},
		},
		{
			uri:         ResourceExperience,
			name:        "Work Experience",
			description: "The work experience entries as JSON, in document order",
			mimeType:    mimeJSON,
			render: func(doc *types.ResumeDocument) (string, error) {
				return renderJSON(doc.Work)
			},
		},
		{
			uri:         ResourceSkills,
			name:        "Skills",
			description: "The skill groups as JSON, in document order",
			mimeType:    mimeJSON,
			render: func(doc *types.ResumeDocument) (string, error) {
				return renderJSON(doc.Skills)
			},
		},
	}
}

func (s *Server) registerResources() {
	for _, def := range resourceDefinitions() {
		s.resources[def.uri] = def
		res := mcp.NewResource(
			def.uri,
			def.name,
			mcp.WithResourceDescription(def.description),
			mcp.WithMIMEType(def.mimeType),
		)
		s.mcp.AddResource(res, s.resourceHandler(def.uri))
	}
}

func (s *Server) resourceHandler(uri string) server.ResourceHandlerFunc {
	return func(ctx context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		text, mimeType, err := s.readResource(ctx, uri)
		if err != nil {
			s.logger.Warn("resource read failed", zap.String("uri", uri), zap.Error(err))
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      uri,
				MIMEType: mimeType,
				Text:     text,
			},
		}, nil
	}
}

// readResource renders a single resource from the current document
// snapshot. Each read sees one consistent snapshot; two resources read
// back to back may observe different snapshots if the cache refreshed
// in between.
func (s *Server) readResource(ctx context.Context, uri string) (text, mimeType string, err error) {
	def, ok := s.resources[uri]
	if !ok {
		return "", "", &UnknownResourceError{URI: uri}
	}
	doc, err := s.source.GetResume(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", uri, err)
	}
	text, err = def.render(doc)
	if err != nil {
		return "", "", fmt.Errorf("failed to render %s: %w", uri, err)
	}
	return text, def.mimeType, nil
}

func renderJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
