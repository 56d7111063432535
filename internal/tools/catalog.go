// Package tools defines the fixed tool catalogue shared by the protocol
// server and the HTTP gateway. Each tool carries a JSON schema; arguments
// are validated against it before the handler runs, and every failure is
// wrapped so callers receive a typed error instead of a panic or a raw
// adapter fault.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"github.com/daniel/resume-mcp/internal/resume"
	"github.com/daniel/resume-mcp/internal/types"
)

// Tool names. These are the identifiers clients pass to tools/call.
const (
	ToolGetResume     = "get_resume"
	ToolGetExperience = "get_experience"
	ToolGetSkills     = "get_skills"
	ToolSearchResume  = "search_resume"
)

const (
	getResumeSchema = `{
		"type": "object",
		"properties": {
			"format": {
				"type": "string",
				"description": "Output format: canonical JSON or rendered plain text",
				"enum": ["json", "text"],
				"default": "json"
			}
		},
		"additionalProperties": false
	}`

	getExperienceSchema = `{
		"type": "object",
		"properties": {
			"company": {
				"type": "string",
				"description": "Case-insensitive substring filter on the company name"
			}
		},
		"additionalProperties": false
	}`

	getSkillsSchema = `{
		"type": "object",
		"properties": {
			"category": {
				"type": "string",
				"description": "Case-insensitive substring filter on the skill group name"
			}
		},
		"additionalProperties": false
	}`

	searchResumeSchema = `{
		"type": "object",
		"properties": {
			"query": {
				"type": "string",
				"description": "Case-insensitive substring to look for",
				"minLength": 1
			}
		},
		"required": ["query"],
		"additionalProperties": false
	}`
)

// Definition describes one tool as exposed over the wire: its name, a
// human-readable description, and the raw JSON schema for its arguments.
type Definition struct {
	Name        string
	Description string
	InputSchema json.RawMessage
}

// Source provides the current resume document snapshot. It is satisfied by
// gist.Store.
type Source interface {
	GetResume(ctx context.Context) (*types.ResumeDocument, error)
}

type handlerFunc func(doc *types.ResumeDocument, args map[string]any) (string, error)

type tool struct {
	def     Definition
	schema  *gojsonschema.Schema
	handler handlerFunc
}

// Catalog dispatches validated tool invocations against the resume
// document served by its Source.
type Catalog struct {
	source Source
	logger *zap.Logger
	tools  map[string]*tool
	order  []string
}

// NewCatalog compiles the tool schemas and wires the handlers. The returned
// catalogue is safe for concurrent use.
func NewCatalog(source Source, logger *zap.Logger) (*Catalog, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Catalog{
		source: source,
		logger: logger,
		tools:  make(map[string]*tool),
	}

	defs := []struct {
		name        string
		description string
		schema      string
		handler     handlerFunc
	}{
		{
			name:        ToolGetResume,
			description: "Get the full resume, as canonical JSON or rendered plain text",
			schema:      getResumeSchema,
			handler:     handleGetResume,
		},
		{
			name:        ToolGetExperience,
			description: "Get work experience entries, optionally filtered by company name",
			schema:      getExperienceSchema,
			handler:     handleGetExperience,
		},
		{
			name:        ToolGetSkills,
			description: "Get skill groups, optionally filtered by category name",
			schema:      getSkillsSchema,
			handler:     handleGetSkills,
		},
		{
			name:        ToolSearchResume,
			description: "Search the resume summary, work experience and skills for a substring",
			schema:      searchResumeSchema,
			handler:     handleSearchResume,
		},
	}

	for _, d := range defs {
		compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(d.schema))
		if err != nil {
			return nil, fmt.Errorf("failed to compile schema for %s: %w", d.name, err)
		}
		c.tools[d.name] = &tool{
			def: Definition{
				Name:        d.name,
				Description: d.description,
				InputSchema: json.RawMessage(d.schema),
			},
			schema:  compiled,
			handler: d.handler,
		}
		c.order = append(c.order, d.name)
	}
	return c, nil
}

// Definitions returns the tool definitions in registration order.
func (c *Catalog) Definitions() []Definition {
	defs := make([]Definition, 0, len(c.order))
	for _, name := range c.order {
		defs = append(defs, c.tools[name].def)
	}
	return defs
}

// Call validates args against the named tool's schema and executes it
// against the current document snapshot. The result is serialized text:
// indented JSON for structured output, plain text for the text format.
func (c *Catalog) Call(ctx context.Context, name string, args map[string]any) (string, error) {
	t, ok := c.tools[name]
	if !ok {
		return "", &UnknownToolError{Name: name}
	}
	if args == nil {
		args = map[string]any{}
	}
	if err := t.validate(args); err != nil {
		return "", &ToolExecutionError{Tool: name, Message: "invalid arguments", Cause: err}
	}

	doc, err := c.source.GetResume(ctx)
	if err != nil {
		return "", &ToolExecutionError{Tool: name, Message: "resume unavailable", Cause: err}
	}

	out, err := t.handler(doc, args)
	if err != nil {
		return "", &ToolExecutionError{Tool: name, Message: "execution failed", Cause: err}
	}
	c.logger.Debug("tool call completed", zap.String("tool", name), zap.Int("result_bytes", len(out)))
	return out, nil
}

func (t *tool) validate(args map[string]any) error {
	result, err := t.schema.Validate(gojsonschema.NewGoLoader(args))
	if err != nil {
		return fmt.Errorf("failed to evaluate schema: %w", err)
	}
	if result.Valid() {
		return nil
	}
	details := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		details = append(details, fmt.Sprintf("%s: %s", field, desc.Description()))
	}
	return fmt.Errorf("%s", strings.Join(details, "; "))
}

func handleGetResume(doc *types.ResumeDocument, args map[string]any) (string, error) {
	format, _ := args["format"].(string)
	if format == "text" {
		return resume.FormatText(doc), nil
	}
	return marshalIndent(doc)
}

func handleGetExperience(doc *types.ResumeDocument, args map[string]any) (string, error) {
	company, _ := args["company"].(string)
	return marshalIndent(resume.FilterWork(doc, company))
}

func handleGetSkills(doc *types.ResumeDocument, args map[string]any) (string, error) {
	category, _ := args["category"].(string)
	return marshalIndent(resume.FilterSkills(doc, category))
}

func handleSearchResume(doc *types.ResumeDocument, args map[string]any) (string, error) {
	query, _ := args["query"].(string)
	return marshalIndent(resume.Search(doc, query))
}

func marshalIndent(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize result: %w", err)
	}
	return string(data), nil
}
