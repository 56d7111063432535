// Package mcpserver exposes the resume catalogue over the Model Context
// Protocol. Tools and resources are registered once at construction; the
// server then speaks the protocol on stdio, which is why nothing in this
// package may write to stdout.
package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/daniel/resume-mcp/internal/tools"
)

const serverName = "resume-mcp"

const serverInstructions = `This server exposes a single resume document.

Read resources for whole sections (resume://full, resume://summary,
resume://experience, resume://skills) and call tools when you need
filtered or searched views: get_resume, get_experience, get_skills,
search_resume. All tool results are self-contained text; no tool
mutates anything.`

// Server wires the tool catalogue and the fixed resource set into an MCP
// server instance.
type Server struct {
	mcp       *server.MCPServer
	catalog   *tools.Catalog
	source    tools.Source
	resources map[string]resourceDefinition
	logger    *zap.Logger
}

// New registers every tool and resource and returns the ready-to-serve
// server.
func New(catalog *tools.Catalog, source tools.Source, version string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		mcp: server.NewMCPServer(
			serverName,
			version,
			server.WithToolCapabilities(false),
			server.WithResourceCapabilities(false, false),
			server.WithRecovery(),
			server.WithInstructions(serverInstructions),
		),
		catalog:   catalog,
		source:    source,
		resources: make(map[string]resourceDefinition),
		logger:    logger,
	}
	s.registerTools()
	s.registerResources()
	return s
}

// Serve runs the protocol loop on stdin/stdout until the client disconnects.
func (s *Server) Serve() error {
	s.logger.Info("serving MCP on stdio", zap.String("server", serverName))
	return server.ServeStdio(s.mcp)
}

func (s *Server) registerTools() {
	for _, def := range s.catalog.Definitions() {
		t := mcp.NewToolWithRawSchema(def.Name, def.Description, def.InputSchema)
		s.mcp.AddTool(t, s.toolHandler(def.Name))
	}
}

// toolHandler adapts a catalogue tool to the protocol. Execution failures
// become isError results so the client sees them as tool output rather than
// a broken protocol exchange.
func (s *Server) toolHandler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out, err := s.catalog.Call(ctx, name, req.GetArguments())
		if err != nil {
			s.logger.Warn("tool call failed", zap.String("tool", name), zap.Error(err))
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(out), nil
	}
}
