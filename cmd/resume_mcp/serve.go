package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/daniel/resume-mcp/internal/gist"
	"github.com/daniel/resume-mcp/internal/mcpserver"
	"github.com/daniel/resume-mcp/internal/tools"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the resume over MCP stdio",
	Long:  `Start the MCP server on stdin/stdout. All diagnostics go to stderr; stdout carries the protocol stream.`,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, log, err := loadRuntime()
	if err != nil {
		return err
	}
	defer log.Sync()

	client := gist.NewClient(gist.Options{
		APIBase: cfg.Gist.APIBase,
		Token:   cfg.Gist.Token,
	})
	store := gist.NewStore(client, cfg.Gist.ID, cfg.Gist.CacheTTL, log)

	catalog, err := tools.NewCatalog(store, log)
	if err != nil {
		return err
	}

	log.Info("starting MCP server",
		zap.String("gist_id", cfg.Gist.ID),
		zap.Duration("cache_ttl", cfg.Gist.CacheTTL),
	)

	return mcpserver.New(catalog, store, version, log).Serve()
}
