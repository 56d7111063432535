// Package main provides the entry point for the resume MCP server and its
// HTTP gateway.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/daniel/resume-mcp/internal/config"
	"github.com/daniel/resume-mcp/internal/logger"
)

// version is reported in the MCP initialize handshake.
const version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:     "resume_mcp",
	Short:   "Resume MCP Server",
	Long:    "Resume MCP serves a gist-hosted resume to MCP clients over stdio and to web clients through an LLM chat gateway.",
	Version: version,
}

var (
	configPath string
	logLevel   string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default resume-mcp.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the configured log level")
}

// loadRuntime loads configuration and builds the shared logger. Flags win
// over config file and environment values.
func loadRuntime() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	log, err := logger.New(cfg.LogLevel, cfg.LogJSON)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
