package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/daniel/resume-mcp/internal/observability"
	"github.com/daniel/resume-mcp/internal/providers"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "Probe the configured chat providers",
	Long:  "Probe every chat provider and print an availability report with model lists and default models.",
	RunE:  runProviders,
}

func init() {
	rootCmd.AddCommand(providersCmd)
}

func runProviders(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadRuntime()
	if err != nil {
		return err
	}
	defer log.Sync()

	registry := providers.NewRegistry(cfg.Providers, log)
	statuses := registry.Availability(cmd.Context())

	observability.NewPrinter(os.Stdout).PrintProviders(statuses)

	return nil
}
