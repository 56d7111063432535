package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/daniel/resume-mcp/internal/gateway"
	"github.com/daniel/resume-mcp/internal/gist"
	"github.com/daniel/resume-mcp/internal/providers"
	"github.com/daniel/resume-mcp/internal/tools"
)

var gatewayListen string

var gatewayCmd = &cobra.Command{
	Use:   "gateway",
	Short: "Start the HTTP chat gateway",
	Long:  `Start an HTTP server that exposes REST endpoints for resume-grounded chat across the configured LLM providers.`,
	RunE:  runGateway,
}

func init() {
	gatewayCmd.Flags().StringVar(&gatewayListen, "listen", "", "Listen address (overrides gateway.listen)")
	rootCmd.AddCommand(gatewayCmd)
}

func runGateway(_ *cobra.Command, _ []string) error {
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

	registry := providers.NewRegistry(cfg.Providers, log)
	gw := gateway.New(catalog, registry, store, log)

	listen := cfg.Gateway.Listen
	if gatewayListen != "" {
		listen = gatewayListen
	}

	log.Info("starting HTTP gateway",
		zap.String("listen", listen),
		zap.Strings("providers", registry.Names()),
	)

	return gateway.NewServer(listen, gw, log).Start()
}
