package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daniel/resume-mcp/internal/gist"
	"github.com/daniel/resume-mcp/internal/schemas"
)

var (
	publishGistID      string
	publishDescription string
	publishPublic      bool
)

var publishCmd = &cobra.Command{
	Use:   "publish <resume.json>",
	Short: "Publish a resume document to a gist",
	Long:  "Upload a local resume.json to the document store: create a new gist, or update the configured one in place.",
	Args:  cobra.ExactArgs(1),
	RunE:  runPublish,
}

func init() {
	publishCmd.Flags().StringVar(&publishGistID, "gist-id", "", "Gist to update (default: create a new gist)")
	publishCmd.Flags().StringVar(&publishDescription, "description", "Resume data for MCP server", "Gist description")
	publishCmd.Flags().BoolVar(&publishPublic, "public", true, "Create the gist as public")

	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadRuntime()
	if err != nil {
		return err
	}
	defer log.Sync()

	if cfg.Gist.Token == "" {
		return fmt.Errorf("GITHUB_TOKEN is required to publish")
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	// Reject documents the server would later fail to serve.
	if err := schemas.ValidateResume(content); err != nil {
		return fmt.Errorf("%s failed validation: %w", args[0], err)
	}

	client := gist.NewClient(gist.Options{
		APIBase: cfg.Gist.APIBase,
		Token:   cfg.Gist.Token,
	})

	var info *gist.GistInfo
	if publishGistID != "" {
		info, err = client.UpdateGist(cmd.Context(), publishGistID, publishDescription, string(content))
	} else {
		info, err = client.CreateGist(cmd.Context(), publishDescription, publishPublic, string(content))
	}
	if err != nil {
		return fmt.Errorf("failed to publish: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Published gist %s\n", info.ID)
	fmt.Fprintf(os.Stdout, "URL: %s\n", info.HTMLURL)
	if info.RawURL != "" {
		fmt.Fprintf(os.Stdout, "Raw: %s\n", info.RawURL)
	}
	fmt.Fprintf(os.Stdout, "Set RESUME_GIST_ID=%s to serve this document\n", info.ID)

	return nil
}
