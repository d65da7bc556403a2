package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the curator application
var rootCmd = &cobra.Command{
	Use:   "curator",
	Short: "Content curation assistant backed by a key-value store",
	Long: `curator tracks content sources, collects inspirations from them, and
manages drafts for articles, LinkedIn posts, and X posts.

It can run as:
  - An MCP (Model Context Protocol) server for AI assistants (default)
  - A one-shot newsletter ingestion tool (ingest)`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "curator version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newIngestCmd())
	rootCmd.AddCommand(newVersionCmd())
}
