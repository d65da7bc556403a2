package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/teemow/curator/internal/config"
	"github.com/teemow/curator/internal/curation"
	"github.com/teemow/curator/internal/gmail"
	"github.com/teemow/curator/internal/server"
)

func newIngestCmd() *cobra.Command {
	var (
		sourceID   string
		maxResults int
		sinceDate  string
		envFile    string
		storeOpts  storeOptions
	)

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Fetch newsletter emails for a tracked source once",
		Long: `Fetch recent emails from a newsletter source via the Gmail API and print
the extracted summaries and article links as JSON.

This is the one-shot equivalent of the fetchNewsletterEmails MCP tool,
useful for cron jobs and for verifying Gmail credentials.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(sourceID, maxResults, sinceDate, envFile, storeOpts)
		},
	}

	cmd.Flags().StringVar(&sourceID, "source-id", "", "ID of the newsletter source to fetch emails for (required)")
	cmd.Flags().IntVar(&maxResults, "max-results", int(gmail.DefaultMaxResults), "Max emails to fetch (1-50)")
	cmd.Flags().StringVar(&sinceDate, "since", "", "Only fetch emails after this date (RFC 3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to an env file with Gmail credentials (default: .env if present)")
	storeOpts.registerFlags(cmd)

	_ = cmd.MarkFlagRequired("source-id")

	return cmd
}

func runIngest(sourceID string, maxResults int, sinceDate, envFile string, storeOpts storeOptions) error {
	ctx := context.Background()

	serverContext, err := newIngestContext(ctx, envFile, storeOpts)
	if err != nil {
		return err
	}
	defer func() {
		closeStore(serverContext.Store(), "ingest")
		if err := serverContext.Shutdown(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	}()

	source, err := serverContext.Collections().SourceByID(ctx, sourceID)
	if err != nil {
		return fmt.Errorf("failed to look up source: %w", err)
	}
	if source == nil {
		return fmt.Errorf("source %s not found", sourceID)
	}
	if source.Type != curation.SourceTypeNewsletter {
		return fmt.Errorf("source %s is of type %q, only newsletter sources can be fetched", sourceID, source.Type)
	}

	client, err := serverContext.MailClient()
	if err != nil {
		return fmt.Errorf("failed to create Gmail client: %w", err)
	}

	emails, err := client.FetchFromSender(source.Identifier, gmail.FetchOptions{
		SinceDate:  sinceDate,
		MaxResults: int64(maxResults),
	})
	if err != nil {
		return fmt.Errorf("failed to fetch emails from %s: %w", source.Identifier, err)
	}

	log.Printf("Fetched %d emails from %s", len(emails), source.Identifier)

	if len(emails) > 0 {
		if err := serverContext.Collections().TouchScanTime(ctx, sourceID); err != nil {
			return fmt.Errorf("failed to record scan time: %w", err)
		}
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(emails)
}

func newIngestContext(ctx context.Context, envFile string, storeOpts storeOptions) (*server.ServerContext, error) {
	cfg, err := config.NewEnvConfig(envFile)
	if err != nil {
		return nil, err
	}

	st, err := newStore(ctx, storeOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	return server.NewServerContext(ctx, st, cfg)
}
