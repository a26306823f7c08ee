package main

import (
	"fmt"
	"log/slog"

	"github.com/veridex/veridex"
	"github.com/veridex/veridex/infrastructure/provider"
	"github.com/veridex/veridex/internal/log"
	"github.com/veridex/veridex/internal/mcp"
	"github.com/spf13/cobra"
)

func stdioCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   "stdio",
		Short: "Start MCP server on stdio",
		Long: `Start the MCP (Model Context Protocol) server on stdio.

This allows AI assistants to interact with Veridex for code search and understanding.
Configuration is loaded from environment variables and .env file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStdio(envFile)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file")

	return cmd
}

func runStdio(envFile string) error {
	// Load configuration
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}

	// Ensure directories exist
	if err := cfg.EnsureDataDir(); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	// Setup logger to file (can't use stdout for MCP)
	logger := log.NewLogger(cfg)
	slogger := logger.Slog()

	slogger.Info("starting MCP server",
		slog.String("version", version),
		slog.String("data_dir", cfg.DataDir()),
	)

	// Build veridex client options
	opts := []veridex.Option{
		veridex.WithDataDir(cfg.DataDir()),
		veridex.WithLogger(slogger),
	}

	// Configure storage based on database URL
	if cfg.DBURL() != "" {
		// Assume VectorChord for PostgreSQL databases (default for veridex)
		opts = append(opts, veridex.WithPostgresVectorchord(cfg.DBURL()))
	} else {
		// Fall back to SQLite
		opts = append(opts, veridex.WithSQLite(cfg.DataDir()+"/veridex.db"))
	}

	// Configure embedding provider if available
	embEndpoint := cfg.EmbeddingEndpoint()
	if embEndpoint != nil && embEndpoint.BaseURL() != "" && embEndpoint.APIKey() != "" {
		opts = append(opts, veridex.WithOpenAIConfig(provider.OpenAIConfig{
			APIKey:         embEndpoint.APIKey(),
			BaseURL:        embEndpoint.BaseURL(),
			EmbeddingModel: embEndpoint.Model(),
			Timeout:        embEndpoint.Timeout(),
			MaxRetries:     embEndpoint.MaxRetries(),
		}))
	}

	// Create veridex client
	client, err := veridex.New(opts...)
	if err != nil {
		return fmt.Errorf("create veridex client: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			slogger.Error("failed to close veridex client", slog.Any("error", err))
		}
	}()

	// Check code search availability
	if !client.Search.Available() {
		slogger.Warn("code search service not available - search will not work")
		return fmt.Errorf("code search service not available: configure database and embedding provider")
	}

	// Create MCP server
	mcpServer := mcp.NewServer(
		client.Repositories, client.Commits, client.Enrichments, client.Blobs,
		client.Search, client.Search, client.Enrichments, client.Files,
		"1.0.0", slogger,
	)

	// Run on stdio
	return mcpServer.ServeStdio()
}
