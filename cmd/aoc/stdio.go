package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ankarhem/advent-of-code/internal/config"
	"github.com/ankarhem/advent-of-code/internal/log"
	"github.com/ankarhem/advent-of-code/internal/mcp"
)

func stdioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stdio",
		Short: "Start the MCP server on stdin/stdout",
		Long: `Start the MCP server for AI coding assistants.

Logs go to stderr so that stdout carries only protocol messages.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runStdio(cfg)
		},
	}
}

func runStdio(cfg config.AppConfig) error {
	logger := log.Configure(cfg).Slog()

	client, err := newClient(cfg, logger, true)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Close(); err != nil {
			logger.Error("failed to close client", slog.Any("error", err))
		}
	}()

	opts := []mcp.ServerOption{
		mcp.WithPipelineOptions(client.PipelineOptions()...),
		mcp.WithLogger(logger),
	}
	if client.Runs != nil {
		opts = append(opts, mcp.WithRuns(client.Runs))
	}

	logger.Info("starting MCP server on stdio", slog.String("version", version))
	return mcp.NewServer(client, version, opts...).ServeStdio()
}
