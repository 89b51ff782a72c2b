package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ankarhem/advent-of-code/infrastructure/api"
	"github.com/ankarhem/advent-of-code/internal/config"
	"github.com/ankarhem/advent-of-code/internal/log"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server with the solve endpoint, run history and MCP.

Environment variables:
  HOST                         Server host (default: 0.0.0.0)
  PORT                         Server port (default: 8080)
  DATA_DIR                     Data directory (default: ~/.aoc)
  DB_URL                       Database URL (default: sqlite:///{data_dir}/aoc.db)
  LOG_LEVEL                    Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  LOG_FORMAT                   Log format: pretty, json (default: pretty)
  WORKER_COUNT                 Concurrent work units per solve (default: GOMAXPROCS)
  CHUNK_SIZE                   Largest seed interval per unit (default: 16777216)
  COALESCE                     Merge touching intervals between stages
  RECORD_RUNS                  Store every solve in the run history
  API_KEYS                     Comma-separated API keys for /api/v1 and /mcp
  CORS_ALLOWED_ORIGINS         Comma-separated allowed origins`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			cfg = applyServeOverrides(cfg, host, port)
			return runServe(cfg)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Server host (default: HOST env or 0.0.0.0)")
	cmd.Flags().IntVar(&port, "port", 0, "Server port (default: PORT env or 8080)")

	return cmd
}

// applyServeOverrides applies command line flag overrides to the config.
func applyServeOverrides(cfg config.AppConfig, host string, port int) config.AppConfig {
	var opts []config.AppConfigOption

	if host != "" {
		opts = append(opts, config.WithHost(host))
	}
	if port != 0 {
		opts = append(opts, config.WithPort(port))
	}

	return cfg.Apply(opts...)
}

func runServe(cfg config.AppConfig) error {
	logger := log.Configure(cfg).Slog()

	attrs := append([]slog.Attr{slog.String("version", version)}, cfg.LogAttrs()...)
	logger.LogAttrs(context.Background(), slog.LevelInfo, "starting aoc server", attrs...)

	client, err := newClient(cfg, logger, true)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Close(); err != nil {
			logger.Error("failed to close client", slog.Any("error", err))
		}
	}()

	server := api.NewAPIServer(client,
		api.WithAPIKeys(cfg.APIKeys()),
		api.WithCORSOrigins(cfg.CORSOrigins()),
		api.WithVersion(version),
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("shutdown error", slog.Any("error", err))
		}
	}()

	return server.ListenAndServe(cfg.Addr())
}
