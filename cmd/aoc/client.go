package main

import (
	"fmt"
	"log/slog"

	aoc "github.com/ankarhem/advent-of-code"
	"github.com/ankarhem/advent-of-code/internal/config"
)

// newClient builds a client from cfg. The database is opened only when
// withDB is set.
func newClient(cfg config.AppConfig, logger *slog.Logger, withDB bool, extra ...aoc.Option) (*aoc.Client, error) {
	opts := []aoc.Option{
		aoc.WithLogger(logger),
		aoc.WithWorkerCount(cfg.WorkerCount()),
		aoc.WithChunkSize(cfg.ChunkSize()),
	}
	if cfg.Coalesce() {
		opts = append(opts, aoc.WithCoalesce())
	}
	if withDB {
		if err := cfg.EnsureDataDir(); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
		opts = append(opts, aoc.WithDatabaseURL(cfg.DBURL()))
	}
	opts = append(opts, extra...)

	client, err := aoc.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return client, nil
}
