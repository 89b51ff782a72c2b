package aoc

import (
	"log/slog"
	"path/filepath"

	"github.com/ankarhem/advent-of-code/internal/config"
)

// clientConfig holds configuration for Client construction.
type clientConfig struct {
	dbURL       string
	logger      *slog.Logger
	workerCount int
	chunkSize   uint64
	coalesce    bool
	recordRuns  bool
	year        int
	day         int
}

func newClientConfig() *clientConfig {
	return &clientConfig{
		workerCount: config.DefaultWorkerCount(),
		chunkSize:   config.DefaultChunkSize,
	}
}

// Option configures the Client.
type Option func(*clientConfig)

// WithSQLite stores runs in the SQLite database at path.
func WithSQLite(path string) Option {
	return func(c *clientConfig) {
		if path != ":memory:" {
			path = filepath.Clean(path)
		}
		c.dbURL = "sqlite:///" + path
	}
}

// WithPostgres stores runs in PostgreSQL.
func WithPostgres(dsn string) Option {
	return func(c *clientConfig) { c.dbURL = dsn }
}

// WithDatabaseURL stores runs in the database named by url
// (sqlite:///path or postgres://...).
func WithDatabaseURL(url string) Option {
	return func(c *clientConfig) { c.dbURL = url }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *clientConfig) { c.logger = l }
}

// WithWorkerCount bounds solver concurrency. Values below 1 select GOMAXPROCS.
func WithWorkerCount(n int) Option {
	return func(c *clientConfig) { c.workerCount = n }
}

// WithChunkSize sets the largest seed interval folded by one work unit.
// Zero disables chunking.
func WithChunkSize(n uint64) Option {
	return func(c *clientConfig) { c.chunkSize = n }
}

// WithCoalesce merges touching intervals between stages.
func WithCoalesce() Option {
	return func(c *clientConfig) { c.coalesce = true }
}

// WithRecordRuns stores every SolveText and SolveFile result.
// Requires a database option.
func WithRecordRuns() Option {
	return func(c *clientConfig) { c.recordRuns = true }
}

// WithPuzzle sets the year and day recorded with runs.
func WithPuzzle(year, day int) Option {
	return func(c *clientConfig) {
		c.year = year
		c.day = day
	}
}

// WithConfig applies the solver and storage settings of an AppConfig.
func WithConfig(cfg config.AppConfig) Option {
	return func(c *clientConfig) {
		c.dbURL = cfg.DBURL()
		c.workerCount = cfg.WorkerCount()
		c.chunkSize = cfg.ChunkSize()
		c.coalesce = cfg.Coalesce()
		c.recordRuns = cfg.RecordRuns()
	}
}
