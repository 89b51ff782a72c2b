// Package aoc solves almanac puzzles: seed identifiers are pushed through a
// chain of range-remapping stages and the lowest final identifier is
// reported.
//
// Basic usage:
//
//	client, err := aoc.New(aoc.WithWorkerCount(8))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	answer, err := client.SolveText(ctx, input, almanac.ModeRanges)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Part 2:", answer)
//
// With a database configured, solves can be stored and listed:
//
//	client, err := aoc.New(aoc.WithSQLite("runs.db"), aoc.WithRecordRuns())
//	runs, err := client.Runs.List(ctx, 10)
package aoc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/ankarhem/advent-of-code/application/service"
	"github.com/ankarhem/advent-of-code/domain/almanac"
	"github.com/ankarhem/advent-of-code/domain/mapping"
	"github.com/ankarhem/advent-of-code/domain/run"
	loader "github.com/ankarhem/advent-of-code/infrastructure/almanac"
	"github.com/ankarhem/advent-of-code/infrastructure/persistence"
	"github.com/ankarhem/advent-of-code/internal/database"
)

// Client is the main entry point for the library.
//
// Access services via struct fields:
//
//	client.Solver.Solve(ctx, alm, almanac.ModePoints)
//	client.Runs.List(ctx, 10)
type Client struct {
	Solver *service.Solver
	// Runs is nil when no database is configured.
	Runs *service.Runs

	db       *database.Database
	coalesce bool
	record   bool
	logger   *slog.Logger
	closed   atomic.Bool
}

// New creates a Client. A database is opened only when one of the database
// options is given.
func New(opts ...Option) (*Client, error) {
	cfg := newClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	client := &Client{
		Solver: service.NewSolver(
			service.WithWorkers(cfg.workerCount),
			service.WithChunkSize(cfg.chunkSize),
			service.WithSolverLogger(logger),
		),
		coalesce: cfg.coalesce,
		record:   cfg.recordRuns,
		logger:   logger,
	}

	if cfg.dbURL == "" {
		if cfg.recordRuns {
			return nil, fmt.Errorf("record runs: %w", ErrNoDatabase)
		}
		return client, nil
	}

	ctx := context.Background()
	db, err := database.NewDatabase(ctx, cfg.dbURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := persistence.AutoMigrate(ctx, db); err != nil {
		return nil, errors.Join(err, db.Close())
	}

	client.db = &db
	client.Runs = service.NewRuns(persistence.NewRunStore(db), logger)
	if cfg.year != 0 && cfg.day != 0 {
		client.Runs = client.Runs.ForPuzzle(cfg.year, cfg.day)
	}
	return client, nil
}

// Solve returns the lowest final identifier reachable from alm's seeds.
func (c *Client) Solve(ctx context.Context, alm almanac.Almanac, mode almanac.Mode) (service.Answer, error) {
	if c.closed.Load() {
		return service.Answer{}, ErrClientClosed
	}
	return c.Solver.Solve(ctx, alm, mode)
}

// SolveText parses text in the almanac text format and solves it. The run
// is stored when the client was built with WithRecordRuns.
func (c *Client) SolveText(ctx context.Context, text string, mode almanac.Mode) (service.Answer, error) {
	alm, err := loader.Parse(strings.NewReader(text), c.PipelineOptions()...)
	if err != nil {
		return service.Answer{}, fmt.Errorf("parse almanac: %w", err)
	}
	answer, err := c.Solve(ctx, alm, mode)
	if err != nil {
		return service.Answer{}, err
	}
	if c.record {
		if _, err := c.Record(ctx, []byte(text), answer); err != nil {
			return service.Answer{}, err
		}
	}
	return answer, nil
}

// SolveFile loads an almanac file, text or YAML, and solves it once per
// mode. Runs are stored when the client was built with WithRecordRuns.
func (c *Client) SolveFile(ctx context.Context, path string, modes ...almanac.Mode) ([]service.Answer, error) {
	if c.closed.Load() {
		return nil, ErrClientClosed
	}
	doc, err := loader.LoadFile(path, c.PipelineOptions()...)
	if err != nil {
		return nil, err
	}
	answers, err := c.Solver.SolveAll(ctx, doc.Almanac, modes...)
	if err != nil {
		return nil, err
	}
	if c.record {
		for _, a := range answers {
			if _, err := c.Record(ctx, doc.Raw, a); err != nil {
				return nil, err
			}
		}
	}
	return answers, nil
}

// Record stores an answer computed for raw input.
func (c *Client) Record(ctx context.Context, raw []byte, answer service.Answer) (run.Run, error) {
	if c.Runs == nil {
		return run.Run{}, ErrNoDatabase
	}
	return c.Runs.Record(ctx, raw, answer)
}

// PipelineOptions returns the pipeline options parsers should apply.
func (c *Client) PipelineOptions() []mapping.PipelineOption {
	if c.coalesce {
		return []mapping.PipelineOption{mapping.WithCoalesce()}
	}
	return nil
}

// RecordsRuns reports whether every solve is stored.
func (c *Client) RecordsRuns() bool { return c.record }

// Close releases the database connection, if any.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return ErrClientClosed
	}
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			return fmt.Errorf("close database: %w", err)
		}
	}
	return nil
}

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger {
	return c.logger
}
