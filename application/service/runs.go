package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/ankarhem/advent-of-code/domain/repository"
	"github.com/ankarhem/advent-of-code/domain/run"
)

// Default puzzle identity recorded with runs.
const (
	DefaultYear = 2023
	DefaultDay  = 5
)

// Digest returns the hex SHA-256 digest identifying an input text.
func Digest(raw []byte) string {
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// Runs records and lists solved queries.
type Runs struct {
	store  run.Store
	year   int
	day    int
	logger *slog.Logger
}

// NewRuns creates a Runs service recording against the default puzzle.
func NewRuns(store run.Store, logger *slog.Logger) *Runs {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runs{store: store, year: DefaultYear, day: DefaultDay, logger: logger}
}

// ForPuzzle returns a copy recording runs for another puzzle.
func (r *Runs) ForPuzzle(year, day int) *Runs {
	clone := *r
	clone.year, clone.day = year, day
	return &clone
}

// Record stores the answer computed for raw input.
func (r *Runs) Record(ctx context.Context, raw []byte, answer Answer) (run.Run, error) {
	if r == nil || r.store == nil {
		return run.Run{}, ErrNoStore
	}
	minimum, found := answer.Minimum()
	saved, err := r.store.Save(ctx, run.NewRun(
		r.year,
		r.day,
		answer.Mode(),
		Digest(raw),
		minimum,
		found,
		answer.Duration(),
		answer.Workers(),
	))
	if err != nil {
		return run.Run{}, fmt.Errorf("record run: %w", err)
	}
	r.logger.DebugContext(ctx, "run recorded", slog.Int64("id", saved.ID()), slog.Int("part", saved.Part()))
	return saved, nil
}

// List returns the most recent runs for the service's puzzle, newest first.
// A limit of zero or less returns every run.
func (r *Runs) List(ctx context.Context, limit int, options ...repository.Option) ([]run.Run, error) {
	if r == nil || r.store == nil {
		return nil, ErrNoStore
	}
	opts := append(run.WithPuzzle(r.year, r.day), options...)
	opts = append(opts, run.Newest())
	if limit > 0 {
		opts = append(opts, repository.WithLimit(limit))
	}
	runs, err := r.store.Find(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// Get returns the run with id.
func (r *Runs) Get(ctx context.Context, id int64) (run.Run, error) {
	if r == nil || r.store == nil {
		return run.Run{}, ErrNoStore
	}
	found, err := r.store.FindOne(ctx, repository.WithID(id))
	if err != nil {
		return run.Run{}, fmt.Errorf("get run %d: %w", id, err)
	}
	return found, nil
}
