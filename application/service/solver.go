package service

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ankarhem/advent-of-code/domain/almanac"
	"github.com/ankarhem/advent-of-code/domain/interval"
	"github.com/ankarhem/advent-of-code/domain/mapping"
)

// DefaultChunkSize is the largest seed interval folded by a single unit.
const DefaultChunkSize uint64 = 1 << 24

// Answer is the result of one minimum query.
type Answer struct {
	mode     almanac.Mode
	minimum  uint64
	found    bool
	units    int
	workers  int
	duration time.Duration
}

// Mode returns the seed mode that was solved.
func (a Answer) Mode() almanac.Mode { return a.mode }

// Part returns the puzzle part the answer belongs to.
func (a Answer) Part() int { return a.mode.Part() }

// Minimum returns the lowest final identifier and whether one existed.
func (a Answer) Minimum() (uint64, bool) { return a.minimum, a.found }

// Units returns how many work units the seed set was split into.
func (a Answer) Units() int { return a.units }

// Workers returns the concurrency limit used.
func (a Answer) Workers() int { return a.workers }

// Duration returns the elapsed solve time.
func (a Answer) Duration() time.Duration { return a.duration }

// String renders the minimum, or ✖ when the result was empty.
func (a Answer) String() string {
	if !a.found {
		return "✖"
	}
	return fmt.Sprintf("%d", a.minimum)
}

// SolverOption configures a Solver.
type SolverOption func(*Solver)

// WithWorkers bounds the number of concurrent units. Values below 1 select
// GOMAXPROCS.
func WithWorkers(n int) SolverOption {
	return func(s *Solver) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		s.workers = n
	}
}

// WithChunkSize sets the largest interval handed to one unit. Zero keeps
// every seed interval whole.
func WithChunkSize(n uint64) SolverOption {
	return func(s *Solver) { s.chunkSize = n }
}

// WithSolverLogger sets the logger.
func WithSolverLogger(l *slog.Logger) SolverOption {
	return func(s *Solver) {
		if l != nil {
			s.logger = l
		}
	}
}

// Solver answers minimum queries by folding seed intervals through an
// almanac's pipeline in parallel. The pipeline is shared read-only by
// every unit.
type Solver struct {
	workers   int
	chunkSize uint64
	logger    *slog.Logger
}

// NewSolver creates a Solver.
func NewSolver(opts ...SolverOption) *Solver {
	s := &Solver{
		workers:   runtime.GOMAXPROCS(0),
		chunkSize: DefaultChunkSize,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Workers returns the configured concurrency limit.
func (s *Solver) Workers() int { return s.workers }

// ChunkSize returns the configured chunk size.
func (s *Solver) ChunkSize() uint64 { return s.chunkSize }

// Solve returns the lowest final identifier reachable from alm's seeds
// interpreted in mode.
func (s *Solver) Solve(ctx context.Context, alm almanac.Almanac, mode almanac.Mode) (Answer, error) {
	start := time.Now()

	seeds, err := alm.Intervals(mode)
	if err != nil {
		return Answer{}, fmt.Errorf("seed intervals: %w", err)
	}

	units := s.partition(seeds)
	minimum, found, err := s.fold(ctx, alm.Pipeline(), units)
	if err != nil {
		return Answer{}, err
	}

	answer := Answer{
		mode:     mode,
		minimum:  minimum,
		found:    found,
		units:    len(units),
		workers:  s.workers,
		duration: time.Since(start),
	}
	s.logger.DebugContext(ctx, "solved",
		slog.String("mode", string(mode)),
		slog.String("minimum", answer.String()),
		slog.Int("units", answer.units),
		slog.Int("workers", answer.workers),
		slog.Uint64("seeds", interval.TotalLen(seeds)),
		slog.Duration("elapsed", answer.duration),
	)
	return answer, nil
}

// SolveAll solves alm once per mode, in order.
func (s *Solver) SolveAll(ctx context.Context, alm almanac.Almanac, modes ...almanac.Mode) ([]Answer, error) {
	answers := make([]Answer, 0, len(modes))
	for _, mode := range modes {
		a, err := s.Solve(ctx, alm, mode)
		if err != nil {
			return nil, fmt.Errorf("part %d: %w", mode.Part(), err)
		}
		answers = append(answers, a)
	}
	return answers, nil
}

func (s *Solver) partition(seeds []interval.Interval) []interval.Interval {
	units := make([]interval.Interval, 0, len(seeds))
	for _, iv := range seeds {
		units = append(units, interval.Chunk(iv, s.chunkSize)...)
	}
	return units
}

// fold runs every unit through the pipeline. Each unit owns one result
// slot so workers never share writes.
func (s *Solver) fold(ctx context.Context, pipeline mapping.Pipeline, units []interval.Interval) (uint64, bool, error) {
	type slot struct {
		minimum uint64
		found   bool
	}
	results := make([]slot, len(units))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, unit := range units {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m, ok := pipeline.Minimum([]interval.Interval{unit})
			results[i] = slot{minimum: m, found: ok}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, false, fmt.Errorf("fold seed units: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return 0, false, fmt.Errorf("fold seed units: %w", err)
	}

	var lowest uint64
	var found bool
	for _, r := range results {
		if r.found && (!found || r.minimum < lowest) {
			lowest, found = r.minimum, true
		}
	}
	return lowest, found, nil
}
