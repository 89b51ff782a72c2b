package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	aoc "github.com/ankarhem/advent-of-code"
	"github.com/ankarhem/advent-of-code/application/service"
	"github.com/ankarhem/advent-of-code/domain/almanac"
	"github.com/ankarhem/advent-of-code/internal/config"
	"github.com/ankarhem/advent-of-code/internal/log"
)

type solveFlags struct {
	mode      string
	workers   int
	chunkSize uint64
	coalesce  bool
	record    bool
	timed     bool
	year      int
	day       int
}

func solveCmd() *cobra.Command {
	var f solveFlags

	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Print the lowest location reachable from an almanac's seeds",
		Long: `Solve an almanac file (text, or YAML for .yaml/.yml files).

Part 1 treats every seed value as a single identifier. Part 2 reads the seed
values as (start, length) pairs. A part whose seed set is empty prints ✖.

Environment variables:
  WORKER_COUNT                 Concurrent work units (default: GOMAXPROCS)
  CHUNK_SIZE                   Largest seed interval per unit (default: 16777216)
  COALESCE                     Merge touching intervals between stages
  RECORD_RUNS                  Store every solve in the run history
  DB_URL                       Run history database (default: sqlite:///{data_dir}/aoc.db)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			cfg = applySolveOverrides(cmd, cfg, f)
			return runSolve(cmd, cfg, f, args[0])
		},
	}

	cmd.Flags().StringVarP(&f.mode, "mode", "m", "both", "Seed mode: points (part 1), ranges (part 2) or both")
	cmd.Flags().IntVarP(&f.workers, "workers", "w", 0, "Concurrent work units (default: WORKER_COUNT or GOMAXPROCS)")
	cmd.Flags().Uint64Var(&f.chunkSize, "chunk-size", 0, "Largest seed interval per work unit, 0 keeps intervals whole")
	cmd.Flags().BoolVar(&f.coalesce, "coalesce", false, "Merge touching intervals between stages")
	cmd.Flags().BoolVar(&f.record, "record", false, "Store the result in the run history")
	cmd.Flags().BoolVarP(&f.timed, "time", "t", false, "Print the elapsed time of each part")
	cmd.Flags().IntVar(&f.year, "year", service.DefaultYear, "Puzzle year recorded with the run")
	cmd.Flags().IntVar(&f.day, "day", service.DefaultDay, "Puzzle day recorded with the run")

	return cmd
}

// applySolveOverrides applies command line flag overrides to the config.
func applySolveOverrides(cmd *cobra.Command, cfg config.AppConfig, f solveFlags) config.AppConfig {
	var opts []config.AppConfigOption

	if f.workers > 0 {
		opts = append(opts, config.WithWorkerCount(f.workers))
	}
	if cmd.Flags().Changed("chunk-size") {
		opts = append(opts, config.WithChunkSize(f.chunkSize))
	}
	if f.coalesce {
		opts = append(opts, config.WithCoalesce(true))
	}
	if f.record {
		opts = append(opts, config.WithRecordRuns(true))
	}

	return cfg.Apply(opts...)
}

func runSolve(cmd *cobra.Command, cfg config.AppConfig, f solveFlags, path string) error {
	modes, err := solveModes(f.mode)
	if err != nil {
		return err
	}

	logger := log.NewLoggerWithWriter(cmd.ErrOrStderr(), cfg.LogFormat(), cfg.LogLevel()).Slog()

	var extra []aoc.Option
	if cfg.RecordRuns() {
		extra = append(extra, aoc.WithRecordRuns(), aoc.WithPuzzle(f.year, f.day))
	}
	client, err := newClient(cfg, logger, cfg.RecordRuns(), extra...)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Close(); err != nil {
			logger.Error("failed to close client", slog.Any("error", err))
		}
	}()

	answers, err := client.SolveFile(cmd.Context(), path, modes...)
	if err != nil {
		return err
	}

	printAnswers(cmd.OutOrStdout(), answers, f.timed)
	return nil
}

func solveModes(s string) ([]almanac.Mode, error) {
	if strings.EqualFold(strings.TrimSpace(s), "both") {
		return almanac.Modes(), nil
	}
	mode, err := almanac.ParseMode(s)
	if err != nil {
		return nil, err
	}
	return []almanac.Mode{mode}, nil
}

func printAnswers(w io.Writer, answers []service.Answer, timed bool) {
	for _, a := range answers {
		if timed {
			_, _ = fmt.Fprintf(w, "Part %d: %s (%s)\n", a.Part(), a, a.Duration().Round(time.Microsecond))
			continue
		}
		_, _ = fmt.Fprintf(w, "Part %d: %s\n", a.Part(), a)
	}
}
