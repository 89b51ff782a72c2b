package main

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	aoc "github.com/ankarhem/advent-of-code"
	"github.com/ankarhem/advent-of-code/application/service"
	"github.com/ankarhem/advent-of-code/domain/almanac"
	"github.com/ankarhem/advent-of-code/domain/repository"
	"github.com/ankarhem/advent-of-code/domain/run"
	"github.com/ankarhem/advent-of-code/internal/config"
	"github.com/ankarhem/advent-of-code/internal/log"
)

func runsCmd() *cobra.Command {
	var (
		limit int
		mode  string
		year  int
		day   int
	)

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded solves, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			var opts []repository.Option
			if mode != "" {
				m, err := almanac.ParseMode(mode)
				if err != nil {
					return err
				}
				opts = append(opts, run.WithMode(m))
			}

			logger := log.NewLoggerWithWriter(cmd.ErrOrStderr(), cfg.LogFormat(), cfg.LogLevel()).Slog()
			client, err := newClient(cfg, logger, true, aoc.WithPuzzle(year, day))
			if err != nil {
				return err
			}
			defer func() {
				if err := client.Close(); err != nil {
					logger.Error("failed to close client", slog.Any("error", err))
				}
			}()

			runs, err := client.Runs.List(cmd.Context(), limit, opts...)
			if err != nil {
				return err
			}
			return printRuns(cmd.OutOrStdout(), runs)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", config.DefaultRunsLimit, "Maximum number of runs, 0 for all")
	cmd.Flags().StringVarP(&mode, "mode", "m", "", "Only list runs of one seed mode")
	cmd.Flags().IntVar(&year, "year", service.DefaultYear, "Puzzle year")
	cmd.Flags().IntVar(&day, "day", service.DefaultDay, "Puzzle day")

	return cmd
}

func printRuns(w io.Writer, runs []run.Run) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs recorded.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tPUZZLE\tPART\tANSWER\tWORKERS\tELAPSED\tRECORDED")
	for _, r := range runs {
		answer := "✖"
		if v, ok := r.Answer(); ok {
			answer = fmt.Sprintf("%d", v)
		}
		_, _ = fmt.Fprintf(tw, "%d\t%d/%02d\t%d\t%s\t%d\t%s\t%s\n",
			r.ID(),
			r.Year(),
			r.Day(),
			r.Part(),
			answer,
			r.Workers(),
			r.Duration().Round(time.Microsecond),
			r.CreatedAt().Local().Format(time.DateTime),
		)
	}
	return tw.Flush()
}
