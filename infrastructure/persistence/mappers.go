package persistence

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ankarhem/advent-of-code/domain/almanac"
	"github.com/ankarhem/advent-of-code/domain/run"
)

// RunMapper maps between domain Run and persistence RunModel.
// Answers are stored as decimal text since SQL integers are signed.
type RunMapper struct{}

// ToDomain converts a RunModel to a domain Run.
func (RunMapper) ToDomain(e RunModel) (run.Run, error) {
	mode, err := almanac.ParseMode(e.Mode)
	if err != nil {
		return run.Run{}, fmt.Errorf("run %d: %w", e.ID, err)
	}

	var answer uint64
	if e.Found {
		answer, err = strconv.ParseUint(e.Answer, 10, 64)
		if err != nil {
			return run.Run{}, fmt.Errorf("run %d: answer %q: %w", e.ID, e.Answer, err)
		}
	}

	return run.ReconstructRun(
		e.ID,
		e.Year,
		e.Day,
		mode,
		e.Digest,
		answer,
		e.Found,
		time.Duration(e.DurationNS),
		e.Workers,
		e.CreatedAt,
	), nil
}

// ToModel converts a domain Run to a RunModel.
func (RunMapper) ToModel(r run.Run) RunModel {
	answer, found := r.Answer()
	text := ""
	if found {
		text = strconv.FormatUint(answer, 10)
	}
	return RunModel{
		ID:         r.ID(),
		Year:       r.Year(),
		Day:        r.Day(),
		Mode:       string(r.Mode()),
		Digest:     r.Digest(),
		Answer:     text,
		Found:      found,
		DurationNS: int64(r.Duration()),
		Workers:    r.Workers(),
		CreatedAt:  r.CreatedAt(),
	}
}
