// Package run records solved puzzle queries and how long they took.
package run

import (
	"time"

	"github.com/ankarhem/advent-of-code/domain/almanac"
)

// Run is one answered query. Immutable value object.
type Run struct {
	id        int64
	year      int
	day       int
	mode      almanac.Mode
	digest    string
	answer    uint64
	found     bool
	duration  time.Duration
	workers   int
	createdAt time.Time
}

// NewRun creates a Run that has not been persisted yet.
func NewRun(year, day int, mode almanac.Mode, digest string, answer uint64, found bool, duration time.Duration, workers int) Run {
	return Run{
		year:      year,
		day:       day,
		mode:      mode,
		digest:    digest,
		answer:    answer,
		found:     found,
		duration:  duration,
		workers:   workers,
		createdAt: time.Now().UTC(),
	}
}

// ReconstructRun recreates a Run from persistence.
func ReconstructRun(
	id int64,
	year, day int,
	mode almanac.Mode,
	digest string,
	answer uint64,
	found bool,
	duration time.Duration,
	workers int,
	createdAt time.Time,
) Run {
	return Run{
		id:        id,
		year:      year,
		day:       day,
		mode:      mode,
		digest:    digest,
		answer:    answer,
		found:     found,
		duration:  duration,
		workers:   workers,
		createdAt: createdAt,
	}
}

// ID returns the database identifier.
func (r Run) ID() int64 { return r.id }

// Year returns the puzzle year.
func (r Run) Year() int { return r.year }

// Day returns the puzzle day.
func (r Run) Day() int { return r.day }

// Mode returns the seed mode that was solved.
func (r Run) Mode() almanac.Mode { return r.mode }

// Part returns the puzzle part the run answered.
func (r Run) Part() int { return r.mode.Part() }

// Digest returns the SHA-256 hex digest of the input text.
func (r Run) Digest() string { return r.digest }

// Answer returns the minimum and whether one existed.
func (r Run) Answer() (uint64, bool) { return r.answer, r.found }

// Duration returns how long solving took.
func (r Run) Duration() time.Duration { return r.duration }

// Workers returns the worker count used.
func (r Run) Workers() int { return r.workers }

// CreatedAt returns when the run was recorded.
func (r Run) CreatedAt() time.Time { return r.createdAt }
