package run

import (
	"context"

	"github.com/ankarhem/advent-of-code/domain/almanac"
	"github.com/ankarhem/advent-of-code/domain/repository"
)

// Store persists runs.
type Store interface {
	repository.Store[Run]
	Save(ctx context.Context, r Run) (Run, error)
}

// WithPuzzle filters runs by year and day.
func WithPuzzle(year, day int) []repository.Option {
	return []repository.Option{
		repository.WithCondition("year", year),
		repository.WithCondition("day", day),
	}
}

// WithMode filters runs by seed mode.
func WithMode(mode almanac.Mode) repository.Option {
	return repository.WithCondition("mode", string(mode))
}

// WithDigest filters runs by input digest.
func WithDigest(digest string) repository.Option {
	return repository.WithCondition("digest", digest)
}

// Newest orders runs from most to least recent, ties broken by ID.
func Newest() repository.Option {
	return func(q repository.Query) repository.Query {
		q = repository.WithOrderDesc("created_at")(q)
		return repository.WithOrderDesc("id")(q)
	}
}
