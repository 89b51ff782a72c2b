package run

import (
	"testing"
	"time"

	"github.com/ankarhem/advent-of-code/domain/almanac"
	"github.com/ankarhem/advent-of-code/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRun(t *testing.T) {
	r := NewRun(2023, 5, almanac.ModeRanges, "abc", 46, true, 3*time.Millisecond, 4)

	assert.Equal(t, int64(0), r.ID())
	assert.Equal(t, 2023, r.Year())
	assert.Equal(t, 5, r.Day())
	assert.Equal(t, almanac.ModeRanges, r.Mode())
	assert.Equal(t, 2, r.Part())
	assert.Equal(t, "abc", r.Digest())
	answer, found := r.Answer()
	assert.Equal(t, uint64(46), answer)
	assert.True(t, found)
	assert.Equal(t, 3*time.Millisecond, r.Duration())
	assert.Equal(t, 4, r.Workers())
	assert.False(t, r.CreatedAt().IsZero())
}

func TestReconstructRun(t *testing.T) {
	at := time.Date(2023, 12, 5, 6, 0, 0, 0, time.UTC)
	r := ReconstructRun(9, 2023, 5, almanac.ModePoints, "def", 35, true, time.Second, 1, at)

	assert.Equal(t, int64(9), r.ID())
	assert.Equal(t, 1, r.Part())
	assert.Equal(t, at, r.CreatedAt())
}

func TestOptions(t *testing.T) {
	opts := append(WithPuzzle(2023, 5), WithMode(almanac.ModePoints), WithDigest("d"), Newest())
	q := repository.Build(opts...)

	conds := q.Conditions()
	assert.Len(t, conds, 4)
	assert.Equal(t, "year = 2023", conds[0].String())
	assert.Equal(t, "day = 5", conds[1].String())
	assert.Equal(t, "mode = points", conds[2].String())
	assert.Equal(t, "digest = d", conds[3].String())
	require.Len(t, q.Orders(), 2)
	assert.Equal(t, "created_at", q.Orders()[0].Field())
	assert.Equal(t, "id", q.Orders()[1].Field())
}
