package almanac

import (
	"testing"

	"github.com/ankarhem/advent-of-code/domain/mapping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlmanac_IntervalsPoints(t *testing.T) {
	a := New([]uint64{79, 14}, mapping.NewPipeline(nil))

	set, err := a.Intervals(ModePoints)
	require.NoError(t, err)
	require.Len(t, set, 2)

	assert.Equal(t, "[79, 80)", set[0].String())
	assert.Equal(t, "[14, 15)", set[1].String())
}

func TestAlmanac_IntervalsRanges(t *testing.T) {
	a := New([]uint64{79, 14, 55, 13, 9, 0}, mapping.NewPipeline(nil))

	set, err := a.Intervals(ModeRanges)
	require.NoError(t, err)
	require.Len(t, set, 2, "zero-length ranges are dropped")

	assert.Equal(t, "[79, 93)", set[0].String())
	assert.Equal(t, "[55, 68)", set[1].String())
}

func TestAlmanac_IntervalsUnpaired(t *testing.T) {
	a := New([]uint64{79, 14, 55}, mapping.NewPipeline(nil))

	_, err := a.Intervals(ModeRanges)
	assert.ErrorIs(t, err, ErrUnpairedSeeds)
}

func TestAlmanac_IntervalsUnknownMode(t *testing.T) {
	a := New(nil, mapping.NewPipeline(nil))

	_, err := a.Intervals(Mode("sideways"))
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestAlmanac_SeedsCopied(t *testing.T) {
	seeds := []uint64{1, 2}
	a := New(seeds, mapping.NewPipeline(nil))
	seeds[0] = 99

	assert.Equal(t, []uint64{1, 2}, a.Seeds())
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"points", ModePoints},
		{"1", ModePoints},
		{" Ranges ", ModeRanges},
		{"2", ModeRanges},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseMode("3")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestMode_Part(t *testing.T) {
	assert.Equal(t, 1, ModePoints.Part())
	assert.Equal(t, 2, ModeRanges.Part())
}
