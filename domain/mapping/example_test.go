package mapping

import (
	"testing"

	"github.com/ankarhem/advent-of-code/domain/interval"
	"github.com/stretchr/testify/require"
)

// exampleStages is the seven-stage almanac from the 2023 day 5 puzzle text.
var exampleStages = []struct {
	name  string
	rules [][3]uint64
}{
	{"seed-to-soil", [][3]uint64{{50, 98, 2}, {52, 50, 48}}},
	{"soil-to-fertilizer", [][3]uint64{{0, 15, 37}, {37, 52, 2}, {39, 0, 15}}},
	{"fertilizer-to-water", [][3]uint64{{49, 53, 8}, {0, 11, 42}, {42, 0, 7}, {57, 7, 4}}},
	{"water-to-light", [][3]uint64{{88, 18, 7}, {18, 25, 70}}},
	{"light-to-temperature", [][3]uint64{{45, 77, 23}, {81, 45, 19}, {68, 64, 13}}},
	{"temperature-to-humidity", [][3]uint64{{0, 69, 1}, {1, 0, 69}}},
	{"humidity-to-location", [][3]uint64{{60, 56, 37}, {56, 93, 4}}},
}

var exampleSeeds = []uint64{79, 14, 55, 13}

func specs(rules [][3]uint64) []RuleSpec {
	out := make([]RuleSpec, len(rules))
	for i, r := range rules {
		out[i] = RuleSpec{DestStart: r[0], SourceStart: r[1], Length: r[2]}
	}
	return out
}

func examplePipeline(t *testing.T, opts ...PipelineOption) Pipeline {
	t.Helper()
	stages := make([]Table, len(exampleStages))
	for i, s := range exampleStages {
		table, err := NewTable(s.name, specs(s.rules))
		require.NoError(t, err)
		stages[i] = table
	}
	return NewPipeline(stages, opts...)
}

func span(t *testing.T, start, end uint64) interval.Interval {
	t.Helper()
	iv, err := interval.New(start, end)
	require.NoError(t, err)
	return iv
}

func points(t *testing.T, values ...uint64) []interval.Interval {
	t.Helper()
	out := make([]interval.Interval, len(values))
	for i, v := range values {
		iv, err := interval.Point(v)
		require.NoError(t, err)
		out[i] = iv
	}
	return out
}
