package mapping

import (
	"math/rand/v2"
	"testing"

	"github.com/ankarhem/advent-of-code/domain/interval"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeline_ExamplePoints(t *testing.T) {
	p := examplePipeline(t)

	got, ok := p.Minimum(points(t, exampleSeeds...))

	require.True(t, ok)
	assert.Equal(t, uint64(35), got)
}

func TestPipeline_ExampleRanges(t *testing.T) {
	p := examplePipeline(t)
	seeds := []interval.Interval{span(t, 79, 79+14), span(t, 55, 55+13)}

	got, ok := p.Minimum(seeds)

	require.True(t, ok)
	assert.Equal(t, uint64(46), got)
}

func TestPipeline_ExampleRanges_Coalesced(t *testing.T) {
	p := examplePipeline(t, WithCoalesce())
	seeds := []interval.Interval{span(t, 79, 79+14), span(t, 55, 55+13)}

	got, ok := p.Minimum(seeds)

	require.True(t, ok)
	assert.Equal(t, uint64(46), got)
	assert.True(t, p.Coalesce())
}

func TestPipeline_TranslatePoint(t *testing.T) {
	p := examplePipeline(t)

	assert.Equal(t, uint64(82), p.TranslatePoint(79))
	assert.Equal(t, uint64(43), p.TranslatePoint(14))
	assert.Equal(t, uint64(86), p.TranslatePoint(55))
	assert.Equal(t, uint64(35), p.TranslatePoint(13))
}

func TestPipeline_Trace(t *testing.T) {
	p := examplePipeline(t)

	assert.Equal(t, []uint64{79, 81, 81, 81, 74, 78, 78, 82}, p.Trace(79))
}

func TestPipeline_Empty(t *testing.T) {
	p := examplePipeline(t)

	assert.Empty(t, p.Apply(nil))
	_, ok := p.Minimum(nil)
	assert.False(t, ok)

	_, ok = p.Minimum([]interval.Interval{span(t, 9, 9)})
	assert.False(t, ok)
}

func TestPipeline_IdentityStage(t *testing.T) {
	identity, err := NewTable("identity", nil)
	require.NoError(t, err)
	p := NewPipeline([]Table{identity})

	set := []interval.Interval{span(t, 5, 9), span(t, 100, 250)}

	assert.Equal(t, set, p.Apply(set))
}

func TestPipeline_Counts(t *testing.T) {
	p := examplePipeline(t)

	assert.Equal(t, 7, p.Len())
	assert.Equal(t, 18, p.RuleCount())
	assert.Equal(t, "seed-to-soil", p.Stages()[0].Name())
}

func TestPipeline_MatchesIteratedPointMapping(t *testing.T) {
	p := examplePipeline(t)

	for x := uint64(0); x < 120; x++ {
		out := p.Apply(points(t, x))
		require.Len(t, out, 1, "singleton stays a singleton")
		assert.Equal(t, p.TranslatePoint(x), out[0].Start(), "seed %d", x)
	}
}

func TestPipeline_MinimumMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 5))

	for round := 0; round < 100; round++ {
		stages := make([]Table, 1+rng.IntN(4))
		for i := range stages {
			stages[i] = randomTable(t, rng)
		}
		p := NewPipeline(stages)

		start := rng.Uint64N(200)
		iv := span(t, start, start+1+rng.Uint64N(80))

		want := p.TranslatePoint(iv.Start())
		for x := iv.Start(); x < iv.End(); x++ {
			want = min(want, p.TranslatePoint(x))
		}

		got, ok := p.Minimum([]interval.Interval{iv})
		require.True(t, ok)
		assert.Equal(t, want, got, "round %d over %s\n%s", round, iv, spew.Sdump(stages))
	}
}

func TestPipeline_MinimumOrderIndependent(t *testing.T) {
	p := examplePipeline(t)
	a := []interval.Interval{span(t, 79, 93), span(t, 0, 4)}
	b := []interval.Interval{span(t, 55, 68), span(t, 95, 120)}

	ab, ok := p.Minimum(append(append([]interval.Interval{}, a...), b...))
	require.True(t, ok)
	ba, ok := p.Minimum(append(append([]interval.Interval{}, b...), a...))
	require.True(t, ok)
	merged, ok := p.Minimum(interval.Merge(append(append([]interval.Interval{}, b...), a...)))
	require.True(t, ok)

	assert.Equal(t, ab, ba)
	assert.Equal(t, ab, merged)
}
