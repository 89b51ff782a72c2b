// Package almanac models a parsed almanac: the raw seed values and the
// pipeline of stages they are resolved through.
package almanac

import (
	"errors"
	"fmt"

	"github.com/ankarhem/advent-of-code/domain/interval"
	"github.com/ankarhem/advent-of-code/domain/mapping"
)

// ErrUnpairedSeeds indicates an odd number of seed values in range mode.
var ErrUnpairedSeeds = errors.New("seed ranges need start and length pairs")

// Almanac is an immutable parsed almanac.
type Almanac struct {
	seeds    []uint64
	pipeline mapping.Pipeline
}

// New creates an Almanac.
func New(seeds []uint64, pipeline mapping.Pipeline) Almanac {
	copied := make([]uint64, len(seeds))
	copy(copied, seeds)
	return Almanac{seeds: copied, pipeline: pipeline}
}

// Seeds returns a copy of the raw seed values.
func (a Almanac) Seeds() []uint64 {
	result := make([]uint64, len(a.seeds))
	copy(result, a.seeds)
	return result
}

// Pipeline returns the stage pipeline.
func (a Almanac) Pipeline() mapping.Pipeline { return a.pipeline }

// WithPipeline returns a copy of the almanac using p.
func (a Almanac) WithPipeline(p mapping.Pipeline) Almanac {
	a.pipeline = p
	return a
}

// Intervals converts the seed values into the initial working set for mode.
func (a Almanac) Intervals(mode Mode) ([]interval.Interval, error) {
	switch mode {
	case ModePoints:
		set := make([]interval.Interval, 0, len(a.seeds))
		for _, v := range a.seeds {
			iv, err := interval.Point(v)
			if err != nil {
				return nil, fmt.Errorf("seed %d: %w", v, err)
			}
			set = append(set, iv)
		}
		return set, nil
	case ModeRanges:
		if len(a.seeds)%2 != 0 {
			return nil, fmt.Errorf("%w: got %d values", ErrUnpairedSeeds, len(a.seeds))
		}
		set := make([]interval.Interval, 0, len(a.seeds)/2)
		for i := 0; i < len(a.seeds); i += 2 {
			iv, err := interval.FromLength(a.seeds[i], a.seeds[i+1])
			if err != nil {
				return nil, fmt.Errorf("seed range %d: %w", i/2, err)
			}
			if !iv.IsEmpty() {
				set = append(set, iv)
			}
		}
		return set, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}
