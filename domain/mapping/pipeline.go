package mapping

import "github.com/ankarhem/advent-of-code/domain/interval"

// Pipeline is an ordered chain of stages. It is never mutated after
// construction and may be shared by any number of goroutines.
type Pipeline struct {
	stages   []Table
	coalesce bool
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithCoalesce merges touching intervals of the working set after every
// stage. The minimum is unaffected; only the working set size changes.
func WithCoalesce() PipelineOption {
	return func(p *Pipeline) { p.coalesce = true }
}

// NewPipeline creates a pipeline applying stages in order.
func NewPipeline(stages []Table, opts ...PipelineOption) Pipeline {
	copied := make([]Table, len(stages))
	copy(copied, stages)
	p := Pipeline{stages: copied}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Stages returns a copy of the stage list.
func (p Pipeline) Stages() []Table {
	result := make([]Table, len(p.stages))
	copy(result, p.stages)
	return result
}

// Len returns the number of stages.
func (p Pipeline) Len() int { return len(p.stages) }

// Coalesce reports whether the working set is merged between stages.
func (p Pipeline) Coalesce() bool { return p.coalesce }

// RuleCount returns the number of rules across all stages.
func (p Pipeline) RuleCount() int {
	n := 0
	for _, s := range p.stages {
		n += s.Len()
	}
	return n
}

// Apply folds set through every stage and returns the final working set.
// Empty intervals are dropped; set itself is not modified.
func (p Pipeline) Apply(set []interval.Interval) []interval.Interval {
	working := interval.Compact(set)
	for _, stage := range p.stages {
		next := make([]interval.Interval, 0, len(working))
		for _, iv := range working {
			for _, piece := range stage.Split(iv) {
				next = append(next, piece.Interval())
			}
		}
		if p.coalesce {
			next = interval.Merge(next)
		}
		working = next
	}
	return working
}

// TranslatePoint maps x through every stage in order.
func (p Pipeline) TranslatePoint(x uint64) uint64 {
	for _, stage := range p.stages {
		x = stage.TranslatePoint(x)
	}
	return x
}

// Trace returns x followed by its value after each stage.
func (p Pipeline) Trace(x uint64) []uint64 {
	values := make([]uint64, 0, len(p.stages)+1)
	values = append(values, x)
	for _, stage := range p.stages {
		x = stage.TranslatePoint(x)
		values = append(values, x)
	}
	return values
}

// Minimum applies the pipeline to set and returns the lowest reachable
// value. The boolean is false when set contains no identifiers.
func (p Pipeline) Minimum(set []interval.Interval) (uint64, bool) {
	return interval.Minimum(p.Apply(set))
}
