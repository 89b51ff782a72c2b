// Package mapping implements the stage tables and the pipeline that
// translate identifier intervals through an ordered chain of stages.
package mapping

import (
	"fmt"
	"math"

	"github.com/ankarhem/advent-of-code/domain/interval"
)

// RuleSpec is one parsed "destStart sourceStart length" line.
type RuleSpec struct {
	DestStart   uint64
	SourceStart uint64
	Length      uint64
}

// Rule translates every value of its source interval by a fixed offset.
// Immutable value object.
type Rule struct {
	source interval.Interval
	offset int64
}

// NewRule creates a rule mapping [sourceStart, sourceStart+length) onto
// [destStart, destStart+length).
func NewRule(destStart, sourceStart, length uint64) (Rule, error) {
	source, err := interval.FromLength(sourceStart, length)
	if err != nil {
		return Rule{}, fmt.Errorf("%w: %v", ErrSourceOverflow, err)
	}
	if length > math.MaxUint64-destStart {
		return Rule{}, fmt.Errorf("%w: dest %d length %d", ErrDestinationOverflow, destStart, length)
	}
	offset, err := offsetBetween(destStart, sourceStart)
	if err != nil {
		return Rule{}, err
	}
	return Rule{source: source, offset: offset}, nil
}

// NewRuleWithOffset creates a rule that shifts source by offset. The
// shifted interval must stay within [0, MaxUint64].
func NewRuleWithOffset(source interval.Interval, offset int64) (Rule, error) {
	if offset < 0 && magnitude(offset) > source.Start() {
		return Rule{}, fmt.Errorf("%w: %s shifted by %d", ErrNegativeDestination, source, offset)
	}
	if offset > 0 && uint64(offset) > math.MaxUint64-source.End() {
		return Rule{}, fmt.Errorf("%w: %s shifted by %d", ErrDestinationOverflow, source, offset)
	}
	return Rule{source: source, offset: offset}, nil
}

// Source returns the interval the rule applies to.
func (r Rule) Source() interval.Interval { return r.source }

// Offset returns the signed shift applied to matched values.
func (r Rule) Offset() int64 { return r.offset }

// Destination returns the source interval translated by the offset.
func (r Rule) Destination() interval.Interval { return r.translate(r.source) }

// String renders the rule as "source -> destination".
func (r Rule) String() string {
	return fmt.Sprintf("%s -> %s", r.source, r.Destination())
}

// translate shifts iv, which must lie inside the rule's source interval.
func (r Rule) translate(iv interval.Interval) interval.Interval {
	out, _ := interval.New(shift(iv.Start(), r.offset), shift(iv.End(), r.offset))
	return out
}

func shift(v uint64, offset int64) uint64 {
	if offset >= 0 {
		return v + uint64(offset)
	}
	return v - magnitude(offset)
}

// magnitude returns |offset| without overflowing on math.MinInt64.
func magnitude(offset int64) uint64 {
	if offset >= 0 {
		return uint64(offset)
	}
	return uint64(-(offset + 1)) + 1
}

func offsetBetween(dest, source uint64) (int64, error) {
	if dest >= source {
		d := dest - source
		if d > math.MaxInt64 {
			return 0, fmt.Errorf("%w: dest %d source %d", ErrOffsetOverflow, dest, source)
		}
		return int64(d), nil
	}
	d := source - dest
	if d > uint64(math.MaxInt64)+1 {
		return 0, fmt.Errorf("%w: dest %d source %d", ErrOffsetOverflow, dest, source)
	}
	return -int64(d-1) - 1, nil
}
