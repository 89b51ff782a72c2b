// Package interval provides half-open integer ranges used as the unit of
// work when resolving identifiers through translation stages.
package interval

import (
	"errors"
	"fmt"
	"math"
)

// Interval errors.
var (
	ErrInverted = errors.New("interval end before start")
	ErrOverflow = errors.New("interval exceeds uint64 range")
)

// Interval is the half-open range [start, end). Immutable value object.
// An interval with start == end is empty.
type Interval struct {
	start uint64
	end   uint64
}

// New creates the interval [start, end).
func New(start, end uint64) (Interval, error) {
	if end < start {
		return Interval{}, fmt.Errorf("%w: [%d, %d)", ErrInverted, start, end)
	}
	return Interval{start: start, end: end}, nil
}

// FromLength creates the interval [start, start+length).
func FromLength(start, length uint64) (Interval, error) {
	if length > math.MaxUint64-start {
		return Interval{}, fmt.Errorf("%w: start %d length %d", ErrOverflow, start, length)
	}
	return Interval{start: start, end: start + length}, nil
}

// Point creates the singleton interval [v, v+1).
func Point(v uint64) (Interval, error) {
	return FromLength(v, 1)
}

// Start returns the inclusive lower bound.
func (i Interval) Start() uint64 { return i.start }

// End returns the exclusive upper bound.
func (i Interval) End() uint64 { return i.end }

// Len returns the number of integers in the interval.
func (i Interval) Len() uint64 { return i.end - i.start }

// IsEmpty reports whether the interval contains no integers.
func (i Interval) IsEmpty() bool { return i.start >= i.end }

// Contains reports whether x lies in the interval.
func (i Interval) Contains(x uint64) bool {
	return i.start <= x && x < i.end
}

// Overlaps reports whether i and o share at least one integer.
func (i Interval) Overlaps(o Interval) bool {
	return i.start < o.end && o.start < i.end
}

// Intersect returns the overlap of i and o. When they do not overlap the
// result is empty.
func (i Interval) Intersect(o Interval) Interval {
	if i.start < o.start {
		i.start = o.start
	}
	if i.end > o.end {
		i.end = o.end
	}
	if i.end < i.start {
		i.end = i.start
	}
	return i
}

// String renders the interval as [start, end).
func (i Interval) String() string {
	return fmt.Sprintf("[%d, %d)", i.start, i.end)
}
