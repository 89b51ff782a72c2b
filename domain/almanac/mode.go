package almanac

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode indicates an unrecognised seed mode.
var ErrUnknownMode = errors.New("unknown seed mode")

// Mode selects how the seed values of an almanac become intervals.
type Mode string

// Mode values.
const (
	// ModePoints treats every seed value as a single identifier.
	ModePoints Mode = "points"
	// ModeRanges reads seed values as (start, length) pairs.
	ModeRanges Mode = "ranges"
)

// Modes returns every mode in puzzle part order.
func Modes() []Mode {
	return []Mode{ModePoints, ModeRanges}
}

// ParseMode parses a mode name or puzzle part number.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "points", "point", "1":
		return ModePoints, nil
	case "ranges", "range", "2":
		return ModeRanges, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Part returns the puzzle part the mode answers.
func (m Mode) Part() int {
	if m == ModeRanges {
		return 2
	}
	return 1
}

// String returns the mode name.
func (m Mode) String() string { return string(m) }
