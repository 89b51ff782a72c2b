package mapping

import (
	"errors"
	"fmt"
)

// ErrConfig matches every stage construction failure.
var ErrConfig = errors.New("invalid stage configuration")

// Rule and table validation errors.
var (
	ErrOverlappingSource   = errors.New("overlapping source intervals")
	ErrNegativeDestination = errors.New("destination below zero")
	ErrDestinationOverflow = errors.New("destination exceeds uint64 range")
	ErrSourceOverflow      = errors.New("source exceeds uint64 range")
	ErrOffsetOverflow      = errors.New("offset exceeds int64 range")
)

// ConfigError reports a rule that could not be accepted into a stage.
// Other is the index of the conflicting rule for overlap errors, or -1.
type ConfigError struct {
	Stage string
	Rule  int
	Other int
	Err   error
}

// Error implements error.
func (e *ConfigError) Error() string {
	stage := e.Stage
	if stage == "" {
		stage = "<unnamed>"
	}
	if e.Other >= 0 {
		return fmt.Sprintf("stage %s: rule %d conflicts with rule %d: %v", stage, e.Rule, e.Other, e.Err)
	}
	return fmt.Sprintf("stage %s: rule %d: %v", stage, e.Rule, e.Err)
}

// Unwrap returns the underlying validation error.
func (e *ConfigError) Unwrap() error { return e.Err }

// Is reports whether target is ErrConfig.
func (e *ConfigError) Is(target error) bool { return target == ErrConfig }
