// Package dto holds the request and response bodies of the v1 API.
package dto

import "time"

// SolveRequest is the body of POST /api/v1/solve.
type SolveRequest struct {
	Almanac string `json:"almanac"`
	// Mode is "points", "ranges" or "both". Empty means both.
	Mode string `json:"mode,omitempty"`
	// Format is "text" (default) or "yaml".
	Format string `json:"format,omitempty"`
	Record bool   `json:"record,omitempty"`
}

// AnswerAttributes describes one solved mode.
type AnswerAttributes struct {
	Mode       string  `json:"mode"`
	Part       int     `json:"part"`
	Minimum    *uint64 `json:"minimum"`
	Found      bool    `json:"found"`
	Units      int     `json:"units"`
	Workers    int     `json:"workers"`
	DurationMS float64 `json:"duration_ms"`
	RunID      int64   `json:"run_id,omitempty"`
}

// RunAttributes describes a recorded run.
type RunAttributes struct {
	Year       int       `json:"year"`
	Day        int       `json:"day"`
	Mode       string    `json:"mode"`
	Part       int       `json:"part"`
	Digest     string    `json:"digest"`
	Minimum    *uint64   `json:"minimum"`
	Found      bool      `json:"found"`
	Workers    int       `json:"workers"`
	DurationMS float64   `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}
