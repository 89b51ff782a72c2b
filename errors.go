package aoc

import "errors"

// Errors returned by the Client.
var (
	ErrNoDatabase   = errors.New("aoc: no database configured")
	ErrClientClosed = errors.New("aoc: client is closed")
)
