package log

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalHandler_Format(t *testing.T) {
	var buf bytes.Buffer
	h := newTerminalHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	ts := time.Date(2026, 1, 15, 10, 30, 45, 123000000, time.UTC)
	r := slog.NewRecord(ts, slog.LevelInfo, "solved", 0)
	r.AddAttrs(slog.String("mode", "ranges"), slog.Uint64("minimum", 46))
	require.NoError(t, h.Handle(context.Background(), r))

	assert.Equal(t, "10:30:45.123 INF solved mode=ranges minimum=46\n", buf.String())
}

func TestTerminalHandler_PlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	slog.New(newTerminalHandler(&buf, nil)).Info("hello")
	assert.NotContains(t, buf.String(), "\033[")
}

func TestTerminalHandler_Levels(t *testing.T) {
	tests := []struct {
		level    slog.Level
		expected string
	}{
		{slog.LevelDebug, "DBG"},
		{slog.LevelInfo, "INF"},
		{slog.LevelWarn, "WRN"},
		{slog.LevelError, "ERR"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			var buf bytes.Buffer
			h := newTerminalHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
			require.NoError(t, h.Handle(context.Background(), slog.NewRecord(time.Now(), tt.level, "msg", 0)))
			assert.Contains(t, buf.String(), " "+tt.expected+" ")
		})
	}
}

func TestTerminalHandler_DefaultLevel(t *testing.T) {
	h := newTerminalHandler(&bytes.Buffer{}, nil)
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
}

func TestTerminalHandler_WithAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newTerminalHandler(&buf, nil)).
		With("component", "solver").
		WithGroup("stage").
		With("name", "soil")

	logger.Info("split", slog.Group("pieces", slog.Int("mapped", 2)))

	out := buf.String()
	assert.Contains(t, out, " component=solver")
	assert.Contains(t, out, " stage.name=soil")
	assert.Contains(t, out, " stage.pieces.mapped=2")
}

func TestTerminalHandler_WithAttrsDoesNotLeak(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(newTerminalHandler(&buf, nil))
	_ = base.With("extra", "x")

	base.Info("plain")
	assert.NotContains(t, buf.String(), "extra")
}

func TestTerminalHandler_EmptyGroup(t *testing.T) {
	h := newTerminalHandler(&bytes.Buffer{}, nil)
	assert.Same(t, h, h.WithGroup(""))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, `"two words"`, formatValue(slog.StringValue("two words")))
	assert.Equal(t, `""`, formatValue(slog.StringValue("")))
	assert.Equal(t, "plain", formatValue(slog.StringValue("plain")))
	assert.Equal(t, "1.235ms", formatValue(slog.DurationValue(1234567*time.Nanosecond)))
	assert.Equal(t, "7", formatValue(slog.IntValue(7)))
}
