package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

// palette holds the escape sequences used by the terminal handler.
// The zero palette renders plain text.
type palette struct {
	reset, dim, bold          string
	debug, info, warn, failed string
}

var colourPalette = palette{
	reset:  "\033[0m",
	dim:    "\033[2m",
	bold:   "\033[1m",
	debug:  "\033[36m",
	info:   "\033[32m",
	warn:   "\033[33m",
	failed: "\033[31m",
}

// TerminalHandler formats log records for a human reading a terminal.
// Colour is used only when the writer is a character device.
//
// Output format:
//
//	15:04:05.000 INF solved mode=ranges minimum=46 elapsed=1.2ms
type TerminalHandler struct {
	writer io.Writer
	level  slog.Leveler
	style  palette
	attrs  []slog.Attr
	groups []string
	mu     *sync.Mutex
}

func newTerminalHandler(w io.Writer, opts *slog.HandlerOptions) *TerminalHandler {
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}
	var style palette
	if isTerminal(w) {
		style = colourPalette
	}
	return &TerminalHandler{
		writer: w,
		level:  level,
		style:  style,
		mu:     &sync.Mutex{},
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// Enabled reports whether the handler handles records at the given level.
func (h *TerminalHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes a single line for the record.
func (h *TerminalHandler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer
	buf.Grow(256)

	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	h.wrap(&buf, h.style.dim, ts.Format("15:04:05.000"))
	buf.WriteByte(' ')

	colour, label := h.levelStyle(r.Level)
	h.wrap(&buf, colour, label)
	buf.WriteByte(' ')
	h.wrap(&buf, h.style.bold, r.Message)

	for _, a := range h.attrs {
		h.appendAttr(&buf, a, h.groups)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(&buf, a, h.groups)
		return true
	})
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.writer.Write(buf.Bytes())
	return err
}

// WithAttrs returns a handler carrying attrs on every record.
func (h *TerminalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append(make([]slog.Attr, 0, len(h.attrs)+len(attrs)), h.attrs...), attrs...)
	return &clone
}

// WithGroup returns a handler that prefixes later attribute keys with name.
func (h *TerminalHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append(make([]string, 0, len(h.groups)+1), h.groups...), name)
	return &clone
}

func (h *TerminalHandler) wrap(buf *bytes.Buffer, code, text string) {
	buf.WriteString(code)
	buf.WriteString(text)
	if code != "" {
		buf.WriteString(h.style.reset)
	}
}

func (h *TerminalHandler) levelStyle(level slog.Level) (string, string) {
	switch {
	case level < slog.LevelInfo:
		return h.style.debug, "DBG"
	case level < slog.LevelWarn:
		return h.style.info, "INF"
	case level < slog.LevelError:
		return h.style.warn, "WRN"
	default:
		return h.style.failed, "ERR"
	}
}

func (h *TerminalHandler) appendAttr(buf *bytes.Buffer, a slog.Attr, groups []string) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		prefix := groups
		if a.Key != "" {
			prefix = append(append(make([]string, 0, len(groups)+1), groups...), a.Key)
		}
		for _, ga := range a.Value.Group() {
			h.appendAttr(buf, ga, prefix)
		}
		return
	}

	key := a.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}
	buf.WriteByte(' ')
	h.wrap(buf, h.style.dim, key+"=")
	buf.WriteString(formatValue(a.Value))
}

func formatValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		s := v.String()
		if s == "" || strings.ContainsAny(s, " \t\n\"\\=") {
			return fmt.Sprintf("%q", s)
		}
		return s
	case slog.KindDuration:
		return v.Duration().Round(time.Microsecond).String()
	default:
		return v.String()
	}
}
