package logging

import (
	"crypto/rand"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// New creates a configured application logger writing to w, or Stderr when
// w is nil. Rendered output owns Stdout, so diagnostics never share it.
// It standardizes common keys (e.g., "error" -> "err").
func New(level slog.Level, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps debug, info, warn and error to a slog level.
// Unknown names fall back to warn.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// NewRunID returns a fresh ULID identifying one replay, tail or serve run.
func NewRunID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// WithRunID tags every record of l with run_id.
func WithRunID(l *slog.Logger, id string) *slog.Logger {
	return l.With("run_id", id)
}
