// Package logging configures the single shared structured logger
// cmd/vtaserver installs at startup, using github.com/mattn/go-isatty
// to decide whether log/slog emits a human-readable text handler or a
// JSON handler suited to log aggregation.
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
)

// New builds a slog.Logger writing to w: a TextHandler when w is a TTY
// (mattn/go-isatty), a JSONHandler otherwise (e.g. piped to a log
// collector).
func New(w *os.File, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if isatty.IsTerminal(w.Fd()) || isatty.IsCygwinTerminal(w.Fd()) {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler)
}

// Elapsed formats a duration in milliseconds with a thousands separator,
// used on the request and worker-pool log lines so a slow compile stands
// out in a text-handler log stream (e.g. "1,204ms").
func Elapsed(d time.Duration) string {
	return humanize.Comma(d.Milliseconds()) + "ms"
}

// Discard returns a logger whose output is dropped, for tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// WithTaskID returns a logger with a task_id attribute attached, so every
// line for one task's executor run and HTTP handling can be correlated.
func WithTaskID(base *slog.Logger, taskID string) *slog.Logger {
	return base.With(slog.String("task_id", taskID))
}
