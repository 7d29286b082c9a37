// Package logging builds the process logger and bridges staff
// notifications into it.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/warp/staffing/staff"
)

// Field and component names shared by every log line.
const (
	FieldComponent = "component"
	FieldError     = "error"

	ComponentApp   = "app"
	ComponentHTTP  = "http"
	ComponentStaff = "staff"
)

// Options configures New.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // text, json
	Writer io.Writer
}

// New returns a slog logger. Unknown levels fall back to info and
// unknown formats to text.
func New(opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}
	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}

	var handler slog.Handler
	if strings.EqualFold(opts.Format, "json") {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}
	return slog.New(handler)
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Notifier returns a staff.Notifier that records each notification as
// an info log line tagged component=staff.
func Notifier(logger *slog.Logger) staff.Notifier {
	l := logger.With(FieldComponent, ComponentStaff)
	return staff.NotifierFunc(func(msg string) {
		l.Info(msg)
	})
}
