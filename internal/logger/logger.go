// Package logger configures the process-wide slog logger.
package logger

import (
	"context"
	"io"
	log "log/slog"
	"os"
	"strings"

	"github.com/MyelinBots/stillalive-go/internal/services/context_manager"
)

// ParseLevel maps debug|info|warn|error onto a slog level. Unknown values
// mean info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.LevelDebug
	case "warn", "warning":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}

// Init installs a JSON logger on stdout as the default.
func Init(level string) {
	InitWriter(os.Stdout, level)
}

func InitWriter(w io.Writer, level string) {
	h := log.NewJSONHandler(w, &log.HandlerOptions{Level: ParseLevel(level)})
	log.SetDefault(log.New(&ContextHandler{h}))
}

// ContextHandler adds the request's trace id and username to every record
// logged with a context.
type ContextHandler struct {
	log.Handler
}

func (h *ContextHandler) Handle(ctx context.Context, r log.Record) error {
	if traceID := context_manager.GetTraceIDContext(ctx); traceID != "" {
		r.AddAttrs(log.String("trace_id", traceID))
	}
	if username, ok := context_manager.GetUsernameContext(ctx); ok {
		r.AddAttrs(log.String("username", username))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []log.Attr) log.Handler {
	return &ContextHandler{h.Handler.WithAttrs(attrs)}
}

func (h *ContextHandler) WithGroup(name string) log.Handler {
	return &ContextHandler{h.Handler.WithGroup(name)}
}
