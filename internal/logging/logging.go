package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// Key constants for structured log fields.
const (
	KeyComponent  = "component"
	KeyVendor     = "vendor"
	KeyModel      = "model"
	KeyOutput     = "output"
	KeyDurationMs = "durationMs"
	KeyError      = "error"
)

// root holds the active handler. Packages grab their loggers with L at
// init time, before flags and config are parsed, so the handler behind
// those loggers has to be swappable after the fact.
var root atomic.Pointer[slog.Handler]

func init() {
	h := slog.Handler(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	root.Store(&h)
	slog.SetDefault(slog.New(lateHandler{}))
}

// lateHandler resolves the root handler per record instead of capturing
// it. WithAttrs and WithGroup calls are recorded in order and replayed
// onto whatever handler is live when the record arrives, so an attr added
// before a group stays outside that group.
type lateHandler struct {
	ops []withOp
}

// withOp is one recorded WithAttrs (attrs set) or WithGroup (group set) call.
type withOp struct {
	group string
	attrs []slog.Attr
}

func (h lateHandler) live() slog.Handler {
	base := *root.Load()
	for _, op := range h.ops {
		if op.group != "" {
			base = base.WithGroup(op.group)
		} else {
			base = base.WithAttrs(op.attrs)
		}
	}
	return base
}

func (h lateHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.live().Enabled(ctx, level)
}

func (h lateHandler) Handle(ctx context.Context, rec slog.Record) error {
	return h.live().Handle(ctx, rec)
}

func (h lateHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	return lateHandler{ops: append(h.ops[:len(h.ops):len(h.ops)], withOp{attrs: attrs})}
}

func (h lateHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return lateHandler{ops: append(h.ops[:len(h.ops):len(h.ops)], withOp{group: name})}
}

// Init installs the process-wide handler. Call once after config is
// loaded. Logs go to stderr when output is nil; stdout stays free for
// command output that callers may pipe elsewhere.
// format: "json" or "text" (default "text")
// level: "debug", "info", "warn", "error" (default "info")
func Init(format, level string, output io.Writer) {
	if output == nil {
		output = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var h slog.Handler
	if strings.EqualFold(format, "json") {
		h = slog.NewJSONHandler(output, opts)
	} else {
		h = slog.NewTextHandler(output, opts)
	}
	root.Store(&h)
}

// L returns a logger tagged with the given component name.
func L(component string) *slog.Logger {
	return slog.New(lateHandler{}).With(slog.String(KeyComponent, component))
}

func parseLevel(s string) slog.Level {
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
