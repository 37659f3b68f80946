package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

type ctxKey string

const (
	slogFields  ctxKey = "slog_fields"
	PackageName string = "package"
	MountID     string = "mount"
)

// ContextHandler lifts attributes stored with AppendCtx into every record.
type ContextHandler struct {
	slog.Handler
}

// Level is the process-wide log level, raised to debug by --verbose.
var Level = new(slog.LevelVar)

// NewHandler is the process-wide handler: text output wrapped in a ContextHandler.
// Wrapping slog.Default().Handler() instead deadlocks once set as default.
func NewHandler(w io.Writer, level slog.Leveler) slog.Handler {
	return ContextHandler{Handler: slog.NewTextHandler(w, &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	})}
}

// Handle adds contextual attributes to the Record before calling the underlying handler.
func (h ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(slogFields).([]slog.Attr); ok {
		for _, v := range attrs {
			r.AddAttrs(v)
		}
	}

	err := h.Handler.Handle(ctx, r)
	if err != nil {
		return fmt.Errorf("error handling record for a log: %+v: %w", r, err)
	}

	return nil
}

func (h ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return ContextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h ContextHandler) WithGroup(name string) slog.Handler {
	return ContextHandler{Handler: h.Handler.WithGroup(name)}
}

// AppendCtx adds an slog attribute to the provided context so that it will be included in any Record created with such context.
func AppendCtx(parent context.Context, attr slog.Attr) context.Context {
	if v, ok := parent.Value(slogFields).([]slog.Attr); ok {
		// Copy so sibling contexts do not share a backing array.
		v = append(v[:len(v):len(v)], attr)

		return context.WithValue(parent, slogFields, v)
	}

	v := []slog.Attr{attr}

	return context.WithValue(parent, slogFields, v)
}

func PackageCtx(packageName string) context.Context {
	return AppendCtx(context.Background(), slog.String(PackageName, packageName))
}

// MountCtx tags records with the page mount they belong to.
func MountCtx(parent context.Context, id string) context.Context {
	return AppendCtx(parent, slog.String(MountID, id))
}
