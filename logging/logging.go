package logging

import (
	"context"
	"fmt"
	"log/slog"
)

type ctxKey string

const (
	slogFields ctxKey = "slog_fields"

	// ExecutableKey is the attribute under which session records carry
	// the selector binary they belong to.
	ExecutableKey string = "executable"
)

// ContextHandler decorates records with the attributes carried by
// their context before passing them to the wrapped handler.
type ContextHandler struct {
	slog.Handler
}

func (h ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(slogFields).([]slog.Attr); ok {
		r.AddAttrs(attrs...)
	}

	if err := h.Handler.Handle(ctx, r); err != nil {
		return fmt.Errorf("could not handle log record %v: %w", r, err)
	}

	return nil
}

// AppendCtx returns a context that carries attr in addition to any
// attributes already present, so every record logged against it picks
// attr up. The parent's attribute slice is never shared.
func AppendCtx(parent context.Context, attr slog.Attr) context.Context {
	var attrs []slog.Attr

	if v, ok := parent.Value(slogFields).([]slog.Attr); ok {
		attrs = append(attrs, v...)
	}

	attrs = append(attrs, attr)

	return context.WithValue(parent, slogFields, attrs)
}

// SessionCtx builds the context a selector session logs against,
// tagging its records with the executable that drives it.
func SessionCtx(executable string) context.Context {
	return AppendCtx(context.Background(), slog.String(ExecutableKey, executable))
}
