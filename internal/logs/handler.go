package logs

import (
	"context"
	"crypto/rand"
	"log/slog"
)

type runKey struct{}

// Run identifies one reduction session in log records.
type Run string

// NewRun returns ctx tagged with a fresh Run.
func NewRun(ctx context.Context) (context.Context, Run) {
	run := Run(rand.Text())
	return context.WithValue(ctx, runKey{}, run), run
}

type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if v := ctx.Value(runKey{}); v != nil {
		record.Add("logs.run", v.(Run))
	}
	return h.Handler.Handle(ctx, record)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{Handler: h.Handler.WithGroup(name)}
}
