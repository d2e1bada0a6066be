package logs

import (
	"context"
	"log/slog"
)

// Span tags log records emitted within one unit of work.
type Span string

type spanKeyType struct{}

var SpanKey = spanKeyType{}

type spanHandler struct {
	slog.Handler
}

func (h *spanHandler) Handle(ctx context.Context, record slog.Record) error {
	if v := ctx.Value(SpanKey); v != nil {
		record.Add("span", v.(Span))
	}
	return h.Handler.Handle(ctx, record)
}
