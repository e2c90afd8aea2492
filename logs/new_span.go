package logs

import (
	"context"
	"crypto/rand"
)

// Span identifies one program run in logs and errors.
type Span string

type spanKey struct{}

func SpanFromContext(ctx context.Context) (Span, bool) {
	span, ok := ctx.Value(spanKey{}).(Span)
	return span, ok
}

type NewSpan func(ctx context.Context, what string) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, what string) (context.Context, Span) {
		parent, _ := SpanFromContext(ctx)
		span := Span(rand.Text())
		ctx = context.WithValue(ctx, spanKey{}, span)

		args := []any{"what", what}
		if parent != "" {
			args = append(args, "parent", parent)
		}
		logger.DebugContext(ctx, "new span", args...)

		return ctx, span
	}
}
