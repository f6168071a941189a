package logs

import "context"

type Span string

type spanKey struct{}

// SpanKey is the context key holding the current Span.
var SpanKey spanKey

func SpanFromContext(ctx context.Context) Span {
	if v := ctx.Value(SpanKey); v != nil {
		return v.(Span)
	}
	return ""
}
