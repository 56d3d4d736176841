package logging

import "context"

type traceKey struct{}

// WithTraceID stores the request trace id; every log call made with the
// returned context carries it.
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceKey{}, id)
}

func TraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(traceKey{}).(string)
	return id
}

func withTrace(ctx context.Context, args []any) []any {
	if id := TraceID(ctx); id != "" {
		return append(args, "trace_id", id)
	}
	return args
}
