package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var (
	apiTracer = otel.Tracer("ipl-fantasy-tracker/internal/interfaces/httpapi")
	noopSpan  = trace.SpanFromContext(context.Background())
)

// Health check paths are polled constantly and never traced.
var untracedPaths = map[string]struct{}{
	"/healthz": {},
	"/health":  {},
	"/livez":   {},
	"/readyz":  {},
}

func shouldTraceRequest(path string) bool {
	_, skip := untracedPaths[strings.ToLower(strings.TrimSpace(path))]
	return !skip
}

// startSpan opens a child span for handler methods only. Middleware and
// response helpers share the request span.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name)
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
}
