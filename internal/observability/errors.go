package observability

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"dc-circuit-lab/internal/handlers"
)

// RecordError centralises failure handling for the circuit endpoints: it
// records err on the span, increments counter for the calculator, logs
// with trace context and writes the JSON error body. The request ID is
// carried by the X-Request-ID header only.
func RecordError(ctx context.Context, span trace.Span, logger *zap.Logger, counter metric.Int64Counter, calculator, msg string, err error, status int, w http.ResponseWriter) {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)

	counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("calculator", calculator),
		attribute.Int("http.status_code", status),
	))

	logger.Error(msg,
		zap.String("calculator", calculator),
		zap.Int("status", status),
		zap.Error(err),
		zap.String("request_id", RequestIDFromContext(ctx)),
	)

	handlers.WriteError(w, status, msg+": "+err.Error())
}
