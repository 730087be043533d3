package circuit

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Metric instruments. They start as no-ops so the handlers work before
// InitMetrics runs.
var (
	opsCounter     metric.Int64Counter     = noop.Int64Counter{}
	opsHistogram   metric.Float64Histogram = noop.Float64Histogram{}
	errorCounter   metric.Int64Counter     = noop.Int64Counter{}
	zeroDenomCount metric.Int64Counter     = noop.Int64Counter{}
	resultGauge    metric.Float64Gauge     = noop.Float64Gauge{}
	sampledPoints  metric.Int64Counter     = noop.Int64Counter{}
)

// InitMetrics registers the circuit instruments on the global meter
// provider. Call this once at startup, after observability.InitMetrics.
func InitMetrics() error {
	meter := otel.Meter("circuit")

	var err error

	opsCounter, err = meter.Int64Counter("circuit.evaluations.total",
		metric.WithDescription("Total number of circuit evaluations performed"),
		metric.WithUnit("{evaluation}"),
	)
	if err != nil {
		return fmt.Errorf("creating evaluations counter: %w", err)
	}

	opsHistogram, err = meter.Float64Histogram("circuit.evaluation.duration",
		metric.WithDescription("Duration of formula evaluation and sampling in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating evaluation histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("circuit.errors.total",
		metric.WithDescription("Total number of rejected circuit requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	zeroDenomCount, err = meter.Int64Counter("circuit.zero_denominator.total",
		metric.WithDescription("Evaluations where a zero denominator was replaced by 0"),
		metric.WithUnit("{evaluation}"),
	)
	if err != nil {
		return fmt.Errorf("creating zero denominator counter: %w", err)
	}

	resultGauge, err = meter.Float64Gauge("circuit.last_result",
		metric.WithDescription("The primary result of the last evaluation"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating result gauge: %w", err)
	}

	sampledPoints, err = meter.Int64Counter("circuit.sampled_points.total",
		metric.WithDescription("Curve points generated for plots"),
		metric.WithUnit("{point}"),
	)
	if err != nil {
		return fmt.Errorf("creating sampled points counter: %w", err)
	}

	return nil
}
