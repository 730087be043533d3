package main

import (
	"context"

	"dc-circuit-lab/internal/circuit"
	"dc-circuit-lab/internal/config"
	"dc-circuit-lab/internal/observability"
)

// initMetrics initialises the meter provider and the circuit instruments.
func initMetrics(ctx context.Context, cfg config.TelemetryConfig) (observability.Shutdown, error) {
	shutdown, err := observability.InitMetrics(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := circuit.InitMetrics(); err != nil {
		return nil, err
	}

	return shutdown, nil
}
