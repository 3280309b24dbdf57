package server

import (
	"context"

	"gamegraph/internal/graph"
)

// HealthService answers the readiness probe behind /healthz.
type HealthService interface {
	Probe(ctx context.Context) error
}

// GraphHealthService probes the graph driver for live connectivity. A nil
// client reports healthy.
type GraphHealthService struct {
	Client graph.Client
}

// Probe returns the driver's connectivity error, if any.
func (s GraphHealthService) Probe(ctx context.Context) error {
	if s.Client == nil {
		return nil
	}
	return s.Client.VerifyConnectivity(ctx)
}
