package ports

import (
	"context"

	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/kernel"
)

// RouteEstimate is the routing service's answer for a delivery address:
// resolved coordinates, routed distance and estimated travel time.
type RouteEstimate struct {
	DistanceKm      float64
	DurationMinutes int
	Destination     kernel.GeoPoint
}

// RoutingClient resolves a free-text delivery address into a route estimate.
// Implemented by the external geocoding/routing adapter; called once per
// delivery order at creation time.
type RoutingClient interface {
	Estimate(ctx context.Context, address string) (RouteEstimate, error)
}
