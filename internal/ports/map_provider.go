package ports

import (
	"context"
	"route-recommendation-service/internal/domain"
)

// Contract for retrieving raw travel distance and duration between two named locations.
type MapProvider interface {
	// Resolve returns distance/time/traffic for origin -> destination using the
	// provider vehicle key (see TransportProfile.ProviderKey).
	// Failures wrap domain.ErrProviderUnavailable.
	Resolve(ctx context.Context, origin, destination, modeKey string) (domain.RawRoute, error)
}
