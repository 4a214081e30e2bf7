package ports

import (
	"context"
	"route-recommendation-service/internal/domain"
)

// Port: lookup table of place name -> coordinates consulted by geocoding map providers.
type GeocodeStore interface {
	// Return coordinates for the names found; missing names are simply absent.
	GetMany(ctx context.Context, names []string) (map[string]domain.Coordinates, error)
	// Store name -> coordinate mappings.
	PutMany(ctx context.Context, results map[string]domain.Coordinates) error
}
