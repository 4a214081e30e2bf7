package mapprovider

import (
	"context"
	"fmt"
	"hash/fnv"
	"route-recommendation-service/internal/domain"
	"route-recommendation-service/internal/ports"
	"strings"
	"unicode/utf8"
)

type vehicleScale struct {
	distance float64
	time     float64
}

var legacyScales = map[string]vehicleScale{
	"car":     {distance: 0.9, time: 1.5},
	"bike":    {distance: 1.1, time: 4},
	"walking": {distance: 0.8, time: 12},
	"bus":     {distance: 1.2, time: 3.5},
}

// LegacyProvider simulates a map service from the location names alone.
// Results are deterministic: the same triple always yields the same route,
// including its traffic flag.
type LegacyProvider struct{}

var _ ports.MapProvider = LegacyProvider{}

func NewLegacyProvider() LegacyProvider { return LegacyProvider{} }

func (LegacyProvider) Resolve(ctx context.Context, origin, destination, modeKey string) (domain.RawRoute, error) {
	if err := ctx.Err(); err != nil {
		return domain.RawRoute{}, fmt.Errorf("legacy resolve: %w: %w", domain.ErrProviderUnavailable, err)
	}
	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		return domain.RawRoute{}, fmt.Errorf("legacy resolve: origin and destination must be non-empty: %w", domain.ErrInvalidArgument)
	}

	key := strings.ToLower(strings.TrimSpace(modeKey))
	scale, ok := legacyScales[key]
	if !ok {
		return domain.RawRoute{}, fmt.Errorf("legacy resolve: vehicle %q: %w", modeKey, domain.ErrUnsupportedMode)
	}

	distance := float64(utf8.RuneCountInString(origin)+utf8.RuneCountInString(destination)) * 0.8
	distance *= scale.distance

	return domain.RawRoute{
		DistanceKm:       distance,
		EstimatedTimeMin: int(distance * scale.time),
		HasTraffic:       trafficFlag(origin, destination, key),
	}, nil
}

// trafficFlag gives roughly half of all triples a traffic report.
func trafficFlag(origin, destination, key string) bool {
	h := fnv.New32a()
	_, _ = h.Write([]byte(domain.NewRouteKey(origin, destination, key).String()))
	return h.Sum32()%100 > 50
}
