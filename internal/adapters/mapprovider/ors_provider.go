package mapprovider

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"route-recommendation-service/internal/domain"
	"route-recommendation-service/internal/platform/obs"
	"route-recommendation-service/internal/ports"
	"strings"
	"time"
)

// OpenRouteService routing profiles per vehicle type.
var orsProfiles = map[string]string{
	"car":     "driving-car",
	"bus":     "driving-car",
	"bike":    "cycling-regular",
	"walking": "foot-walking",
}

// ORSProvider implements MapProvider using OpenRouteService.
//
// It coordinates:
//   - Place name normalization
//   - Optional persistent geocode storage
//   - External API calls with retry/backoff
//
// The provider is safe for concurrent use.
type ORSProvider struct {
	session      *http.Client
	apiKey       string
	baseURL      string
	country      string
	retryBackoff time.Duration
	geocodes     ports.GeocodeStore
}

var _ ports.MapProvider = (*ORSProvider)(nil)

type ORSOption func(*ORSProvider)

func WithBaseURL(u string) ORSOption {
	return func(o *ORSProvider) { o.baseURL = strings.TrimRight(u, "/") }
}

func WithHTTPClient(c *http.Client) ORSOption {
	return func(o *ORSProvider) { o.session = c }
}

// WithCountry limits geocoding to an ISO country code. Empty searches worldwide.
func WithCountry(code string) ORSOption {
	return func(o *ORSProvider) { o.country = code }
}

func WithGeocodeStore(s ports.GeocodeStore) ORSOption {
	return func(o *ORSProvider) { o.geocodes = s }
}

func WithRetryBackoff(d time.Duration) ORSOption {
	return func(o *ORSProvider) { o.retryBackoff = d }
}

func NewORSProvider(apiKey string, opts ...ORSOption) (*ORSProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("ORS api key is empty")
	}

	o := &ORSProvider{
		session:      &http.Client{Timeout: 10 * time.Second},
		apiKey:       apiKey,
		baseURL:      "https://api.openrouteservice.org",
		country:      "BR",
		retryBackoff: 200 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(o)
	}

	return o, nil
}

// normalize ensures consistent store keys by collapsing whitespace.
func (o *ORSProvider) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func (o *ORSProvider) Resolve(
	ctx context.Context,
	origin, destination, modeKey string,
) (_ domain.RawRoute, err error) {
	defer obs.Time(ctx, "ors.Resolve")(&err)

	normOrigin, normDestination := o.normalize(origin), o.normalize(destination)
	if normOrigin == "" || normDestination == "" {
		return domain.RawRoute{}, fmt.Errorf("ORS resolve: origin and destination must be non-empty: %w", domain.ErrInvalidArgument)
	}

	profile, ok := orsProfiles[strings.ToLower(modeKey)]
	if !ok {
		return domain.RawRoute{}, fmt.Errorf("ORS resolve: vehicle %q: %w", modeKey, domain.ErrUnsupportedMode)
	}

	if normOrigin == normDestination {
		return domain.RawRoute{}, nil
	}

	coords, err := o.coordinates(ctx, []string{normOrigin, normDestination})
	if err != nil {
		return domain.RawRoute{}, fmt.Errorf("ORS resolve: %w: %w", domain.ErrProviderUnavailable, err)
	}

	meters, seconds, err := o.fetchLeg(ctx, profile, coords[normOrigin], coords[normDestination])
	if err != nil {
		return domain.RawRoute{}, fmt.Errorf("ORS resolve %q -> %q: %w: %w", normOrigin, normDestination, domain.ErrProviderUnavailable, err)
	}

	// ORS returns float metrics; minutes are rounded for domain consistency.
	return domain.RawRoute{
		DistanceKm:       meters / 1000,
		EstimatedTimeMin: int(math.Round(seconds / 60)),
	}, nil
}

// coordinates resolves names through the store first and geocodes the rest.
func (o *ORSProvider) coordinates(ctx context.Context, names []string) (map[string]domain.Coordinates, error) {
	hits := make(map[string]domain.Coordinates)
	if o.geocodes != nil {
		var err error
		hits, err = o.geocodes.GetMany(ctx, names)
		if err != nil {
			// A broken store degrades to live geocoding.
			log.Printf("req_id=%s geocode store read failed: %v", obs.RequestID(ctx), err)
			hits = map[string]domain.Coordinates{}
		}
	}

	misses := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := hits[n]; !ok {
			misses = append(misses, n)
		}
	}

	if len(misses) == 0 {
		return hits, nil
	}

	fresh, err := o.geocodeMany(ctx, misses)
	if err != nil {
		return nil, fmt.Errorf("retrieving coordinates: %w", err)
	}

	if o.geocodes != nil {
		if err := o.geocodes.PutMany(ctx, fresh); err != nil {
			log.Printf("req_id=%s geocode store write failed: %v", obs.RequestID(ctx), err)
		}
	}

	out := make(map[string]domain.Coordinates, len(hits)+len(fresh))
	for k, v := range hits {
		out[k] = v
	}
	for k, v := range fresh {
		out[k] = v
	}
	return out, nil
}
