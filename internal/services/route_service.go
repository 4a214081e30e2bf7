package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"route-recommendation-service/internal/domain"
	"route-recommendation-service/internal/platform/obs"
	"route-recommendation-service/internal/ports"
	"route-recommendation-service/internal/strategy"
	"strings"
)

type RouteRequest struct {
	Origin       string
	Destination  string
	Profile      *domain.TransportProfile
	Strategy     strategy.RouteStrategy
	Conditions   domain.RouteConditions
	CacheEnabled bool
}

// RouteService resolves a baseline through the map provider and runs the
// selected strategy on it, memoizing results in the route cache.
//
// The cache key ignores strategy and conditions: the first computation for an
// origin/destination/mode is returned until it is evicted or the cache is cleared.
type RouteService struct {
	provider ports.MapProvider
	cache    ports.RouteCache
}

// NewRouteService builds a service. cache may be nil, which disables caching.
func NewRouteService(provider ports.MapProvider, cache ports.RouteCache) *RouteService {
	return &RouteService{provider: provider, cache: cache}
}

// Cache returns the configured cache, or nil.
func (s *RouteService) Cache() ports.RouteCache { return s.cache }

func (s *RouteService) GetRoute(ctx context.Context, req RouteRequest) (_ domain.RouteEstimate, err error) {
	defer obs.Time(ctx, "routes.GetRoute")(&err)

	if strings.TrimSpace(req.Origin) == "" || strings.TrimSpace(req.Destination) == "" {
		return domain.RouteEstimate{}, fmt.Errorf("get route: origin and destination must be non-empty: %w", domain.ErrInvalidArgument)
	}
	if req.Profile == nil {
		return domain.RouteEstimate{}, fmt.Errorf("get route: %w", domain.ErrUnsupportedMode)
	}
	if req.Strategy == nil {
		return domain.RouteEstimate{}, fmt.Errorf("get route: %w", domain.ErrUnsupportedStrategy)
	}
	if s.provider == nil {
		return domain.RouteEstimate{}, errors.New("get route: map provider is nil")
	}

	useCache := req.CacheEnabled && s.cache != nil
	key := domain.NewRouteKey(req.Origin, req.Destination, req.Profile.Name())

	if useCache {
		if cached, ok := s.cache.Get(key); ok {
			log.Printf("req_id=%s route cache hit key=%q", obs.RequestID(ctx), key.String())
			return cached, nil
		}
	}

	route, err := s.compute(ctx, req)
	if err != nil {
		return domain.RouteEstimate{}, err
	}

	if useCache {
		s.cache.Put(key, route)
		if size, capacity := s.cache.Size(), s.cache.Capacity(); size > capacity {
			log.Printf("req_id=%s route cache over capacity size=%d capacity=%d", obs.RequestID(ctx), size, capacity)
			return domain.RouteEstimate{}, fmt.Errorf("get route: size %d > capacity %d: %w", size, capacity, domain.ErrCacheCapacityViolation)
		}
	}

	return route, nil
}

func (s *RouteService) compute(ctx context.Context, req RouteRequest) (domain.RouteEstimate, error) {
	raw, err := s.provider.Resolve(ctx, req.Origin, req.Destination, req.Profile.ProviderKey())
	if err != nil {
		return domain.RouteEstimate{}, fmt.Errorf("get route: resolve %q -> %q: %w", req.Origin, req.Destination, err)
	}

	route, err := req.Strategy.Compute(strategy.Input{
		Origin:      req.Origin,
		Destination: req.Destination,
		Profile:     req.Profile,
		Conditions:  req.Conditions,
		Baseline:    raw,
	})
	if err != nil {
		return domain.RouteEstimate{}, fmt.Errorf("get route: %s strategy: %w", req.Strategy.Kind(), err)
	}

	return route, nil
}
