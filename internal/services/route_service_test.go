package services

import (
	"context"
	"testing"

	"route-recommendation-service/internal/adapters/cache"
	"route-recommendation-service/internal/adapters/mapprovider"
	"route-recommendation-service/internal/domain"
	"route-recommendation-service/internal/ports"
	"route-recommendation-service/internal/strategy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockProvider() *mapprovider.MockProvider {
	return mapprovider.NewMockProvider([]mapprovider.MockPair{
		{From: "Centro", To: "Parque Ibirapuera", DistanceKm: 10},
		{From: "centro", To: "parque ibirapuera", DistanceKm: 99},
		{From: "Centro", To: "Estação Sé", DistanceKm: 2, HasTraffic: true},
	})
}

func carRequest(origin, destination string, s strategy.RouteStrategy, cacheEnabled bool) RouteRequest {
	return RouteRequest{
		Origin:       origin,
		Destination:  destination,
		Profile:      domain.ProfileFor(domain.ModeCar),
		Strategy:     s,
		Conditions:   domain.DefaultConditions(),
		CacheEnabled: cacheEnabled,
	}
}

func newCache(t *testing.T, capacity int) *cache.MemoryRouteCache {
	t.Helper()
	c, err := cache.NewMemoryRouteCache(capacity)
	require.NoError(t, err)
	return c
}

func TestRouteService_CacheHitReturnsStoredRoute(t *testing.T) {
	provider := mockProvider()
	svc := NewRouteService(provider, newCache(t, 10))
	ctx := context.Background()

	first, err := svc.GetRoute(ctx, carRequest("Centro", "Parque Ibirapuera", strategy.Fastest{}, true))
	require.NoError(t, err)

	// different spelling and strategy still hit the same key
	second, err := svc.GetRoute(ctx, carRequest("centro", "parque ibirapuera", strategy.Shortest{}, true))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, provider.Calls())
	assert.Equal(t, 1, svc.Cache().Size())
}

func TestRouteService_CacheDisabledBypassesCache(t *testing.T) {
	provider := mockProvider()
	c := newCache(t, 10)
	svc := NewRouteService(provider, c)

	for range 2 {
		_, err := svc.GetRoute(context.Background(), carRequest("Centro", "Parque Ibirapuera", strategy.Fastest{}, false))
		require.NoError(t, err)
	}

	assert.Equal(t, 2, provider.Calls())
	assert.Zero(t, c.Size())
}

func TestRouteService_NilCache(t *testing.T) {
	provider := mockProvider()
	svc := NewRouteService(provider, nil)

	for range 2 {
		_, err := svc.GetRoute(context.Background(), carRequest("Centro", "Parque Ibirapuera", strategy.Fastest{}, true))
		require.NoError(t, err)
	}
	assert.Equal(t, 2, provider.Calls())
}

func TestRouteService_ComputesFastest(t *testing.T) {
	svc := NewRouteService(mockProvider(), nil)

	r, err := svc.GetRoute(context.Background(), carRequest("Centro", "Parque Ibirapuera", strategy.Fastest{}, false))
	require.NoError(t, err)

	assert.InDelta(t, 11.0, r.DistanceKm, 1e-9)
	assert.Equal(t, 36, r.EstimatedTimeMin)
	assert.InDelta(t, 7.0, r.Cost, 1e-9)
	assert.InDelta(t, 10*0.12*1.2, r.CO2Kg, 1e-9)
	assert.Equal(t, "Car", r.TransportModeName)
}

func TestRouteService_TrafficFromProvider(t *testing.T) {
	svc := NewRouteService(mockProvider(), nil)

	r, err := svc.GetRoute(context.Background(), carRequest("Centro", "Estação Sé", strategy.Shortest{}, false))
	require.NoError(t, err)

	// 2 km * 3 / 40 * 60 = 9 min, +20% for traffic
	assert.Equal(t, 10, r.EstimatedTimeMin)
	assert.Contains(t, r.Narrative, "Heads up: traffic reported along the route")
}

func TestRouteService_Errors(t *testing.T) {
	svc := NewRouteService(mockProvider(), newCache(t, 2))
	ctx := context.Background()

	_, err := svc.GetRoute(ctx, carRequest("Centro", "Nowhere", strategy.Fastest{}, true))
	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
	assert.Zero(t, svc.Cache().Size(), "failures are not cached")

	_, err = svc.GetRoute(ctx, carRequest("", "Nowhere", strategy.Fastest{}, true))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	req := carRequest("Centro", "Parque Ibirapuera", strategy.Fastest{}, true)
	req.Profile = nil
	_, err = svc.GetRoute(ctx, req)
	assert.ErrorIs(t, err, domain.ErrUnsupportedMode)

	req = carRequest("Centro", "Parque Ibirapuera", nil, true)
	_, err = svc.GetRoute(ctx, req)
	assert.ErrorIs(t, err, domain.ErrUnsupportedStrategy)
}

func TestRouteService_CapacityOneEvicts(t *testing.T) {
	provider := mockProvider()
	svc := NewRouteService(provider, newCache(t, 1))
	ctx := context.Background()

	_, err := svc.GetRoute(ctx, carRequest("Centro", "Parque Ibirapuera", strategy.Fastest{}, true))
	require.NoError(t, err)
	_, err = svc.GetRoute(ctx, carRequest("Centro", "Estação Sé", strategy.Fastest{}, true))
	require.NoError(t, err)
	_, err = svc.GetRoute(ctx, carRequest("Centro", "Parque Ibirapuera", strategy.Fastest{}, true))
	require.NoError(t, err)

	assert.Equal(t, 3, provider.Calls())
	assert.Equal(t, 1, svc.Cache().Size())
}

// leakyCache reports more entries than its capacity.
type leakyCache struct{ ports.RouteCache }

func (leakyCache) Put(domain.RouteKey, domain.RouteEstimate) {}
func (leakyCache) Get(domain.RouteKey) (domain.RouteEstimate, bool) {
	return domain.RouteEstimate{}, false
}
func (leakyCache) Size() int     { return 3 }
func (leakyCache) Capacity() int { return 2 }

func TestRouteService_CapacityViolation(t *testing.T) {
	svc := NewRouteService(mockProvider(), leakyCache{})

	_, err := svc.GetRoute(context.Background(), carRequest("Centro", "Parque Ibirapuera", strategy.Fastest{}, true))
	assert.ErrorIs(t, err, domain.ErrCacheCapacityViolation)
}
