package mapprovider

import (
	"context"
	"fmt"
	"route-recommendation-service/internal/domain"
	"sync/atomic"
)

type MockPair struct {
	From, To   string
	Mode       string
	DistanceKm float64
	Minutes    int
	HasTraffic bool
}

// MockProvider serves fixed routes keyed by "from|to|mode".
// An empty Mode on a pair matches every vehicle.
type MockProvider struct {
	m     map[string]domain.RawRoute
	calls atomic.Int64
	// Err, when set, is returned by every call.
	Err error
}

func NewMockProvider(pairs []MockPair) *MockProvider {
	m := make(map[string]domain.RawRoute, len(pairs))
	for _, p := range pairs {
		m[p.From+"|"+p.To+"|"+p.Mode] = domain.RawRoute{
			DistanceKm:       p.DistanceKm,
			EstimatedTimeMin: p.Minutes,
			HasTraffic:       p.HasTraffic,
		}
	}
	return &MockProvider{m: m}
}

func (p *MockProvider) Resolve(ctx context.Context, origin, destination, modeKey string) (domain.RawRoute, error) {
	p.calls.Add(1)
	if p.Err != nil {
		return domain.RawRoute{}, p.Err
	}

	if r, ok := p.m[origin+"|"+destination+"|"+modeKey]; ok {
		return r, nil
	}
	if r, ok := p.m[origin+"|"+destination+"|"]; ok {
		return r, nil
	}
	return domain.RawRoute{}, fmt.Errorf("missing pair %q -> %q (%s): %w", origin, destination, modeKey, domain.ErrProviderUnavailable)
}

// Calls reports how many times Resolve ran.
func (p *MockProvider) Calls() int { return int(p.calls.Load()) }
