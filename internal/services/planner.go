package services

import (
	"context"
	"fmt"
	"route-recommendation-service/internal/augment"
	"route-recommendation-service/internal/config"
	"route-recommendation-service/internal/domain"
	"route-recommendation-service/internal/events"
	"route-recommendation-service/internal/platform/obs"
	"route-recommendation-service/internal/ports"
	"route-recommendation-service/internal/strategy"
)

// PlanRequest is a route recommendation request.
// Nil overrides fall back to the planner settings.
type PlanRequest struct {
	Origin      string
	Destination string
	Mode        domain.TransportMode
	// StrategyUnset selects the configured default.
	Strategy   domain.StrategyKind
	Conditions domain.RouteConditions

	UseCache     *bool
	TouristInfo  *bool
	SafetyAlerts *bool
}

// Planner is the single entry point of the recommendation pipeline:
// compute (through the cache), augment, then notify observers.
type Planner struct {
	settings config.Settings
	routes   *RouteService
	tourist  *augment.TouristInfo
	safety   *augment.SafetyAlert
	bus      *events.Bus
	history  *events.HistoryRecorder
}

type PlannerDeps struct {
	Routes  *RouteService
	Tourist *augment.TouristInfo
	Safety  *augment.SafetyAlert
	Bus     *events.Bus
	History *events.HistoryRecorder
}

func NewPlanner(settings config.Settings, deps PlannerDeps) *Planner {
	if deps.Bus == nil {
		deps.Bus = events.NewBus()
	}
	return &Planner{
		settings: settings,
		routes:   deps.Routes,
		tourist:  deps.Tourist,
		safety:   deps.Safety,
		bus:      deps.Bus,
		history:  deps.History,
	}
}

func (p *Planner) Settings() config.Settings { return p.settings }

func pick(override *bool, fallback bool) bool {
	if override != nil {
		return *override
	}
	return fallback
}

func (p *Planner) Recommend(ctx context.Context, req PlanRequest) (_ domain.RouteEstimate, err error) {
	defer obs.Time(ctx, "planner.Recommend")(&err)

	profile := domain.ProfileFor(req.Mode)
	if profile == nil {
		return domain.RouteEstimate{}, fmt.Errorf("recommend: mode %s: %w", req.Mode, domain.ErrUnsupportedMode)
	}

	kind := req.Strategy
	if kind == domain.StrategyUnset {
		kind = p.settings.DefaultStrategy
	}
	strat, err := strategy.For(kind)
	if err != nil {
		return domain.RouteEstimate{}, fmt.Errorf("recommend: %w", err)
	}

	route, err := p.routes.GetRoute(ctx, RouteRequest{
		Origin:       req.Origin,
		Destination:  req.Destination,
		Profile:      profile,
		Strategy:     strat,
		Conditions:   req.Conditions,
		CacheEnabled: pick(req.UseCache, p.settings.CacheEnabled),
	})
	if err != nil {
		return domain.RouteEstimate{}, fmt.Errorf("recommend: %w", err)
	}

	chain := augment.Build(augment.Options{
		TouristInfo:  pick(req.TouristInfo, p.settings.ShowTouristInfo),
		SafetyAlerts: pick(req.SafetyAlerts, p.settings.ShowSafetyAlerts),
	}, p.tourist, p.safety)

	route, err = chain.Apply(route)
	if err != nil {
		return domain.RouteEstimate{}, fmt.Errorf("recommend: %w", err)
	}

	p.bus.Publish(route)
	return route, nil
}

// History returns the recorded route summaries, oldest first.
func (p *Planner) History() []events.HistoryEntry {
	if p.history == nil {
		return nil
	}
	return p.history.Entries()
}

func (p *Planner) ClearHistory() {
	if p.history != nil {
		p.history.Clear()
	}
}

// CacheStats reports the route cache counters; ok is false when caching is disabled.
func (p *Planner) CacheStats() (ports.CacheStats, bool) {
	c := p.routes.Cache()
	if c == nil {
		return ports.CacheStats{}, false
	}
	return c.Stats(), true
}

func (p *Planner) ClearCache() {
	if c := p.routes.Cache(); c != nil {
		c.Clear()
	}
}
