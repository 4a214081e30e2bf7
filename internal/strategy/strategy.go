// Package strategy implements the route optimization objectives.
//
// Every variant shares the same computation shape (distance, time multiplier,
// time, cost, emissions, narrative) and differs only in its coefficients and
// guidance lines. Variants hold no state, so a single instance per kind is
// shared by all callers.
package strategy

import (
	"fmt"
	"route-recommendation-service/internal/domain"
)

// Everything a strategy needs to produce an estimate.
type Input struct {
	Origin      string
	Destination string
	Profile     *domain.TransportProfile
	Conditions  domain.RouteConditions
	// Baseline is the provider's raw output for origin -> destination.
	Baseline domain.RawRoute
}

// RouteStrategy computes a fully populated estimate from raw inputs and conditions.
type RouteStrategy interface {
	Kind() domain.StrategyKind
	Compute(in Input) (domain.RouteEstimate, error)
}

var registry = map[domain.StrategyKind]RouteStrategy{
	domain.StrategyFastest:     Fastest{},
	domain.StrategyShortest:    Shortest{},
	domain.StrategyEconomical:  Economical{},
	domain.StrategyEcoFriendly: EcoFriendly{},
}

// For returns the implementation registered for kind.
func For(kind domain.StrategyKind) (RouteStrategy, error) {
	s, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("strategy for %q: %w", kind, domain.ErrUnsupportedStrategy)
	}
	return s, nil
}

// Parse resolves a user or settings value to a strategy.
func Parse(name string) (RouteStrategy, error) {
	kind := domain.ParseStrategyKind(name)
	if kind == domain.StrategyUnset {
		return nil, fmt.Errorf("parse strategy %q: %w", name, domain.ErrUnsupportedStrategy)
	}
	return For(kind)
}
