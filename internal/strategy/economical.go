package strategy

import (
	"fmt"
	"route-recommendation-service/internal/domain"
)

// Economical minimizes cost: cars detour around tolls (+5% distance), the
// slower roads add one to the time multiplier and the trip costs 15% less.
type Economical struct{}

func (Economical) Kind() domain.StrategyKind { return domain.StrategyEconomical }

func (Economical) Compute(in Input) (domain.RouteEstimate, error) {
	t := tuning{surcharge: 1, costFactor: 0.85}
	if in.Profile != nil && in.Profile.Mode() == domain.ModeCar {
		t.distanceFactor = 1.05
	}

	return compute(in, t, func(r domain.RouteEstimate) []string {
		return []string{
			"Follow the route with the lowest total cost",
			"Avoid tolls and prefer economical roads",
			fmt.Sprintf("Estimated cost: R$ %.2f", r.Cost),
		}
	})
}
