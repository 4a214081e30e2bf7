package strategy

import (
	"fmt"
	"route-recommendation-service/internal/domain"
)

// EcoFriendly minimizes emissions and accepts a longer trip.
// Cars in Heavy or Gridlock traffic take a 15% longer detour around
// congestion, which also costs two extra multiplier points.
type EcoFriendly struct{}

func (EcoFriendly) Kind() domain.StrategyKind { return domain.StrategyEcoFriendly }

func (EcoFriendly) Compute(in Input) (domain.RouteEstimate, error) {
	t := tuning{timeFactor: 1.1, co2Factor: 0.8}
	if in.Profile != nil && in.Profile.Mode() == domain.ModeCar && in.Conditions.Traffic.Congested() {
		t.distanceFactor = 1.15
		t.surcharge = 2
	}

	return compute(in, t, func(r domain.RouteEstimate) []string {
		return []string{
			"Follow the route with the lowest environmental impact",
			"Avoid congested areas to reduce emissions",
			fmt.Sprintf("Estimated CO2 emission: %.2f kg", r.CO2Kg),
		}
	})
}
