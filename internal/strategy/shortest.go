package strategy

import (
	"fmt"
	"route-recommendation-service/internal/domain"
)

// Shortest is the baseline: provider distance with no strategy adjustment.
type Shortest struct{}

func (Shortest) Kind() domain.StrategyKind { return domain.StrategyShortest }

func (Shortest) Compute(in Input) (domain.RouteEstimate, error) {
	return compute(in, tuning{}, func(r domain.RouteEstimate) []string {
		return []string{
			"Follow the most direct route",
			fmt.Sprintf("Total distance: %.1f km", r.DistanceKm),
		}
	})
}
