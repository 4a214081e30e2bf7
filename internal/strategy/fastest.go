package strategy

import (
	"fmt"
	"route-recommendation-service/internal/domain"
)

// Fastest minimizes travel time through expressways: 20% less time than the
// shared estimate, reported over a 10% longer path. Cost and CO2 are unchanged.
type Fastest struct{}

func (Fastest) Kind() domain.StrategyKind { return domain.StrategyFastest }

func (Fastest) Compute(in Input) (domain.RouteEstimate, error) {
	t := tuning{reportedFactor: 1.1, timeFactor: 0.8}
	return compute(in, t, func(r domain.RouteEstimate) []string {
		return []string{
			"Take the fastest route using expressways",
			fmt.Sprintf("Estimated travel time: %d minutes", r.EstimatedTimeMin),
		}
	})
}
