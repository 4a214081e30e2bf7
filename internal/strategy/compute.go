package strategy

import (
	"errors"
	"fmt"
	"math"
	"route-recommendation-service/internal/domain"
	"strings"
)

// Extra time applied when the provider reports traffic on the route.
const trafficDelayFactor = 1.2

// tuning holds the coefficients that distinguish one strategy from another.
// Zero-valued factors are treated as 1.
//
// distanceFactor changes the path the metrics are derived from. reportedFactor
// only scales the distance shown to the caller once time, cost and CO2 are known.
type tuning struct {
	distanceFactor float64
	reportedFactor float64
	surcharge      int
	timeFactor     float64
	costFactor     float64
	co2Factor      float64
}

func factor(f float64) float64 {
	if f == 0 {
		return 1
	}
	return f
}

func validate(in Input) error {
	if strings.TrimSpace(in.Origin) == "" || strings.TrimSpace(in.Destination) == "" {
		return fmt.Errorf("compute route: origin and destination must be non-empty: %w", domain.ErrInvalidArgument)
	}
	if in.Profile == nil {
		return fmt.Errorf("compute route: nil transport profile: %w", domain.ErrUnsupportedMode)
	}
	d := in.Baseline.DistanceKm
	if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return fmt.Errorf("compute route: baseline distance %v: %w", d, domain.ErrInvalidArgument)
	}
	return nil
}

// compute runs the shared estimation shape. guidance receives the finished
// numbers and returns the strategy specific narrative lines.
func compute(in Input, t tuning, guidance func(domain.RouteEstimate) []string) (domain.RouteEstimate, error) {
	if err := validate(in); err != nil {
		return domain.RouteEstimate{}, err
	}
	if guidance == nil {
		return domain.RouteEstimate{}, errors.New("compute route: guidance must be non-nil")
	}

	p := in.Profile
	distance := in.Baseline.DistanceKm * factor(t.distanceFactor)

	// Whole minutes are kept between each adjustment.
	multiplier := in.Conditions.BaseTimeMultiplier() + t.surcharge
	minutes := int(distance * float64(multiplier) / p.Speed() * 60)
	if f := factor(t.timeFactor); f != 1 {
		minutes = int(float64(minutes) * f)
	}
	if in.Baseline.HasTraffic {
		minutes = int(float64(minutes) * trafficDelayFactor)
	}

	cost := distance * p.CostPerKm()
	if p.FlatRate() {
		cost = p.CostPerKm()
	}
	cost *= factor(t.costFactor)

	co2 := distance * p.EmissionFactor() * in.Conditions.Traffic.EmissionFactor() * factor(t.co2Factor)

	r := domain.RouteEstimate{
		Origin:            in.Origin,
		Destination:       in.Destination,
		DistanceKm:        math.Max(distance*factor(t.reportedFactor), 0),
		EstimatedTimeMin:  max(minutes, 0),
		Cost:              math.Max(cost, 0),
		CO2Kg:             math.Max(co2, 0),
		TransportModeName: p.Name(),
	}

	narrative := make([]string, 0, 6)
	narrative = append(narrative,
		fmt.Sprintf("Start at %s", in.Origin),
		fmt.Sprintf("Travel %.1f km by %s", r.DistanceKm, p.Name()),
	)
	narrative = append(narrative, guidance(r)...)
	if in.Baseline.HasTraffic {
		narrative = append(narrative, "Heads up: traffic reported along the route")
	}
	narrative = append(narrative, fmt.Sprintf("Arrive at %s", in.Destination))
	r.Narrative = narrative

	return r, nil
}
