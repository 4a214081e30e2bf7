package augment

import (
	"fmt"
	"route-recommendation-service/internal/domain"
	"strings"
)

// SafetyAlert warns about known areas at or near the origin and destination.
type SafetyAlert struct {
	Alerts []Alert
}

func NewSafetyAlert(alerts []Alert) *SafetyAlert {
	return &SafetyAlert{Alerts: alerts}
}

func (*SafetyAlert) Name() string { return "safety_alert" }

func (s *SafetyAlert) Augment(r domain.RouteEstimate) domain.RouteEstimate {
	r.Narrative = s.appendFor(r.Narrative, r.Origin)
	r.Narrative = s.appendFor(r.Narrative, r.Destination)
	return r
}

// appendFor adds one line when location is a known area and one line per
// known area that location contains without being equal to it.
func (s *SafetyAlert) appendFor(lines []string, location string) []string {
	loc := domain.NormalizeLocation(location)
	if loc == "" {
		return lines
	}

	for _, a := range s.Alerts {
		if loc == domain.NormalizeLocation(a.Area) {
			lines = append(lines, fmt.Sprintf("Safety alert for %s: %s", location, a.Message))
			break
		}
	}
	for _, a := range s.Alerts {
		area := domain.NormalizeLocation(a.Area)
		if area != "" && loc != area && strings.Contains(loc, area) {
			lines = append(lines, fmt.Sprintf("Safety alert near %s: %s", a.Area, a.Message))
		}
	}
	return lines
}
