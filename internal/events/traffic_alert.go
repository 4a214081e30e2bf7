package events

import (
	"fmt"
	"log"
	"route-recommendation-service/internal/domain"
	"strings"
	"sync"
)

const (
	LongRouteThresholdKm = 10.0
	LongTripThresholdMin = 60
	recentAlertLimit     = 20
)

// AlertKind distinguishes the two alerts TrafficAlerter raises.
type AlertKind string

const (
	AlertLongRoute AlertKind = "long_route"
	AlertLongTrip  AlertKind = "long_trip"
)

type Alert struct {
	Kind    AlertKind `json:"kind"`
	Message string    `json:"message"`
	Advice  string    `json:"advice,omitempty"`
}

// AlertSink receives every alert as it is raised.
type AlertSink func(Alert)

func logAlert(a Alert) {
	log.Printf("traffic_alert kind=%s msg=%q advice=%q", a.Kind, a.Message, a.Advice)
}

// TrafficAlerter raises alerts for long routes and long trips.
type TrafficAlerter struct {
	sink AlertSink

	mu     sync.Mutex
	recent []Alert
}

// NewTrafficAlerter sends alerts to sink; nil logs them.
func NewTrafficAlerter(sink AlertSink) *TrafficAlerter {
	if sink == nil {
		sink = logAlert
	}
	return &TrafficAlerter{sink: sink}
}

var longRouteAdvice = map[string]string{
	"car":            "Check current traffic conditions before leaving.",
	"public transit": "Check departure times to avoid long waits.",
	"bike":           "Bring water and sun protection for long rides.",
	"walk":           "Long walk ahead; consider another mode of transport.",
}

func (t *TrafficAlerter) OnRoute(r domain.RouteEstimate) error {
	if r.DistanceKm > LongRouteThresholdKm {
		t.raise(Alert{
			Kind:    AlertLongRoute,
			Message: fmt.Sprintf("Long route detected (%.1f km)", r.DistanceKm),
			Advice:  longRouteAdvice[strings.ToLower(r.TransportModeName)],
		})
	}
	if r.EstimatedTimeMin > LongTripThresholdMin {
		t.raise(Alert{
			Kind:    AlertLongTrip,
			Message: fmt.Sprintf("Long travel time: %d minutes", r.EstimatedTimeMin),
			Advice:  "Plan rest stops along the way.",
		})
	}
	return nil
}

func (t *TrafficAlerter) raise(a Alert) {
	t.mu.Lock()
	t.recent = append(t.recent, a)
	if over := len(t.recent) - recentAlertLimit; over > 0 {
		t.recent = append(t.recent[:0:0], t.recent[over:]...)
	}
	t.mu.Unlock()

	t.sink(a)
}

// Recent returns the latest alerts, oldest first.
func (t *TrafficAlerter) Recent() []Alert {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Alert(nil), t.recent...)
}
