package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Raw distance/time reported by a map provider for an origin-destination-mode triple.
type RawRoute struct {
	DistanceKm       float64
	EstimatedTimeMin int
	HasTraffic       bool
}

// Represents a recommended route.
// Distance, time, cost and CO2 are fixed when a strategy creates the estimate;
// later stages may only append narrative lines.
type RouteEstimate struct {
	Origin            string
	Destination       string
	DistanceKm        float64
	EstimatedTimeMin  int
	Cost              float64
	CO2Kg             float64
	TransportModeName string
	Narrative         []string
}

// Clone returns a copy that shares no narrative storage with r.
func (r RouteEstimate) Clone() RouteEstimate {
	out := r
	out.Narrative = slices.Clone(r.Narrative)
	return out
}

// SameMetrics reports whether the numeric fields of r and o are identical.
func (r RouteEstimate) SameMetrics(o RouteEstimate) bool {
	return r.DistanceKm == o.DistanceKm &&
		r.EstimatedTimeMin == o.EstimatedTimeMin &&
		r.Cost == o.Cost &&
		r.CO2Kg == o.CO2Kg
}

// Summary is a one-line description used by logs and observers.
func (r RouteEstimate) Summary() string {
	return fmt.Sprintf("%s -> %s (%s, %.1f km, %d min)",
		r.Origin, r.Destination, r.TransportModeName, r.DistanceKm, r.EstimatedTimeMin)
}

// Cache key identifying a previously computed estimate.
// Comparison is case-insensitive and order-sensitive.
type RouteKey struct {
	Origin      string
	Destination string
	Mode        string
}

func NewRouteKey(origin, destination, modeName string) RouteKey {
	return RouteKey{
		Origin:      NormalizeLocation(origin),
		Destination: NormalizeLocation(destination),
		Mode:        NormalizeLocation(modeName),
	}
}

func (k RouteKey) String() string {
	return k.Origin + "|" + k.Destination + "|" + k.Mode
}

// NormalizeLocation lower-cases s and collapses whitespace.
func NormalizeLocation(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
