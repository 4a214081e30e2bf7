package augment

import (
	"fmt"
	"math/rand/v2"
	"route-recommendation-service/internal/domain"
)

const maxAttractionsPerLocation = 3

// TouristInfo lists up to three attractions near the origin and near the destination.
type TouristInfo struct {
	Catalog *Attractions
	// Shuffle picks the attractions shown; defaults to math/rand/v2.Shuffle.
	Shuffle func(n int, swap func(i, j int))
}

func NewTouristInfo(catalog *Attractions) *TouristInfo {
	return &TouristInfo{Catalog: catalog, Shuffle: rand.Shuffle}
}

func (*TouristInfo) Name() string { return "tourist_info" }

func (t *TouristInfo) Augment(r domain.RouteEstimate) domain.RouteEstimate {
	r.Narrative = t.appendNear(r.Narrative, r.Origin, "origin")
	r.Narrative = t.appendNear(r.Narrative, r.Destination, "destination")
	return r
}

func (t *TouristInfo) appendNear(lines []string, location, role string) []string {
	if t.Catalog == nil {
		return lines
	}
	picks, ok := t.Catalog.Lookup(location)
	if !ok {
		return lines
	}

	shuffle := t.Shuffle
	if shuffle == nil {
		shuffle = rand.Shuffle
	}
	shuffle(len(picks), func(i, j int) { picks[i], picks[j] = picks[j], picks[i] })

	lines = append(lines, fmt.Sprintf("Tourist attractions near the %s (%s):", role, location))
	for _, p := range picks[:min(maxAttractionsPerLocation, len(picks))] {
		lines = append(lines, "  - "+p)
	}
	return lines
}
