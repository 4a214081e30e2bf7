// Package augment appends presentation lines to a computed route.
//
// Augmenters run as an ordered chain. Each stage receives the output of the
// previous one and may only append narrative lines; distance, time, cost and
// emissions stay exactly as the strategy produced them.
package augment

import (
	"fmt"
	"route-recommendation-service/internal/domain"
)

// Augmenter adds narrative lines to a route.
type Augmenter interface {
	Name() string
	Augment(r domain.RouteEstimate) domain.RouteEstimate
}

// Ordered list of augmenters.
type Chain []Augmenter

// Apply runs every stage in order on a copy of r.
// A stage that alters a metric or drops narrative lines aborts the chain.
func (c Chain) Apply(r domain.RouteEstimate) (domain.RouteEstimate, error) {
	out := r.Clone()
	for _, a := range c {
		next := a.Augment(out.Clone())
		if !next.SameMetrics(out) || len(next.Narrative) < len(out.Narrative) {
			return r, fmt.Errorf("augment %s: %w", a.Name(), domain.ErrAugmenterMutatedMetrics)
		}
		out = next
	}
	return out, nil
}

// Options selects the stages of the standard chain.
type Options struct {
	TouristInfo  bool
	SafetyAlerts bool
}

// Build returns the standard chain: tourist info first, then safety alerts.
func Build(opts Options, tourist *TouristInfo, safety *SafetyAlert) Chain {
	var c Chain
	if opts.TouristInfo && tourist != nil {
		c = append(c, tourist)
	}
	if opts.SafetyAlerts && safety != nil {
		c = append(c, safety)
	}
	return c
}
