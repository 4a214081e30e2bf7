package domain

import "strings"

// StrategyKind is the closed set of route optimization objectives.
type StrategyKind int

const (
	StrategyUnset StrategyKind = iota
	StrategyFastest
	StrategyShortest
	StrategyEconomical
	StrategyEcoFriendly
)

func StrategyKinds() []StrategyKind {
	return []StrategyKind{StrategyFastest, StrategyShortest, StrategyEconomical, StrategyEcoFriendly}
}

func (k StrategyKind) String() string {
	switch k {
	case StrategyFastest:
		return "fastest"
	case StrategyShortest:
		return "shortest"
	case StrategyEconomical:
		return "economical"
	case StrategyEcoFriendly:
		return "eco_friendly"
	default:
		return "unset"
	}
}

// ParseStrategyKind maps a settings or user value to a StrategyKind.
// Unknown input returns StrategyUnset.
func ParseStrategyKind(s string) StrategyKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fastest", "fastestroute", "fastest_route":
		return StrategyFastest
	case "shortest", "shortestroute", "shortest_route":
		return StrategyShortest
	case "economical", "economicalroute", "economical_route", "cheapest":
		return StrategyEconomical
	case "eco", "ecofriendly", "eco_friendly", "ecofriendlyroute", "greenest":
		return StrategyEcoFriendly
	default:
		return StrategyUnset
	}
}
