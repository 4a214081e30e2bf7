package domain

import (
	"fmt"
	"strings"
)

type Weather int

const (
	Sunny Weather = iota
	Rainy
	Cloudy
	Snowy
)

type Traffic int

const (
	Light Traffic = iota
	Moderate
	Heavy
	Gridlock
)

// Per-request weather and traffic context.
type RouteConditions struct {
	Weather Weather
	Traffic Traffic
}

// DefaultConditions is used when a request carries no context.
func DefaultConditions() RouteConditions {
	return RouteConditions{Weather: Sunny, Traffic: Moderate}
}

// BaseTimeMultiplier is the shared time multiplier before strategy surcharges.
func (c RouteConditions) BaseTimeMultiplier() int {
	return 2 + c.Traffic.timePenalty() + c.Weather.timePenalty()
}

func (t Traffic) timePenalty() int {
	switch t {
	case Moderate:
		return 1
	case Heavy:
		return 3
	case Gridlock:
		return 5
	default:
		return 0
	}
}

// EmissionFactor scales CO2 output for stop-and-go driving.
func (t Traffic) EmissionFactor() float64 {
	switch t {
	case Moderate:
		return 1.2
	case Heavy:
		return 1.5
	case Gridlock:
		return 2.0
	default:
		return 1.0
	}
}

// Congested reports Heavy or Gridlock traffic.
func (t Traffic) Congested() bool { return t == Heavy || t == Gridlock }

func (w Weather) timePenalty() int {
	switch w {
	case Rainy:
		return 1
	case Snowy:
		return 3
	default:
		return 0
	}
}

func (w Weather) String() string {
	switch w {
	case Sunny:
		return "sunny"
	case Rainy:
		return "rainy"
	case Cloudy:
		return "cloudy"
	case Snowy:
		return "snowy"
	default:
		return fmt.Sprintf("weather(%d)", int(w))
	}
}

func (t Traffic) String() string {
	switch t {
	case Light:
		return "light"
	case Moderate:
		return "moderate"
	case Heavy:
		return "heavy"
	case Gridlock:
		return "gridlock"
	default:
		return fmt.Sprintf("traffic(%d)", int(t))
	}
}

// ParseWeather accepts the enum names case-insensitively; empty input means Sunny.
func ParseWeather(s string) (Weather, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sunny":
		return Sunny, nil
	case "rainy":
		return Rainy, nil
	case "cloudy":
		return Cloudy, nil
	case "snowy":
		return Snowy, nil
	}
	return Sunny, fmt.Errorf("parse weather %q: %w", s, ErrInvalidArgument)
}

// ParseTraffic accepts the enum names case-insensitively; empty input means Moderate.
func ParseTraffic(s string) (Traffic, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return Light, nil
	case "", "moderate":
		return Moderate, nil
	case "heavy":
		return Heavy, nil
	case "gridlock":
		return Gridlock, nil
	}
	return Moderate, fmt.Errorf("parse traffic %q: %w", s, ErrInvalidArgument)
}
