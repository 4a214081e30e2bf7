package dto

import "route-recommendation-service/internal/ports"

type ModeResponse struct {
	Key       string  `json:"key"`
	Name      string  `json:"name"`
	SpeedKmh  float64 `json:"speed_kmh"`
	CostPerKm float64 `json:"cost_per_km"`
	FlatRate  bool    `json:"flat_rate"`
	CO2PerKm  float64 `json:"co2_per_km"`
	Default   bool    `json:"default"`
}

type StrategyResponse struct {
	Key     string `json:"key"`
	Default bool   `json:"default"`
}

type CacheResponse struct {
	Enabled bool `json:"enabled"`
	ports.CacheStats
}
