package dto

import "time"

type RouteRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Mode        string `json:"mode"`
	Strategy    string `json:"strategy"`
	Weather     string `json:"weather"`
	Traffic     string `json:"traffic"`

	UseCache     *bool `json:"use_cache"`
	TouristInfo  *bool `json:"tourist_info"`
	SafetyAlerts *bool `json:"safety_alerts"`
}

type RouteResponse struct {
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	Mode        string   `json:"mode"`
	Strategy    string   `json:"strategy"`
	DistanceKm  float64  `json:"distance_km"`
	TimeMin     int      `json:"time_min"`
	Cost        float64  `json:"cost"`
	CO2Kg       float64  `json:"co2_kg"`
	Narrative   []string `json:"narrative"`
}

type HistoryEntryResponse struct {
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Mode        string    `json:"mode"`
	DistanceKm  float64   `json:"distance_km"`
	TimeMin     int       `json:"time_min"`
	RecordedAt  time.Time `json:"recorded_at"`
}

type HistoryResponse struct {
	Entries []HistoryEntryResponse `json:"entries"`
}
