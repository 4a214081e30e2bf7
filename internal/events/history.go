package events

import (
	"log"
	"route-recommendation-service/internal/domain"
	"sync"
	"time"
)

const DefaultHistorySize = 10

// Summary of a route kept by HistoryRecorder.
type HistoryEntry struct {
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Mode        string    `json:"mode"`
	DistanceKm  float64   `json:"distance_km"`
	TimeMin     int       `json:"time_min"`
	RecordedAt  time.Time `json:"recorded_at"`
}

// HistoryRecorder keeps the most recent routes, dropping the oldest first.
type HistoryRecorder struct {
	mu      sync.Mutex
	limit   int
	entries []HistoryEntry
	now     func() time.Time
}

// NewHistoryRecorder keeps up to limit entries; limit <= 0 uses DefaultHistorySize.
func NewHistoryRecorder(limit int) *HistoryRecorder {
	if limit <= 0 {
		limit = DefaultHistorySize
	}
	return &HistoryRecorder{limit: limit, now: time.Now}
}

func (h *HistoryRecorder) OnRoute(r domain.RouteEstimate) error {
	e := HistoryEntry{
		Origin:      r.Origin,
		Destination: r.Destination,
		Mode:        r.TransportModeName,
		DistanceKm:  r.DistanceKm,
		TimeMin:     r.EstimatedTimeMin,
		RecordedAt:  h.now(),
	}

	h.mu.Lock()
	h.entries = append(h.entries, e)
	if over := len(h.entries) - h.limit; over > 0 {
		h.entries = append(h.entries[:0:0], h.entries[over:]...)
	}
	h.mu.Unlock()

	log.Printf("history_recorded origin=%q destination=%q", r.Origin, r.Destination)
	return nil
}

// Entries returns the recorded summaries, oldest first.
func (h *HistoryRecorder) Entries() []HistoryEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]HistoryEntry(nil), h.entries...)
}

func (h *HistoryRecorder) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = nil
}
