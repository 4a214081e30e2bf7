package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"route-recommendation-service/internal/api/dto"
	"route-recommendation-service/internal/config"
	"route-recommendation-service/internal/domain"
	"route-recommendation-service/internal/events"
	"route-recommendation-service/internal/ports"
	"route-recommendation-service/internal/services"
	"strings"

	"github.com/gorilla/mux"
)

// RoutePlanner is the pipeline surface the HTTP layer needs.
type RoutePlanner interface {
	Recommend(ctx context.Context, req services.PlanRequest) (domain.RouteEstimate, error)
	History() []events.HistoryEntry
	ClearHistory()
	CacheStats() (ports.CacheStats, bool)
	ClearCache()
	Settings() config.Settings
}

type RouteHandler struct {
	Planner RoutePlanner
}

func (h *RouteHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/routes", h.Recommend).Methods(http.MethodPost)
	router.HandleFunc("/routes/history", h.History).Methods(http.MethodGet)
	router.HandleFunc("/routes/history", h.ClearHistory).Methods(http.MethodDelete)
	router.HandleFunc("/cache", h.Cache).Methods(http.MethodGet)
	router.HandleFunc("/cache", h.ClearCache).Methods(http.MethodDelete)
	router.HandleFunc("/modes", h.Modes).Methods(http.MethodGet)
	router.HandleFunc("/strategies", h.Strategies).Methods(http.MethodGet)
}

// ToPlanRequest validates a request body against the planner settings.
// Empty mode and strategy fall back to the configured defaults.
func ToPlanRequest(req dto.RouteRequest, settings config.Settings) (services.PlanRequest, error) {
	mode := settings.DefaultMode
	if strings.TrimSpace(req.Mode) != "" {
		mode = domain.ParseMode(req.Mode)
		if mode == domain.ModeUnknown {
			return services.PlanRequest{}, fmt.Errorf("mode %q: %w", req.Mode, domain.ErrUnsupportedMode)
		}
	}

	kind := domain.StrategyUnset
	if strings.TrimSpace(req.Strategy) != "" {
		kind = domain.ParseStrategyKind(req.Strategy)
		if kind == domain.StrategyUnset {
			return services.PlanRequest{}, fmt.Errorf("strategy %q: %w", req.Strategy, domain.ErrUnsupportedStrategy)
		}
	}

	weather, err := domain.ParseWeather(req.Weather)
	if err != nil {
		return services.PlanRequest{}, err
	}
	traffic, err := domain.ParseTraffic(req.Traffic)
	if err != nil {
		return services.PlanRequest{}, err
	}

	return services.PlanRequest{
		Origin:       strings.TrimSpace(req.Origin),
		Destination:  strings.TrimSpace(req.Destination),
		Mode:         mode,
		Strategy:     kind,
		Conditions:   domain.RouteConditions{Weather: weather, Traffic: traffic},
		UseCache:     req.UseCache,
		TouristInfo:  req.TouristInfo,
		SafetyAlerts: req.SafetyAlerts,
	}, nil
}

// Recommend runs the recommendation pipeline for one origin/destination pair.
func (h *RouteHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req dto.RouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if strings.TrimSpace(req.Origin) == "" || strings.TrimSpace(req.Destination) == "" {
		writeError(w, r, http.StatusBadRequest, "origin and destination are required")
		return
	}

	settings := h.Planner.Settings()
	planReq, err := ToPlanRequest(req, settings)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	route, err := h.Planner.Recommend(r.Context(), planReq)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	kind := planReq.Strategy
	if kind == domain.StrategyUnset {
		kind = settings.DefaultStrategy
	}

	writeJSON(w, r, http.StatusOK, dto.RouteResponse{
		Origin:      route.Origin,
		Destination: route.Destination,
		Mode:        route.TransportModeName,
		Strategy:    kind.String(),
		DistanceKm:  route.DistanceKm,
		TimeMin:     route.EstimatedTimeMin,
		Cost:        route.Cost,
		CO2Kg:       route.CO2Kg,
		Narrative:   route.Narrative,
	})
}

func (h *RouteHandler) History(w http.ResponseWriter, r *http.Request) {
	entries := h.Planner.History()

	res := dto.HistoryResponse{Entries: make([]dto.HistoryEntryResponse, 0, len(entries))}
	for _, e := range entries {
		res.Entries = append(res.Entries, dto.HistoryEntryResponse{
			Origin:      e.Origin,
			Destination: e.Destination,
			Mode:        e.Mode,
			DistanceKm:  e.DistanceKm,
			TimeMin:     e.TimeMin,
			RecordedAt:  e.RecordedAt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *RouteHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	h.Planner.ClearHistory()
	w.WriteHeader(http.StatusNoContent)
}

func (h *RouteHandler) Cache(w http.ResponseWriter, r *http.Request) {
	stats, ok := h.Planner.CacheStats()
	writeJSON(w, r, http.StatusOK, dto.CacheResponse{
		Enabled:    ok && h.Planner.Settings().CacheEnabled,
		CacheStats: stats,
	})
}

func (h *RouteHandler) ClearCache(w http.ResponseWriter, r *http.Request) {
	h.Planner.ClearCache()
	w.WriteHeader(http.StatusNoContent)
}

func (h *RouteHandler) Modes(w http.ResponseWriter, r *http.Request) {
	def := h.Planner.Settings().DefaultMode

	res := make([]dto.ModeResponse, 0, len(domain.Modes()))
	for _, m := range domain.Modes() {
		p := domain.ProfileFor(m)
		res = append(res, dto.ModeResponse{
			Key:       m.String(),
			Name:      p.Name(),
			SpeedKmh:  p.Speed(),
			CostPerKm: p.CostPerKm(),
			FlatRate:  p.FlatRate(),
			CO2PerKm:  p.EmissionFactor(),
			Default:   m == def,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *RouteHandler) Strategies(w http.ResponseWriter, r *http.Request) {
	def := h.Planner.Settings().DefaultStrategy

	res := make([]dto.StrategyResponse, 0, len(domain.StrategyKinds()))
	for _, k := range domain.StrategyKinds() {
		res = append(res, dto.StrategyResponse{Key: k.String(), Default: k == def})
	}

	writeJSON(w, r, http.StatusOK, res)
}
