package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"route-recommendation-service/internal/domain"
	"route-recommendation-service/internal/platform/obs"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeServiceError maps pipeline errors to HTTP statuses.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument),
		errors.Is(err, domain.ErrUnsupportedMode),
		errors.Is(err, domain.ErrUnsupportedStrategy):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrProviderUnavailable):
		log.Printf("req_id=%s map provider failed: %v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusBadGateway, "map provider unavailable")
	default:
		log.Printf("req_id=%s request failed: %v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

// MethodNotAllowed answers requests whose path matched but method did not.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found")
}
