package api

import (
	"net/http"
	"route-recommendation-service/internal/api/handlers"

	"github.com/gorilla/mux"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(planner handlers.RoutePlanner) http.Handler {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(handlers.NotFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(handlers.MethodNotAllowed)

	router.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)

	routeHandler := &handlers.RouteHandler{Planner: planner}
	routeHandler.RegisterRoutes(router)

	// Not-found and method-not-allowed responses bypass router.Use middleware,
	// so the chain wraps the router itself.
	return requestIDMiddleware(loggingMiddleware(router))
}
