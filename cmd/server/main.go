package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"route-recommendation-service/internal/api"
	"route-recommendation-service/internal/app"
	"route-recommendation-service/internal/config"
	"syscall"
	"time"

	"github.com/joho/godotenv"
)

// main is the application composition root.
// It wires the pipeline behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.Build(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer a.Close()

	port := config.Get("PORT", "8080")
	router := api.NewRouter(a.Planner)

	// Timeouts allow for cold external provider calls with retries.
	log.Printf("Server listening addr=:%s strategy=%s cache=%t", port, a.Settings.DefaultStrategy, a.Settings.CacheEnabled)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("server: %v", err)
	}
}
