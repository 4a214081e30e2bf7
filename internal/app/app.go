// Package app assembles the recommendation pipeline from environment configuration.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"route-recommendation-service/internal/adapters/attractions"
	"route-recommendation-service/internal/adapters/cache"
	"route-recommendation-service/internal/adapters/geostore"
	"route-recommendation-service/internal/adapters/mapprovider"
	"route-recommendation-service/internal/adapters/notify"
	"route-recommendation-service/internal/augment"
	"route-recommendation-service/internal/config"
	"route-recommendation-service/internal/events"
	"route-recommendation-service/internal/platform/db"
	"route-recommendation-service/internal/ports"
	"route-recommendation-service/internal/services"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// App holds the wired pipeline and the resources it owns.
type App struct {
	Settings config.Settings
	Planner  *services.Planner
	History  *events.HistoryRecorder
	Alerts   *events.TrafficAlerter
	Bus      *events.Bus

	db   *sqlx.DB
	mqtt mqtt.Client
}

// Build reads configuration from the environment and wires every component.
// Optional integrations (Postgres, Overpass, MQTT) are skipped when unconfigured.
func Build(ctx context.Context) (*App, error) {
	settings, err := config.Load(config.Get("SETTINGS_FILE", ""))
	if err != nil {
		return nil, fmt.Errorf("build app: %w", err)
	}

	a := &App{Settings: settings}
	ok := false
	defer func() {
		if !ok {
			a.Close()
		}
	}()

	if url := config.Get("DATABASE_URL", ""); url != "" {
		a.db, err = db.Open(url)
		if err != nil {
			return nil, fmt.Errorf("build app: %w", err)
		}
	}

	provider, err := a.mapProvider()
	if err != nil {
		return nil, fmt.Errorf("build app: %w", err)
	}

	// The cache always exists; CacheEnabled is only the per-request default.
	policy, err := cache.ParseEvictionPolicy(settings.CacheEviction)
	if err != nil {
		return nil, fmt.Errorf("build app: %w", err)
	}
	routeCache, err := cache.NewMemoryRouteCache(settings.MaxCacheSize, cache.WithPolicy(policy))
	if err != nil {
		return nil, fmt.Errorf("build app: %w", err)
	}

	catalog := augment.DefaultAttractions()
	prefetchAttractions(ctx, catalog)

	a.History = events.NewHistoryRecorder(events.DefaultHistorySize)
	a.Alerts = events.NewTrafficAlerter(nil)
	a.Bus = events.NewBus()
	a.Bus.Subscribe(a.History)
	a.Bus.Subscribe(a.Alerts)

	if broker := config.Get("MQTT_BROKER_URL", ""); broker != "" {
		clientID := config.Get("MQTT_CLIENT_ID", "route-recommendation-"+uuid.NewString()[:8])
		a.mqtt, err = notify.Connect(broker, clientID)
		if err != nil {
			return nil, fmt.Errorf("build app: %w", err)
		}
		a.Bus.Subscribe(notify.NewMQTTPublisher(a.mqtt, config.Get("MQTT_TOPIC", notify.DefaultTopic)))
	}

	a.Planner = services.NewPlanner(settings, services.PlannerDeps{
		Routes:  services.NewRouteService(provider, routeCache),
		Tourist: augment.NewTouristInfo(catalog),
		Safety:  augment.NewSafetyAlert(augment.DefaultAlerts()),
		Bus:     a.Bus,
		History: a.History,
	})

	ok = true
	return a, nil
}

func (a *App) mapProvider() (ports.MapProvider, error) {
	switch name := strings.ToLower(config.Get("MAP_PROVIDER", "legacy")); name {
	case "legacy":
		return mapprovider.NewLegacyProvider(), nil
	case "ors":
		opts := []mapprovider.ORSOption{
			mapprovider.WithCountry(config.Get("ORS_COUNTRY", "BR")),
		}
		if u := config.Get("ORS_BASE_URL", ""); u != "" {
			opts = append(opts, mapprovider.WithBaseURL(u))
		}
		if a.db != nil {
			opts = append(opts, mapprovider.WithGeocodeStore(geostore.NewSQLGeocodeStore(a.db)))
		}
		return mapprovider.NewORSProvider(os.Getenv("ORS_API_KEY"), opts...)
	default:
		return nil, fmt.Errorf("unknown MAP_PROVIDER %q (want legacy or ors)", name)
	}
}

// prefetchAttractions enriches catalog from Overpass around the seeded places.
// Failures only reduce the catalog to its built-in entries.
func prefetchAttractions(ctx context.Context, catalog *augment.Attractions) {
	endpoint := config.Get("OVERPASS_URL", "")
	if endpoint == "" {
		return
	}

	places, err := geostore.LoadSeeds(config.Get("GEOCODE_SEED_PATH", "data/seeds/geocodes.json"))
	if err != nil {
		log.Printf("attraction prefetch skipped: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	if err := attractions.NewOverpassCatalog(endpoint, 30*time.Second).Prefetch(ctx, places, catalog); err != nil {
		log.Printf("attraction prefetch incomplete: %v", err)
	}
}

// Close releases the database and broker connections.
func (a *App) Close() error {
	var errs []error
	if a.mqtt != nil {
		a.mqtt.Disconnect(250)
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close db: %w", err))
		}
	}
	return errors.Join(errs...)
}
